package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/maxandsherry/storefront/internal/client"
	"github.com/maxandsherry/storefront/internal/config"
	"github.com/maxandsherry/storefront/internal/logging"
	"github.com/maxandsherry/storefront/internal/messaging"
	"github.com/maxandsherry/storefront/internal/notifier"
	"github.com/maxandsherry/storefront/internal/telemetry"
)

func main() {
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.LogLevel).With("service", "order-notifier")

	if len(cfg.KafkaBrokers) == 0 {
		logger.Error("KAFKA_BROKERS environment variable is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, cfg.OTLPEndpoint, "order-notifier", cfg.ServiceVersion)
	if err != nil {
		logger.Error("failed to initialize tracer", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownTracer(context.Background()) }()

	metricsHandler, shutdownMeter, err := telemetry.InitMeterProvider("order-notifier", cfg.ServiceVersion)
	if err != nil {
		logger.Error("failed to initialize meter", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownMeter(context.Background()) }()

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", metricsHandler)
	metricsSrv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.NotifierMetricsPort),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		_ = metricsSrv.Shutdown(shutdownCtx)
	}()

	httpClient := &http.Client{
		Timeout:   client.DefaultTimeout,
		Transport: telemetry.NewTransport(nil),
	}
	api := client.New(cfg.APIBaseURL, client.WithHTTPClient(httpClient))

	var sender notifier.Sender = notifier.NewLogSender(logger)
	if cfg.NotifyWebhookURL != "" {
		sender = notifier.NewWebhookSender(cfg.NotifyWebhookURL, httpClient)
	}

	handler := notifier.NewHandler(api, sender, logger)

	consumer := messaging.NewConsumer(cfg.KafkaBrokers, cfg.OrderEventsTopic, cfg.NotifierGroupID,
		messaging.WithRetry(3, 500*time.Millisecond),
		messaging.WithLogger(logger),
	)
	defer func() { _ = consumer.Close() }()

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	logger.Info("starting order notifier",
		"brokers", cfg.KafkaBrokers,
		"topic", cfg.OrderEventsTopic,
		"api", cfg.APIBaseURL,
		"webhook", cfg.NotifyWebhookURL != "",
		"metrics_addr", metricsSrv.Addr,
	)

	start := time.Now()
	if err := consumer.Consume(ctx, handler.Handle); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("consumer stopped", "uptime", time.Since(start).String())
			return
		}
		logger.Error("consumer error", "error", err)
		os.Exit(1)
	}
}
