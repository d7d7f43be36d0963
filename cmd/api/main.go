package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maxandsherry/storefront/internal/catalog"
	"github.com/maxandsherry/storefront/internal/config"
	"github.com/maxandsherry/storefront/internal/logging"
	"github.com/maxandsherry/storefront/internal/messaging"
	"github.com/maxandsherry/storefront/internal/orders"
	"github.com/maxandsherry/storefront/internal/server"
	"github.com/maxandsherry/storefront/internal/telemetry"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.LogLevel)

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, cfg.OTLPEndpoint, cfg.ServiceName, cfg.ServiceVersion)
	if err != nil {
		logger.Error("failed to initialize tracer", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownTracer(ctx) }()

	metricsHandler, shutdownMeter, err := telemetry.InitMeterProvider(cfg.ServiceName, cfg.ServiceVersion)
	if err != nil {
		logger.Error("failed to initialize meter", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownMeter(ctx) }()

	var publisher orders.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer := messaging.NewProducer(cfg.KafkaBrokers, cfg.OrderEventsTopic)
		defer func() { _ = producer.Close() }()
		publisher = producer
		logger.Info("publishing order events", "brokers", cfg.KafkaBrokers, "topic", cfg.OrderEventsTopic)
	}

	menu := catalog.NewMenuRepository(catalog.DefaultMenu())
	repo := orders.NewOrderRepository()

	ordersHandler, err := orders.NewHandler(repo, publisher, logger)
	if err != nil {
		logger.Error("failed to create orders handler", "error", err)
		os.Exit(1)
	}

	router := server.NewRouter(server.Deps{
		Catalog:        catalog.NewHandler(menu, logger),
		Orders:         ordersHandler,
		Metrics:        metricsHandler,
		Logger:         logger,
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.ServiceVersion,
		Edition:        cfg.Edition,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting storefront api", "addr", srv.Addr, "version", cfg.ServiceVersion)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
