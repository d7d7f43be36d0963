//go:build integration

package test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxandsherry/storefront/internal/catalog"
	"github.com/maxandsherry/storefront/internal/client"
	"github.com/maxandsherry/storefront/internal/domain"
	"github.com/maxandsherry/storefront/internal/messaging"
	"github.com/maxandsherry/storefront/internal/notifier"
	"github.com/maxandsherry/storefront/internal/orders"
	"github.com/maxandsherry/storefront/internal/server"
)

type webhookRecorder struct {
	mu       sync.Mutex
	received []notifier.Notification
	got      chan struct{}
}

func (w *webhookRecorder) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	var n notifier.Notification
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		http.Error(rw, err.Error(), http.StatusBadRequest)
		return
	}
	w.mu.Lock()
	w.received = append(w.received, n)
	w.mu.Unlock()
	rw.WriteHeader(http.StatusAccepted)
	w.got <- struct{}{}
}

func TestOrderNotificationFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	brokers := StartKafka(ctx, t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	const topic = "order.events"

	producer := messaging.NewProducer(brokers, topic)
	defer func() { _ = producer.Close() }()

	ordersHandler, err := orders.NewHandler(orders.NewOrderRepository(), producer, logger)
	require.NoError(t, err)

	api := httptest.NewServer(server.NewRouter(server.Deps{
		Catalog:        catalog.NewHandler(catalog.NewMenuRepository(catalog.DefaultMenu()), logger),
		Orders:         ordersHandler,
		Logger:         logger,
		ServiceName:    "storefront-api",
		ServiceVersion: "test",
	}))
	defer api.Close()

	webhook := &webhookRecorder{got: make(chan struct{}, 8)}
	hook := httptest.NewServer(webhook)
	defer hook.Close()

	apiClient := client.New(api.URL + "/api")
	var cart client.Cart
	cake, err := apiClient.GetMenuItem(ctx, 1)
	require.NoError(t, err)
	cart.Add(*cake, 2)

	order, err := cart.Checkout(ctx, apiClient, client.Customer{Name: "Ana", Phone: "555"})
	require.NoError(t, err)
	assert.True(t, order.Total().Equal(decimal.RequireFromString("51.98")))

	_, err = apiClient.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusPreparing)
	require.NoError(t, err)

	consumer := messaging.NewConsumer(brokers, topic, "order-notifier-test", messaging.WithStartOffset(kafka.FirstOffset))
	defer func() { _ = consumer.Close() }()

	handler := notifier.NewHandler(apiClient, notifier.NewWebhookSender(hook.URL, hook.Client()), logger)
	consumeCtx, stop := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- consumer.Consume(consumeCtx, handler.Handle) }()

	for range 2 {
		select {
		case <-webhook.got:
		case <-ctx.Done():
			t.Fatal("timed out waiting for notifications")
		}
	}
	stop()

	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		t.Fatalf("consumer failed: %v", err)
	}

	webhook.mu.Lock()
	defer webhook.mu.Unlock()
	require.Len(t, webhook.received, 2)
	assert.Equal(t, "Order Received: "+order.OrderNumber, webhook.received[0].Subject)
	assert.Equal(t, "Your order "+order.OrderNumber+" is being prepared.", webhook.received[1].Body)
	assert.Equal(t, "555", webhook.received[0].To)
}
