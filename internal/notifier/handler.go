package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/maxandsherry/storefront/internal/domain"
	"github.com/maxandsherry/storefront/internal/messaging"
)

type OrderFetcher interface {
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
}

type Sender interface {
	Send(ctx context.Context, n Notification) error
}

type Handler struct {
	orders OrderFetcher
	sender Sender
	logger *slog.Logger
}

func NewHandler(orders OrderFetcher, sender Sender, logger *slog.Logger) *Handler {
	return &Handler{
		orders: orders,
		sender: sender,
		logger: logger,
	}
}

// Handle processes one order event payload. Events for orders the API no
// longer knows about are dropped so the consumer can move on, and payloads
// that do not decode are reported with messaging.ErrSkip.
func (h *Handler) Handle(ctx context.Context, payload []byte) error {
	var event domain.OrderEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("unmarshal order event: %w: %w", messaging.ErrSkip, err)
	}

	logger := h.logger.With("event_id", event.ID, "type", event.Type, "order_id", event.OrderID)
	logger.Info("processing order event")

	order, err := h.orders.GetOrder(ctx, event.OrderID)
	if err != nil {
		if isNotFound(err) {
			logger.Warn("order not found, skipping event")
			return nil
		}
		return fmt.Errorf("fetch order %d: %w", event.OrderID, err)
	}

	var n Notification
	switch event.Type {
	case domain.OrderEventPlaced:
		n = PlacedNotification(order)
	case domain.OrderEventStatusChanged:
		n = StatusNotification(order, event.Status)
	default:
		logger.Warn("unknown order event type, skipping")
		return nil
	}

	if err := h.sender.Send(ctx, n); err != nil {
		return fmt.Errorf("send notification for order %d: %w", order.ID, err)
	}

	logger.Info("notification sent", "channel", n.Channel, "subject", n.Subject)
	return nil
}
