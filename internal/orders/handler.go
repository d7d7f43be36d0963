package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/maxandsherry/storefront/internal/domain"
	"github.com/maxandsherry/storefront/internal/envelope"
	"github.com/maxandsherry/storefront/internal/logging"
)

type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}

type Handler struct {
	store         Store
	publisher     EventPublisher
	logger        *slog.Logger
	ordersCreated metric.Int64Counter
	statusUpdates metric.Int64Counter
}

// NewHandler wires the order endpoints. publisher may be nil, in which case no
// order events are emitted.
func NewHandler(store Store, publisher EventPublisher, logger *slog.Logger) (*Handler, error) {
	meter := otel.Meter("storefront/orders")

	ordersCreated, err := meter.Int64Counter("orders.created",
		metric.WithDescription("Number of orders placed"),
	)
	if err != nil {
		return nil, err
	}

	statusUpdates, err := meter.Int64Counter("orders.status_updates",
		metric.WithDescription("Number of order status changes"),
	)
	if err != nil {
		return nil, err
	}

	return &Handler{
		store:         store,
		publisher:     publisher,
		logger:        logger,
		ordersCreated: ordersCreated,
		statusUpdates: statusUpdates,
	}, nil
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context(), h.logger)

	var draft domain.OrderDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		envelope.WriteError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := draft.Validate(); err != nil {
		var verr domain.ValidationError
		if errors.As(err, &verr) {
			logger.Warn("order rejected", "field", verr.Field, "reason", verr.Message)
		}
		envelope.WriteError(w, h.logger, http.StatusBadRequest, "Missing required fields")
		return
	}

	if itemsTotal := draft.ItemsTotal(); draft.TotalAmount.Valid && !itemsTotal.Equal(draft.TotalAmount.Decimal) {
		logger.Warn("order total does not match items",
			"total_amount", draft.TotalAmount.Decimal.String(),
			"items_total", itemsTotal.String(),
		)
	}

	order, err := h.store.Create(r.Context(), draft)
	if err != nil {
		logger.Error("failed to create order", "error", err)
		envelope.WriteError(w, h.logger, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.ordersCreated.Add(r.Context(), 1)
	h.publish(r.Context(), logger, domain.OrderEventPlaced, order)

	logger.Info("order created", "order_id", order.ID, "order_number", order.OrderNumber)
	envelope.WriteData(w, h.logger, http.StatusCreated, "Order placed successfully", order)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context(), h.logger)

	id, ok := parseOrderID(r)
	if !ok {
		envelope.WriteError(w, h.logger, http.StatusNotFound, "Order not found")
		return
	}

	order, err := h.store.GetByID(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		envelope.WriteError(w, h.logger, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		logger.Error("failed to get order", "error", err, "id", id)
		envelope.WriteError(w, h.logger, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Info("order retrieved", "order_id", order.ID)
	envelope.WriteData(w, h.logger, http.StatusOK, "", order)
}

func (h *Handler) HandleListByCustomer(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context(), h.logger)
	phone := r.PathValue("phone")

	orders, err := h.store.ListByCustomerPhone(r.Context(), phone)
	if err != nil {
		logger.Error("failed to list customer orders", "error", err)
		envelope.WriteError(w, h.logger, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Info("customer orders listed", "count", len(orders))
	envelope.WriteData(w, h.logger, http.StatusOK, "", orders)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context(), h.logger)

	id, ok := parseOrderID(r)
	if !ok {
		envelope.WriteError(w, h.logger, http.StatusNotFound, "Order not found")
		return
	}

	if _, err := h.store.GetByID(r.Context(), id); err != nil {
		h.orderLookupFailed(w, logger, id, err)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		envelope.WriteError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		logger.Warn("order status rejected", "id", id, "status", req.Status)
		envelope.WriteError(w, h.logger, http.StatusBadRequest, "Invalid order status")
		return
	}

	order, err := h.store.UpdateStatus(r.Context(), id, status)
	if err != nil {
		h.orderLookupFailed(w, logger, id, err)
		return
	}

	h.statusUpdates.Add(r.Context(), 1, metric.WithAttributes(attribute.String("status", string(order.Status))))
	h.publish(r.Context(), logger, domain.OrderEventStatusChanged, order)

	logger.Info("order status updated", "order_id", order.ID, "status", order.Status)
	envelope.WriteData(w, h.logger, http.StatusOK, "Order status updated", order)
}

func (h *Handler) publish(ctx context.Context, logger *slog.Logger, eventType domain.OrderEventType, order *domain.Order) {
	if h.publisher == nil {
		return
	}

	event := domain.OrderEvent{
		ID:            uuid.NewString(),
		Type:          eventType,
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		CustomerPhone: order.CustomerPhone,
		Status:        order.Status,
		Timestamp:     time.Now().UTC(),
	}
	key := strconv.FormatInt(order.ID, 10)
	if err := h.publisher.Publish(ctx, key, event); err != nil {
		logger.Error("failed to publish order event", "error", err, "order_id", order.ID, "type", eventType)
	}
}

func (h *Handler) orderLookupFailed(w http.ResponseWriter, logger *slog.Logger, id int64, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		envelope.WriteError(w, h.logger, http.StatusNotFound, "Order not found")
		return
	}
	logger.Error("failed to look up order", "error", err, "id", id)
	envelope.WriteError(w, h.logger, http.StatusInternalServerError, "Internal server error")
}

func parseOrderID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
