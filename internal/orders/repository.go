package orders

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/maxandsherry/storefront/internal/domain"
)

const firstOrderID int64 = 1000

type Store interface {
	Create(ctx context.Context, draft domain.OrderDraft) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByCustomerPhone(ctx context.Context, phone string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error)
}

type RepositoryOption func(*OrderRepository)

func WithClock(now func() time.Time) RepositoryOption {
	return func(r *OrderRepository) {
		r.now = now
	}
}

// OrderRepository keeps orders in memory, in creation order. Ids come from a
// private counter advanced under the same lock that appends the order.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*domain.Order
	byID   map[int64]*domain.Order
	nextID int64
	now    func() time.Time
}

func NewOrderRepository(opts ...RepositoryOption) *OrderRepository {
	r := &OrderRepository{
		byID:   make(map[int64]*domain.Order),
		nextID: firstOrderID,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *OrderRepository) Create(_ context.Context, draft domain.OrderDraft) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()

	address := draft.DeliveryAddress
	if strings.TrimSpace(address) == "" {
		address = domain.PickupAddress
	}

	order := &domain.Order{
		ID:                r.nextID,
		OrderNumber:       fmt.Sprintf("%s%d", domain.OrderNumberPrefix, now.UnixMilli()),
		CustomerName:      draft.CustomerName,
		CustomerPhone:     draft.CustomerPhone,
		CustomerEmail:     draft.CustomerEmail,
		Items:             copyItems(draft.Items),
		DeliveryAddress:   address,
		TotalAmount:       draft.TotalAmount,
		Status:            domain.OrderStatusPending,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(domain.EstimatedDeliveryDelay),
	}
	r.nextID++

	r.orders = append(r.orders, order)
	r.byID[order.ID] = order

	return cloneOrder(order), nil
}

func (r *OrderRepository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneOrder(order), nil
}

func (r *OrderRepository) ListByCustomerPhone(_ context.Context, phone string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := []domain.Order{}
	for _, order := range r.orders {
		if order.CustomerPhone == phone {
			orders = append(orders, *cloneOrder(order))
		}
	}
	return orders, nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	updatedAt := r.now().UTC()
	order.Status = status
	order.UpdatedAt = &updatedAt

	return cloneOrder(order), nil
}

func cloneOrder(o *domain.Order) *domain.Order {
	c := *o
	c.Items = copyItems(o.Items)
	if o.UpdatedAt != nil {
		t := *o.UpdatedAt
		c.UpdatedAt = &t
	}
	return &c
}

func copyItems(items []domain.OrderItem) []domain.OrderItem {
	out := make([]domain.OrderItem, len(items))
	copy(out, items)
	return out
}
