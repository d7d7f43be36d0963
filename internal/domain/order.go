package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch status := OrderStatus(s); status {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusDelivered, OrderStatusCancelled:
		return status, nil
	}
	return "", ValidationError{Field: "status", Message: fmt.Sprintf("unsupported order status %q", s)}
}

type OrderItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// OrderDraft is what a caller submits to place an order. TotalAmount is taken
// as supplied and stays invalid when the caller leaves it out.
type OrderDraft struct {
	CustomerName    string              `json:"customerName"`
	CustomerPhone   string              `json:"customerPhone"`
	CustomerEmail   string              `json:"customerEmail,omitempty"`
	Items           []OrderItem         `json:"items"`
	DeliveryAddress string              `json:"deliveryAddress,omitempty"`
	TotalAmount     decimal.NullDecimal `json:"totalAmount,omitzero"`
}

func (d OrderDraft) Validate() error {
	if d.CustomerName == "" {
		return ValidationError{Field: "customerName", Message: "customer name is required"}
	}
	if d.CustomerPhone == "" {
		return ValidationError{Field: "customerPhone", Message: "customer phone is required"}
	}
	if len(d.Items) == 0 {
		return ValidationError{Field: "items", Message: "items cannot be empty"}
	}
	return nil
}

// ItemsTotal sums price × quantity over the draft's line items.
func (d OrderDraft) ItemsTotal() decimal.Decimal {
	return sumItems(d.Items)
}

func sumItems(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

type Order struct {
	ID                int64               `json:"id"`
	OrderNumber       string              `json:"orderNumber"`
	CustomerName      string              `json:"customerName"`
	CustomerPhone     string              `json:"customerPhone"`
	CustomerEmail     string              `json:"customerEmail"`
	Items             []OrderItem         `json:"items"`
	DeliveryAddress   string              `json:"deliveryAddress"`
	TotalAmount       decimal.NullDecimal `json:"totalAmount,omitzero"`
	Status            OrderStatus         `json:"status"`
	CreatedAt         time.Time           `json:"createdAt"`
	EstimatedDelivery time.Time           `json:"estimatedDelivery"`
	UpdatedAt         *time.Time          `json:"updatedAt,omitempty"`
}

const (
	OrderNumberPrefix      = "GB"
	PickupAddress          = "Pickup"
	EstimatedDeliveryDelay = 45 * time.Minute
)

// Total is the amount the customer submitted, or the item sum when they did
// not send one.
func (o Order) Total() decimal.Decimal {
	if o.TotalAmount.Valid {
		return o.TotalAmount.Decimal
	}
	return sumItems(o.Items)
}

func (o Order) IsPickup() bool {
	return strings.EqualFold(o.DeliveryAddress, PickupAddress)
}
