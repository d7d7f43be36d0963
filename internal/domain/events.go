package domain

import "time"

type OrderEventType string

const (
	OrderEventPlaced        OrderEventType = "order.placed"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
)

type OrderEvent struct {
	ID            string         `json:"id"`
	Type          OrderEventType `json:"type"`
	OrderID       int64          `json:"orderId"`
	OrderNumber   string         `json:"orderNumber"`
	CustomerPhone string         `json:"customerPhone"`
	Status        OrderStatus    `json:"status"`
	Timestamp     time.Time      `json:"timestamp"`
}
