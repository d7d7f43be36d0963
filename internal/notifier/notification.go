package notifier

import (
	"errors"
	"fmt"

	"github.com/maxandsherry/storefront/internal/client"
	"github.com/maxandsherry/storefront/internal/domain"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

type Notification struct {
	Channel Channel `json:"channel"`
	To      string  `json:"to"`
	Subject string  `json:"subject"`
	Body    string  `json:"body"`
}

// recipient prefers the customer's email and falls back to their phone.
func recipient(order *domain.Order) (Channel, string) {
	if order.CustomerEmail != "" {
		return ChannelEmail, order.CustomerEmail
	}
	return ChannelSMS, order.CustomerPhone
}

func PlacedNotification(order *domain.Order) Notification {
	channel, to := recipient(order)

	fulfilment := "ready for pickup"
	if !order.IsPickup() {
		fulfilment = "delivered to " + order.DeliveryAddress
	}

	return Notification{
		Channel: channel,
		To:      to,
		Subject: "Order Received: " + order.OrderNumber,
		Body: fmt.Sprintf("Hi %s, we received your order %s with %d item(s) totalling %s. It will be %s by %s.",
			order.CustomerName,
			order.OrderNumber,
			len(order.Items),
			order.Total().StringFixed(2),
			fulfilment,
			order.EstimatedDelivery.Format("15:04 MST"),
		),
	}
}

func StatusNotification(order *domain.Order, status domain.OrderStatus) Notification {
	channel, to := recipient(order)

	var body string
	switch status {
	case domain.OrderStatusPreparing:
		body = fmt.Sprintf("Your order %s is being prepared.", order.OrderNumber)
	case domain.OrderStatusDelivered:
		body = fmt.Sprintf("Your order %s has been delivered. Enjoy!", order.OrderNumber)
	case domain.OrderStatusCancelled:
		body = fmt.Sprintf("Your order %s has been cancelled.", order.OrderNumber)
	default:
		body = fmt.Sprintf("Your order %s is now %s.", order.OrderNumber, status)
	}

	return Notification{
		Channel: channel,
		To:      to,
		Subject: "Order Update: " + order.OrderNumber,
		Body:    body,
	}
}

func isNotFound(err error) bool {
	return client.IsNotFound(err) || errors.Is(err, domain.ErrNotFound)
}
