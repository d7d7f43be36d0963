package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxandsherry/storefront/internal/domain"
)

func TestPlacedNotification(t *testing.T) {
	t.Run("pickup by sms", func(t *testing.T) {
		n := PlacedNotification(testOrder())

		assert.Equal(t, ChannelSMS, n.Channel)
		assert.Equal(t, "Hi Ana, we received your order GB1773489600000 with 1 item(s) totalling 51.98. It will be ready for pickup by 12:45 UTC.", n.Body)
	})

	t.Run("delivery by email", func(t *testing.T) {
		order := testOrder()
		order.CustomerEmail = "ana@example.com"
		order.DeliveryAddress = "12 Main St"

		n := PlacedNotification(order)

		assert.Equal(t, ChannelEmail, n.Channel)
		assert.Equal(t, "ana@example.com", n.To)
		assert.Contains(t, n.Body, "delivered to 12 Main St")
	})
}

func TestStatusNotification(t *testing.T) {
	tests := []struct {
		status domain.OrderStatus
		want   string
	}{
		{domain.OrderStatusPreparing, "Your order GB1773489600000 is being prepared."},
		{domain.OrderStatusDelivered, "Your order GB1773489600000 has been delivered. Enjoy!"},
		{domain.OrderStatusCancelled, "Your order GB1773489600000 has been cancelled."},
		{domain.OrderStatusPending, "Your order GB1773489600000 is now pending."},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			n := StatusNotification(testOrder(), tt.status)
			assert.Equal(t, "Order Update: GB1773489600000", n.Subject)
			assert.Equal(t, tt.want, n.Body)
		})
	}
}
