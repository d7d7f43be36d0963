package client

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/maxandsherry/storefront/internal/domain"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrMissingCustomerInfo = errors.New("customer name and phone are required")
)

type CartLine struct {
	Item     domain.MenuItem
	Quantity int
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Customer struct {
	Name            string
	Phone           string
	Email           string
	DeliveryAddress string
}

// Cart holds the items picked before checkout. It lives entirely on the
// client and is not safe for concurrent use.
type Cart struct {
	lines []CartLine
}

func (c *Cart) Add(item domain.MenuItem, quantity int) {
	if quantity <= 0 {
		return
	}
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, CartLine{Item: item, Quantity: quantity})
}

// SetQuantity replaces the quantity of an item already in the cart; zero or
// less removes it.
func (c *Cart) SetQuantity(itemID int64, quantity int) {
	if quantity <= 0 {
		c.Remove(itemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Remove(itemID int64) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Draft(customer Customer) domain.OrderDraft {
	items := make([]domain.OrderItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, domain.OrderItem{
			ID:       l.Item.ID,
			Name:     l.Item.Name,
			Price:    l.Item.Price,
			Quantity: l.Quantity,
		})
	}

	address := strings.TrimSpace(customer.DeliveryAddress)
	if address == "" {
		address = domain.PickupAddress
	}

	return domain.OrderDraft{
		CustomerName:    strings.TrimSpace(customer.Name),
		CustomerPhone:   strings.TrimSpace(customer.Phone),
		CustomerEmail:   strings.TrimSpace(customer.Email),
		Items:           items,
		DeliveryAddress: address,
		TotalAmount:     decimal.NewNullDecimal(c.Total()),
	}
}

// Checkout submits the cart as an order and empties it once the API accepts it.
func (c *Cart) Checkout(ctx context.Context, api *Client, customer Customer) (*domain.Order, error) {
	draft := c.Draft(customer)
	if draft.CustomerName == "" || draft.CustomerPhone == "" {
		return nil, ErrMissingCustomerInfo
	}
	if len(draft.Items) == 0 {
		return nil, ErrEmptyCart
	}

	order, err := api.CreateOrder(ctx, draft)
	if err != nil {
		return nil, err
	}

	c.Clear()
	return order, nil
}
