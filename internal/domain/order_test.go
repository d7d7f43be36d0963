package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "preparing", "delivered", "cancelled"} {
		got, err := ParseOrderStatus(s)
		if err != nil {
			t.Errorf("ParseOrderStatus(%q) returned error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseOrderStatus(%q) = %q", s, got)
		}
	}

	for _, s := range []string{"", "PENDING", "shipped", "ready"} {
		_, err := ParseOrderStatus(s)
		var verr ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("ParseOrderStatus(%q): expected ValidationError, got %v", s, err)
		}
		if verr.Field != "status" {
			t.Errorf("expected field 'status', got %q", verr.Field)
		}
	}
}

func TestOrderDraft_Validate(t *testing.T) {
	item := OrderItem{ID: 1, Name: "Cake", Price: decimal.RequireFromString("25.99"), Quantity: 2}

	tests := []struct {
		name      string
		draft     OrderDraft
		wantField string
	}{
		{
			name:  "valid draft",
			draft: OrderDraft{CustomerName: "Ana", CustomerPhone: "555", Items: []OrderItem{item}},
		},
		{
			name:      "missing customer name",
			draft:     OrderDraft{CustomerPhone: "555", Items: []OrderItem{item}},
			wantField: "customerName",
		},
		{
			name:      "missing customer phone",
			draft:     OrderDraft{CustomerName: "Ana", Items: []OrderItem{item}},
			wantField: "customerPhone",
		},
		{
			name:      "nil items",
			draft:     OrderDraft{CustomerName: "Ana", CustomerPhone: "555"},
			wantField: "items",
		},
		{
			name:      "empty items",
			draft:     OrderDraft{CustomerName: "Ana", CustomerPhone: "555", Items: []OrderItem{}},
			wantField: "items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, verr.Field)
			}
		})
	}
}

func TestOrderDraft_ItemsTotal(t *testing.T) {
	draft := OrderDraft{Items: []OrderItem{
		{Price: decimal.RequireFromString("25.99"), Quantity: 2},
		{Price: decimal.RequireFromString("12.99"), Quantity: 1},
	}}

	want := decimal.RequireFromString("64.97")
	if got := draft.ItemsTotal(); !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestOrderDraft_DecodesNumericAmounts(t *testing.T) {
	body := `{"customerName":"Ana","customerPhone":"555","items":[{"id":1,"name":"Cake","price":25.99,"quantity":2}],"totalAmount":51.98}`

	var draft OrderDraft
	if err := json.Unmarshal([]byte(body), &draft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !draft.TotalAmount.Valid || !draft.TotalAmount.Decimal.Equal(decimal.RequireFromString("51.98")) {
		t.Errorf("unexpected total %v", draft.TotalAmount)
	}

	out, err := json.Marshal(draft.Items[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `{"id":1,"name":"Cake","price":25.99,"quantity":2}` {
		t.Errorf("unexpected encoding: %s", out)
	}
}

func TestOrder_Total(t *testing.T) {
	items := []OrderItem{{Price: decimal.RequireFromString("25.99"), Quantity: 2}}

	supplied := Order{Items: items, TotalAmount: decimal.NewNullDecimal(decimal.RequireFromString("50"))}
	if got := supplied.Total().String(); got != "50" {
		t.Errorf("expected supplied total 50, got %s", got)
	}

	missing := Order{Items: items}
	if got := missing.Total().String(); got != "51.98" {
		t.Errorf("expected item sum 51.98, got %s", got)
	}

	out, err := json.Marshal(missing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), "totalAmount") {
		t.Errorf("expected totalAmount to be omitted: %s", out)
	}
}

func TestOrder_IsPickup(t *testing.T) {
	if !(Order{DeliveryAddress: "Pickup"}).IsPickup() {
		t.Error("expected Pickup to be a pickup order")
	}
	if (Order{DeliveryAddress: "12 Baker St"}).IsPickup() {
		t.Error("expected street address to be a delivery order")
	}
}
