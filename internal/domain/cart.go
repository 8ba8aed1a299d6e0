package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line in a shopping cart. ID is constructed by the caller
// and may encode product plus variant (e.g. "3-M-black"), so distinct
// variants of the same product are distinct lines.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"imageUrl"`
	Size     string  `json:"size,omitempty"`
	Color    string  `json:"color,omitempty"`
}

type Cart struct {
	SessionID string     `json:"sessionId"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// TotalItems is the sum of all line quantities. Derived on every call,
// never stored.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Total is the sum of price*quantity over all lines. Derived on every call,
// never stored.
func (c *Cart) Total() decimal.Decimal {
	return ItemsTotal(c.Items)
}

// ItemsTotal sums price*quantity over the given items using decimal
// arithmetic, so "10.00" * 3 never picks up float noise.
func ItemsTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}
