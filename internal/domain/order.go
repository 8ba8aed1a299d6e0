package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
)

// OrderForm is the customer-supplied checkout payload. The json tags double
// as the field names reported in validation errors.
type OrderForm struct {
	CustomerName        string `json:"customerName" validate:"min=2"`
	CustomerEmail       string `json:"customerEmail" validate:"required,email"`
	CustomerPhone       string `json:"customerPhone" validate:"min=10"`
	CustomerAddress     string `json:"customerAddress" validate:"min=5"`
	CustomerCity        string `json:"customerCity" validate:"min=2"`
	CustomerPostalCode  string `json:"customerPostalCode" validate:"min=3"`
	SpecialInstructions string `json:"specialInstructions"`
}

// Order is created exactly once per successful checkout and is immutable
// afterwards. Items is a frozen snapshot of the cart at submission time;
// later catalog changes never affect a placed order.
type Order struct {
	ID                  int         `json:"id"`
	CustomerName        string      `json:"customerName"`
	CustomerEmail       string      `json:"customerEmail"`
	CustomerPhone       string      `json:"customerPhone"`
	CustomerAddress     string      `json:"customerAddress"`
	CustomerCity        string      `json:"customerCity"`
	CustomerPostalCode  string      `json:"customerPostalCode"`
	SpecialInstructions string      `json:"specialInstructions,omitempty"`
	Items               []CartItem  `json:"items"`
	Total               string      `json:"total"`
	Status              OrderStatus `json:"status"`
	CreatedAt           time.Time   `json:"createdAt"`
}
