package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"nutritrack/internal/catalog"
)

// ErrEmptyCart is returned when checkout is attempted on a cart with no
// lines. It is the only hard failure of the checkout path.
var ErrEmptyCart = errors.New("cart is empty")

const deliveryWindow = 2 * time.Hour

// OrderLine is one line of a completed order, frozen at checkout time.
type OrderLine struct {
	IngredientKey string  `json:"ingredient_key"`
	ProductName   string  `json:"product_name"`
	UnitPrice     float64 `json:"unit_price"`
	Unit          string  `json:"unit"`
	Category      string  `json:"category"`
	Quantity      int     `json:"quantity"`
}

// OrderSummary is the immutable result of a simulated checkout. No payment
// or network call happens; producing the summary and clearing the cart is a
// terminal, deterministic state transition.
type OrderSummary struct {
	ID                string      `json:"id"`
	VendorID          string      `json:"vendor_id"`
	VendorName        string      `json:"vendor_name"`
	Lines             []OrderLine `json:"lines"`
	Totals            Totals      `json:"totals"`
	CreatedAt         time.Time   `json:"created_at"`
	EstimatedDelivery time.Time   `json:"estimated_delivery"`
}

// Checkout validates the cart, freezes it into an order summary and clears
// it. An empty cart returns ErrEmptyCart and leaves everything untouched.
func Checkout(l *Ledger, v catalog.Vendor) (*OrderSummary, error) {
	if l.Len() == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now().UTC()
	lines := make([]OrderLine, 0, l.Len())
	for _, e := range l.Entries() {
		lines = append(lines, OrderLine{
			IngredientKey: e.IngredientKey,
			ProductName:   e.Product.Name,
			UnitPrice:     e.Product.Price,
			Unit:          e.Product.Unit,
			Category:      e.Product.Category,
			Quantity:      e.Quantity,
		})
	}

	summary := &OrderSummary{
		ID:                uuid.NewString(),
		VendorID:          v.ID,
		VendorName:        v.Name,
		Lines:             lines,
		Totals:            l.Totals(v),
		CreatedAt:         now,
		EstimatedDelivery: now.Add(deliveryWindow),
	}
	l.Clear()
	return summary, nil
}
