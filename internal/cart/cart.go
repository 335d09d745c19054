package cart

import (
	"math"

	"nutritrack/internal/catalog"
	"nutritrack/internal/grocery"
)

const (
	taxRate          = 0.08
	smallOrderCharge = 2.99
)

// Entry is one cart line. Entries are keyed by matched product name, so two
// ingredients that resolved to the same product merge into one line.
type Entry struct {
	IngredientKey string         `json:"ingredient_key"`
	Product       catalog.Product `json:"product"`
	Quantity      int            `json:"quantity"`
	MealCount     int            `json:"meal_count"`
}

// Totals is the derived pricing of a cart against a vendor's fee schedule.
// It is always computed fresh and never stored independently of the cart.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// Ledger is the mutable session cart: an ordered list of entries keyed by
// product name. All operations are synchronous; totals are recomputed on
// demand from current entries, there is no cached or deferred state.
type Ledger struct {
	entries []*Entry
	byName  map[string]*Entry
}

// NewLedger creates an empty cart.
func NewLedger() *Ledger {
	return &Ledger{byName: make(map[string]*Entry)}
}

// Add puts qty units of product in the cart for the given ingredient. If a
// line for the product name already exists its quantity and meal count grow;
// otherwise a new line is appended.
func (l *Ledger) Add(ing grocery.ConsolidatedIngredient, p catalog.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	if e, ok := l.byName[p.Name]; ok {
		e.Quantity += qty
		e.MealCount += ing.MealCount
		return
	}
	e := &Entry{
		IngredientKey: ing.Key,
		Product:       p,
		Quantity:      qty,
		MealCount:     ing.MealCount,
	}
	l.entries = append(l.entries, e)
	l.byName[p.Name] = e
}

// Remove deletes the line for productName. Returns false if no such line.
func (l *Ledger) Remove(productName string) bool {
	if _, ok := l.byName[productName]; !ok {
		return false
	}
	delete(l.byName, productName)
	for i, e := range l.entries {
		if e.Product.Name == productName {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			break
		}
	}
	return true
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less
// removes the line entirely.
func (l *Ledger) UpdateQuantity(productName string, qty int) bool {
	if qty <= 0 {
		return l.Remove(productName)
	}
	e, ok := l.byName[productName]
	if !ok {
		return false
	}
	e.Quantity = qty
	return true
}

// Entries returns a copy of the cart lines in insertion order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[i] = *e
	}
	return out
}

// Len returns the number of cart lines.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Clear empties the cart.
func (l *Ledger) Clear() {
	l.entries = nil
	l.byName = make(map[string]*Entry)
}

// Totals prices the cart against a vendor: subtotal of price x quantity per
// line, the vendor's delivery fee plus a small-order charge below the
// minimum, and 8% tax on the subtotal. Each component is rounded to cents.
func (l *Ledger) Totals(v catalog.Vendor) Totals {
	var subtotal float64
	for _, e := range l.entries {
		subtotal += e.Product.Price * float64(e.Quantity)
	}
	subtotal = roundCents(subtotal)

	fee := v.DeliveryFee
	if subtotal < v.MinOrder {
		fee += smallOrderCharge
	}
	fee = roundCents(fee)
	tax := roundCents(subtotal * taxRate)

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       roundCents(subtotal + fee + tax),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
