package pantry

import (
	"strings"
	"time"
)

// Item is a single pantry holding. Quantity is in the item's own unit; the
// grocery pipeline compares quantities without unit conversion.
type Item struct {
	Name      string     `json:"name"`
	Quantity  float64    `json:"quantity"`
	Unit      string     `json:"unit"`
	Category  string     `json:"category"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Key returns the normalized lookup key for the item, matching the
// normalization applied to ingredient names.
func (i Item) Key() string {
	return strings.ToLower(strings.TrimSpace(i.Name))
}

// Replenish adds qty of the named item to the slice, merging into an existing
// entry by normalized key or appending a new one. Returns the updated slice.
func Replenish(items []Item, name, unit, category string, qty float64) []Item {
	key := strings.ToLower(strings.TrimSpace(name))
	for idx := range items {
		if items[idx].Key() == key {
			items[idx].Quantity += qty
			return items
		}
	}
	return append(items, Item{
		Name:     name,
		Quantity: qty,
		Unit:     unit,
		Category: category,
	})
}
