package catalog

import (
	"math"
	"strings"
)

const ouncesPerPound = 16

// PurchaseQuantity converts a cooking amount into an integer number of retail
// units for the matched product. Rules apply in order, first match wins:
//
//   - cup/tbsp/tsp units: one retail package covers any cooking measurement
//   - lb/pound units: one package per pound, rounded up
//   - oz amounts over 16: rolled up to pounds
//   - seafood products under one unit: minimum one retail portion
//   - anything else: amount rounded up, floor of one
//
// The result is always at least 1.
func PurchaseQuantity(amount float64, ingredientUnit string, product Product) int {
	unit := strings.ToLower(ingredientUnit)

	switch {
	case strings.Contains(unit, "cup") || strings.Contains(unit, "tbsp") || strings.Contains(unit, "tsp"):
		return 1
	case strings.Contains(unit, "lb") || strings.Contains(unit, "pound"):
		return atLeastOne(math.Ceil(amount))
	case strings.Contains(unit, "oz") && amount > ouncesPerPound:
		return atLeastOne(math.Ceil(amount / ouncesPerPound))
	case strings.EqualFold(product.Category, "seafood") && amount < 1:
		return 1
	default:
		return atLeastOne(math.Ceil(amount))
	}
}

func atLeastOne(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v)
}
