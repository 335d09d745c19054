package catalog

import (
	"fmt"
	"strings"
)

// UnmatchedIngredientError reports an ingredient with no catalog match. The
// ingredient is skipped for this vendor; the error exists for diagnostics
// and never aborts a batch.
type UnmatchedIngredientError struct {
	IngredientKey string
	VendorID      string
}

func (e *UnmatchedIngredientError) Error() string {
	return fmt.Sprintf("no product in vendor %s catalog matches ingredient %q", e.VendorID, e.IngredientKey)
}

// Match resolves a normalized ingredient key to at most one product:
//
//  1. Exact key match wins immediately.
//  2. Fuzzy pass over products in catalog declaration order; a product
//     matches if its display name contains the ingredient name, or either of
//     key and ingredient name contains the other. The first matching product
//     in declaration order wins; declaration order is the documented
//     tie-break, not an iteration accident.
//  3. Otherwise *UnmatchedIngredientError.
//
// Matching holds no state, so switching vendors re-runs it from scratch.
func (c *Catalog) Match(ingredientKey string) (Product, error) {
	key := strings.ToLower(strings.TrimSpace(ingredientKey))
	if key == "" {
		return Product{}, &UnmatchedIngredientError{IngredientKey: ingredientKey, VendorID: c.Vendor.ID}
	}

	if idx, ok := c.byKey[key]; ok {
		return c.products[idx], nil
	}

	for _, p := range c.products {
		displayName := strings.ToLower(p.Name)
		if strings.Contains(displayName, key) ||
			strings.Contains(key, p.Key) ||
			strings.Contains(p.Key, key) {
			return p, nil
		}
	}

	return Product{}, &UnmatchedIngredientError{IngredientKey: key, VendorID: c.Vendor.ID}
}
