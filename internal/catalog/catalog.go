package catalog

import (
	"fmt"
	"strings"
)

// Vendor describes a delivery vendor: identity plus the fee schedule used for
// cart totals.
type Vendor struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	DeliveryFee float64 `yaml:"delivery_fee" json:"delivery_fee"`
	MinOrder    float64 `yaml:"min_order" json:"min_order"`
}

// Product is one purchasable catalog entry. Key is the normalized lookup key
// ("chicken breast"); Name is the retail display name ("Organic Chicken
// Breast"). Price is per Unit and always positive.
type Product struct {
	Key      string  `yaml:"key" json:"key"`
	Name     string  `yaml:"name" json:"name"`
	Price    float64 `yaml:"price" json:"price"`
	Unit     string  `yaml:"unit" json:"unit"`
	Category string  `yaml:"category" json:"category"`
}

// Catalog is one vendor's static product list. Products keep their
// declaration order, which is the contract for fuzzy-match tie-breaking.
type Catalog struct {
	Vendor   Vendor
	products []Product
	byKey    map[string]int
}

// New builds a catalog from products in declaration order. Entries
// with an empty key, empty name or non-positive price are rejected.
func New(v Vendor, products []Product) (*Catalog, error) {
	c := &Catalog{
		Vendor: v,
		byKey:  make(map[string]int, len(products)),
	}
	for _, p := range products {
		p.Key = strings.ToLower(strings.TrimSpace(p.Key))
		if p.Key == "" || p.Name == "" {
			return nil, fmt.Errorf("catalog %s: product with empty key or name", v.ID)
		}
		if p.Price <= 0 {
			return nil, fmt.Errorf("catalog %s: product %q has non-positive price", v.ID, p.Key)
		}
		if _, dup := c.byKey[p.Key]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate product key %q", v.ID, p.Key)
		}
		c.byKey[p.Key] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Products returns the catalog entries in declaration order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
