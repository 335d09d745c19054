package catalog

import (
	"errors"
	"testing"
)

func testCatalog(t *testing.T, products []Product) *Catalog {
	t.Helper()
	c, err := New(Vendor{ID: "test", Name: "Test Vendor", DeliveryFee: 4.99, MinOrder: 30}, products)
	if err != nil {
		t.Fatalf("Failed to build catalog: %v", err)
	}
	return c
}

func TestMatch(t *testing.T) {
	c := testCatalog(t, []Product{
		{Key: "chicken breast", Name: "Boneless Chicken Breast", Price: 8.99, Unit: "lb", Category: "meat"},
		{Key: "chicken thigh", Name: "Chicken Thighs", Price: 5.99, Unit: "lb", Category: "meat"},
		{Key: "salmon fillet", Name: "Wild Salmon", Price: 12.99, Unit: "lb", Category: "seafood"},
	})

	t.Run("ExactKeyWins", func(t *testing.T) {
		p, err := c.Match("chicken thigh")
		if err != nil {
			t.Fatalf("Expected match, got error %v", err)
		}
		if p.Name != "Chicken Thighs" {
			t.Errorf("Expected 'Chicken Thighs', got %q", p.Name)
		}
	})

	t.Run("DisplayNameContainsIngredient", func(t *testing.T) {
		p, err := c.Match("wild salmon")
		if err != nil {
			t.Fatalf("Expected match, got error %v", err)
		}
		if p.Key != "salmon fillet" {
			t.Errorf("Expected 'salmon fillet', got %q", p.Key)
		}
	})

	t.Run("IngredientContainsKey", func(t *testing.T) {
		p, err := c.Match("fresh salmon fillet portions")
		if err != nil {
			t.Fatalf("Expected match, got error %v", err)
		}
		if p.Key != "salmon fillet" {
			t.Errorf("Expected 'salmon fillet', got %q", p.Key)
		}
	})

	t.Run("KeyContainsIngredientFirstDeclarationWins", func(t *testing.T) {
		// "chicken" is a substring of both chicken keys; declaration order
		// breaks the tie.
		p, err := c.Match("chicken")
		if err != nil {
			t.Fatalf("Expected match, got error %v", err)
		}
		if p.Key != "chicken breast" {
			t.Errorf("Expected first-declared 'chicken breast', got %q", p.Key)
		}
	})

	t.Run("DeclarationOrderIsTheTieBreak", func(t *testing.T) {
		reversed := testCatalog(t, []Product{
			{Key: "chicken thigh", Name: "Chicken Thighs", Price: 5.99, Unit: "lb", Category: "meat"},
			{Key: "chicken breast", Name: "Boneless Chicken Breast", Price: 8.99, Unit: "lb", Category: "meat"},
		})
		p, err := reversed.Match("chicken")
		if err != nil {
			t.Fatalf("Expected match, got error %v", err)
		}
		if p.Key != "chicken thigh" {
			t.Errorf("Expected first-declared 'chicken thigh', got %q", p.Key)
		}
	})

	t.Run("NoMatchReturnsTypedError", func(t *testing.T) {
		_, err := c.Match("dragon fruit")
		var unmatched *UnmatchedIngredientError
		if !errors.As(err, &unmatched) {
			t.Fatalf("Expected UnmatchedIngredientError, got %v", err)
		}
		if unmatched.IngredientKey != "dragon fruit" || unmatched.VendorID != "test" {
			t.Errorf("Unexpected error fields: %+v", unmatched)
		}
	})
}

func TestCatalogValidation(t *testing.T) {
	t.Run("RejectsNonPositivePrice", func(t *testing.T) {
		_, err := New(Vendor{ID: "v"}, []Product{{Key: "rice", Name: "Rice", Price: 0}})
		if err == nil {
			t.Error("Expected error for non-positive price")
		}
	})

	t.Run("RejectsDuplicateKeys", func(t *testing.T) {
		_, err := New(Vendor{ID: "v"}, []Product{
			{Key: "rice", Name: "Rice", Price: 1},
			{Key: "Rice ", Name: "Other Rice", Price: 2},
		})
		if err == nil {
			t.Error("Expected error for duplicate normalized key")
		}
	})
}
