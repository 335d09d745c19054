package cart

import (
	"math"
	"testing"

	"nutritrack/internal/catalog"
	"nutritrack/internal/grocery"
)

var testVendor = catalog.Vendor{ID: "test", Name: "Test Vendor", DeliveryFee: 5.99, MinOrder: 35}

func ingFor(key string) grocery.ConsolidatedIngredient {
	return grocery.ConsolidatedIngredient{Key: key, Name: key, TotalAmount: 1, MealCount: 1}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestLedgerTotals(t *testing.T) {
	l := NewLedger()
	l.Add(ingFor("a"), catalog.Product{Key: "a", Name: "Product A", Price: 5}, 1)
	l.Add(ingFor("b"), catalog.Product{Key: "b", Name: "Product B", Price: 10}, 1)

	got := l.Totals(testVendor)
	if !approx(got.Subtotal, 15) {
		t.Errorf("Expected subtotal 15, got %g", got.Subtotal)
	}
	// Below the 35 minimum, the small-order charge applies on top of the fee.
	if !approx(got.DeliveryFee, 8.98) {
		t.Errorf("Expected delivery fee 8.98, got %g", got.DeliveryFee)
	}
	if !approx(got.Tax, 1.20) {
		t.Errorf("Expected tax 1.20, got %g", got.Tax)
	}
	if !approx(got.Total, 25.18) {
		t.Errorf("Expected total 25.18, got %g", got.Total)
	}

	t.Run("AboveMinimumSkipsSurcharge", func(t *testing.T) {
		l := NewLedger()
		l.Add(ingFor("a"), catalog.Product{Name: "Product A", Price: 40}, 1)
		got := l.Totals(testVendor)
		if !approx(got.DeliveryFee, 5.99) {
			t.Errorf("Expected bare delivery fee 5.99, got %g", got.DeliveryFee)
		}
	})
}

func TestLedgerMutation(t *testing.T) {
	salmon := catalog.Product{Key: "salmon fillet", Name: "Wild Salmon", Price: 12.99, Category: "seafood"}

	t.Run("AddMergesByProductName", func(t *testing.T) {
		l := NewLedger()
		l.Add(ingFor("salmon fillet"), salmon, 1)
		l.Add(ingFor("wild salmon"), salmon, 2)

		entries := l.Entries()
		if len(entries) != 1 {
			t.Fatalf("Expected 1 merged entry, got %d", len(entries))
		}
		if entries[0].Quantity != 3 {
			t.Errorf("Expected merged quantity 3, got %d", entries[0].Quantity)
		}
		if entries[0].MealCount != 2 {
			t.Errorf("Expected merged meal count 2, got %d", entries[0].MealCount)
		}
	})

	t.Run("UpdateQuantityZeroRemoves", func(t *testing.T) {
		l := NewLedger()
		l.Add(ingFor("salmon fillet"), salmon, 2)

		if !l.UpdateQuantity("Wild Salmon", 0) {
			t.Fatal("Expected update to succeed")
		}
		if l.Len() != 0 {
			t.Errorf("Expected entry removed, cart has %d lines", l.Len())
		}
		if got := l.Totals(testVendor); !approx(got.Subtotal, 0) {
			t.Errorf("Expected subtotal 0 after removal, got %g", got.Subtotal)
		}
	})

	t.Run("UpdateQuantitySets", func(t *testing.T) {
		l := NewLedger()
		l.Add(ingFor("salmon fillet"), salmon, 2)
		if !l.UpdateQuantity("Wild Salmon", 5) {
			t.Fatal("Expected update to succeed")
		}
		if got := l.Entries()[0].Quantity; got != 5 {
			t.Errorf("Expected quantity 5, got %d", got)
		}
	})

	t.Run("RemoveUnknownProduct", func(t *testing.T) {
		l := NewLedger()
		if l.Remove("Nonexistent") {
			t.Error("Expected remove of unknown product to report false")
		}
	})

	t.Run("InsertionOrderPreserved", func(t *testing.T) {
		l := NewLedger()
		l.Add(ingFor("b"), catalog.Product{Name: "B", Price: 1}, 1)
		l.Add(ingFor("a"), catalog.Product{Name: "A", Price: 1}, 1)
		l.Add(ingFor("c"), catalog.Product{Name: "C", Price: 1}, 1)
		l.Remove("A")

		entries := l.Entries()
		if len(entries) != 2 || entries[0].Product.Name != "B" || entries[1].Product.Name != "C" {
			t.Errorf("Expected order [B C], got %v", entries)
		}
	})
}
