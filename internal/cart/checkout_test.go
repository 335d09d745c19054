package cart

import (
	"errors"
	"testing"

	"nutritrack/internal/catalog"
)

func TestCheckout(t *testing.T) {
	t.Run("EmptyCart", func(t *testing.T) {
		l := NewLedger()
		_, err := Checkout(l, testVendor)
		if !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("Expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("ProducesSummaryAndClearsCart", func(t *testing.T) {
		l := NewLedger()
		l.Add(ingFor("salmon fillet"), catalog.Product{Name: "Wild Salmon", Price: 12.99, Unit: "lb", Category: "seafood"}, 2)
		l.Add(ingFor("quinoa"), catalog.Product{Name: "Organic Quinoa", Price: 6.99, Unit: "lb", Category: "pantry"}, 1)
		wantTotals := l.Totals(testVendor)

		summary, err := Checkout(l, testVendor)
		if err != nil {
			t.Fatalf("Expected checkout to succeed, got %v", err)
		}

		if summary.ID == "" {
			t.Error("Expected a generated order ID")
		}
		if summary.VendorID != "test" || summary.VendorName != "Test Vendor" {
			t.Errorf("Unexpected vendor on summary: %s/%s", summary.VendorID, summary.VendorName)
		}
		if len(summary.Lines) != 2 {
			t.Fatalf("Expected 2 order lines, got %d", len(summary.Lines))
		}
		if summary.Lines[0].ProductName != "Wild Salmon" || summary.Lines[0].Quantity != 2 {
			t.Errorf("Unexpected first line: %+v", summary.Lines[0])
		}
		if summary.Totals != wantTotals {
			t.Errorf("Expected totals frozen at checkout: want %+v, got %+v", wantTotals, summary.Totals)
		}
		if !summary.EstimatedDelivery.After(summary.CreatedAt) {
			t.Errorf("Expected delivery estimate after creation time: %v vs %v",
				summary.EstimatedDelivery, summary.CreatedAt)
		}

		if l.Len() != 0 {
			t.Errorf("Expected cart cleared after checkout, %d lines remain", l.Len())
		}
	})
}
