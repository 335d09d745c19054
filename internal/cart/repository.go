package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Repository handles persistence of completed orders.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new order repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Save stores a completed order. Lines are stored as JSON alongside the
// frozen totals.
func (r *Repository) Save(ctx context.Context, o *OrderSummary) error {
	linesJSON, err := json.Marshal(o.Lines)
	if err != nil {
		return fmt.Errorf("failed to marshal order lines: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO orders (id, vendor_id, vendor_name, lines, subtotal, delivery_fee, tax, total, created_at, estimated_delivery)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.VendorID, o.VendorName, string(linesJSON),
		o.Totals.Subtotal, o.Totals.DeliveryFee, o.Totals.Tax, o.Totals.Total,
		o.CreatedAt, o.EstimatedDelivery,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// List returns the most recent orders, newest first.
func (r *Repository) List(ctx context.Context, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, vendor_id, vendor_name, lines, subtotal, delivery_fee, tax, total, created_at, estimated_delivery
		FROM orders ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var out []OrderSummary
	for rows.Next() {
		var o OrderSummary
		var linesJSON string
		if err := rows.Scan(
			&o.ID, &o.VendorID, &o.VendorName, &linesJSON,
			&o.Totals.Subtotal, &o.Totals.DeliveryFee, &o.Totals.Tax, &o.Totals.Total,
			&o.CreatedAt, &o.EstimatedDelivery,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		if err := json.Unmarshal([]byte(linesJSON), &o.Lines); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order lines: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Get retrieves a single order by ID, or nil if not found.
func (r *Repository) Get(ctx context.Context, id string) (*OrderSummary, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, vendor_id, vendor_name, lines, subtotal, delivery_fee, tax, total, created_at, estimated_delivery
		FROM orders WHERE id = ?`, id)

	var o OrderSummary
	var linesJSON string
	err := row.Scan(
		&o.ID, &o.VendorID, &o.VendorName, &linesJSON,
		&o.Totals.Subtotal, &o.Totals.DeliveryFee, &o.Totals.Tax, &o.Totals.Total,
		&o.CreatedAt, &o.EstimatedDelivery,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if err := json.Unmarshal([]byte(linesJSON), &o.Lines); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order lines: %w", err)
	}
	return &o, nil
}
