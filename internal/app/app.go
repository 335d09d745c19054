package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"nutritrack/internal/cart"
	"nutritrack/internal/catalog"
	"nutritrack/internal/config"
	"nutritrack/internal/grocery"
	"nutritrack/internal/hub"
	"nutritrack/internal/pantry"
	"nutritrack/internal/plan"
)

// ErrUnknownVendor is returned when a command names a vendor with no loaded
// catalog.
var ErrUnknownVendor = errors.New("unknown vendor")

// App wires the state hub, the grocery pipeline, the cart and the vendor
// catalogs together and exposes the query API consumed by the CLI and by
// event subscribers.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	hub      *hub.Hub
	ledger   *cart.Ledger
	catalogs map[string]*catalog.Catalog
	tables   grocery.ConflictTables
	orders   *cart.Repository
}

// New creates an App. orders may be nil, in which case completed orders are
// not persisted for the session.
func New(cfg *config.Config, logger *slog.Logger, h *hub.Hub, catalogs map[string]*catalog.Catalog, orders *cart.Repository) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		cfg:      cfg,
		logger:   logger,
		hub:      h,
		ledger:   cart.NewLedger(),
		catalogs: catalogs,
		tables:   grocery.DefaultConflictTables(),
		orders:   orders,
	}
}

// Hub exposes the shared state hub for subscribers.
func (a *App) Hub() *hub.Hub {
	return a.hub
}

// Catalog returns the catalog for vendorID.
func (a *App) Catalog(vendorID string) (*catalog.Catalog, error) {
	c, ok := a.catalogs[vendorID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVendor, vendorID)
	}
	return c, nil
}

// Vendors returns the loaded vendor infos, keyed by ID.
func (a *App) Vendors() map[string]catalog.Vendor {
	out := make(map[string]catalog.Vendor, len(a.catalogs))
	for id, c := range a.catalogs {
		out[id] = c.Vendor
	}
	return out
}

// GenerateGroceryListFromMealPlan runs the full pipeline on one plan:
// extract and consolidate, filter dietary conflicts, reconcile against the
// pantry, snapshot. Each call produces a fresh snapshot and emits it as a
// groceryListGenerated event. A missing plan yields an empty list plus
// ErrMissingPlan; nothing in the pipeline panics or aborts on partial data.
func (a *App) GenerateGroceryListFromMealPlan(p plan.WeeklyPlan) (grocery.List, error) {
	list := grocery.List{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	if p.IsEmpty() {
		a.logger.Warn("grocery generation requested without a meal plan")
		return list, grocery.ErrMissingPlan
	}

	prof := a.hub.UserProfile()
	consolidated := grocery.ExtractIngredients(p)
	filtered, applied := grocery.FilterConflicts(consolidated, prof, a.tables)
	remaining := grocery.ReconcilePantry(filtered, a.hub.PantryItems())

	list.Ingredients = remaining
	list.DietaryFiltersApplied = applied
	list.EstimatedCost = a.estimateCost(remaining)

	a.hub.Emit(hub.EventGroceryListGenerated, list)
	return list, nil
}

// GenerateGroceryList runs the pipeline on the most recent plan in the hub.
func (a *App) GenerateGroceryList() (grocery.List, error) {
	plans := a.hub.MealPlans()
	if len(plans) == 0 {
		return a.GenerateGroceryListFromMealPlan(plan.WeeklyPlan{})
	}
	return a.GenerateGroceryListFromMealPlan(plans[len(plans)-1])
}

// estimateCost prices the list against the default vendor's catalog.
// Unmatched ingredients contribute nothing; the estimate is best-effort.
func (a *App) estimateCost(items []grocery.ConsolidatedIngredient) float64 {
	c, ok := a.catalogs[a.cfg.DefaultVendor]
	if !ok {
		return 0
	}
	var total float64
	for _, item := range items {
		p, err := c.Match(item.Key)
		if err != nil {
			continue
		}
		qty := catalog.PurchaseQuantity(item.TotalAmount, item.Unit, p)
		total += p.Price * float64(qty)
	}
	return total
}

// FillCart resolves a grocery list against a vendor and rebuilds the cart
// from it: match each ingredient to a product, convert the cooking amount to
// a purchase quantity, add to the ledger. The ledger is cleared first, so
// switching vendors re-runs matching from scratch. Unmatched ingredients
// are logged and skipped, never fatal.
func (a *App) FillCart(list grocery.List, vendorID string) error {
	c, err := a.Catalog(vendorID)
	if err != nil {
		return err
	}

	a.ledger.Clear()
	for _, item := range list.Ingredients {
		p, err := c.Match(item.Key)
		if err != nil {
			var unmatched *catalog.UnmatchedIngredientError
			if errors.As(err, &unmatched) {
				a.logger.Warn("ingredient has no catalog match, skipping",
					"ingredient", unmatched.IngredientKey, "vendor", unmatched.VendorID)
				continue
			}
			return err
		}
		qty := catalog.PurchaseQuantity(item.TotalAmount, item.Unit, p)
		a.ledger.Add(item, p, qty)
	}

	a.emitCartUpdated()
	return nil
}

// AddToCart adds a single resolved line to the cart.
func (a *App) AddToCart(ing grocery.ConsolidatedIngredient, p catalog.Product, qty int) {
	a.ledger.Add(ing, p, qty)
	a.emitCartUpdated()
}

// RemoveFromCart deletes the line for productName.
func (a *App) RemoveFromCart(productName string) bool {
	ok := a.ledger.Remove(productName)
	if ok {
		a.emitCartUpdated()
	}
	return ok
}

// UpdateCartQuantity sets a line's quantity; zero or less removes the line.
func (a *App) UpdateCartQuantity(productName string, qty int) bool {
	ok := a.ledger.UpdateQuantity(productName, qty)
	if ok {
		a.emitCartUpdated()
	}
	return ok
}

// CartEntries returns the current cart lines.
func (a *App) CartEntries() []cart.Entry {
	return a.ledger.Entries()
}

// CartTotals prices the current cart against a vendor.
func (a *App) CartTotals(vendorID string) (cart.Totals, error) {
	c, err := a.Catalog(vendorID)
	if err != nil {
		return cart.Totals{}, err
	}
	return a.ledger.Totals(c.Vendor), nil
}

// Checkout validates and freezes the cart into an order, persists the
// order, replenishes the pantry with the purchased quantities and clears
// the cart. Only cart.ErrEmptyCart is a hard failure; persistence trouble
// is logged and the order still completes.
func (a *App) Checkout(ctx context.Context, vendorID string) (*cart.OrderSummary, error) {
	c, err := a.Catalog(vendorID)
	if err != nil {
		return nil, err
	}

	summary, err := cart.Checkout(a.ledger, c.Vendor)
	if err != nil {
		return nil, err
	}

	if a.orders != nil {
		if err := a.orders.Save(ctx, summary); err != nil {
			a.logger.Warn("failed to persist order, continuing", "order", summary.ID, "error", err)
		}
	}

	items := a.hub.PantryItems()
	for _, line := range summary.Lines {
		items = pantry.Replenish(items, line.ProductName, line.Unit, line.Category, float64(line.Quantity))
	}
	a.hub.SetPantryItems(items)

	a.emitCartUpdated()
	return summary, nil
}

// Orders returns recent completed orders, newest first.
func (a *App) Orders(ctx context.Context, limit int) ([]cart.OrderSummary, error) {
	if a.orders == nil {
		return nil, nil
	}
	return a.orders.List(ctx, limit)
}

// Logout clears all session state: hub keys back to defaults, cart emptied.
func (a *App) Logout() {
	a.ledger.Clear()
	a.hub.Reset()
	a.emitCartUpdated()
}

func (a *App) emitCartUpdated() {
	a.hub.Emit(hub.EventCartUpdated, a.ledger.Entries())
}
