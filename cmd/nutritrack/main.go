package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"nutritrack/internal/app"
	"nutritrack/internal/cart"
	"nutritrack/internal/catalog"
	"nutritrack/internal/config"
	"nutritrack/internal/database"
	"nutritrack/internal/grocery"
	"nutritrack/internal/hub"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(os.Getenv("NUTRITRACK_CONFIG"))
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// A storage failure is not fatal: the hub runs volatile for the session
	// and orders simply are not persisted.
	var storage hub.Storage
	var orderRepo *cart.Repository
	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		logger.Warn("database unavailable, running with volatile state", "error", err)
	} else {
		defer db.Close()
		storage = database.NewKV(db.SQL)
		orderRepo = cart.NewRepository(db.SQL)
	}

	catalogs, err := catalog.DefaultCatalogs()
	if err != nil {
		logger.Error("failed to load embedded catalogs", "error", err)
		os.Exit(1)
	}
	userCatalogs, err := catalog.LoadDir(cfg.CatalogDir)
	if err != nil {
		logger.Error("failed to load catalog directory", "dir", cfg.CatalogDir, "error", err)
		os.Exit(1)
	}
	for id, c := range userCatalogs {
		catalogs[id] = c
	}

	h := hub.New(storage, logger)
	application := app.New(cfg, logger, h, catalogs, orderRepo)

	if cfg.DemoMode && len(h.MealPlans()) == 0 {
		application.EnableDemoMode()
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "demo":
		application.EnableDemoMode()
		fmt.Println("Demo profile, meal plan and pantry seeded.")
	case "generate":
		genCmd := flag.NewFlagSet("generate", flag.ExitOnError)
		vendorID := genCmd.String("vendor", cfg.DefaultVendor, "Vendor to price the cart against")
		genCmd.Parse(os.Args[2:])

		if err := runGenerate(application, *vendorID); err != nil {
			logger.Error("generate failed", "error", err)
			os.Exit(1)
		}
	case "checkout":
		coCmd := flag.NewFlagSet("checkout", flag.ExitOnError)
		vendorID := coCmd.String("vendor", cfg.DefaultVendor, "Vendor to order from")
		coCmd.Parse(os.Args[2:])

		if err := runCheckout(ctx, application, *vendorID); err != nil {
			logger.Error("checkout failed", "error", err)
			os.Exit(1)
		}
	case "orders":
		ordCmd := flag.NewFlagSet("orders", flag.ExitOnError)
		limit := ordCmd.Int("limit", 10, "Number of recent orders to show")
		ordCmd.Parse(os.Args[2:])

		if err := runOrders(ctx, application, *limit); err != nil {
			logger.Error("failed to list orders", "error", err)
			os.Exit(1)
		}
	case "import-catalog":
		impCmd := flag.NewFlagSet("import-catalog", flag.ExitOnError)
		fromURL := impCmd.String("url", "", "Price-list page URL")
		fromFile := impCmd.String("file", "", "Local price-list HTML file")
		id := impCmd.String("id", "", "Vendor ID for the imported catalog")
		name := impCmd.String("name", "", "Vendor display name")
		fee := impCmd.Float64("fee", 4.99, "Delivery fee")
		minOrder := impCmd.Float64("min-order", 30, "Minimum order for fee-free delivery")
		impCmd.Parse(os.Args[2:])

		if err := runImport(cfg, *fromURL, *fromFile, catalog.Vendor{
			ID: *id, Name: *name, DeliveryFee: *fee, MinOrder: *minOrder,
		}); err != nil {
			logger.Error("catalog import failed", "error", err)
			os.Exit(1)
		}
	case "logout":
		application.Logout()
		fmt.Println("Session state cleared.")
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runGenerate(application *app.App, vendorID string) error {
	list, err := application.GenerateGroceryList()
	if err != nil {
		if err == grocery.ErrMissingPlan {
			fmt.Println("No meal plan found. Run 'nutritrack demo' to seed one.")
			return nil
		}
		return err
	}

	fmt.Printf("Grocery list %s (%d items, est. $%.2f)\n", list.ID, len(list.Ingredients), list.EstimatedCost)
	if len(list.DietaryFiltersApplied) > 0 {
		fmt.Printf("Filters applied: %v\n", list.DietaryFiltersApplied)
	}
	renderList(list)

	if err := application.FillCart(list, vendorID); err != nil {
		return err
	}
	totals, err := application.CartTotals(vendorID)
	if err != nil {
		return err
	}
	renderCart(application.CartEntries(), totals, vendorID)
	return nil
}

func runCheckout(ctx context.Context, application *app.App, vendorID string) error {
	list, err := application.GenerateGroceryList()
	if err != nil {
		if err == grocery.ErrMissingPlan {
			fmt.Println("No meal plan found. Run 'nutritrack demo' to seed one.")
			return nil
		}
		return err
	}
	if err := application.FillCart(list, vendorID); err != nil {
		return err
	}

	summary, err := application.Checkout(ctx, vendorID)
	if err != nil {
		if err == cart.ErrEmptyCart {
			fmt.Println("Nothing to order: every ingredient was filtered, on hand or unmatched.")
			return nil
		}
		return err
	}

	fmt.Printf("Order %s placed with %s.\n", summary.ID, summary.VendorName)
	fmt.Printf("Estimated delivery: %s\n", summary.EstimatedDelivery.Format("Mon 15:04 MST"))
	renderOrder(summary)
	return nil
}

func runOrders(ctx context.Context, application *app.App, limit int) error {
	orders, err := application.Orders(ctx, limit)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Order", "Vendor", "Lines", "Total", "Placed"})
	for _, o := range orders {
		t.AppendRow(table.Row{o.ID[:8], o.VendorName, len(o.Lines), fmt.Sprintf("$%.2f", o.Totals.Total), o.CreatedAt.Format("2006-01-02 15:04")})
	}
	t.Render()
	return nil
}

func runImport(cfg *config.Config, fromURL, fromFile string, v catalog.Vendor) error {
	if v.ID == "" || v.Name == "" {
		return fmt.Errorf("both -id and -name are required")
	}

	imp := catalog.NewImporter()
	var c *catalog.Catalog
	var err error
	switch {
	case fromURL != "":
		c, err = imp.ImportURL(fromURL, v)
	case fromFile != "":
		f, openErr := os.Open(fromFile)
		if openErr != nil {
			return fmt.Errorf("failed to open price list: %w", openErr)
		}
		defer f.Close()
		c, err = imp.ImportReader(f, v)
	default:
		return fmt.Errorf("one of -url or -file is required")
	}
	if err != nil {
		return err
	}

	path, err := catalog.WriteCatalog(cfg.CatalogDir, c)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d products for %s into %s\n", c.Len(), v.Name, path)
	return nil
}

func renderList(list grocery.List) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Ingredient", "Amount", "Unit", "Meals", "Note"})
	for _, ing := range list.Ingredients {
		t.AppendRow(table.Row{ing.Name, fmt.Sprintf("%g", ing.TotalAmount), ing.Unit, ing.MealCount, ing.Note})
	}
	t.Render()
}

func renderCart(entries []cart.Entry, totals cart.Totals, vendorID string) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Product", "Unit Price", "Qty", "Line Total"})
	for _, e := range entries {
		t.AppendRow(table.Row{
			e.Product.Name,
			fmt.Sprintf("$%.2f", e.Product.Price),
			e.Quantity,
			fmt.Sprintf("$%.2f", e.Product.Price*float64(e.Quantity)),
		})
	}
	t.AppendFooter(table.Row{"", "", "Subtotal", fmt.Sprintf("$%.2f", totals.Subtotal)})
	t.AppendFooter(table.Row{"", "", "Delivery", fmt.Sprintf("$%.2f", totals.DeliveryFee)})
	t.AppendFooter(table.Row{"", "", "Tax", fmt.Sprintf("$%.2f", totals.Tax)})
	t.AppendFooter(table.Row{"", "", "Total", fmt.Sprintf("$%.2f", totals.Total)})
	fmt.Printf("Cart priced against %s:\n", vendorID)
	t.Render()
}

func renderOrder(o *cart.OrderSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Product", "Unit Price", "Qty"})
	for _, line := range o.Lines {
		t.AppendRow(table.Row{line.ProductName, fmt.Sprintf("$%.2f", line.UnitPrice), line.Quantity})
	}
	t.AppendFooter(table.Row{"", "Total", fmt.Sprintf("$%.2f", o.Totals.Total)})
	t.Render()
}

func printUsage() {
	fmt.Println("Usage: nutritrack <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  demo              Seed demo profile, meal plan and pantry")
	fmt.Println("  generate          Generate the grocery list and price the cart")
	fmt.Println("  checkout          Generate, fill the cart and place a simulated order")
	fmt.Println("  orders            Show recent orders")
	fmt.Println("  import-catalog    Import a vendor price list (HTML) as a catalog")
	fmt.Println("  logout            Clear all session state")
}
