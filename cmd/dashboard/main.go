package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/kitchenops/internal/dashboard"
	"github.com/angelmondragon/kitchenops/internal/form"
	"github.com/angelmondragon/kitchenops/internal/inventory"
	"github.com/angelmondragon/kitchenops/internal/notify"
	"github.com/angelmondragon/kitchenops/internal/procurement"
	"github.com/angelmondragon/kitchenops/internal/recipes"
	"github.com/angelmondragon/kitchenops/internal/suppliers"
	"github.com/angelmondragon/kitchenops/pkg/clock"
	"github.com/angelmondragon/kitchenops/pkg/config"
	"github.com/angelmondragon/kitchenops/pkg/enums"
	"github.com/angelmondragon/kitchenops/pkg/ident"
	"github.com/angelmondragon/kitchenops/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "dashboard"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "dashboard",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := context.Background()
	sink := notify.NewLogSink(logg)
	ids := ident.UUID{}

	inv, err := inventory.NewService(inventory.ServiceParams{
		IDs:               ids,
		Notifier:          sink,
		LowStockThreshold: cfg.Inventory.LowStockThreshold,
	})
	if err != nil {
		logg.Error(ctx, "failed to build inventory service", err)
		os.Exit(1)
	}
	proc, err := procurement.NewService(procurement.ServiceParams{
		IDs:      ids,
		Clock:    clock.System{},
		Notifier: sink,
	})
	if err != nil {
		logg.Error(ctx, "failed to build procurement service", err)
		os.Exit(1)
	}
	rec, err := recipes.NewService(recipes.ServiceParams{IDs: ids, Notifier: sink})
	if err != nil {
		logg.Error(ctx, "failed to build recipes service", err)
		os.Exit(1)
	}
	sup, err := suppliers.NewService(suppliers.ServiceParams{IDs: ids, Notifier: sink})
	if err != nil {
		logg.Error(ctx, "failed to build suppliers service", err)
		os.Exit(1)
	}
	dash, err := dashboard.NewService(dashboard.ServiceParams{
		Inventory:   inv,
		Procurement: proc,
		Recipes:     rec,
		Suppliers:   sup,
	})
	if err != nil {
		logg.Error(ctx, "failed to build dashboard service", err)
		os.Exit(1)
	}

	seed(inv, proc, rec, sup)
	logg.Info(ctx, "sample data loaded")

	runDemo(ctx, logg, dash, inv, proc)
}

// seed loads the sample records the dashboard ships with so the demo has
// something to show on first run.
func seed(inv inventory.Service, proc procurement.Service, rec recipes.Service, sup suppliers.Service) {
	inv.Load(
		inventory.Item{ID: "1", Name: "Tomatoes", Quantity: 50, Unit: "kg", Expiry: "2024-01-15", Location: "Cold Storage A"},
		inventory.Item{ID: "2", Name: "Chicken Breast", Quantity: 15, Unit: "kg", Expiry: "2024-01-12", Location: "Freezer B"},
		inventory.Item{ID: "3", Name: "Olive Oil", Quantity: 8, Unit: "liters", Expiry: "2024-06-20", Location: "Pantry Shelf 2"},
		inventory.Item{ID: "4", Name: "Flour", Quantity: 0, Unit: "kg", Expiry: "2024-03-10", Location: "Dry Storage"},
	)
	proc.Load(
		procurement.Order{
			ID: "1", ItemName: "Fresh Salmon", Quantity: 20, Unit: "kg", Supplier: "Ocean Fresh Ltd",
			Priority: enums.OrderPriorityHigh, Status: enums.OrderStatusPending,
			DateRequested: "2024-01-08", Notes: "Need for weekend special menu", RequestedBy: "Kitchen Staff",
		},
		procurement.Order{
			ID: "2", ItemName: "Basmati Rice", Quantity: 50, Unit: "kg", Supplier: "Grain Suppliers Co",
			Priority: enums.OrderPriorityMedium, Status: enums.OrderStatusPending,
			DateRequested: "2024-01-07", Notes: "Running low on current stock", RequestedBy: "Kitchen Staff",
		},
		procurement.Order{
			ID: "3", ItemName: "Olive Oil", Quantity: 12, Unit: "bottles", Supplier: "Mediterranean Imports",
			Priority: enums.OrderPriorityLow, Status: enums.OrderStatusApproved,
			DateRequested: "2024-01-06", Notes: "Premium quality needed", RequestedBy: "Head Chef",
		},
	)
	rec.Load(
		recipes.Recipe{
			ID: "1", Name: "Classic Marinara Pasta",
			Description: "Traditional Italian pasta with rich tomato sauce",
			Ingredients: []recipes.Ingredient{
				{Item: "Tomatoes", Quantity: 0.5, Unit: "kg"},
				{Item: "Pasta", Quantity: 0.2, Unit: "kg"},
				{Item: "Olive Oil", Quantity: 0.05, Unit: "liters"},
			},
			Servings: 4, Category: "Main Course",
		},
		recipes.Recipe{
			ID: "2", Name: "Grilled Chicken Salad",
			Description: "Fresh salad with grilled chicken breast",
			Ingredients: []recipes.Ingredient{
				{Item: "Chicken Breast", Quantity: 0.3, Unit: "kg"},
				{Item: "Mixed Greens", Quantity: 0.15, Unit: "kg"},
				{Item: "Olive Oil", Quantity: 0.03, Unit: "liters"},
			},
			Servings: 2, Category: "Salads",
		},
	)
	sup.Load(
		suppliers.Supplier{
			ID: "1", Name: "Ocean Fresh Ltd", ContactPerson: "John Smith",
			Email: "john@oceanfresh.com", Phone: "+1-555-0123",
			Address: "123 Harbor St, Coastal City", Category: "Seafood",
			Notes: "Reliable supplier for fresh seafood",
		},
		suppliers.Supplier{
			ID: "2", Name: "Green Valley Farms", ContactPerson: "Maria Garcia",
			Email: "maria@greenvalley.com", Phone: "+1-555-0456",
			Address: "456 Farm Road, Valley Town", Category: "Vegetables",
			Notes: "Organic produce, weekly deliveries",
		},
	)
}

// runDemo drives one scripted session through the managers the way the
// dashboard pages would.
func runDemo(ctx context.Context, logg *logger.Logger, dash dashboard.Service, inv inventory.Service, proc procurement.Service) {
	summary := dash.Summarize()
	logg.Info(ctx, fmt.Sprintf(
		"dashboard: %d items (%d low, %d out), %d pending orders (%d urgent), %d recipes, %d suppliers",
		summary.TotalItems, summary.LowStockItems, summary.OutOfStockItems,
		summary.PendingOrders, summary.UrgentPending, summary.Recipes, summary.Suppliers,
	))

	ctx = logg.WithPage(ctx, "inventory")
	for _, item := range inv.Search("oil", "") {
		logg.Info(ctx, fmt.Sprintf("search hit: %s (%d %s, %s)", item.Name, item.Quantity, item.Unit, item.Status))
	}
	if item, err := inv.Adjust(ctx, "2", -5); err == nil {
		logg.Info(ctx, fmt.Sprintf("%s now at %d %s (%s)", item.Name, item.Quantity, item.Unit, item.Status))
	}

	// Edit Olive Oil through the same draft/edit flow the item dialog uses.
	if item, ok := inv.Get("3"); ok {
		var dialog form.Form[inventory.Draft]
		dialog.BeginEdit(item.ID, inventory.Draft{
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			Expiry:   item.Expiry,
			Location: item.Location,
		})
		draft := dialog.Draft()
		draft.Location = "Pantry Shelf 1"
		dialog.SetDraft(draft)
		if _, err := inv.Update(ctx, dialog.EditingID(), dialog.Draft()); err == nil {
			dialog.Reset()
		}
	}

	ctx = logg.WithPage(ctx, "procurement")
	if _, err := proc.Approve(ctx, "1"); err != nil {
		logg.Error(ctx, "approve failed", err)
	}
	if _, err := proc.Reject(ctx, "2", "Budget exceeded for this quarter"); err != nil {
		logg.Error(ctx, "reject failed", err)
	}

	summary = dash.Summarize()
	logg.Info(ctx, fmt.Sprintf(
		"after review: %d pending, %d approved, %d rejected",
		summary.PendingOrders, summary.ApprovedOrders, summary.RejectedOrders,
	))
}
