// Package dashboard aggregates read-only counts across the four record
// managers for the overview page.
package dashboard

import (
	"github.com/angelmondragon/kitchenops/internal/inventory"
	"github.com/angelmondragon/kitchenops/internal/procurement"
	"github.com/angelmondragon/kitchenops/internal/recipes"
	"github.com/angelmondragon/kitchenops/internal/suppliers"
	"github.com/angelmondragon/kitchenops/pkg/enums"
	pkgerrors "github.com/angelmondragon/kitchenops/pkg/errors"
)

// Summary is a snapshot of the operation's headline numbers.
type Summary struct {
	TotalItems      int
	LowStockItems   int
	OutOfStockItems int
	PendingOrders   int
	ApprovedOrders  int
	RejectedOrders  int
	UrgentPending   int
	Recipes         int
	Suppliers       int
}

// ServiceParams groups the managers the summary reads from.
type ServiceParams struct {
	Inventory   inventory.Service
	Procurement procurement.Service
	Recipes     recipes.Service
	Suppliers   suppliers.Service
}

// Service computes dashboard summaries.
type Service interface {
	Summarize() Summary
}

type service struct {
	inventory   inventory.Service
	procurement procurement.Service
	recipes     recipes.Service
	suppliers   suppliers.Service
}

// NewService wires the summary reader to the four managers.
func NewService(params ServiceParams) (Service, error) {
	if params.Inventory == nil || params.Procurement == nil || params.Recipes == nil || params.Suppliers == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "all four record managers are required")
	}
	return &service{
		inventory:   params.Inventory,
		procurement: params.Procurement,
		recipes:     params.Recipes,
		suppliers:   params.Suppliers,
	}, nil
}

func (s *service) Summarize() Summary {
	summary := Summary{
		Recipes:   len(s.recipes.List()),
		Suppliers: len(s.suppliers.List()),
	}

	for _, item := range s.inventory.List() {
		summary.TotalItems++
		switch item.Status {
		case enums.InventoryStatusLowStock:
			summary.LowStockItems++
		case enums.InventoryStatusOutOfStock:
			summary.OutOfStockItems++
		}
	}

	for _, order := range s.procurement.List() {
		switch order.Status {
		case enums.OrderStatusPending:
			summary.PendingOrders++
			if order.Priority == enums.OrderPriorityUrgent {
				summary.UrgentPending++
			}
		case enums.OrderStatusApproved:
			summary.ApprovedOrders++
		case enums.OrderStatusRejected:
			summary.RejectedOrders++
		}
	}

	return summary
}
