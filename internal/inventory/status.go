package inventory

import (
	"strconv"
	"strings"

	"github.com/angelmondragon/kitchenops/pkg/enums"
)

// DefaultLowStockThreshold is the quantity at or below which an item counts
// as low stock.
const DefaultLowStockThreshold = 20

// DeriveStatus maps a quantity onto its display status. Pure and total:
// quantity above the threshold is in stock, zero is out of stock, anything
// in between is low stock.
func DeriveStatus(quantity, lowStockThreshold int) enums.InventoryStatus {
	switch {
	case quantity > lowStockThreshold:
		return enums.InventoryStatusInStock
	case quantity > 0:
		return enums.InventoryStatusLowStock
	default:
		return enums.InventoryStatusOutOfStock
	}
}

// AdjustQuantity applies a signed delta and clamps at zero.
func AdjustQuantity(quantity, delta int) int {
	next := quantity + delta
	if next < 0 {
		return 0
	}
	return next
}

// ParseDelta converts raw adjustment input into a magnitude. Absent or
// non-numeric input reports false; callers skip the mutation entirely in
// that case.
func ParseDelta(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	amount, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return amount, true
}
