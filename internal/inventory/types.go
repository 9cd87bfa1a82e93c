package inventory

import "github.com/angelmondragon/kitchenops/pkg/enums"

// Item is one tracked inventory record. Status is derived from Quantity and
// is never set independently; every mutation path recomputes it.
type Item struct {
	ID       string                `json:"id"`
	Name     string                `json:"item"`
	Quantity int                   `json:"quantity"`
	Unit     string                `json:"unit"`
	Expiry   string                `json:"expiry"`
	Location string                `json:"location"`
	Status   enums.InventoryStatus `json:"status"`
}

func (i Item) RecordID() string { return i.ID }

// Draft is the add/edit form payload. Name, Quantity and Unit are required;
// a zero quantity fails validation the same way a blank field does.
type Draft struct {
	Name     string `json:"item" validate:"required"`
	Quantity int    `json:"quantity" validate:"required"`
	Unit     string `json:"unit" validate:"required"`
	Expiry   string `json:"expiry"`
	Location string `json:"location"`
}
