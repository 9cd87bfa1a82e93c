package procurement

import "github.com/angelmondragon/kitchenops/pkg/enums"

// Order is a procurement request moving through the Pending → Approved /
// Rejected workflow. RejectionReason is non-empty iff Status is Rejected.
type Order struct {
	ID              string              `json:"id"`
	ItemName        string              `json:"itemName"`
	Quantity        int                 `json:"quantity"`
	Unit            string              `json:"unit"`
	Supplier        string              `json:"supplier"`
	Priority        enums.OrderPriority `json:"priority"`
	Status          enums.OrderStatus   `json:"status"`
	DateRequested   string              `json:"dateRequested"`
	Notes           string              `json:"notes"`
	RequestedBy     string              `json:"requestedBy,omitempty"`
	RejectionReason string              `json:"rejectionReason,omitempty"`
}

func (o Order) RecordID() string { return o.ID }

// Draft is the order submission payload. Priority defaults to Medium when
// left blank; Notes and RequestedBy are optional.
type Draft struct {
	ItemName    string              `json:"itemName" validate:"required"`
	Quantity    int                 `json:"quantity" validate:"required"`
	Unit        string              `json:"unit" validate:"required"`
	Supplier    string              `json:"supplier" validate:"required"`
	Priority    enums.OrderPriority `json:"priority"`
	Notes       string              `json:"notes"`
	RequestedBy string              `json:"requestedBy"`
}
