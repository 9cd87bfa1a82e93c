package inventory

import (
	"context"

	"github.com/angelmondragon/kitchenops/internal/notify"
	"github.com/angelmondragon/kitchenops/internal/search"
	"github.com/angelmondragon/kitchenops/internal/store"
	"github.com/angelmondragon/kitchenops/internal/validate"
	"github.com/angelmondragon/kitchenops/pkg/enums"
	pkgerrors "github.com/angelmondragon/kitchenops/pkg/errors"
	"github.com/angelmondragon/kitchenops/pkg/ident"
)

// ServiceParams groups dependencies for the inventory service.
type ServiceParams struct {
	IDs               ident.Generator
	Notifier          notify.Sink
	LowStockThreshold int
}

// Service exposes the inventory page operations.
type Service interface {
	Add(ctx context.Context, draft Draft) (Item, error)
	Update(ctx context.Context, id string, draft Draft) (Item, error)
	Delete(ctx context.Context, id string)
	Adjust(ctx context.Context, id string, delta int) (Item, error)
	Get(id string) (Item, bool)
	List() []Item
	Search(query, statusFilter string) []Item
	Load(items ...Item)
}

type service struct {
	records   *store.Store[Item]
	ids       ident.Generator
	notifier  notify.Sink
	threshold int
}

// NewService builds an inventory service with the required collaborators.
func NewService(params ServiceParams) (Service, error) {
	if params.IDs == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "id generator is required")
	}
	if params.Notifier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "notification sink is required")
	}
	threshold := params.LowStockThreshold
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return &service{
		records:   store.New[Item](),
		ids:       params.IDs,
		notifier:  params.Notifier,
		threshold: threshold,
	}, nil
}

// Add validates the draft and appends a new item with derived status.
func (s *service) Add(ctx context.Context, draft Draft) (Item, error) {
	if err := validate.Struct(draft); err != nil {
		s.notifyError(ctx, "Please fill in all required fields.")
		return Item{}, err
	}

	item := Item{
		ID:       s.ids.NewID(),
		Name:     draft.Name,
		Quantity: draft.Quantity,
		Unit:     draft.Unit,
		Expiry:   draft.Expiry,
		Location: draft.Location,
		Status:   DeriveStatus(draft.Quantity, s.threshold),
	}
	s.records.Add(item)

	s.notifySuccess(ctx, "Item added to inventory successfully.")
	return item, nil
}

// Update re-validates the draft and replaces the record at id, recomputing
// the derived status.
func (s *service) Update(ctx context.Context, id string, draft Draft) (Item, error) {
	if err := validate.Struct(draft); err != nil {
		s.notifyError(ctx, "Please fill in all required fields.")
		return Item{}, err
	}
	if _, ok := s.records.Get(id); !ok {
		return Item{}, pkgerrors.New(pkgerrors.CodeNotFound, "inventory item not found")
	}

	item := Item{
		ID:       id,
		Name:     draft.Name,
		Quantity: draft.Quantity,
		Unit:     draft.Unit,
		Expiry:   draft.Expiry,
		Location: draft.Location,
		Status:   DeriveStatus(draft.Quantity, s.threshold),
	}
	s.records.Replace(id, item)

	s.notifySuccess(ctx, "Item updated successfully.")
	return item, nil
}

// Delete removes the item unconditionally. Missing ids are a silent no-op.
func (s *service) Delete(ctx context.Context, id string) {
	s.records.Delete(id)
	s.notifySuccess(ctx, "Item deleted from inventory.")
}

// Adjust applies a signed stock delta, clamping at zero and recomputing the
// status.
func (s *service) Adjust(ctx context.Context, id string, delta int) (Item, error) {
	item, ok := s.records.Get(id)
	if !ok {
		return Item{}, pkgerrors.New(pkgerrors.CodeNotFound, "inventory item not found")
	}

	item.Quantity = AdjustQuantity(item.Quantity, delta)
	item.Status = DeriveStatus(item.Quantity, s.threshold)
	s.records.Replace(id, item)

	if delta > 0 {
		s.notifySuccess(ctx, "Stock added successfully.")
	} else {
		s.notifySuccess(ctx, "Stock reduced successfully.")
	}
	return item, nil
}

func (s *service) Get(id string) (Item, bool) {
	return s.records.Get(id)
}

func (s *service) List() []Item {
	return s.records.List()
}

// Search filters by free text over name and location, AND an optional status
// filter. Order is the store order.
func (s *service) Search(query, statusFilter string) []Item {
	var out []Item
	for _, item := range s.records.List() {
		if !search.MatchesQuery(query, item.Name, item.Location) {
			continue
		}
		if !search.MatchesFilter(statusFilter, item.Status.String()) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Load seeds records verbatim, recomputing each derived status so quantity
// and status can never disagree.
func (s *service) Load(items ...Item) {
	for _, item := range items {
		item.Status = DeriveStatus(item.Quantity, s.threshold)
		s.records.Add(item)
	}
}

func (s *service) notifySuccess(ctx context.Context, message string) {
	s.notifier.Notify(ctx, notify.Notification{
		Title:    "Success",
		Message:  message,
		Severity: enums.SeverityInfo,
	})
}

func (s *service) notifyError(ctx context.Context, message string) {
	s.notifier.Notify(ctx, notify.Notification{
		Title:    "Error",
		Message:  message,
		Severity: enums.SeverityDestructive,
	})
}
