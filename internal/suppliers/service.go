package suppliers

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

// ServiceParams groups dependencies for the supplier service.
type ServiceParams struct {
	IDs      ident.Generator
	Notifier notify.Sink
}

// Service exposes the supplier page operations.
type Service interface {
	Add(ctx context.Context, draft Draft) (Supplier, error)
	Update(ctx context.Context, id string, draft Draft) (Supplier, error)
	Delete(ctx context.Context, id string)
	Get(id string) (Supplier, bool)
	List() []Supplier
	Search(query, categoryFilter string) []Supplier
	Load(suppliers ...Supplier)
}

type service struct {
	records  *store.Store[Supplier]
	ids      ident.Generator
	notifier notify.Sink
}

// NewService builds a supplier service with the required collaborators.
func NewService(params ServiceParams) (Service, error) {
	if params.IDs == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "id generator is required")
	}
	if params.Notifier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "notification sink is required")
	}
	return &service{
		records:  store.New[Supplier](),
		ids:      params.IDs,
		notifier: params.Notifier,
	}, nil
}

// Add validates the draft and appends a new supplier.
func (s *service) Add(ctx context.Context, draft Draft) (Supplier, error) {
	if err := validate.Struct(draft); err != nil {
		s.notifyError(ctx, "Please fill in all required fields.")
		return Supplier{}, err
	}

	supplier := newSupplier(s.ids.NewID(), draft)
	s.records.Add(supplier)

	s.notifySuccess(ctx, "Supplier added successfully.")
	return supplier, nil
}

// Update re-runs the add-time validation and replaces the record at id.
func (s *service) Update(ctx context.Context, id string, draft Draft) (Supplier, error) {
	if err := validate.Struct(draft); err != nil {
		s.notifyError(ctx, "Please fill in all required fields.")
		return Supplier{}, err
	}
	if _, ok := s.records.Get(id); !ok {
		return Supplier{}, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
	}

	supplier := newSupplier(id, draft)
	s.records.Replace(id, supplier)

	s.notifySuccess(ctx, "Supplier updated successfully.")
	return supplier, nil
}

// Delete removes the supplier unconditionally. Orders referencing the
// supplier by name are untouched; there are no cascading effects.
func (s *service) Delete(ctx context.Context, id string) {
	s.records.Delete(id)
	s.notifySuccess(ctx, "Supplier deleted successfully.")
}

func (s *service) Get(id string) (Supplier, bool) {
	return s.records.Get(id)
}

func (s *service) List() []Supplier {
	return s.records.List()
}

// Search filters by free text over name, contact person, category and email,
// AND an optional category filter.
func (s *service) Search(query, categoryFilter string) []Supplier {
	var out []Supplier
	for _, supplier := range s.records.List() {
		if !search.MatchesQuery(query, supplier.Name, supplier.ContactPerson, supplier.Category, supplier.Email) {
			continue
		}
		if !search.MatchesFilter(categoryFilter, supplier.Category) {
			continue
		}
		out = append(out, supplier)
	}
	return out
}

// Load seeds suppliers verbatim.
func (s *service) Load(suppliers ...Supplier) {
	for _, supplier := range suppliers {
		s.records.Add(supplier)
	}
}

func newSupplier(id string, draft Draft) Supplier {
	return Supplier{
		ID:            id,
		Name:          draft.Name,
		ContactPerson: draft.ContactPerson,
		Email:         draft.Email,
		Phone:         draft.Phone,
		Address:       draft.Address,
		Category:      draft.Category,
		Notes:         draft.Notes,
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
