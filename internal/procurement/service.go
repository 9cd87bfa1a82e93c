package procurement

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/kitchenops/internal/notify"
	"github.com/angelmondragon/kitchenops/internal/search"
	"github.com/angelmondragon/kitchenops/internal/store"
	"github.com/angelmondragon/kitchenops/internal/validate"
	"github.com/angelmondragon/kitchenops/pkg/clock"
	"github.com/angelmondragon/kitchenops/pkg/enums"
	pkgerrors "github.com/angelmondragon/kitchenops/pkg/errors"
	"github.com/angelmondragon/kitchenops/pkg/ident"
	"go.uber.org/multierr"
)

// ServiceParams groups dependencies for the procurement service.
type ServiceParams struct {
	IDs      ident.Generator
	Clock    clock.Clock
	Notifier notify.Sink
}

// Service exposes order submission and the admin approval workflow.
type Service interface {
	Submit(ctx context.Context, draft Draft) (Order, error)
	Approve(ctx context.Context, id string) (Order, error)
	Reject(ctx context.Context, id, reason string) (Order, error)
	Delete(ctx context.Context, id string)
	Get(id string) (Order, bool)
	List() []Order
	Pending() []Order
	Processed() []Order
	Search(query, statusFilter string) []Order
	Load(orders ...Order)
}

type service struct {
	records  *store.Store[Order]
	ids      ident.Generator
	clock    clock.Clock
	notifier notify.Sink
}

// NewService builds a procurement service with the required collaborators.
func NewService(params ServiceParams) (Service, error) {
	if params.IDs == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "id generator is required")
	}
	if params.Clock == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "clock is required")
	}
	if params.Notifier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "notification sink is required")
	}
	return &service{
		records:  store.New[Order](),
		ids:      params.IDs,
		clock:    params.Clock,
		notifier: params.Notifier,
	}, nil
}

// Submit validates the draft and appends a Pending order stamped with
// today's date.
func (s *service) Submit(ctx context.Context, draft Draft) (Order, error) {
	if err := validateDraft(draft); err != nil {
		s.notifyError(ctx, "Please fill in all required fields.")
		return Order{}, err
	}

	priority := draft.Priority
	if priority == "" {
		priority = enums.OrderPriorityMedium
	}

	order := Order{
		ID:            s.ids.NewID(),
		ItemName:      draft.ItemName,
		Quantity:      draft.Quantity,
		Unit:          draft.Unit,
		Supplier:      draft.Supplier,
		Priority:      priority,
		Status:        enums.OrderStatusPending,
		DateRequested: clock.Date(s.clock),
		Notes:         draft.Notes,
		RequestedBy:   draft.RequestedBy,
	}
	s.records.Add(order)

	s.notifier.Notify(ctx, notify.Notification{
		Title:    "Success",
		Message:  "Procurement order submitted successfully.",
		Severity: enums.SeverityInfo,
	})
	return order, nil
}

// Approve moves a pending order to Approved. Approved and Rejected are
// terminal, so anything else is a state conflict. Any stale rejection
// reason is cleared so the invariant on RejectionReason holds.
func (s *service) Approve(ctx context.Context, id string) (Order, error) {
	order, ok := s.records.Get(id)
	if !ok {
		return Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "procurement order not found")
	}
	if order.Status.IsTerminal() {
		return Order{}, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("order %s is already %s", id, order.Status)).
			WithDetails(map[string]string{"status": order.Status.String()})
	}

	order.Status = enums.OrderStatusApproved
	order.RejectionReason = ""
	s.records.Replace(id, order)

	s.notifier.Notify(ctx, notify.Notification{
		Title:    "Order Approved",
		Message:  fmt.Sprintf("Procurement order %s has been approved.", id),
		Severity: enums.SeverityInfo,
	})
	return order, nil
}

// Reject moves a pending order to Rejected, storing the reason verbatim.
// A blank reason fails validation with no mutation.
func (s *service) Reject(ctx context.Context, id, reason string) (Order, error) {
	order, ok := s.records.Get(id)
	if !ok {
		return Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "procurement order not found")
	}
	if order.Status.IsTerminal() {
		return Order{}, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("order %s is already %s", id, order.Status)).
			WithDetails(map[string]string{"status": order.Status.String()})
	}
	if strings.TrimSpace(reason) == "" {
		s.notifyError(ctx, "Please provide a reason for rejection.")
		return Order{}, validate.NonBlank("rejectionReason", reason)
	}

	order.Status = enums.OrderStatusRejected
	order.RejectionReason = reason
	s.records.Replace(id, order)

	s.notifier.Notify(ctx, notify.Notification{
		Title:    "Order Rejected",
		Message:  fmt.Sprintf("Procurement order %s has been rejected.", id),
		Severity: enums.SeverityDestructive,
	})
	return order, nil
}

// Delete removes the order unconditionally. Missing ids are a silent no-op.
func (s *service) Delete(ctx context.Context, id string) {
	s.records.Delete(id)
	s.notifier.Notify(ctx, notify.Notification{
		Title:    "Success",
		Message:  "Procurement order deleted successfully.",
		Severity: enums.SeverityInfo,
	})
}

func (s *service) Get(id string) (Order, bool) {
	return s.records.Get(id)
}

func (s *service) List() []Order {
	return s.records.List()
}

// Pending returns orders still awaiting a decision, in store order.
func (s *service) Pending() []Order {
	var out []Order
	for _, order := range s.records.List() {
		if order.Status == enums.OrderStatusPending {
			out = append(out, order)
		}
	}
	return out
}

// Processed returns orders in a terminal status, in store order.
func (s *service) Processed() []Order {
	var out []Order
	for _, order := range s.records.List() {
		if order.Status.IsTerminal() {
			out = append(out, order)
		}
	}
	return out
}

// Search filters by free text over item name, supplier and requester, AND an
// optional status filter.
func (s *service) Search(query, statusFilter string) []Order {
	var out []Order
	for _, order := range s.records.List() {
		if !search.MatchesQuery(query, order.ItemName, order.Supplier, order.RequestedBy) {
			continue
		}
		if !search.MatchesFilter(statusFilter, order.Status.String()) {
			continue
		}
		out = append(out, order)
	}
	return out
}

// Load seeds orders verbatim.
func (s *service) Load(orders ...Order) {
	for _, order := range orders {
		s.records.Add(order)
	}
}

func validateDraft(draft Draft) error {
	var priorityErr error
	if draft.Priority != "" && !draft.Priority.IsValid() {
		priorityErr = pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"priority": "is invalid"})
	}
	return multierr.Combine(validate.Struct(draft), priorityErr)
}

func (s *service) notifyError(ctx context.Context, message string) {
	s.notifier.Notify(ctx, notify.Notification{
		Title:    "Error",
		Message:  message,
		Severity: enums.SeverityDestructive,
	})
}
