package procurement

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/angelmondragon/kitchenops/internal/notify"
	"github.com/angelmondragon/kitchenops/pkg/clock"
	"github.com/angelmondragon/kitchenops/pkg/enums"
	pkgerrors "github.com/angelmondragon/kitchenops/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqIDs struct{ next int }

func (g *seqIDs) NewID() string {
	g.next++
	return strconv.Itoa(g.next)
}

func newTestService(t *testing.T) (Service, *notify.Recorder) {
	t.Helper()

	recorder := &notify.Recorder{}
	fixed := clock.Fixed{Time: time.Date(2024, 1, 8, 10, 30, 0, 0, time.UTC)}
	svc, err := NewService(ServiceParams{IDs: &seqIDs{}, Clock: fixed, Notifier: recorder})
	require.NoError(t, err)
	return svc, recorder
}

func submitSalmon(t *testing.T, svc Service) Order {
	t.Helper()

	order, err := svc.Submit(context.Background(), Draft{
		ItemName:    "Fresh Salmon",
		Quantity:    20,
		Unit:        "kg",
		Supplier:    "Ocean Fresh Supplies",
		Priority:    enums.OrderPriorityHigh,
		Notes:       "Need for weekend special menu",
		RequestedBy: "Chef Manager",
	})
	require.NoError(t, err)
	return order
}

func TestSubmitStampsStatusAndDate(t *testing.T) {
	svc, recorder := newTestService(t)

	order := submitSalmon(t, svc)
	assert.Equal(t, "1", order.ID)
	assert.Equal(t, enums.OrderStatusPending, order.Status)
	assert.Equal(t, "2024-01-08", order.DateRequested)
	assert.Empty(t, order.RejectionReason)

	last, ok := recorder.Last()
	require.True(t, ok)
	assert.Equal(t, "Procurement order submitted successfully.", last.Message)
}

func TestSubmitDefaultsPriorityToMedium(t *testing.T) {
	svc, _ := newTestService(t)

	order, err := svc.Submit(context.Background(), Draft{
		ItemName: "Organic Vegetables",
		Quantity: 50,
		Unit:     "kg",
		Supplier: "Green Valley Farms",
	})
	require.NoError(t, err)
	assert.Equal(t, enums.OrderPriorityMedium, order.Priority)
}

func TestSubmitMissingSupplier(t *testing.T) {
	svc, recorder := newTestService(t)
	svc.Load(
		Order{ID: "1", ItemName: "Fresh Salmon", Status: enums.OrderStatusPending},
		Order{ID: "2", ItemName: "Organic Vegetables", Status: enums.OrderStatusApproved},
		Order{ID: "3", ItemName: "Wine Bottles", Status: enums.OrderStatusRejected, RejectionReason: "Budget constraints"},
	)

	_, err := svc.Submit(context.Background(), Draft{ItemName: "Premium Beef", Quantity: 15, Unit: "kg"})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Len(t, svc.List(), 3)

	last, _ := recorder.Last()
	assert.Equal(t, "Error", last.Title)
}

func TestSubmitRejectsUnknownPriority(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Submit(context.Background(), Draft{
		ItemName: "Premium Beef",
		Quantity: 15,
		Unit:     "kg",
		Supplier: "City Meat Market",
		Priority: enums.OrderPriority("Critical"),
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Empty(t, svc.List())
}

func TestApprove(t *testing.T) {
	svc, recorder := newTestService(t)
	order := submitSalmon(t, svc)

	approved, err := svc.Approve(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusApproved, approved.Status)

	last, _ := recorder.Last()
	assert.Equal(t, "Order Approved", last.Title)
	assert.Equal(t, enums.SeverityInfo, last.Severity)
}

func TestApproveClearsStaleRejectionReason(t *testing.T) {
	svc, _ := newTestService(t)
	// A pending order carrying a stale reason should never exist, but the
	// transition restores the invariant regardless.
	svc.Load(Order{ID: "9", ItemName: "Wine Bottles", Status: enums.OrderStatusPending, RejectionReason: "stale"})

	approved, err := svc.Approve(context.Background(), "9")
	require.NoError(t, err)
	assert.Empty(t, approved.RejectionReason)
}

func TestRejectScenario(t *testing.T) {
	svc, recorder := newTestService(t)
	order := submitSalmon(t, svc)

	_, err := svc.Reject(context.Background(), order.ID, "")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))

	got, _ := svc.Get(order.ID)
	assert.Equal(t, enums.OrderStatusPending, got.Status)
	last, _ := recorder.Last()
	assert.Equal(t, "Please provide a reason for rejection.", last.Message)

	_, err = svc.Reject(context.Background(), order.ID, "   \t")
	require.Error(t, err)

	rejected, err := svc.Reject(context.Background(), order.ID, "Budget constraints")
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusRejected, rejected.Status)
	assert.Equal(t, "Budget constraints", rejected.RejectionReason)

	last, _ = recorder.Last()
	assert.Equal(t, "Order Rejected", last.Title)
	assert.Equal(t, enums.SeverityDestructive, last.Severity)
}

func TestApproveAndRejectAreTerminal(t *testing.T) {
	svc, _ := newTestService(t)
	approved := submitSalmon(t, svc)
	_, err := svc.Approve(context.Background(), approved.ID)
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), approved.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())

	_, err = svc.Reject(context.Background(), approved.ID, "changed my mind")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())

	rejected := submitSalmon(t, svc)
	_, err = svc.Reject(context.Background(), rejected.ID, "Budget constraints")
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), rejected.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())

	got, _ := svc.Get(rejected.ID)
	assert.Equal(t, "Budget constraints", got.RejectionReason)
}

func TestApproveUnknownOrder(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Approve(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestPendingAndProcessedSplit(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Load(
		Order{ID: "1", ItemName: "Fresh Salmon", Status: enums.OrderStatusPending},
		Order{ID: "2", ItemName: "Organic Vegetables", Status: enums.OrderStatusApproved},
		Order{ID: "3", ItemName: "Wine Bottles", Status: enums.OrderStatusRejected, RejectionReason: "Budget constraints"},
		Order{ID: "4", ItemName: "Premium Beef", Status: enums.OrderStatusPending},
	)

	pending := svc.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, "1", pending[0].ID)
	assert.Equal(t, "4", pending[1].ID)

	processed := svc.Processed()
	require.Len(t, processed, 2)
	assert.Equal(t, "2", processed[0].ID)
	assert.Equal(t, "3", processed[1].ID)
}

func TestSearch(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Load(
		Order{ID: "1", ItemName: "Fresh Salmon", Supplier: "Ocean Fresh Supplies", RequestedBy: "Chef Manager", Status: enums.OrderStatusPending},
		Order{ID: "2", ItemName: "Organic Vegetables", Supplier: "Green Valley Farms", RequestedBy: "Kitchen Staff", Status: enums.OrderStatusApproved},
		Order{ID: "3", ItemName: "Wine Bottles", Supplier: "Premium Wine Co.", RequestedBy: "Event Manager", Status: enums.OrderStatusRejected},
	)

	all := svc.Search("", "all")
	assert.Len(t, all, 3)

	byRequester := svc.Search("manager", "")
	require.Len(t, byRequester, 2)
	assert.Equal(t, "1", byRequester[0].ID)
	assert.Equal(t, "3", byRequester[1].ID)

	rejectedManagers := svc.Search("manager", "Rejected")
	require.Len(t, rejectedManagers, 1)
	assert.Equal(t, "3", rejectedManagers[0].ID)
}
