package service

import (
	"context"
	"testing"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/internal/ops/store"
	"github.com/stretchr/testify/require"
)

func TestCreatePurchaseOrderStampsCreatorAndNotifies(t *testing.T) {
	st := newTestStore(t)
	feed := NewFeed()
	notifier := &Notifier{Store: st, Feed: feed}
	svc := &PurchaseOrderService{Store: st, Notifier: notifier}

	ctx := context.Background()
	directorA := seedProfile(t, st, "dir-a@prakarsa.example", "Direktur A", domain.RoleDirektur, "rahasia-123")
	directorB := seedProfile(t, st, "dir-b@prakarsa.example", "Direktur B", domain.RoleDirektur, "rahasia-123")
	marketing := seedProfile(t, st, "mkt@prakarsa.example", "Sari", domain.RoleMarketing, "rahasia-123")

	actor := Actor{ID: marketing.ID, DisplayName: marketing.DisplayName}
	po, err := svc.CreatePurchaseOrder(ctx, actor, domain.PurchaseOrder{
		NoPO:         "PO-100",
		PODate:       "2026-08-20",
		CustomerName: "PT Maju",
		PartAssyName: "Bracket Assy",
		Quantity:     500,
		SalesName:    "Andi",
	})
	require.NoError(t, err)
	require.NotEmpty(t, po.ID)
	require.Equal(t, marketing.ID, po.CreatedByUserID)
	require.Equal(t, "Sari", po.CreatedByUserDisplayName)

	for _, director := range []domain.Profile{directorA, directorB} {
		rows, err := st.Notifications().ListNotifications(ctx, director.ID, 10)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, domain.ActivityPOCreated, rows[0].ActivityType)
		require.Contains(t, rows[0].Message, "PO-100")
	}
}

func TestUpdatePurchaseOrderKeepsCreatorAttribution(t *testing.T) {
	st := newTestStore(t)
	notifier := &Notifier{Store: st, Feed: NewFeed()}
	svc := &PurchaseOrderService{Store: st, Notifier: notifier}

	ctx := context.Background()
	creator := seedProfile(t, st, "mkt@prakarsa.example", "Sari", domain.RoleMarketing, "rahasia-123")

	po, err := svc.CreatePurchaseOrder(ctx, Actor{ID: creator.ID, DisplayName: "Sari"}, domain.PurchaseOrder{
		NoPO:   "PO-100",
		PODate: "2026-08-20",
	})
	require.NoError(t, err)

	po.Quantity = 750
	updated, err := svc.UpdatePurchaseOrder(ctx, Actor{ID: "someone-else", DisplayName: "Admin"}, po)
	require.NoError(t, err)
	require.Equal(t, 750, updated.Quantity)
	require.Equal(t, creator.ID, updated.CreatedByUserID)
	require.Equal(t, "Sari", updated.CreatedByUserDisplayName)
}

func TestListPurchaseOrdersFilters(t *testing.T) {
	st := newTestStore(t)
	notifier := &Notifier{Store: st, Feed: NewFeed()}
	svc := &PurchaseOrderService{Store: st, Notifier: notifier}

	ctx := context.Background()
	actorA := Actor{ID: "user-a", DisplayName: "A"}
	actorB := Actor{ID: "user-b", DisplayName: "B"}

	_, err := svc.CreatePurchaseOrder(ctx, actorA, domain.PurchaseOrder{NoPO: "PO-1", PODate: "2026-08-01", SalesName: "Andi Wijaya"})
	require.NoError(t, err)
	_, err = svc.CreatePurchaseOrder(ctx, actorA, domain.PurchaseOrder{NoPO: "PO-2", PODate: "2026-08-15", SalesName: "Citra"})
	require.NoError(t, err)
	_, err = svc.CreatePurchaseOrder(ctx, actorB, domain.PurchaseOrder{NoPO: "PO-3", PODate: "2026-09-01", SalesName: "Andi Wijaya"})
	require.NoError(t, err)

	t.Run("date range", func(t *testing.T) {
		out, err := svc.ListPurchaseOrders(ctx, domain.PurchaseOrderFilter{StartDate: "2026-08-01", EndDate: "2026-08-31"})
		require.NoError(t, err)
		require.Len(t, out, 2)
		// Newest po_date first.
		require.Equal(t, "PO-2", out[0].NoPO)
	})

	t.Run("creator", func(t *testing.T) {
		out, err := svc.ListPurchaseOrders(ctx, domain.PurchaseOrderFilter{CreatedByUserID: "user-b"})
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.Equal(t, "PO-3", out[0].NoPO)
	})

	t.Run("sales name substring", func(t *testing.T) {
		out, err := svc.ListPurchaseOrders(ctx, domain.PurchaseOrderFilter{SalesName: "andi"})
		require.NoError(t, err)
		require.Len(t, out, 2)
	})

	t.Run("no filter returns everything", func(t *testing.T) {
		out, err := svc.ListPurchaseOrders(ctx, domain.PurchaseOrderFilter{})
		require.NoError(t, err)
		require.Len(t, out, 3)
	})
}

func TestDeletePurchaseOrderUnknownID(t *testing.T) {
	st := newTestStore(t)
	svc := &PurchaseOrderService{Store: st, Notifier: &Notifier{Store: st, Feed: NewFeed()}}

	err := svc.DeletePurchaseOrder(context.Background(), Actor{ID: "x"}, "no-such-id")
	require.ErrorIs(t, err, store.ErrNotFound)
}
