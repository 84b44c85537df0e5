package service

import (
	"context"
	"testing"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/stretchr/testify/require"
)

func TestTriggerActivityUnknownTypeCreatesNothing(t *testing.T) {
	st := newTestStore(t)
	feed := NewFeed()
	notifier := &Notifier{Store: st, Feed: feed}

	director := seedProfile(t, st, "boss@prakarsa.example", "Pak Boss", domain.RoleDirektur, "rahasia-123")
	actor := Actor{ID: "actor-1", DisplayName: "Budi"}

	err := notifier.TriggerActivity(context.Background(), actor, "invoice_created", "INV-1")
	require.ErrorIs(t, err, ErrUnknownActivity)

	rows, err := st.Notifications().ListNotifications(context.Background(), director.ID, 10)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestTriggerActivityFansOutToEveryDirector(t *testing.T) {
	st := newTestStore(t)
	feed := NewFeed()
	notifier := &Notifier{Store: st, Feed: feed}

	ctx := context.Background()
	directorA := seedProfile(t, st, "dir-a@prakarsa.example", "Direktur A", domain.RoleDirektur, "rahasia-123")
	directorB := seedProfile(t, st, "dir-b@prakarsa.example", "Direktur B", domain.RoleDirektur, "rahasia-123")
	admin := seedProfile(t, st, "admin@prakarsa.example", "Admin", domain.RoleAdmin, "rahasia-123")

	subA := feed.Subscribe(directorA.ID)
	defer subA.Close()

	actor := Actor{ID: admin.ID, DisplayName: "Budi Santoso"}
	require.NoError(t, notifier.TriggerActivity(ctx, actor, domain.ActivityPOCreated, "PO-100"))

	for _, director := range []domain.Profile{directorA, directorB} {
		rows, err := st.Notifications().ListNotifications(ctx, director.ID, 10)
		require.NoError(t, err)
		require.Len(t, rows, 1)

		n := rows[0]
		require.Equal(t, domain.ActivityPOCreated, n.ActivityType)
		require.Equal(t, "PO Baru Dibuat", n.Title)
		require.Contains(t, n.Message, `"PO-100"`)
		require.Contains(t, n.Message, "Budi Santoso")
		require.Equal(t, admin.ID, n.CreatedBy)
		require.Equal(t, "Budi Santoso", n.CreatedByName)
		require.False(t, n.IsRead)
	}

	// The admin is not a recipient.
	rows, err := st.Notifications().ListNotifications(ctx, admin.ID, 10)
	require.NoError(t, err)
	require.Empty(t, rows)

	// Live subscribers get the inserted row.
	require.Len(t, subA.ch, 1)
	ev := <-subA.Events()
	require.Equal(t, FeedEventNotification, ev.Kind)
	require.Equal(t, directorA.ID, ev.Notification.UserID)
}

func TestDispatchWithZeroDirectorsSucceeds(t *testing.T) {
	st := newTestStore(t)
	notifier := &Notifier{Store: st, Feed: NewFeed()}

	ctx := context.Background()
	admin := seedProfile(t, st, "admin@prakarsa.example", "Admin", domain.RoleAdmin, "rahasia-123")

	actor := Actor{ID: admin.ID, DisplayName: "Admin"}
	require.NoError(t, notifier.TriggerActivity(ctx, actor, domain.ActivityCustomerCreated, "PT Maju"))

	rows, err := st.Notifications().ListNotifications(ctx, admin.ID, 10)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestDispatchTargetedNotification(t *testing.T) {
	st := newTestStore(t)
	notifier := &Notifier{Store: st, Feed: NewFeed()}

	ctx := context.Background()
	staff := seedProfile(t, st, "sales@prakarsa.example", "Sales", domain.RoleSales, "rahasia-123")
	director := seedProfile(t, st, "dir@prakarsa.example", "Direktur", domain.RoleDirektur, "rahasia-123")

	actor := Actor{ID: director.ID, Email: "dir@prakarsa.example"}
	err := notifier.Dispatch(ctx, actor, domain.ActivityPOUpdated, "PO Diperbarui", "pesan", staff.ID)
	require.NoError(t, err)

	rows, err := st.Notifications().ListNotifications(ctx, staff.ID, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Attribution falls back to the email when no display name is set.
	require.Equal(t, "dir@prakarsa.example", rows[0].CreatedByName)

	// The director was the actor, not a recipient.
	rows, err = st.Notifications().ListNotifications(ctx, director.ID, 10)
	require.NoError(t, err)
	require.Empty(t, rows)
}
