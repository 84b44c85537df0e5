package service

import (
	"context"
	"testing"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/internal/ops/store"
	"github.com/stretchr/testify/require"
)

func TestNotificationReadState(t *testing.T) {
	st := newTestStore(t)
	feed := NewFeed()
	notifier := &Notifier{Store: st, Feed: feed}
	svc := &NotificationService{Store: st, Feed: feed}

	ctx := context.Background()
	director := seedProfile(t, st, "dir@prakarsa.example", "Direktur", domain.RoleDirektur, "rahasia-123")
	other := seedProfile(t, st, "dir2@prakarsa.example", "Direktur Dua", domain.RoleDirektur, "rahasia-123")

	actor := Actor{ID: "actor", DisplayName: "Budi"}
	require.NoError(t, notifier.TriggerActivity(ctx, actor, domain.ActivityPOCreated, "PO-1"))
	require.NoError(t, notifier.TriggerActivity(ctx, actor, domain.ActivityPOUpdated, "PO-1"))
	require.NoError(t, notifier.TriggerActivity(ctx, actor, domain.ActivityCustomerCreated, "PT Maju"))

	count, err := svc.UnreadCount(ctx, director.ID)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	rows, err := svc.ListNotifications(ctx, director.ID, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	t.Run("mark one read flips only that row", func(t *testing.T) {
		require.NoError(t, svc.MarkRead(ctx, director.ID, rows[0].ID))

		count, err := svc.UnreadCount(ctx, director.ID)
		require.NoError(t, err)
		require.Equal(t, 2, count)

		// The other director's rows are untouched.
		count, err = svc.UnreadCount(ctx, other.ID)
		require.NoError(t, err)
		require.Equal(t, 3, count)
	})

	t.Run("cannot mark someone else's notification", func(t *testing.T) {
		err := svc.MarkRead(ctx, other.ID, rows[1].ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("mark all drives unread count to zero", func(t *testing.T) {
		require.NoError(t, svc.MarkAllRead(ctx, director.ID))

		count, err := svc.UnreadCount(ctx, director.ID)
		require.NoError(t, err)
		require.Zero(t, count)

		count, err = svc.UnreadCount(ctx, other.ID)
		require.NoError(t, err)
		require.Equal(t, 3, count)
	})

	t.Run("clear all deletes only that user's rows", func(t *testing.T) {
		require.NoError(t, svc.ClearAll(ctx, director.ID))

		rows, err := svc.ListNotifications(ctx, director.ID, 0)
		require.NoError(t, err)
		require.Empty(t, rows)

		rows, err = svc.ListNotifications(ctx, other.ID, 0)
		require.NoError(t, err)
		require.Len(t, rows, 3)
	})
}

func TestListNotificationsAppliesDefaultLimit(t *testing.T) {
	st := newTestStore(t)
	feed := NewFeed()
	notifier := &Notifier{Store: st, Feed: feed}
	svc := &NotificationService{Store: st, Feed: feed}

	ctx := context.Background()
	director := seedProfile(t, st, "dir@prakarsa.example", "Direktur", domain.RoleDirektur, "rahasia-123")

	actor := Actor{ID: "actor", DisplayName: "Budi"}
	for i := 0; i < DefaultNotificationLimit+5; i++ {
		require.NoError(t, notifier.TriggerActivity(ctx, actor, domain.ActivityItemUpdated, "Bracket"))
	}

	rows, err := svc.ListNotifications(ctx, director.ID, 0)
	require.NoError(t, err)
	require.Len(t, rows, DefaultNotificationLimit)

	rows, err = svc.ListNotifications(ctx, director.ID, 5)
	require.NoError(t, err)
	require.Len(t, rows, 5)
}
