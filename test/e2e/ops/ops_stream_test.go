package ops_test

import (
	"context"
	"testing"
	"time"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
	"github.com/stretchr/testify/require"
)

// waitForEvent reads stream events until one of the wanted kind arrives.
func waitForEvent(t *testing.T, stream *opsdk.NotificationStream, kind string, timeout time.Duration) opsdk.StreamEvent {
	t.Helper()

	deadline := time.After(timeout)
	for {
		select {
		case ev, open := <-stream.Events():
			require.True(t, open, "stream closed while waiting for %q event: %v", kind, stream.Err())
			if ev.Kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("no %q event within %s", kind, timeout)
		}
	}
}

func TestNotificationStreamDeliversLiveEvents(t *testing.T) {
	ts := startServer(t)
	seedStaff(t, ts, direkturEmail, "Pak Direktur", domain.RoleDirektur, direkturPassword)
	seedStaff(t, ts, marketingEmail, "Budi Marketing", domain.RoleMarketing, marketingPass)

	ctx := context.Background()
	direktur := login(t, ts, direkturEmail, direkturPassword, false)
	marketing := login(t, ts, marketingEmail, marketingPass, false)

	stream, err := direktur.StreamNotifications(ctx)
	require.NoError(t, err)
	defer stream.Close()

	// A sales desk mutation lands on the open stream.
	_, err = marketing.CreateCustomer(ctx, opsdk.CustomerRequest{CustomerName: "PT Sinar Abadi"})
	require.NoError(t, err)

	ev := waitForEvent(t, stream, opsdk.StreamEventNotification, 5*time.Second)
	require.NotNil(t, ev.Notification)
	require.Equal(t, "Customer Baru Ditambahkan", ev.Notification.Title)
	require.Contains(t, ev.Notification.Message, "PT Sinar Abadi")
	require.Equal(t, "Budi Marketing", ev.Notification.CreatedByName)

	// Marking it read hints the stream to refresh.
	require.NoError(t, direktur.MarkNotificationRead(ctx, ev.Notification.ID))
	waitForEvent(t, stream, opsdk.StreamEventRefresh, 5*time.Second)
}

func TestNotificationStreamScopedToUser(t *testing.T) {
	ts := startServer(t)
	seedStaff(t, ts, direkturEmail, "Pak Direktur", domain.RoleDirektur, direkturPassword)
	second := seedStaff(t, ts, "direktur2@example.com", "Bu Direktur", domain.RoleDirektur, "Direktur456!")
	seedStaff(t, ts, marketingEmail, "Budi Marketing", domain.RoleMarketing, marketingPass)

	ctx := context.Background()
	first := login(t, ts, direkturEmail, direkturPassword, false)
	marketing := login(t, ts, marketingEmail, marketingPass, false)

	stream, err := first.StreamNotifications(ctx)
	require.NoError(t, err)
	defer stream.Close()

	_, err = marketing.CreateItem(ctx, opsdk.ItemRequest{PartAssyName: "COVER-ASSY-02"})
	require.NoError(t, err)

	// Both directors got a row, but this stream only carries the first's copy.
	ev := waitForEvent(t, stream, opsdk.StreamEventNotification, 5*time.Second)
	require.NotEqual(t, second.ID, ev.Notification.UserID)
}

func TestNotificationStreamCloses(t *testing.T) {
	ts := startServer(t)
	seedStaff(t, ts, direkturEmail, "Pak Direktur", domain.RoleDirektur, direkturPassword)

	direktur := login(t, ts, direkturEmail, direkturPassword, false)

	stream, err := direktur.StreamNotifications(context.Background())
	require.NoError(t, err)

	stream.Close()

	select {
	case _, open := <-stream.Events():
		if open {
			// Drain anything buffered before the close took effect.
			for range stream.Events() {
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not close")
	}
	require.NoError(t, stream.Err())
}
