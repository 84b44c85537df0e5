package service

import (
	"testing"
	"time"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/stretchr/testify/require"
)

func TestFeedDeliversToAllSubscriptionsOfUser(t *testing.T) {
	t.Parallel()

	feed := NewFeed()

	subA := feed.Subscribe("user-1")
	defer subA.Close()
	subB := feed.Subscribe("user-1")
	defer subB.Close()
	other := feed.Subscribe("user-2")
	defer other.Close()

	feed.PublishNotification(domain.Notification{ID: "n1", UserID: "user-1", Title: "PO Baru Dibuat"})

	for _, sub := range []*FeedSubscription{subA, subB} {
		select {
		case ev := <-sub.Events():
			require.Equal(t, FeedEventNotification, ev.Kind)
			require.NotNil(t, ev.Notification)
			require.Equal(t, "n1", ev.Notification.ID)
		case <-time.After(time.Second):
			t.Fatal("expected a notification event")
		}
	}

	select {
	case ev := <-other.Events():
		t.Fatalf("unexpected event for other user: %+v", ev)
	default:
	}
}

func TestFeedDebouncesRefreshHints(t *testing.T) {
	t.Parallel()

	feed := NewFeed()
	sub := feed.Subscribe("user-1")
	defer sub.Close()

	feed.PublishRefresh("user-1")
	feed.PublishRefresh("user-1")
	feed.PublishRefresh("user-1")

	require.Len(t, sub.ch, 1)

	ev := <-sub.Events()
	require.Equal(t, FeedEventRefresh, ev.Kind)
}

func TestFeedRefreshHintsResumeAfterDebounceWindow(t *testing.T) {
	t.Parallel()

	feed := NewFeed()
	sub := feed.Subscribe("user-1")
	defer sub.Close()

	feed.PublishRefresh("user-1")

	// Rewind the debounce clock instead of sleeping out the window.
	sub.mu.Lock()
	sub.lastHint = time.Now().Add(-2 * refreshDebounce)
	sub.mu.Unlock()

	feed.PublishRefresh("user-1")
	require.Len(t, sub.ch, 2)
}

func TestFeedCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	feed := NewFeed()
	sub := feed.Subscribe("user-1")

	sub.Close()
	sub.Close()

	// Publishing after close must not panic or deliver.
	feed.PublishNotification(domain.Notification{ID: "n1", UserID: "user-1"})
	feed.PublishRefresh("user-1")

	_, open := <-sub.Events()
	require.False(t, open)
}

func TestFeedSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()

	feed := NewFeed()
	sub := feed.Subscribe("user-1")
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			feed.PublishNotification(domain.Notification{ID: "n", UserID: "user-1"})
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publish blocked on a full subscriber channel")
	}
}
