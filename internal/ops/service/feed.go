package service

import (
	"sync"
	"time"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
)

// Feed event kinds.
const (
	// FeedEventNotification carries a freshly inserted notification.
	FeedEventNotification = "notification"

	// FeedEventRefresh tells subscribers to re-fetch their list and unread
	// count. Raised on read-state changes and by the fallback ticker.
	FeedEventRefresh = "refresh"
)

// refreshDebounce caps refresh hints at one per second per subscription.
const refreshDebounce = time.Second

// FeedEvent is one message pushed to a feed subscription.
type FeedEvent struct {
	Kind         string
	Notification *domain.Notification // set when Kind == FeedEventNotification
}

// Feed is the in-memory per-user notification hub. Every live subscription
// of a user receives every publish, standing in for the cross-tab signal
// the browser dashboard used. Sends never block: a subscriber that cannot
// keep up silently drops events and recovers on the next refresh hint.
type Feed struct {
	mu   sync.Mutex
	subs map[string]map[*FeedSubscription]struct{}
}

func NewFeed() *Feed {
	return &Feed{
		subs: make(map[string]map[*FeedSubscription]struct{}),
	}
}

// FeedSubscription is one live listener for a user's events.
type FeedSubscription struct {
	feed   *Feed
	userID string
	ch     chan FeedEvent

	mu       sync.Mutex
	lastHint time.Time
	closed   bool
}

// Subscribe registers a new listener for the user's events. The caller must
// Close() the subscription when done.
func (f *Feed) Subscribe(userID string) *FeedSubscription {
	sub := &FeedSubscription{
		feed:   f,
		userID: userID,
		ch:     make(chan FeedEvent, 16),
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.subs[userID] == nil {
		f.subs[userID] = make(map[*FeedSubscription]struct{})
	}
	f.subs[userID][sub] = struct{}{}

	return sub
}

// Events returns the subscription's event channel. The channel is closed
// when the subscription is closed.
func (s *FeedSubscription) Events() <-chan FeedEvent {
	return s.ch
}

// Close tears down the subscription. Safe to call more than once.
func (s *FeedSubscription) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.feed.mu.Lock()
	if set, ok := s.feed.subs[s.userID]; ok {
		delete(set, s)
		if len(set) == 0 {
			delete(s.feed.subs, s.userID)
		}
	}
	s.feed.mu.Unlock()

	close(s.ch)
}

// PublishNotification pushes a new notification to every live subscription
// of its recipient.
func (f *Feed) PublishNotification(n domain.Notification) {
	f.publish(n.UserID, FeedEvent{Kind: FeedEventNotification, Notification: &n})
}

// PublishRefresh pushes a refresh hint to every live subscription of the
// user. Hints are debounced per subscription.
func (f *Feed) PublishRefresh(userID string) {
	f.publish(userID, FeedEvent{Kind: FeedEventRefresh})
}

func (f *Feed) publish(userID string, ev FeedEvent) {
	f.mu.Lock()
	subs := make([]*FeedSubscription, 0, len(f.subs[userID]))
	for sub := range f.subs[userID] {
		subs = append(subs, sub)
	}
	f.mu.Unlock()

	for _, sub := range subs {
		sub.deliver(ev)
	}
}

func (s *FeedSubscription) deliver(ev FeedEvent) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if ev.Kind == FeedEventRefresh {
		now := time.Now()
		if now.Sub(s.lastHint) < refreshDebounce {
			s.mu.Unlock()
			return
		}
		s.lastHint = now
	}

	// Non-blocking send while holding the lock, so a concurrent Close()
	// cannot close the channel underneath us.
	select {
	case s.ch <- ev:
	default:
	}
	s.mu.Unlock()
}
