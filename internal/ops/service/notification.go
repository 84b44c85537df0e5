package service

import (
	"context"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/internal/ops/store"
)

// DefaultNotificationLimit caps a notification listing when the caller
// doesn't say how many they want.
const DefaultNotificationLimit = 20

// NotificationService serves a user's notification feed and read-state.
// Read-state changes publish a refresh hint so other tabs update.
type NotificationService struct {
	Store store.Store
	Feed  *Feed
}

func (s *NotificationService) ListNotifications(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}
	return s.Store.Notifications().ListNotifications(ctx, userID, limit)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.Store.Notifications().CountUnread(ctx, userID)
}

// MarkRead flips one notification to read. Notifications belong to their
// recipient; anyone else gets a not-found.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	n, err := s.Store.Notifications().GetNotificationByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.UserID != userID {
		return store.ErrNotFound
	}

	if err := s.Store.Notifications().MarkRead(ctx, notificationID); err != nil {
		return err
	}

	s.Feed.PublishRefresh(userID)
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.Store.Notifications().MarkAllRead(ctx, userID); err != nil {
		return err
	}
	s.Feed.PublishRefresh(userID)
	return nil
}

// ClearAll deletes every notification of the user.
func (s *NotificationService) ClearAll(ctx context.Context, userID string) error {
	if err := s.Store.Notifications().DeleteAllForUser(ctx, userID); err != nil {
		return err
	}
	s.Feed.PublishRefresh(userID)
	return nil
}
