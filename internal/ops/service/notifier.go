package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/internal/ops/store"
	"github.com/prakarsateknik/opsdesk/pkg/idx"
	"github.com/prakarsateknik/opsdesk/pkg/slogx"
)

var ErrUnknownActivity = errors.New("unknown_activity_type")

// Actor identifies the staff member whose action raised a notification.
type Actor struct {
	ID          string
	DisplayName string
	Email       string
}

// name returns the attribution shown in notifications: display name when
// set, otherwise the login email.
func (a Actor) name() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.Email
}

// Notifier fans activity notifications out to recipients and publishes them
// to the realtime feed.
type Notifier struct {
	Store store.Store
	Feed  *Feed
}

// TriggerActivity renders the catalogue entry for activityType and fans it
// out to every Direktur profile. Unknown activity types are an error and
// create no record.
func (n *Notifier) TriggerActivity(ctx context.Context, actor Actor, activityType, entityName string) error {
	title, message, ok := domain.ActivityContent(activityType, entityName, actor.name())
	if !ok {
		return ErrUnknownActivity
	}
	return n.Dispatch(ctx, actor, activityType, title, message, "")
}

// NotifyActivity triggers the activity but only logs failures. The callers
// are domain mutations that already succeeded; a notification hiccup must
// not turn them into errors.
func (n *Notifier) NotifyActivity(ctx context.Context, actor Actor, activityType, entityName string) {
	if err := n.TriggerActivity(ctx, actor, activityType, entityName); err != nil {
		slogx.FromContext(ctx).Warn("activity notification failed",
			slog.String("activity_type", activityType),
			slog.Any("error", err),
		)
	}
}

// Dispatch inserts one notification row per recipient and publishes each
// inserted row to the feed. With no targetUserID the recipients are all
// Direktur profiles; zero directors is a success with no insert. A failed
// insert for one recipient is logged and skipped, the rest still go out.
func (n *Notifier) Dispatch(ctx context.Context, actor Actor, activityType, title, message, targetUserID string) error {
	l := slogx.FromContext(ctx)

	var recipients []string
	if targetUserID != "" {
		recipients = []string{targetUserID}
	} else {
		directors, err := n.Store.Profiles().ListProfilesByRole(ctx, domain.RoleDirektur)
		if err != nil {
			return err
		}
		for _, d := range directors {
			recipients = append(recipients, d.ID)
		}
	}

	now := time.Now()
	for _, userID := range recipients {
		row := domain.Notification{
			ID:            idx.New().String(),
			UserID:        userID,
			ActivityType:  activityType,
			Title:         title,
			Message:       message,
			CreatedBy:     actor.ID,
			CreatedByName: actor.name(),
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		if err := n.Store.Notifications().CreateNotification(ctx, row); err != nil {
			l.Error("notification insert failed",
				slog.String("recipient", userID),
				slog.String("activity_type", activityType),
				slog.Any("error", err),
			)
			continue
		}

		n.Feed.PublishNotification(row)
	}

	return nil
}
