package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
)

type notificationsRepo struct {
	q querier
}

const notificationColumns = `id, user_id, activity_type, title, message, is_read, created_by, created_by_name, created_at, updated_at`

func scanNotification(row interface{ Scan(...any) error }) (domain.Notification, error) {
	var (
		n         domain.Notification
		createdBy sql.NullString
		byName    sql.NullString
	)
	err := row.Scan(&n.ID, &n.UserID, &n.ActivityType, &n.Title, &n.Message, &n.IsRead,
		&createdBy, &byName, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return domain.Notification{}, err
	}
	n.CreatedBy = createdBy.String
	n.CreatedByName = byName.String
	return n, nil
}

func (r *notificationsRepo) CreateNotification(ctx context.Context, n domain.Notification) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO notifications (id, user_id, activity_type, title, message, is_read, created_by, created_by_name, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.UserID, n.ActivityType, n.Title, n.Message, n.IsRead,
		nullIfEmpty(n.CreatedBy), nullIfEmpty(n.CreatedByName), n.CreatedAt, n.UpdatedAt)
	return err
}

func (r *notificationsRepo) ListNotifications(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+notificationColumns+` FROM notifications
		 WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *notificationsRepo) GetNotificationByID(ctx context.Context, id string) (domain.Notification, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE id = ?`, id)
	n, err := scanNotification(row)
	if err != nil {
		return domain.Notification{}, mapNotFound(err)
	}
	return n, nil
}

func (r *notificationsRepo) CountUnread(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = ? AND is_read = 0`, userID).Scan(&count)
	return count, err
}

func (r *notificationsRepo) MarkRead(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE notifications SET is_read = 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *notificationsRepo) MarkAllRead(ctx context.Context, userID string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE notifications SET is_read = 1, updated_at = CURRENT_TIMESTAMP WHERE user_id = ? AND is_read = 0`, userID)
	return err
}

func (r *notificationsRepo) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM notifications WHERE user_id = ?`, userID)
	return err
}

func (r *notificationsRepo) DeleteReadBefore(ctx context.Context, cutoff time.Time) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM notifications WHERE is_read = 1 AND created_at < ?`, cutoff)
	return err
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
