package opsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Notification operations - every call is scoped to the session's own user.

// ListNotifications retrieves the session user's notifications, newest
// first, capped at limit. A limit of 0 uses the server default (20).
func (s *Session) ListNotifications(ctx context.Context, limit int) ([]Notification, error) {
	path := "/v1/notifications"
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListNotificationsResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.Notifications, nil
}

// GetUnreadCount retrieves the unread notification count for the badge.
func (s *Session) GetUnreadCount(ctx context.Context) (int, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/notifications/unread-count", nil, nil)
	if err != nil {
		return 0, err
	}

	var count UnreadCountResponse
	if err := decodeJSON(resp, &count, http.StatusOK); err != nil {
		return 0, err
	}

	return count.Count, nil
}

// MarkNotificationRead marks a single notification as read.
func (s *Session) MarkNotificationRead(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/notifications/"+url.PathEscape(id)+"/read", nil, nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// MarkAllNotificationsRead marks every unread notification as read.
func (s *Session) MarkAllNotificationsRead(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/notifications/read-all", nil, nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// ClearAllNotifications deletes every notification for the session user.
func (s *Session) ClearAllNotifications(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/notifications", nil, nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}
