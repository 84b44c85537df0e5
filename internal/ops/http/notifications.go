package http

import (
	"net/http"
	"strconv"

	"github.com/prakarsateknik/opsdesk/internal/ops/service"
	"github.com/prakarsateknik/opsdesk/pkg/httpx"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
	"github.com/prakarsateknik/opsdesk/pkg/slogx"
)

// NotificationsHandler serves the notification inbox. Every operation is
// scoped to the authenticated user; one director cannot touch another's rows.
type NotificationsHandler struct {
	NotificationService *service.NotificationService
}

// HandleList godoc
//
//	@Summary		List notifications
//	@Description	Returns the caller's notifications, newest first. A missing or non-positive limit uses the server default of 20.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of notifications"
//	@Success		200		{object}	opsdk.ListNotificationsResponse
//	@Router			/v1/notifications [get].
func (h *NotificationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	notifications, err := h.NotificationService.ListNotifications(ctx, userID, limit)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list notifications", "user_id", userID, "err", err)
		opsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]opsdk.Notification, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, toNotificationDTO(n))
	}
	httpx.WriteJSON(w, http.StatusOK, opsdk.ListNotificationsResponse{Notifications: out})
}

// HandleUnreadCount godoc
//
//	@Summary		Count unread notifications
//	@Description	Returns the badge count for the notification bell.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	opsdk.UnreadCountResponse
//	@Router			/v1/notifications/unread-count [get].
func (h *NotificationsHandler) HandleUnreadCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	count, err := h.NotificationService.UnreadCount(ctx, userID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to count unread notifications", "user_id", userID, "err", err)
		opsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, opsdk.UnreadCountResponse{Count: count})
}

// HandleMarkRead godoc
//
//	@Summary		Mark a notification as read
//	@Description	Marks one of the caller's notifications as read. Another user's notification reads as not found.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Notification ID"
//	@Success		204	"Marked"
//	@Failure		404	{object}	opsdk.ErrorResponse
//	@Router			/v1/notifications/{id}/read [post].
func (h *NotificationsHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	if err := h.NotificationService.MarkRead(ctx, userID, r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleMarkAllRead godoc
//
//	@Summary		Mark all notifications as read
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Success		204	"Marked"
//	@Router			/v1/notifications/read-all [post].
func (h *NotificationsHandler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	if err := h.NotificationService.MarkAllRead(ctx, userID); err != nil {
		slogx.FromContext(ctx).Error("failed to mark notifications read", "user_id", userID, "err", err)
		opsdk.ErrServerError.WriteError(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleClearAll godoc
//
//	@Summary		Clear all notifications
//	@Description	Deletes every notification belonging to the caller.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Success		204	"Cleared"
//	@Router			/v1/notifications [delete].
func (h *NotificationsHandler) HandleClearAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	if err := h.NotificationService.ClearAll(ctx, userID); err != nil {
		slogx.FromContext(ctx).Error("failed to clear notifications", "user_id", userID, "err", err)
		opsdk.ErrServerError.WriteError(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
