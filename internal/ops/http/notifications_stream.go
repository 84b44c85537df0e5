package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prakarsateknik/opsdesk/internal/ops/service"
	"github.com/prakarsateknik/opsdesk/pkg/httpx"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
	"github.com/prakarsateknik/opsdesk/pkg/slogx"
)

const (
	// streamHeartbeat keeps intermediaries from dropping an idle stream.
	streamHeartbeat = 15 * time.Second

	// streamFallbackRefresh is the polling cadence the stream degrades to:
	// even with no activity, subscribers get a refresh hint at this interval
	// and re-fetch their list and unread count.
	streamFallbackRefresh = 30 * time.Second
)

// NotificationsStreamHandler serves the live notification feed over
// server-sent events. Each connected client holds one feed subscription;
// new notifications arrive as "notification" events and read-state changes
// as "refresh" hints.
type NotificationsStreamHandler struct {
	Feed *service.Feed
}

// ServeHTTP godoc
//
//	@Summary		Stream notification events
//	@Description	Server-sent event stream of the caller's notification activity. Emits "notification" events carrying the new notification and "refresh" events hinting that the list and unread count should be re-fetched. A refresh hint is also sent every 30 seconds as a polling fallback.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		text/event-stream
//	@Success		200	{string}	string	"event stream"
//	@Router			/v1/notifications/stream [get].
func (h *NotificationsStreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		opsdk.ErrInvalidToken.WriteError(w)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		opsdk.ErrServerError.WriteError(w)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	sub := h.Feed.Subscribe(userID)
	defer sub.Close()

	// Tell the client it is connected before the first event lands.
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()
	fallback := time.NewTicker(streamFallbackRefresh)
	defer fallback.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, open := <-sub.Events():
			if !open {
				return
			}
			if err := writeFeedEvent(w, ev); err != nil {
				log.Debug("notification stream write failed", "user_id", userID, "err", err)
				return
			}
			flusher.Flush()

		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()

		case <-fallback.C:
			if err := writeFeedEvent(w, service.FeedEvent{Kind: service.FeedEventRefresh}); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeFeedEvent(w http.ResponseWriter, ev service.FeedEvent) error {
	switch ev.Kind {
	case service.FeedEventNotification:
		payload, err := json.Marshal(toNotificationDTO(*ev.Notification))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", opsdk.StreamEventNotification, payload)
		return err

	case service.FeedEventRefresh:
		_, err := fmt.Fprintf(w, "event: %s\ndata: {}\n\n", opsdk.StreamEventRefresh)
		return err
	}
	return nil
}
