package opsdk

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Stream event kinds, matching the server-sent event names on the wire.
const (
	// StreamEventNotification carries a freshly created notification.
	StreamEventNotification = "notification"

	// StreamEventRefresh hints that the list and unread count should be
	// re-fetched. Sent on read-state changes and on the 30 second fallback
	// cadence, so a consumer that only reacts to refresh events still
	// behaves like a poller.
	StreamEventRefresh = "refresh"
)

// StreamEvent is one event received from the notification stream.
type StreamEvent struct {
	Kind         string
	Notification *Notification // set when Kind == StreamEventNotification
}

// NotificationStream is a live server-sent event feed of the session user's
// notification activity. Read from Events until it closes, then check Err.
type NotificationStream struct {
	events chan StreamEvent
	cancel context.CancelFunc

	err error
}

// Events returns the stream's event channel. The channel closes when the
// stream ends, whether by Close, context cancellation, or a transport error.
func (ns *NotificationStream) Events() <-chan StreamEvent {
	return ns.events
}

// Err reports why the stream ended. It is only meaningful after the Events
// channel has closed, and is nil for a clean shutdown.
func (ns *NotificationStream) Err() error {
	return ns.err
}

// Close tears down the stream connection.
func (ns *NotificationStream) Close() {
	ns.cancel()
}

// StreamNotifications opens the live notification feed for the session user.
// New notifications and refresh hints arrive on the returned stream's Events
// channel until the context is cancelled or Close is called.
func (s *Session) StreamNotifications(ctx context.Context) (*NotificationStream, error) {
	token, err := s.getValidToken(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.client.BaseURL+"/v1/notifications/stream", nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "text/event-stream")

	// The shared client carries a request timeout that would sever a
	// long-lived stream, so use a copy without one.
	httpClient := *s.client.HTTPClient
	httpClient.Timeout = 0

	resp, err := httpClient.Do(req)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open stream: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		cancel()
		return nil, parseErrorResponse(resp, bodyBytes)
	}

	ns := &NotificationStream{
		events: make(chan StreamEvent),
		cancel: cancel,
	}

	go func() {
		defer close(ns.events)
		defer resp.Body.Close()

		ns.err = readEventStream(ctx, resp.Body, ns.events)
		if ctx.Err() != nil {
			ns.err = nil
		}
	}()

	return ns, nil
}

// readEventStream parses the text/event-stream wire format: "event:" and
// "data:" lines accumulate until a blank line dispatches the event. Comment
// lines (leading colon) are heartbeats and are skipped.
func readEventStream(ctx context.Context, body io.Reader, events chan<- StreamEvent) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	var eventName, data string
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "":
			if ev, ok := buildStreamEvent(eventName, data); ok {
				select {
				case events <- ev:
				case <-ctx.Done():
					return nil
				}
			}
			eventName, data = "", ""

		case strings.HasPrefix(line, ":"):
			// heartbeat

		case strings.HasPrefix(line, "event:"):
			eventName = strings.TrimSpace(strings.TrimPrefix(line, "event:"))

		case strings.HasPrefix(line, "data:"):
			data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		}
	}
	return scanner.Err()
}

func buildStreamEvent(eventName, data string) (StreamEvent, bool) {
	switch eventName {
	case StreamEventNotification:
		var n Notification
		if err := json.Unmarshal([]byte(data), &n); err != nil {
			return StreamEvent{}, false
		}
		return StreamEvent{Kind: StreamEventNotification, Notification: &n}, true

	case StreamEventRefresh:
		return StreamEvent{Kind: StreamEventRefresh}, true
	}
	return StreamEvent{}, false
}
