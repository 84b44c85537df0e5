package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/prakarsateknik/opsdesk/internal/ops/store"
)

// HousekeepingService periodically removes expired remember tokens and old
// read notifications so the database doesn't grow without bound.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Retention is how long read notifications are kept before cleanup.
	Retention time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to 1 hour; a non-positive retention to 30 days.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	if retention <= 0 {
		retention = 30 * 24 * time.Hour
	}

	return &HousekeepingService{
		Store:     st,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop() to shut it
// down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts the worker down, blocking until any in-progress cleanup ends.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run once on startup so restarts don't defer overdue cleanup.
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup runs each deletion independently; one failing doesn't stop the
// others.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()

	if err := s.Store.RememberTokens().DeleteExpiredRememberTokens(ctx); err != nil {
		s.Logger.Error("failed to delete expired remember tokens", "error", err)
	}

	cutoff := time.Now().Add(-s.Retention)
	if err := s.Store.Notifications().DeleteReadBefore(ctx, cutoff); err != nil {
		s.Logger.Error("failed to delete old read notifications", "error", err)
	}

	s.Logger.Debug("housekeeping cleanup completed")
}
