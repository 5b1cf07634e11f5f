package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/store"
)

// HousekeepingService periodically marks PENDING invitations that are past
// their expiry as EXPIRED.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	Now      func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService defaults a non-positive interval to one hour.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", slog.Duration("interval", s.Interval))
}

// Stop blocks until an in-progress sweep has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Sweep(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Sweep(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Sweep runs one expiry pass and returns how many invitations changed.
func (s *HousekeepingService) Sweep(ctx context.Context) int64 {
	n, err := s.Store.Invitations().ExpireInvitations(ctx, clock(s.Now))
	if err != nil {
		s.Logger.Error("failed to expire invitations", slog.Any("error", err))
		return 0
	}
	if n > 0 {
		s.Logger.Info("expired stale invitations", slog.Int64("count", n))
	}
	return n
}
