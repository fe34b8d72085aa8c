package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type eventCompleter interface {
	CompletePastEvents(ctx context.Context) ([]*domain.Event, error)
}

// Scheduler periodically moves finished events out of the bookable set.
type Scheduler struct {
	events   eventCompleter
	interval time.Duration
	logger   logger.Logger
}

func New(events eventCompleter, interval time.Duration, logger logger.Logger) *Scheduler {
	return &Scheduler{
		events:   events,
		interval: interval,
		logger:   logger,
	}
}

// Start runs until ctx is done. The first pass runs immediately.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	done, err := s.events.CompletePastEvents(ctx)
	if err != nil {
		s.logger.Error("failed to complete past events",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range done {
		s.logger.Info("event completed",
			logger.String("event_id", e.ID),
			logger.String("title", e.Title),
		)
	}
}
