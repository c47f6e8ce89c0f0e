// Package sync runs the catalog reconciliation on a fixed interval in the
// background, in addition to the admin-triggered endpoint.
package sync

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/swcatalog/film-manager/internal/core/domain"
	"github.com/swcatalog/film-manager/internal/core/ports"
)

// Scheduler periodically invokes the film synchronization use case. It stops
// when its context is cancelled.
type Scheduler struct {
	interval time.Duration
	films    ports.FilmService
	log      zerolog.Logger
}

// NewScheduler creates a Scheduler. interval must be > 0; callers that want
// no background syncing simply never construct one.
func NewScheduler(interval time.Duration, films ports.FilmService, log zerolog.Logger) *Scheduler {
	return &Scheduler{interval: interval, films: films, log: log}
}

// Start launches the worker goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("background catalog sync enabled")

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("background catalog sync stopped")
			return
		case <-ticker.C:
			result, err := s.films.Sync(ctx)
			switch {
			case errors.Is(err, domain.ErrSyncInProgress):
				s.log.Debug().Msg("scheduled sync skipped, lease held")
			case err != nil:
				s.log.Error().Err(err).Msg("scheduled sync failed")
			default:
				s.log.Info().Int64("created", result.Created).Msg("scheduled sync completed")
			}
		}
	}
}
