package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/swcatalog/film-manager/internal/pkg/metrics"
	"github.com/swcatalog/film-manager/internal/core/domain"
	"github.com/swcatalog/film-manager/internal/core/ports"
)

// SyncGuard abstracts the lease that keeps synchronization runs from
// overlapping (Redis).
type SyncGuard interface {
	// Acquire takes the lease; false means another run holds it.
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// FilmService implements the catalog use cases, including reconciliation
// against the external source.
type FilmService struct {
	films   ports.FilmRepository
	catalog ports.CatalogClient
	guard   SyncGuard
	log     zerolog.Logger
}

func NewFilmService(films ports.FilmRepository, catalog ports.CatalogClient, guard SyncGuard, log zerolog.Logger) *FilmService {
	return &FilmService{films: films, catalog: catalog, guard: guard, log: log}
}

// Create adds a film by hand. The episode ID is the natural key: a film with
// the same episode already present (even soft-deleted) is rejected. Titles
// are not required to be unique.
func (s *FilmService) Create(ctx context.Context, input ports.CreateFilmInput) (*domain.Film, error) {
	_, err := s.films.FindByEpisodeID(ctx, input.EpisodeID)
	if err == nil {
		return nil, domain.ErrFilmExists
	}
	if !errors.Is(err, domain.ErrFilmNotFound) {
		return nil, err
	}

	created, err := s.films.Create(ctx, &domain.Film{
		Title:        input.Title,
		EpisodeID:    input.EpisodeID,
		OpeningCrawl: input.OpeningCrawl,
		Director:     input.Director,
		Producer:     input.Producer,
		ReleaseDate:  input.ReleaseDate,
		Characters:   input.Characters,
		Planets:      input.Planets,
		Starships:    input.Starships,
		Vehicles:     input.Vehicles,
		Species:      input.Species,
		URL:          input.URL,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("film_id", created.ID).Int("episode_id", created.EpisodeID).Msg("film created")
	return created, nil
}

func (s *FilmService) GetAll(ctx context.Context) ([]domain.Film, error) {
	return s.films.FindAll(ctx, false)
}

func (s *FilmService) GetByID(ctx context.Context, id int64) (*domain.Film, error) {
	return s.films.FindByID(ctx, id)
}

func (s *FilmService) Update(ctx context.Context, id int64, patch ports.FilmPatch) (*domain.Film, error) {
	affected, updated, err := s.films.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrFilmNotFound
	}
	return updated, nil
}

func (s *FilmService) Remove(ctx context.Context, id int64) error {
	affected, err := s.films.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrFilmNotFound
	}

	s.log.Info().Int64("film_id", id).Msg("film deleted")
	return nil
}

// Sync reconciles the local catalog against the external source. It is
// one-directional and insert-only: existing rows are never updated or
// deleted, and a soft-deleted row still blocks re-insertion of its episode.
// Re-running after a successful run with no new upstream data is a no-op.
func (s *FilmService) Sync(ctx context.Context) (*ports.SyncResult, error) {
	if s.guard != nil {
		ok, err := s.guard.Acquire(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("sync lease check failed, proceeding anyway")
		} else if !ok {
			metrics.SyncRunsTotal.WithLabelValues("skipped").Inc()
			return nil, domain.ErrSyncInProgress
		} else {
			defer func() {
				if err := s.guard.Release(ctx); err != nil {
					s.log.Warn().Err(err).Msg("failed to release sync lease")
				}
			}()
		}
	}

	start := time.Now()
	result, err := s.reconcile(ctx)
	metrics.SyncDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if result.Created == 0 {
		metrics.SyncRunsTotal.WithLabelValues("noop").Inc()
	} else {
		metrics.SyncRunsTotal.WithLabelValues("synced").Inc()
		metrics.FilmsSyncedTotal.Add(float64(result.Created))
	}
	return result, nil
}

func (s *FilmService) reconcile(ctx context.Context) (*ports.SyncResult, error) {
	// Soft-deleted rows still occupy their episode ID and must not be
	// recreated, so the local snapshot includes them.
	local, err := s.films.FindAll(ctx, true)
	if err != nil {
		return nil, err
	}

	known := make(map[int]struct{}, len(local))
	for _, f := range local {
		known[f.EpisodeID] = struct{}{}
	}

	remote, err := s.catalog.FetchFilms(ctx)
	if err != nil {
		return nil, err
	}

	missing := make([]domain.Film, 0, len(remote))
	for _, f := range remote {
		if _, ok := known[f.EpisodeID]; !ok {
			missing = append(missing, f)
		}
	}

	if len(missing) == 0 {
		s.log.Info().Int("local", len(local)).Int("remote", len(remote)).Msg("catalog already up to date")
		return &ports.SyncResult{Message: "No new films to synchronize"}, nil
	}

	// Conflict-ignoring insert: a film created concurrently between the
	// snapshot and this write is skipped, not fatal.
	created, err := s.films.BulkCreate(ctx, missing)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("created", created).Int("remote", len(remote)).Msg("catalog synchronized")
	return &ports.SyncResult{Created: created, Message: "Films successfully synchronized"}, nil
}
