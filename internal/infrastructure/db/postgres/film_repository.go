package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/swcatalog/film-manager/internal/core/domain"
	"github.com/swcatalog/film-manager/internal/core/ports"
)

// FilmRepository implements ports.FilmRepository on Postgres.
type FilmRepository struct {
	db *bun.DB
}

func NewFilmRepository(db *bun.DB) *FilmRepository {
	return &FilmRepository{db: db}
}

func (r *FilmRepository) Create(ctx context.Context, film *domain.Film) (*domain.Film, error) {
	now := time.Now().UTC()
	film.CreatedAt = now
	film.UpdatedAt = now

	if _, err := r.db.NewInsert().Model(film).Returning("*").Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrFilmExists
		}
		return nil, fmt.Errorf("insert film: %w", err)
	}
	return film, nil
}

func (r *FilmRepository) FindAll(ctx context.Context, includeDeleted bool) ([]domain.Film, error) {
	var films []domain.Film
	q := r.db.NewSelect().Model(&films).Order("episode_id ASC")
	if includeDeleted {
		q = q.WhereAllWithDeleted()
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("find films: %w", err)
	}
	return films, nil
}

func (r *FilmRepository) FindByID(ctx context.Context, id int64) (*domain.Film, error) {
	film := new(domain.Film)
	if err := r.db.NewSelect().Model(film).Where("flm.id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFilmNotFound
		}
		return nil, fmt.Errorf("find film by id: %w", err)
	}
	return film, nil
}

// FindByEpisodeID also matches soft-deleted rows: the natural key stays
// occupied after a soft delete.
func (r *FilmRepository) FindByEpisodeID(ctx context.Context, episodeID int) (*domain.Film, error) {
	film := new(domain.Film)
	err := r.db.NewSelect().Model(film).
		WhereAllWithDeleted().
		Where("flm.episode_id = ?", episodeID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFilmNotFound
		}
		return nil, fmt.Errorf("find film by episode: %w", err)
	}
	return film, nil
}

func (r *FilmRepository) Update(ctx context.Context, id int64, patch ports.FilmPatch) (int64, *domain.Film, error) {
	updated := new(domain.Film)
	q := r.db.NewUpdate().Model(updated).
		Set("updated_at = ?", time.Now().UTC()).
		Where("flm.id = ?", id).
		Where("flm.deleted_at IS NULL").
		Returning("*")

	if patch.Title != nil {
		q = q.Set("title = ?", *patch.Title)
	}
	if patch.EpisodeID != nil {
		q = q.Set("episode_id = ?", *patch.EpisodeID)
	}
	if patch.OpeningCrawl != nil {
		q = q.Set("opening_crawl = ?", *patch.OpeningCrawl)
	}
	if patch.Director != nil {
		q = q.Set("director = ?", *patch.Director)
	}
	if patch.Producer != nil {
		q = q.Set("producer = ?", *patch.Producer)
	}
	if patch.ReleaseDate != nil {
		q = q.Set("release_date = ?", *patch.ReleaseDate)
	}
	if patch.Characters != nil {
		q = q.Set("characters = ?", pgdialect.Array(*patch.Characters))
	}
	if patch.Planets != nil {
		q = q.Set("planets = ?", pgdialect.Array(*patch.Planets))
	}
	if patch.Starships != nil {
		q = q.Set("starships = ?", pgdialect.Array(*patch.Starships))
	}
	if patch.Vehicles != nil {
		q = q.Set("vehicles = ?", pgdialect.Array(*patch.Vehicles))
	}
	if patch.Species != nil {
		q = q.Set("species = ?", pgdialect.Array(*patch.Species))
	}
	if patch.URL != nil {
		q = q.Set("url = ?", *patch.URL)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, nil, domain.ErrFilmExists
		}
		return 0, nil, fmt.Errorf("update film: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, nil, fmt.Errorf("update film: %w", err)
	}
	if affected == 0 {
		return 0, nil, nil
	}
	return affected, updated, nil
}

func (r *FilmRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.NewDelete().Model((*domain.Film)(nil)).Where("flm.id = ?", id).Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete film: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete film: %w", err)
	}
	return affected, nil
}

// BulkCreate inserts films in one statement, skipping rows that collide on a
// unique constraint so a race with a concurrent create cannot abort the
// whole batch.
func (r *FilmRepository) BulkCreate(ctx context.Context, films []domain.Film) (int64, error) {
	if len(films) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	for i := range films {
		films[i].CreatedAt = now
		films[i].UpdatedAt = now
	}

	res, err := r.db.NewInsert().Model(&films).On("CONFLICT DO NOTHING").Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("bulk insert films: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("bulk insert films: %w", err)
	}
	return affected, nil
}
