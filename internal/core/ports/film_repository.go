package ports

import (
	"context"
	"time"

	"github.com/swcatalog/film-manager/internal/core/domain"
)

// FilmPatch carries the mutable fields of a film update. Nil fields are left
// untouched.
type FilmPatch struct {
	Title        *string
	EpisodeID    *int
	OpeningCrawl *string
	Director     *string
	Producer     *string
	ReleaseDate  *time.Time
	Characters   *[]string
	Planets      *[]string
	Starships    *[]string
	Vehicles     *[]string
	Species      *[]string
	URL          *string
}

// FilmRepository defines the persistence contract for catalog films.
type FilmRepository interface {
	Create(ctx context.Context, film *domain.Film) (*domain.Film, error)
	// FindAll lists films; includeDeleted also returns soft-deleted rows,
	// which still occupy their episode ID.
	FindAll(ctx context.Context, includeDeleted bool) ([]domain.Film, error)
	FindByID(ctx context.Context, id int64) (*domain.Film, error)
	// FindByEpisodeID returns domain.ErrFilmNotFound on a miss.
	FindByEpisodeID(ctx context.Context, episodeID int) (*domain.Film, error)
	Update(ctx context.Context, id int64, patch FilmPatch) (int64, *domain.Film, error)
	Delete(ctx context.Context, id int64) (int64, error)
	// BulkCreate inserts films skipping any row that collides on a unique
	// constraint, and returns the number of rows actually inserted.
	BulkCreate(ctx context.Context, films []domain.Film) (int64, error)
}
