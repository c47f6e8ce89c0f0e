package ports

import (
	"context"
	"time"

	"github.com/swcatalog/film-manager/internal/core/domain"
)

// CreateFilmInput carries an admin-initiated film creation.
type CreateFilmInput struct {
	Title        string
	EpisodeID    int
	OpeningCrawl string
	Director     string
	Producer     string
	ReleaseDate  time.Time
	Characters   []string
	Planets      []string
	Starships    []string
	Vehicles     []string
	Species      []string
	URL          string
}

// SyncResult reports the outcome of a synchronization run.
type SyncResult struct {
	// Created is the number of films actually inserted.
	Created int64  `json:"created"`
	Message string `json:"message"`
}

// FilmService defines the catalog use cases.
type FilmService interface {
	Create(ctx context.Context, input CreateFilmInput) (*domain.Film, error)
	GetAll(ctx context.Context) ([]domain.Film, error)
	GetByID(ctx context.Context, id int64) (*domain.Film, error)
	Update(ctx context.Context, id int64, patch FilmPatch) (*domain.Film, error)
	Remove(ctx context.Context, id int64) error
	// Sync reconciles the local catalog against the external source,
	// inserting only films whose episode ID is not present locally
	// (soft-deleted rows count as present).
	Sync(ctx context.Context) (*SyncResult, error)
}
