package ports

import (
	"context"

	"github.com/swcatalog/film-manager/internal/core/domain"
)

// CatalogClient fetches the full film set from the external read-only
// catalog API in a single call. The implementation is responsible for
// normalizing the remote field naming to the local representation.
type CatalogClient interface {
	FetchFilms(ctx context.Context) ([]domain.Film, error)
}
