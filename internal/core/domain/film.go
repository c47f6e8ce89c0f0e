package domain

import (
	"time"

	"github.com/uptrace/bun"
)

// Film is a catalog entry. The episode ID is the natural key: it is unique
// across live and soft-deleted rows, so a deleted film still blocks
// re-insertion under the same episode. Titles are not required to be unique.
type Film struct {
	bun.BaseModel `bun:"table:films,alias:flm"`

	ID           int64      `bun:"id,pk,autoincrement" json:"id"`
	Title        string     `bun:"title,notnull" json:"title"`
	EpisodeID    int        `bun:"episode_id,notnull,unique" json:"episodeId"`
	OpeningCrawl string     `bun:"opening_crawl,notnull" json:"openingCrawl"`
	Director     string     `bun:"director,notnull" json:"director"`
	Producer     string     `bun:"producer,notnull" json:"producer"`
	ReleaseDate  time.Time  `bun:"release_date,notnull" json:"releaseDate"`
	Characters   []string   `bun:"characters,array" json:"characters,omitempty"`
	Planets      []string   `bun:"planets,array" json:"planets,omitempty"`
	Starships    []string   `bun:"starships,array" json:"starships,omitempty"`
	Vehicles     []string   `bun:"vehicles,array" json:"vehicles,omitempty"`
	Species      []string   `bun:"species,array" json:"species,omitempty"`
	URL          string     `bun:"url" json:"url,omitempty"`
	CreatedAt    time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt"`
	UpdatedAt    time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updatedAt"`
	DeletedAt    *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"-"`
}
