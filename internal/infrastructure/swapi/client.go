// Package swapi fetches the external film catalog. The remote API returns
// the full set in a single response; no pagination is handled.
package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/swcatalog/film-manager/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Client is an HTTP client for the external catalog endpoint.
type Client struct {
	http     *http.Client
	filmsURL string
	log      zerolog.Logger
}

func NewClient(filmsURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http:     &http.Client{Timeout: timeout},
		filmsURL: filmsURL,
		log:      log,
	}
}

// filmRecord mirrors the remote snake_case naming; decoding into it is the
// normalization step to the local camelCase representation.
type filmRecord struct {
	Title        string   `json:"title"`
	EpisodeID    int      `json:"episode_id"`
	OpeningCrawl string   `json:"opening_crawl"`
	Director     string   `json:"director"`
	Producer     string   `json:"producer"`
	ReleaseDate  string   `json:"release_date"`
	Characters   []string `json:"characters"`
	Planets      []string `json:"planets"`
	Starships    []string `json:"starships"`
	Vehicles     []string `json:"vehicles"`
	Species      []string `json:"species"`
	URL          string   `json:"url"`
}

type filmsEnvelope struct {
	Results []filmRecord `json:"results"`
}

// FetchFilms performs a single GET against the configured URL and returns
// the normalized film set.
func (c *Client) FetchFilms(ctx context.Context) ([]domain.Film, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.filmsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}

	var envelope filmsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	films := make([]domain.Film, 0, len(envelope.Results))
	for _, rec := range envelope.Results {
		film, err := rec.toDomain()
		if err != nil {
			// A single unparsable record is skipped, not fatal.
			c.log.Warn().Err(err).Int("episode_id", rec.EpisodeID).Msg("skipping malformed catalog record")
			continue
		}
		films = append(films, film)
	}

	c.log.Debug().Int("count", len(films)).Str("url", c.filmsURL).Msg("catalog fetched")
	return films, nil
}

func (rec filmRecord) toDomain() (domain.Film, error) {
	release, err := time.Parse("2006-01-02", rec.ReleaseDate)
	if err != nil {
		return domain.Film{}, fmt.Errorf("parse release date %q: %w", rec.ReleaseDate, err)
	}
	return domain.Film{
		Title:        rec.Title,
		EpisodeID:    rec.EpisodeID,
		OpeningCrawl: rec.OpeningCrawl,
		Director:     rec.Director,
		Producer:     rec.Producer,
		ReleaseDate:  release,
		Characters:   rec.Characters,
		Planets:      rec.Planets,
		Starships:    rec.Starships,
		Vehicles:     rec.Vehicles,
		Species:      rec.Species,
		URL:          rec.URL,
	}, nil
}
