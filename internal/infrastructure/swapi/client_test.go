package swapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

const filmsPayload = `{
  "count": 2,
  "results": [
    {
      "title": "A New Hope",
      "episode_id": 4,
      "opening_crawl": "It is a period of civil war.",
      "director": "George Lucas",
      "producer": "Gary Kurtz, Rick McCallum",
      "release_date": "1977-05-25",
      "characters": ["https://swapi.dev/api/people/1/"],
      "planets": ["https://swapi.dev/api/planets/1/"],
      "starships": ["https://swapi.dev/api/starships/2/"],
      "vehicles": ["https://swapi.dev/api/vehicles/4/"],
      "species": ["https://swapi.dev/api/species/1/"],
      "url": "https://swapi.dev/api/films/1/"
    },
    {
      "title": "The Empire Strikes Back",
      "episode_id": 5,
      "opening_crawl": "It is a dark time for the Rebellion.",
      "director": "Irvin Kershner",
      "producer": "Gary Kurtz, Rick McCallum",
      "release_date": "1980-05-17",
      "characters": [],
      "planets": [],
      "starships": [],
      "vehicles": [],
      "species": [],
      "url": "https://swapi.dev/api/films/2/"
    }
  ]
}`

func TestClient_FetchFilms_NormalizesFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(filmsPayload))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zerolog.Nop())
	films, err := client.FetchFilms(context.Background())
	if err != nil {
		t.Fatalf("FetchFilms returned error: %v", err)
	}
	if len(films) != 2 {
		t.Fatalf("expected 2 films, got %d", len(films))
	}

	first := films[0]
	if first.EpisodeID != 4 {
		t.Fatalf("episode_id not mapped: %d", first.EpisodeID)
	}
	if first.OpeningCrawl != "It is a period of civil war." {
		t.Fatalf("opening_crawl not mapped: %q", first.OpeningCrawl)
	}
	if got := first.ReleaseDate.Format("2006-01-02"); got != "1977-05-25" {
		t.Fatalf("release_date not parsed: %s", got)
	}
	if len(first.Characters) != 1 {
		t.Fatalf("characters not mapped: %v", first.Characters)
	}
}

func TestClient_FetchFilms_SkipsMalformedRecord(t *testing.T) {
	payload := `{"results": [
	  {"title": "Broken", "episode_id": 9, "release_date": "not-a-date"},
	  {"title": "Fine", "episode_id": 6, "release_date": "1983-05-25"}
	]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	films, err := NewClient(srv.URL, time.Second, zerolog.Nop()).FetchFilms(context.Background())
	if err != nil {
		t.Fatalf("FetchFilms returned error: %v", err)
	}
	if len(films) != 1 || films[0].EpisodeID != 6 {
		t.Fatalf("expected only the well-formed record, got %+v", films)
	}
}

func TestClient_FetchFilms_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, time.Second, zerolog.Nop()).FetchFilms(context.Background()); err == nil {
		t.Fatalf("expected error on non-200 response")
	}
}
