package handler

import (
	"time"

	"github.com/swcatalog/film-manager/internal/core/ports"
)

const releaseDateLayout = "2006-01-02"

type createFilmRequest struct {
	Title        string   `json:"title" validate:"required"`
	EpisodeID    int      `json:"episodeId" validate:"required,gt=0"`
	OpeningCrawl string   `json:"openingCrawl" validate:"required"`
	Director     string   `json:"director" validate:"required"`
	Producer     string   `json:"producer" validate:"required"`
	ReleaseDate  string   `json:"releaseDate" validate:"required,datetime=2006-01-02"`
	Characters   []string `json:"characters,omitempty"`
	Planets      []string `json:"planets,omitempty"`
	Starships    []string `json:"starships,omitempty"`
	Vehicles     []string `json:"vehicles,omitempty"`
	Species      []string `json:"species,omitempty"`
	URL          string   `json:"url,omitempty" validate:"omitempty,url"`
}

func (r createFilmRequest) toInput() (ports.CreateFilmInput, error) {
	release, err := time.Parse(releaseDateLayout, r.ReleaseDate)
	if err != nil {
		return ports.CreateFilmInput{}, err
	}
	return ports.CreateFilmInput{
		Title:        r.Title,
		EpisodeID:    r.EpisodeID,
		OpeningCrawl: r.OpeningCrawl,
		Director:     r.Director,
		Producer:     r.Producer,
		ReleaseDate:  release,
		Characters:   r.Characters,
		Planets:      r.Planets,
		Starships:    r.Starships,
		Vehicles:     r.Vehicles,
		Species:      r.Species,
		URL:          r.URL,
	}, nil
}

// updateFilmRequest is a partial update: absent fields are left untouched.
type updateFilmRequest struct {
	Title        *string   `json:"title,omitempty"`
	EpisodeID    *int      `json:"episodeId,omitempty" validate:"omitempty,gt=0"`
	OpeningCrawl *string   `json:"openingCrawl,omitempty"`
	Director     *string   `json:"director,omitempty"`
	Producer     *string   `json:"producer,omitempty"`
	ReleaseDate  *string   `json:"releaseDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Characters   *[]string `json:"characters,omitempty"`
	Planets      *[]string `json:"planets,omitempty"`
	Starships    *[]string `json:"starships,omitempty"`
	Vehicles     *[]string `json:"vehicles,omitempty"`
	Species      *[]string `json:"species,omitempty"`
	URL          *string   `json:"url,omitempty" validate:"omitempty,url"`
}

func (r updateFilmRequest) toPatch() (ports.FilmPatch, error) {
	patch := ports.FilmPatch{
		Title:        r.Title,
		EpisodeID:    r.EpisodeID,
		OpeningCrawl: r.OpeningCrawl,
		Director:     r.Director,
		Producer:     r.Producer,
		Characters:   r.Characters,
		Planets:      r.Planets,
		Starships:    r.Starships,
		Vehicles:     r.Vehicles,
		Species:      r.Species,
		URL:          r.URL,
	}
	if r.ReleaseDate != nil {
		release, err := time.Parse(releaseDateLayout, *r.ReleaseDate)
		if err != nil {
			return ports.FilmPatch{}, err
		}
		patch.ReleaseDate = &release
	}
	return patch, nil
}
