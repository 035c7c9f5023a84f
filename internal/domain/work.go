package domain

import (
	"strconv"
	"strings"
	"time"
)

// StatusOK marks works that are complete enough to be published.
const StatusOK = "ok"

type Kind string

const (
	KindMovie  Kind = "movie"
	KindSeries Kind = "series"
)

func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindMovie:
		return KindMovie, true
	case KindSeries:
		return KindSeries, true
	}
	return "", false
}

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"` // ISO 4217
}

// Work carries everything movies and series share.
type Work struct {
	ID             int64         `json:"id"`
	Title          LocalizedText `json:"title"`
	Status         string        `json:"status"`
	LastUpdated    time.Time     `json:"last_updated"`
	Budget         *Money        `json:"budget,omitempty"`
	Gross          *Money        `json:"gross,omitempty"`
	RuntimeMinutes int           `json:"runtime_minutes,omitempty"`

	Types                    []Item[WorkType]               `json:"types,omitempty"`
	Genres                   []Item[Genre]                  `json:"genres,omitempty"`
	Certifications           []Item[Certification]          `json:"certifications,omitempty"`
	Countries                []Item[Country]                `json:"countries,omitempty"`
	Languages                []Item[Language]               `json:"languages,omitempty"`
	SoundMixes               []Item[SoundMix]               `json:"sound_mixes,omitempty"`
	Colors                   []Item[Color]                  `json:"colors,omitempty"`
	AspectRatios             []Item[AspectRatio]            `json:"aspect_ratios,omitempty"`
	Cameras                  []Item[Camera]                 `json:"cameras,omitempty"`
	Laboratories             []Item[Laboratory]             `json:"laboratories,omitempty"`
	FilmLengths              []Item[FilmLength]             `json:"film_lengths,omitempty"`
	NegativeFormats          []Item[FilmFormat]             `json:"negative_formats,omitempty"`
	CinematographicProcesses []Item[CinematographicProcess] `json:"cinematographic_processes,omitempty"`
	PrintedFilmFormats       []Item[FilmFormat]             `json:"printed_film_formats,omitempty"`

	Directors              []Item[Person]  `json:"directors,omitempty"`
	ProductionCompanies    []Item[Company] `json:"production_companies,omitempty"`
	Distributors           []Item[Company] `json:"distributors,omitempty"`
	SpecialEffectCompanies []Item[Company] `json:"special_effect_companies,omitempty"`
	OtherCompanies         []Item[Company] `json:"other_companies,omitempty"`

	Locations       []Item[Location] `json:"locations,omitempty"`
	FilmingDates    []Item[Timespan] `json:"filming_dates,omitempty"`
	ProductionDates []Item[Timespan] `json:"production_dates,omitempty"`
}

// PageKey is the stable id-derived page suffix: "_" plus the base36 id,
// zero-padded to three digits ("_00a", "_xyz"). Ids of 36^3 and above
// produce longer keys rather than colliding.
func (w *Work) PageKey() string { return PageKey(w.ID) }

func PageKey(id int64) string {
	s := strconv.FormatInt(id, 36)
	for len(s) < 3 {
		s = "0" + s
	}
	return "_" + s
}

type Movie struct {
	Work
	ReleaseDate *time.Time `json:"release_date,omitempty"`
}

type Series struct {
	Work
	FirstAired *time.Time `json:"first_aired,omitempty"`
	LastAired  *time.Time `json:"last_aired,omitempty"`
	Seasons    int        `json:"seasons,omitempty"`
	Episodes   int        `json:"episodes,omitempty"`
}
