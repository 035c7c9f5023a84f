package domain

// Entities are read-only snapshots loaded by the repository.

type Genre struct {
	ID   int64         `json:"id"`
	Name LocalizedText `json:"name"`
}

type Country struct {
	ID   int64         `json:"id"`
	Name LocalizedText `json:"name"`
	Flag string        `json:"flag,omitempty"` // image file name
}

type Language struct {
	ID   int64         `json:"id"`
	Name LocalizedText `json:"name"`
}

type Company struct {
	ID   int64         `json:"id"`
	Name LocalizedText `json:"name"`
}

type Certification struct {
	ID      int64         `json:"id"`
	Name    LocalizedText `json:"name"`
	Country *Country      `json:"country,omitempty"`
}

type Location struct {
	ID   int64         `json:"id"`
	Name LocalizedText `json:"name"`
}

type FilmFormat struct {
	ID   int64         `json:"id"`
	Name LocalizedText `json:"name"`
}

type CinematographicProcess struct {
	ID   int64         `json:"id"`
	Name LocalizedText `json:"name"`
}

type AspectRatio struct {
	ID    int64  `json:"id"`
	Ratio string `json:"ratio"` // e.g. "16:9", "2.39 : 1"
}

type Camera struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Laboratory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SoundMix struct {
	ID   int64         `json:"id"`
	Name LocalizedText `json:"name"`
}

type Color struct {
	ID   int64         `json:"id"`
	Name LocalizedText `json:"name"`
}

// WorkType classifies a work ("Feature Film", "Mini-Series", ...).
type WorkType struct {
	ID   int64         `json:"id"`
	Name LocalizedText `json:"name"`
}

type Person struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FilmLength is the physical length of a print in meters.
type FilmLength struct {
	Meters int `json:"meters"`
}
