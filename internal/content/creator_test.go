package content_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmwiki/internal/content"
	"filmwiki/internal/domain"
	"filmwiki/internal/l10n"
	"filmwiki/internal/wiki"
	"filmwiki/internal/wiki/dokuwiki"
)

// constructor builds a creator variant; withData=false passes a missing
// primary argument.
type constructor func(withData bool, f wiki.Formatter, lang string) (content.Creator, error)

func wrap[C content.Creator](c C, err error) (content.Creator, error) { return c, err }

func items[E any](withData bool, e E) []domain.Item[E] {
	if !withData {
		return nil
	}
	return []domain.Item[E]{{Entity: &e}}
}

func variants() map[string]constructor {
	return map[string]constructor{
		"genre": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewGenreCreator(items(ok, domain.Genre{ID: 1, Name: domain.Text("Drama")}), f, lang))
		},
		"country": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewCountryCreator(items(ok, domain.Country{ID: 1, Name: domain.Text("France")}), f, lang))
		},
		"language": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewLanguageCreator(items(ok, domain.Language{ID: 1, Name: domain.Text("French")}), f, lang))
		},
		"certification": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewCertificationCreator(items(ok, domain.Certification{ID: 1, Name: domain.Text("FSK 12")}), f, lang))
		},
		"type": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewTypeCreator(items(ok, domain.WorkType{ID: 1, Name: domain.Text("Feature Film")}), f, lang))
		},
		"sound mix": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewSoundMixCreator(items(ok, domain.SoundMix{ID: 1, Name: domain.Text("Mono")}), f, lang))
		},
		"color": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewColorCreator(items(ok, domain.Color{ID: 1, Name: domain.Text("Color")}), f, lang))
		},
		"aspect ratio": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewAspectRatioCreator(items(ok, domain.AspectRatio{ID: 1, Ratio: "16:9"}), f, lang))
		},
		"camera": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewCameraCreator(items(ok, domain.Camera{ID: 1, Name: "Arri 35 BL"}), f, lang))
		},
		"laboratory": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewLaboratoryCreator(items(ok, domain.Laboratory{ID: 1, Name: "Technicolor"}), f, lang))
		},
		"film length": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewFilmLengthCreator(items(ok, domain.FilmLength{Meters: 3200}), f, lang))
		},
		"negative format": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewNegativeFormatCreator(items(ok, domain.FilmFormat{ID: 1, Name: domain.Text("35 mm")}), f, lang))
		},
		"printed film format": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewPrintedFilmFormatCreator(items(ok, domain.FilmFormat{ID: 1, Name: domain.Text("70 mm")}), f, lang))
		},
		"cinematographic process": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewCinematographicProcessCreator(items(ok, domain.CinematographicProcess{ID: 1, Name: domain.Text("Panavision")}), f, lang))
		},
		"field": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			v := ""
			if ok {
				v = "117 min"
			}
			return wrap(content.NewFieldCreator(l10n.Runtime, v, f, lang))
		},
		"company": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewCompanyCreator(content.RoleProduction, items(ok, domain.Company{ID: 1, Name: domain.Text("Gaumont")}), f, lang))
		},
		"location": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewLocationCreator(items(ok, domain.Location{ID: 1, Name: domain.Text("Paris")}), f, lang))
		},
		"director": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewDirectorCreator(items(ok, domain.Person{ID: 1, Name: "Agnès Varda"}), f, lang))
		},
		"filming date": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewFilmingDateCreator(items(ok, domain.Timespan{Start: day(2019, 5, 1)}), f, lang))
		},
		"production date": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewProductionDateCreator(items(ok, domain.Timespan{Start: day(2019, 5, 1)}), f, lang))
		},
		"connection": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			key := ""
			if ok {
				key = "_xxx"
			}
			return wrap(content.NewConnectionCreator(key, f, lang))
		},
		"cast and crew": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewCastAndCrewCreator(work(ok), f, lang))
		},
		"company credits": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewCompanyCreditsCreator(work(ok), f, lang))
		},
		"filming and production": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			return wrap(content.NewFilmingAndProductionCreator(work(ok), f, lang))
		},
		"movie": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			var m *domain.Movie
			if ok {
				m = &domain.Movie{Work: domain.Work{ID: 1, Title: domain.Text("M")}}
			}
			return wrap(content.NewMovieCreator(m, f, lang))
		},
		"series": func(ok bool, f wiki.Formatter, lang string) (content.Creator, error) {
			var s *domain.Series
			if ok {
				s = &domain.Series{Work: domain.Work{ID: 1, Title: domain.Text("S")}}
			}
			return wrap(content.NewSeriesCreator(s, f, lang))
		},
	}
}

func work(ok bool) *domain.Work {
	if !ok {
		return nil
	}
	return &domain.Work{ID: 1, Title: domain.Text("W")}
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestConstructors_Validation(t *testing.T) {
	f := dokuwiki.New()
	for name, build := range variants() {
		t.Run(name, func(t *testing.T) {
			c, err := build(true, f, "en")
			require.NoError(t, err)
			require.NotNil(t, c)

			_, err = build(false, f, "en")
			assert.ErrorIs(t, err, content.ErrValidation, "missing primary argument")

			_, err = build(true, nil, "en")
			assert.ErrorIs(t, err, content.ErrValidation, "missing formatter")

			_, err = build(true, f, "")
			assert.ErrorIs(t, err, content.ErrValidation, "empty language")

			_, err = build(true, f, "  ")
			assert.ErrorIs(t, err, content.ErrValidation, "blank language")
		})
	}
}

const (
	opPageName = "PageName"
	opPage     = "CreatePage"
	opInfoBox  = "CreateInfoBoxContent"
	opChapter  = "CreateChapterContent"
	opSection  = "CreateSectionContent"
)

func call(c content.Creator, op string) error {
	var err error
	switch op {
	case opPageName:
		_, err = c.PageName()
	case opPage:
		_, err = c.CreatePage()
	case opInfoBox:
		_, err = c.CreateInfoBoxContent()
	case opChapter:
		_, err = c.CreateChapterContent()
	case opSection:
		_, err = c.CreateSectionContent()
	}
	return err
}

func TestCapabilities(t *testing.T) {
	infoBox := []string{opInfoBox}
	section := []string{opSection}
	chapter := []string{opChapter}
	supported := map[string][]string{
		"genre":                   infoBox,
		"country":                 infoBox,
		"language":                infoBox,
		"certification":           infoBox,
		"type":                    infoBox,
		"sound mix":               infoBox,
		"color":                   infoBox,
		"aspect ratio":            infoBox,
		"camera":                  infoBox,
		"laboratory":              infoBox,
		"film length":             infoBox,
		"negative format":         infoBox,
		"printed film format":     infoBox,
		"cinematographic process": infoBox,
		"field":                   infoBox,
		"company":                 section,
		"location":                section,
		"director":                section,
		"filming date":            section,
		"production date":         section,
		"connection":              {opSection, opChapter},
		"cast and crew":           chapter,
		"company credits":         chapter,
		"filming and production":  chapter,
		"movie":                   {opPageName, opPage, opInfoBox},
		"series":                  {opPageName, opPage, opInfoBox},
	}
	all := []string{opPageName, opPage, opInfoBox, opChapter, opSection}

	f := dokuwiki.New()
	for name, build := range variants() {
		ops, ok := supported[name]
		require.True(t, ok, "no capabilities listed for %s", name)
		t.Run(name, func(t *testing.T) {
			c, err := build(true, f, "en")
			require.NoError(t, err)
			for _, op := range all {
				err := call(c, op)
				if slices.Contains(ops, op) {
					assert.NoError(t, err, op)
				} else {
					assert.ErrorIs(t, err, content.ErrUnsupportedOperation, op)
				}
			}
		})
	}
}
