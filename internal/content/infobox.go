package content

import (
	"filmwiki/internal/domain"
	"filmwiki/internal/l10n"
	"filmwiki/internal/wiki"
)

// InfoBoxCreator renders one multi-valued attribute of a work as info-box
// rows. It supports CreateInfoBoxContent only.
type InfoBoxCreator[E any] struct {
	base
	key   l10n.Key
	items []domain.Item[E]
	value func(b base, e *E) string
}

func newInfoBoxCreator[E any](name string, key l10n.Key, items []domain.Item[E], f wiki.Formatter, lang string, value func(base, *E) string) (*InfoBoxCreator[E], error) {
	b, err := newBase(name, f, lang)
	if err != nil {
		return nil, err
	}
	if err := requireItems(name, items); err != nil {
		return nil, err
	}
	return &InfoBoxCreator[E]{base: b, key: key, items: items, value: value}, nil
}

func (c *InfoBoxCreator[E]) CreateInfoBoxContent() ([]string, error) {
	return infoBoxRows(c.f, c.heading(c.key), c.items, func(it domain.Item[E]) string {
		v := ""
		if it.Entity != nil {
			v = c.value(c.base, it.Entity)
		}
		return withDetails(v, it.Details)
	}), nil
}

func NewGenreCreator(items []domain.Item[domain.Genre], f wiki.Formatter, lang string) (*InfoBoxCreator[domain.Genre], error) {
	return newInfoBoxCreator("GenreCreator", l10n.Genre, items, f, lang, func(b base, g *domain.Genre) string {
		return b.entityLink("genre", g.ID, b.resolve(g.Name))
	})
}

// flagWidth is the image width of country flags, in percent.
const flagWidth = 30

func NewCountryCreator(items []domain.Item[domain.Country], f wiki.Formatter, lang string) (*InfoBoxCreator[domain.Country], error) {
	return newInfoBoxCreator("CountryCreator", l10n.Country, items, f, lang, func(b base, c *domain.Country) string {
		link := b.entityLink("country", c.ID, b.resolve(c.Name))
		if c.Flag == "" {
			return link
		}
		return b.f.Image([]string{"images", "flags"}, c.Flag, flagWidth) + " " + link
	})
}

func NewLanguageCreator(items []domain.Item[domain.Language], f wiki.Formatter, lang string) (*InfoBoxCreator[domain.Language], error) {
	return newInfoBoxCreator("LanguageCreator", l10n.Language, items, f, lang, func(b base, l *domain.Language) string {
		return b.entityLink("language", l.ID, b.resolve(l.Name))
	})
}

func NewCertificationCreator(items []domain.Item[domain.Certification], f wiki.Formatter, lang string) (*InfoBoxCreator[domain.Certification], error) {
	return newInfoBoxCreator("CertificationCreator", l10n.Certification, items, f, lang, func(b base, c *domain.Certification) string {
		if c.Country == nil {
			return b.resolve(c.Name)
		}
		return b.resolve(c.Name) + " (" + b.resolve(c.Country.Name) + ")"
	})
}

func NewTypeCreator(items []domain.Item[domain.WorkType], f wiki.Formatter, lang string) (*InfoBoxCreator[domain.WorkType], error) {
	return newInfoBoxCreator("TypeCreator", l10n.Type, items, f, lang, func(b base, t *domain.WorkType) string {
		return b.resolve(t.Name)
	})
}

func NewSoundMixCreator(items []domain.Item[domain.SoundMix], f wiki.Formatter, lang string) (*InfoBoxCreator[domain.SoundMix], error) {
	return newInfoBoxCreator("SoundMixCreator", l10n.SoundMix, items, f, lang, func(b base, s *domain.SoundMix) string {
		return b.resolve(s.Name)
	})
}

func NewColorCreator(items []domain.Item[domain.Color], f wiki.Formatter, lang string) (*InfoBoxCreator[domain.Color], error) {
	return newInfoBoxCreator("ColorCreator", l10n.Color, items, f, lang, func(b base, c *domain.Color) string {
		return b.resolve(c.Name)
	})
}

func NewAspectRatioCreator(items []domain.Item[domain.AspectRatio], f wiki.Formatter, lang string) (*InfoBoxCreator[domain.AspectRatio], error) {
	return newInfoBoxCreator("AspectRatioCreator", l10n.AspectRatio, items, f, lang, func(_ base, a *domain.AspectRatio) string {
		return a.Ratio
	})
}

func NewCameraCreator(items []domain.Item[domain.Camera], f wiki.Formatter, lang string) (*InfoBoxCreator[domain.Camera], error) {
	return newInfoBoxCreator("CameraCreator", l10n.Camera, items, f, lang, func(_ base, c *domain.Camera) string {
		return c.Name
	})
}

func NewLaboratoryCreator(items []domain.Item[domain.Laboratory], f wiki.Formatter, lang string) (*InfoBoxCreator[domain.Laboratory], error) {
	return newInfoBoxCreator("LaboratoryCreator", l10n.Laboratory, items, f, lang, func(_ base, l *domain.Laboratory) string {
		return l.Name
	})
}

func NewFilmLengthCreator(items []domain.Item[domain.FilmLength], f wiki.Formatter, lang string) (*InfoBoxCreator[domain.FilmLength], error) {
	return newInfoBoxCreator("FilmLengthCreator", l10n.FilmLength, items, f, lang, func(b base, l *domain.FilmLength) string {
		return l10n.FormatNumber(b.lang, int64(l.Meters)) + " m"
	})
}

func NewNegativeFormatCreator(items []domain.Item[domain.FilmFormat], f wiki.Formatter, lang string) (*InfoBoxCreator[domain.FilmFormat], error) {
	return newInfoBoxCreator("NegativeFormatCreator", l10n.NegativeFormat, items, f, lang, filmFormat)
}

func NewPrintedFilmFormatCreator(items []domain.Item[domain.FilmFormat], f wiki.Formatter, lang string) (*InfoBoxCreator[domain.FilmFormat], error) {
	return newInfoBoxCreator("PrintedFilmFormatCreator", l10n.PrintedFilmFormat, items, f, lang, filmFormat)
}

func filmFormat(b base, ff *domain.FilmFormat) string { return b.resolve(ff.Name) }

func NewCinematographicProcessCreator(items []domain.Item[domain.CinematographicProcess], f wiki.Formatter, lang string) (*InfoBoxCreator[domain.CinematographicProcess], error) {
	return newInfoBoxCreator("CinematographicProcessCreator", l10n.CinematographicProcess, items, f, lang, func(b base, p *domain.CinematographicProcess) string {
		return b.resolve(p.Name)
	})
}

// FieldCreator renders a single scalar fact of a work (title, budget, ...)
// as one info-box row.
type FieldCreator struct {
	base
	key   l10n.Key
	value string
}

func NewFieldCreator(key l10n.Key, value string, f wiki.Formatter, lang string) (*FieldCreator, error) {
	b, err := newBase("FieldCreator", f, lang)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, invalid("FieldCreator", "heading key is required")
	}
	if value == "" {
		return nil, invalid("FieldCreator", "value is required")
	}
	return &FieldCreator{base: b, key: key, value: value}, nil
}

func (c *FieldCreator) CreateInfoBoxContent() ([]string, error) {
	return []string{c.f.TableRow(c.heading(c.key), c.value)}, nil
}
