package content

import (
	"time"

	"filmwiki/internal/domain"
	"filmwiki/internal/l10n"
	"filmwiki/internal/wiki"
)

const (
	boxWidth    = 350
	labelColumn = 40
	valueColumn = 60
	dateLayout  = "2006-01-02"
)

type PageOption func(*pageOptions)

type pageOptions struct {
	author string
	now    func() time.Time
}

// WithAuthor sets the author named in the page header comment.
func WithAuthor(name string) PageOption {
	return func(o *pageOptions) { o.author = name }
}

// WithClock sets the clock used for the generation date in the header.
func WithClock(now func() time.Time) PageOption {
	return func(o *pageOptions) { o.now = now }
}

// step yields the creator for one info-box entry, or nil when the work has
// nothing to show for it.
type step func() (Creator, error)

// page holds the document assembly shared by all root works.
type page struct {
	base
	work *domain.Work
	opts pageOptions
}

func newPage(name string, w *domain.Work, f wiki.Formatter, lang string, opts []PageOption) (page, error) {
	b, err := newBase(name, f, lang)
	if err != nil {
		return page{}, err
	}
	// Nested creators are built during assembly; reject their invalid
	// input now so CreatePage cannot fail on it later.
	if err := checkTimespans(name, w.FilmingDates); err != nil {
		return page{}, err
	}
	if err := checkTimespans(name, w.ProductionDates); err != nil {
		return page{}, err
	}
	o := pageOptions{author: "filmwiki", now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return page{base: b, work: w, opts: o}, nil
}

func (p page) title() string { return p.resolve(p.work.Title) }

// PageName is derived from the localized title and the page key, so equal
// inputs always give the same name.
func (p page) PageName() (string, error) {
	return p.f.AsFilename(p.title() + " " + p.work.PageKey()), nil
}

func (p page) field(k l10n.Key, value string) step {
	return func() (Creator, error) {
		if value == "" {
			return nil, nil
		}
		return NewFieldCreator(k, value, p.f, p.lang)
	}
}

func group[E any](p page, items []domain.Item[E], build func([]domain.Item[E], wiki.Formatter, string) (*InfoBoxCreator[E], error)) step {
	return func() (Creator, error) {
		if len(items) == 0 {
			return nil, nil
		}
		return build(items, p.f, p.lang)
	}
}

func (p page) date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return l10n.FormatDate(p.lang, *t)
}

func (p page) money(m *domain.Money) string {
	if m == nil {
		return ""
	}
	return l10n.FormatMoney(p.lang, *m)
}

func (p page) count(n int) string {
	if n <= 0 {
		return ""
	}
	return l10n.FormatNumber(p.lang, int64(n))
}

// infoBox renders the summary box. dates and counts are the entries that
// differ between kinds of works; they go after the type and after the
// language rows respectively.
func (p page) infoBox(dates, counts []step) ([]string, error) {
	w := p.work
	original := ""
	if w.Title.Original != p.title() {
		original = w.Title.Original
	}
	runtime := ""
	if w.RuntimeMinutes > 0 {
		runtime = p.count(w.RuntimeMinutes) + " " + p.heading(l10n.Minutes)
	}

	steps := []step{
		p.field(l10n.Title, p.title()),
		p.field(l10n.OriginalTitle, original),
		group(p, w.Types, NewTypeCreator),
	}
	steps = append(steps, dates...)
	steps = append(steps,
		group(p, w.Genres, NewGenreCreator),
		group(p, w.Certifications, NewCertificationCreator),
		group(p, w.Countries, NewCountryCreator),
		group(p, w.Languages, NewLanguageCreator),
	)
	steps = append(steps, counts...)
	steps = append(steps,
		p.field(l10n.Budget, p.money(w.Budget)),
		p.field(l10n.Gross, p.money(w.Gross)),
		p.field(l10n.Runtime, runtime),
		group(p, w.SoundMixes, NewSoundMixCreator),
		group(p, w.Colors, NewColorCreator),
		group(p, w.AspectRatios, NewAspectRatioCreator),
		group(p, w.Cameras, NewCameraCreator),
		group(p, w.Laboratories, NewLaboratoryCreator),
		group(p, w.FilmLengths, NewFilmLengthCreator),
		group(p, w.NegativeFormats, NewNegativeFormatCreator),
		group(p, w.CinematographicProcesses, NewCinematographicProcessCreator),
		group(p, w.PrintedFilmFormats, NewPrintedFilmFormatCreator),
	)

	lines := []string{p.f.BeginBox(boxWidth, wiki.AlignRight), p.f.DefineTable(boxWidth, labelColumn, valueColumn)}
	for _, s := range steps {
		c, err := s()
		if err != nil {
			return nil, err
		}
		if c == nil {
			continue
		}
		rows, err := c.CreateInfoBoxContent()
		if err != nil {
			return nil, err
		}
		lines = append(lines, rows...)
	}
	return append(lines, p.f.EndBox(), ""), nil
}

func (p page) header() []string {
	w := p.work
	return []string{
		p.f.DisableCache(),
		p.f.DisableTOC(),
		p.f.BeginComment(),
		"original title: " + w.Title.Original,
		"author: " + p.opts.author,
		"generated: " + p.opts.now().Format(dateLayout),
		"status: " + w.Status + ", last updated: " + w.LastUpdated.Format(dateLayout),
		p.f.EndComment(),
		"",
	}
}

func (p page) chapters() ([]string, error) {
	builders := []func(*domain.Work, wiki.Formatter, string) (*ChapterCreator, error){
		NewCastAndCrewCreator,
		NewCompanyCreditsCreator,
		NewFilmingAndProductionCreator,
	}
	var lines []string
	for _, build := range builders {
		c, err := build(p.work, p.f, p.lang)
		if err != nil {
			return nil, err
		}
		chapter, err := c.CreateChapterContent()
		if err != nil {
			return nil, err
		}
		lines = append(lines, chapter...)
	}

	conn, err := NewConnectionCreator(p.work.PageKey(), p.f, p.lang)
	if err != nil {
		return nil, err
	}
	chapter, err := conn.CreateChapterContent()
	if err != nil {
		return nil, err
	}
	return append(lines, chapter...), nil
}

// assemble concatenates header, title, info box, chapters and footer. It
// returns either the whole document or an error and no lines.
func (p page) assemble(dates, counts []step) ([]string, error) {
	box, err := p.infoBox(dates, counts)
	if err != nil {
		return nil, err
	}
	chapters, err := p.chapters()
	if err != nil {
		return nil, err
	}

	lines := p.header()
	lines = append(lines, p.f.Heading(1, p.title()), "")
	lines = append(lines, box...)
	lines = append(lines, chapters...)
	return append(lines, ""), nil
}
