package content

import (
	"filmwiki/internal/domain"
	"filmwiki/internal/l10n"
	"filmwiki/internal/wiki"
)

// MovieCreator assembles the page of a movie. It supports PageName,
// CreatePage and CreateInfoBoxContent.
type MovieCreator struct {
	page
	movie *domain.Movie
}

func NewMovieCreator(m *domain.Movie, f wiki.Formatter, lang string, opts ...PageOption) (*MovieCreator, error) {
	if m == nil {
		return nil, invalid("MovieCreator", "movie is required")
	}
	p, err := newPage("MovieCreator", &m.Work, f, lang, opts)
	if err != nil {
		return nil, err
	}
	return &MovieCreator{page: p, movie: m}, nil
}

func (c *MovieCreator) dates() []step {
	return []step{c.field(l10n.ReleaseDate, c.date(c.movie.ReleaseDate))}
}

func (c *MovieCreator) CreateInfoBoxContent() ([]string, error) {
	return c.infoBox(c.dates(), nil)
}

func (c *MovieCreator) CreatePage() ([]string, error) {
	return c.assemble(c.dates(), nil)
}
