package content

import (
	"filmwiki/internal/domain"
	"filmwiki/internal/l10n"
	"filmwiki/internal/wiki"
)

// SeriesCreator assembles the page of a series. Besides the movie entries
// its info box shows the airing dates and the season and episode counts.
type SeriesCreator struct {
	page
	series *domain.Series
}

func NewSeriesCreator(s *domain.Series, f wiki.Formatter, lang string, opts ...PageOption) (*SeriesCreator, error) {
	if s == nil {
		return nil, invalid("SeriesCreator", "series is required")
	}
	p, err := newPage("SeriesCreator", &s.Work, f, lang, opts)
	if err != nil {
		return nil, err
	}
	return &SeriesCreator{page: p, series: s}, nil
}

func (c *SeriesCreator) dates() []step {
	return []step{
		c.field(l10n.FirstAired, c.date(c.series.FirstAired)),
		c.field(l10n.LastAired, c.date(c.series.LastAired)),
	}
}

func (c *SeriesCreator) counts() []step {
	return []step{
		c.field(l10n.Seasons, c.count(c.series.Seasons)),
		c.field(l10n.Episodes, c.count(c.series.Episodes)),
	}
}

func (c *SeriesCreator) CreateInfoBoxContent() ([]string, error) {
	return c.infoBox(c.dates(), c.counts())
}

func (c *SeriesCreator) CreatePage() ([]string, error) {
	return c.assemble(c.dates(), c.counts())
}
