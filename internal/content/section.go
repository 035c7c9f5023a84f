package content

import (
	"filmwiki/internal/domain"
	"filmwiki/internal/l10n"
	"filmwiki/internal/wiki"
)

// titled is a section that knows the heading it is filed under.
type titled interface {
	Creator
	title() string
}

// SectionCreator renders independent rows of one kind (companies,
// locations, people) as a titled table. It supports CreateSectionContent
// only; chapters add the headings.
type SectionCreator[E any] struct {
	base
	key    l10n.Key
	titles []l10n.Key
	items  []domain.Item[E]
	value  func(b base, e *E) string
}

func newSectionCreator[E any](name string, key l10n.Key, titles []l10n.Key, items []domain.Item[E], f wiki.Formatter, lang string, value func(base, *E) string) (*SectionCreator[E], error) {
	b, err := newBase(name, f, lang)
	if err != nil {
		return nil, err
	}
	if err := requireItems(name, items); err != nil {
		return nil, err
	}
	return &SectionCreator[E]{base: b, key: key, titles: titles, items: items, value: value}, nil
}

func (c *SectionCreator[E]) title() string { return c.heading(c.key) }

func (c *SectionCreator[E]) CreateSectionContent() ([]string, error) {
	titles := make([]string, len(c.titles))
	for i, k := range c.titles {
		titles[i] = c.heading(k)
	}
	return sectionRows(c.f, titles, c.items, func(it domain.Item[E]) []string {
		v := ""
		if it.Entity != nil {
			v = c.value(c.base, it.Entity)
		}
		return []string{v, it.Details}
	}), nil
}

// CompanyRole selects under which company credit a company is listed.
type CompanyRole int

const (
	RoleProduction CompanyRole = iota
	RoleDistributor
	RoleSpecialEffects
	RoleOther
)

var roleKeys = map[CompanyRole]l10n.Key{
	RoleProduction:     l10n.ProductionCompany,
	RoleDistributor:    l10n.Distributor,
	RoleSpecialEffects: l10n.SpecialEffects,
	RoleOther:          l10n.OtherCompany,
}

func NewCompanyCreator(role CompanyRole, items []domain.Item[domain.Company], f wiki.Formatter, lang string) (*SectionCreator[domain.Company], error) {
	key, ok := roleKeys[role]
	if !ok {
		return nil, invalid("CompanyCreator", "unknown company role")
	}
	return newSectionCreator("CompanyCreator", key, []l10n.Key{l10n.Company, l10n.Details}, items, f, lang,
		func(b base, c *domain.Company) string {
			return b.entityLink("company", c.ID, b.resolve(c.Name))
		})
}

func NewLocationCreator(items []domain.Item[domain.Location], f wiki.Formatter, lang string) (*SectionCreator[domain.Location], error) {
	return newSectionCreator("LocationCreator", l10n.FilmingLocation, []l10n.Key{l10n.FilmingLocation, l10n.Details}, items, f, lang,
		func(b base, l *domain.Location) string {
			return b.resolve(l.Name)
		})
}

func NewDirectorCreator(items []domain.Item[domain.Person], f wiki.Formatter, lang string) (*SectionCreator[domain.Person], error) {
	return newSectionCreator("DirectorCreator", l10n.Director, []l10n.Key{l10n.Name, l10n.Details}, items, f, lang,
		func(b base, p *domain.Person) string {
			return b.entityLink("person", p.ID, p.Name)
		})
}

// TimespanCreator renders date ranges (filming or production dates) as a
// section. A range needs a start date whenever it has an end date.
type TimespanCreator struct {
	base
	key   l10n.Key
	items []domain.Item[domain.Timespan]
}

func NewFilmingDateCreator(items []domain.Item[domain.Timespan], f wiki.Formatter, lang string) (*TimespanCreator, error) {
	return newTimespanCreator("FilmingDateCreator", l10n.FilmingDate, items, f, lang)
}

func NewProductionDateCreator(items []domain.Item[domain.Timespan], f wiki.Formatter, lang string) (*TimespanCreator, error) {
	return newTimespanCreator("ProductionDateCreator", l10n.ProductionDate, items, f, lang)
}

func newTimespanCreator(name string, key l10n.Key, items []domain.Item[domain.Timespan], f wiki.Formatter, lang string) (*TimespanCreator, error) {
	b, err := newBase(name, f, lang)
	if err != nil {
		return nil, err
	}
	if err := requireItems(name, items); err != nil {
		return nil, err
	}
	if err := checkTimespans(name, items); err != nil {
		return nil, err
	}
	return &TimespanCreator{base: b, key: key, items: items}, nil
}

func checkTimespans(name string, items []domain.Item[domain.Timespan]) error {
	for _, it := range items {
		if it.Entity != nil && it.Entity.End != nil && it.Entity.Start == nil {
			return invalid(name, "timespan has an end date but no start date")
		}
	}
	return nil
}

func (c *TimespanCreator) title() string { return c.heading(c.key) }

func (c *TimespanCreator) CreateSectionContent() ([]string, error) {
	titles := []string{c.heading(l10n.Period), c.heading(l10n.Details)}
	return sectionRows(c.f, titles, c.items, func(it domain.Item[domain.Timespan]) []string {
		return []string{c.period(it.Entity), it.Details}
	}), nil
}

func (c *TimespanCreator) period(ts *domain.Timespan) string {
	if ts == nil || ts.Start == nil {
		return ""
	}
	start := l10n.FormatDate(c.lang, *ts.Start)
	if ts.End == nil {
		return start
	}
	return start + " - " + l10n.FormatDate(c.lang, *ts.End)
}

// ConnectionCreator transcludes the navigation page of a work, which lists
// its related works (remakes, sequels, ...).
type ConnectionCreator struct {
	base
	key string
}

func NewConnectionCreator(pageKey string, f wiki.Formatter, lang string) (*ConnectionCreator, error) {
	b, err := newBase("ConnectionCreator", f, lang)
	if err != nil {
		return nil, err
	}
	if pageKey == "" {
		return nil, invalid("ConnectionCreator", "page key is required")
	}
	return &ConnectionCreator{base: b, key: pageKey}, nil
}

func (c *ConnectionCreator) CreateSectionContent() ([]string, error) {
	return []string{c.f.InsertPage(c.lang, "navigation", c.key), "", ""}, nil
}

func (c *ConnectionCreator) CreateChapterContent() ([]string, error) {
	section, err := c.CreateSectionContent()
	if err != nil {
		return nil, err
	}
	return append([]string{c.f.Heading(2, c.heading(l10n.Connections))}, section...), nil
}
