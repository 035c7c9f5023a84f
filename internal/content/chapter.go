package content

import (
	"filmwiki/internal/domain"
	"filmwiki/internal/l10n"
	"filmwiki/internal/wiki"
)

// ChapterCreator groups titled sections under a chapter heading. Sections
// without items are left out; a chapter without sections renders nothing.
// It supports CreateChapterContent only.
type ChapterCreator struct {
	base
	key      l10n.Key
	sections []titled
}

func (c *ChapterCreator) CreateChapterContent() ([]string, error) {
	var body []string
	for _, s := range c.sections {
		lines, err := s.CreateSectionContent()
		if err != nil {
			return nil, err
		}
		if len(lines) == 0 {
			continue
		}
		body = append(body, c.f.Heading(3, s.title()))
		body = append(body, lines...)
	}
	if len(body) == 0 {
		return nil, nil
	}
	return append([]string{c.f.Heading(2, c.heading(c.key))}, body...), nil
}

type sectionBuilder struct {
	list []titled
	err  error
}

func (s *sectionBuilder) add(n int, build func() (titled, error)) {
	if s.err != nil || n == 0 {
		return
	}
	t, err := build()
	if err != nil {
		s.err = err
		return
	}
	s.list = append(s.list, t)
}

func newChapterCreator(name string, key l10n.Key, w *domain.Work, f wiki.Formatter, lang string, fill func(*sectionBuilder)) (*ChapterCreator, error) {
	b, err := newBase(name, f, lang)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, invalid(name, "work is required")
	}
	var sb sectionBuilder
	fill(&sb)
	if sb.err != nil {
		return nil, sb.err
	}
	return &ChapterCreator{base: b, key: key, sections: sb.list}, nil
}

func NewCastAndCrewCreator(w *domain.Work, f wiki.Formatter, lang string) (*ChapterCreator, error) {
	return newChapterCreator("CastAndCrewCreator", l10n.CastAndCrew, w, f, lang, func(sb *sectionBuilder) {
		sb.add(len(w.Directors), func() (titled, error) { return NewDirectorCreator(w.Directors, f, lang) })
	})
}

func NewCompanyCreditsCreator(w *domain.Work, f wiki.Formatter, lang string) (*ChapterCreator, error) {
	return newChapterCreator("CompanyCreditsCreator", l10n.CompanyCredits, w, f, lang, func(sb *sectionBuilder) {
		sb.add(len(w.ProductionCompanies), func() (titled, error) {
			return NewCompanyCreator(RoleProduction, w.ProductionCompanies, f, lang)
		})
		sb.add(len(w.Distributors), func() (titled, error) {
			return NewCompanyCreator(RoleDistributor, w.Distributors, f, lang)
		})
		sb.add(len(w.SpecialEffectCompanies), func() (titled, error) {
			return NewCompanyCreator(RoleSpecialEffects, w.SpecialEffectCompanies, f, lang)
		})
		sb.add(len(w.OtherCompanies), func() (titled, error) {
			return NewCompanyCreator(RoleOther, w.OtherCompanies, f, lang)
		})
	})
}

func NewFilmingAndProductionCreator(w *domain.Work, f wiki.Formatter, lang string) (*ChapterCreator, error) {
	return newChapterCreator("FilmingAndProductionCreator", l10n.FilmingAndProduction, w, f, lang, func(sb *sectionBuilder) {
		sb.add(len(w.Locations), func() (titled, error) { return NewLocationCreator(w.Locations, f, lang) })
		sb.add(len(w.FilmingDates), func() (titled, error) { return NewFilmingDateCreator(w.FilmingDates, f, lang) })
		sb.add(len(w.ProductionDates), func() (titled, error) { return NewProductionDateCreator(w.ProductionDates, f, lang) })
	})
}
