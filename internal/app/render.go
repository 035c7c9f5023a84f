package app

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"filmwiki/internal/content"
	"filmwiki/internal/domain"
	"filmwiki/internal/wiki"
)

// renderer loads one work and assembles its page. It is shared by the
// batch generator and the preview API.
type renderer struct {
	repo    domain.WorkRepository
	f       wiki.Formatter
	limiter *rate.Limiter
	opts    []content.PageOption
}

func newRenderer(repo domain.WorkRepository, f wiki.Formatter, qps int, opts []content.PageOption) *renderer {
	lim := rate.NewLimiter(rate.Inf, 1)
	if qps > 0 {
		lim = rate.NewLimiter(rate.Limit(qps), 1)
	}
	return &renderer{repo: repo, f: f, limiter: lim, opts: opts}
}

// creator loads the work and returns its page creator.
func (r *renderer) creator(ctx context.Context, kind domain.Kind, id int64, lang string) (content.Creator, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	switch kind {
	case domain.KindMovie:
		m, err := r.repo.GetMovie(ctx, id)
		if err != nil {
			return nil, err
		}
		return content.NewMovieCreator(&m, r.f, lang, r.opts...)
	case domain.KindSeries:
		s, err := r.repo.GetSeries(ctx, id)
		if err != nil {
			return nil, err
		}
		return content.NewSeriesCreator(&s, r.f, lang, r.opts...)
	}
	return nil, fmt.Errorf("unknown work kind %q: %w", kind, content.ErrValidation)
}

// render returns the page file name and its lines.
func (r *renderer) render(ctx context.Context, kind domain.Kind, id int64, lang string) (string, []string, error) {
	c, err := r.creator(ctx, kind, id, lang)
	if err != nil {
		return "", nil, err
	}
	name, err := c.PageName()
	if err != nil {
		return "", nil, err
	}
	lines, err := c.CreatePage()
	if err != nil {
		return "", nil, err
	}
	return name, lines, nil
}
