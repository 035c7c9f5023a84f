package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"filmwiki/internal/adapters/observability"
	"filmwiki/internal/content"
	"filmwiki/internal/domain"
	"filmwiki/internal/wiki"
)

// PreviewService renders pages without writing them, caching the lines.
type PreviewService struct {
	r        *renderer
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewPreviewService accepts a nil cache.
func NewPreviewService(repo domain.WorkRepository, f wiki.Formatter, c domain.Cache, ttl time.Duration, opts ...content.PageOption) *PreviewService {
	return &PreviewService{r: newRenderer(repo, f, 0, opts), cache: c, cacheTTL: ttl}
}

func cacheKey(kind domain.Kind, id int64, lang string) string {
	return fmt.Sprintf("page:%s:%d:%s", kind, id, lang)
}

func (s *PreviewService) Page(ctx context.Context, kind domain.Kind, id int64, lang string) ([]string, error) {
	key := cacheKey(kind, id, lang)
	if s.cache != nil {
		var lines []string
		ok, err := s.cache.Get(ctx, key, &lines)
		if err != nil {
			log.Debug().Str("key", key).Err(err).Msg("page cache read failed")
		}
		if ok {
			return lines, nil
		}
	}

	start := time.Now()
	_, lines, err := s.r.render(ctx, kind, id, lang)
	observability.ObservePage(string(kind), lang, resultLabel(err), time.Since(start))
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, lines, int(s.cacheTTL.Seconds())); err != nil {
			log.Debug().Str("key", key).Err(err).Msg("page cache write failed")
		}
	}
	return lines, nil
}

// Invalidate drops cached previews of a work in the given languages. Every
// key is attempted; failures are logged and returned joined.
func (s *PreviewService) Invalidate(ctx context.Context, kind domain.Kind, id int64, langs ...string) error {
	if s.cache == nil {
		return nil
	}
	var errs []error
	for _, l := range langs {
		key := cacheKey(kind, id, l)
		if err := s.cache.Del(ctx, key); err != nil {
			log.Debug().Str("key", key).Err(err).Msg("page cache delete failed")
			errs = append(errs, fmt.Errorf("drop %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}
