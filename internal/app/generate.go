package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"filmwiki/internal/adapters/observability"
	"filmwiki/internal/content"
	"filmwiki/internal/domain"
	"filmwiki/internal/wiki"
)

// Failure is one work a batch could not generate.
type Failure struct {
	ID  int64
	Err error
}

// BatchReport lists the outcome of GenerateAll, ordered by work id.
type BatchReport struct {
	Written []string
	Failed  []Failure
}

type GenerateOption func(*GenerateService)

// WithWorkers bounds the pages generated concurrently by GenerateAll.
func WithWorkers(n int) GenerateOption {
	return func(s *GenerateService) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithFailFast makes GenerateAll stop at the first failing work.
func WithFailFast(on bool) GenerateOption {
	return func(s *GenerateService) { s.failFast = on }
}

// WithDBRate caps repository loads per second; zero disables the cap.
func WithDBRate(qps int) GenerateOption {
	return func(s *GenerateService) { s.qps = qps }
}

func WithPageOptions(opts ...content.PageOption) GenerateOption {
	return func(s *GenerateService) { s.pageOpts = append(s.pageOpts, opts...) }
}

// GenerateService renders works and writes them below outDir as
// <outDir>/<lang>/<kind>/<page name>.
type GenerateService struct {
	r        *renderer
	w        domain.PageWriter
	outDir   string
	workers  int
	failFast bool
	qps      int
	pageOpts []content.PageOption
}

func NewGenerateService(repo domain.WorkRepository, w domain.PageWriter, f wiki.Formatter, outDir string, opts ...GenerateOption) *GenerateService {
	s := &GenerateService{w: w, outDir: outDir, workers: 1}
	for _, opt := range opts {
		opt(s)
	}
	s.r = newRenderer(repo, f, s.qps, s.pageOpts)
	return s
}

// GeneratePage renders one work and writes it, returning the written path.
func (s *GenerateService) GeneratePage(ctx context.Context, kind domain.Kind, id int64, lang string) (string, error) {
	start := time.Now()
	file, err := s.generate(ctx, kind, id, lang)
	observability.ObservePage(string(kind), lang, resultLabel(err), time.Since(start))
	if err != nil {
		log.Warn().Str("kind", string(kind)).Int64("id", id).Str("lang", lang).Err(err).Msg("page generation failed")
		return "", err
	}
	log.Info().Str("kind", string(kind)).Int64("id", id).Str("lang", lang).Str("file", file).Msg("page written")
	return file, nil
}

func (s *GenerateService) generate(ctx context.Context, kind domain.Kind, id int64, lang string) (string, error) {
	name, lines, err := s.r.render(ctx, kind, id, lang)
	if err != nil {
		return "", fmt.Errorf("render %s %d: %w", kind, id, err)
	}
	dir := filepath.Join(s.outDir, lang, string(kind))
	if err := s.w.WritePage(dir, name, lines); err != nil {
		return "", fmt.Errorf("write %s %d: %w", kind, id, err)
	}
	return filepath.Join(dir, name), nil
}

// GenerateAll generates every published work of kind. Failing works are
// reported and skipped unless fail-fast is on, in which case the first
// failure cancels the remaining works and is returned.
func (s *GenerateService) GenerateAll(ctx context.Context, kind domain.Kind, lang string) (BatchReport, error) {
	ids, err := s.r.repo.ListWorkIDs(ctx, kind, domain.StatusOK)
	if err != nil {
		return BatchReport{}, fmt.Errorf("list %s: %w", kind, err)
	}
	log.Info().Str("kind", string(kind)).Str("lang", lang).Int("works", len(ids)).Int("workers", s.workers).Msg("batch starting")

	type result struct {
		id   int64
		file string
		err  error
	}
	var (
		mu      sync.Mutex
		results []result
	)

	g, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(s.workers))
	for _, id := range ids {
		id := id // per-iteration copy (go.mod targets Go 1.21)
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)

			file, err := s.GeneratePage(gctx, kind, id, lang)
			mu.Lock()
			results = append(results, result{id: id, file: file, err: err})
			mu.Unlock()
			if err != nil && s.failFast {
				return err
			}
			return nil
		})
	}
	werr := g.Wait()

	slices.SortFunc(results, func(a, b result) int {
		switch {
		case a.id < b.id:
			return -1
		case a.id > b.id:
			return 1
		}
		return 0
	})
	var rep BatchReport
	for _, r := range results {
		if r.err != nil {
			rep.Failed = append(rep.Failed, Failure{ID: r.id, Err: r.err})
			continue
		}
		rep.Written = append(rep.Written, r.file)
	}

	log.Info().Str("kind", string(kind)).Int("written", len(rep.Written)).Int("failed", len(rep.Failed)).Msg("batch finished")
	if werr != nil {
		return rep, werr
	}
	if err := ctx.Err(); err != nil {
		return rep, err
	}
	return rep, nil
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, content.ErrValidation):
		return "invalid"
	}
	return "error"
}
