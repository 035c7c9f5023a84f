package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"filmwiki/internal/app"
	"filmwiki/internal/content"
	"filmwiki/internal/domain"
	"filmwiki/internal/wiki/dokuwiki"
)

func fixedClock() app.GenerateOption {
	return app.WithPageOptions(content.WithClock(func() time.Time {
		return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	}))
}

func TestGeneratePage_WritesIntoLanguageAndKindDir(t *testing.T) {
	w := &fakeWriter{}
	s := app.NewGenerateService(newRepo(), w, dokuwiki.New(), "out", fixedClock())

	file, err := s.GeneratePage(context.Background(), domain.KindMovie, 74, "en")
	if err != nil {
		t.Fatalf("GeneratePage: %v", err)
	}
	want := filepath.Join("out", "en", "movie", "blade_runner_022.txt")
	if file != want {
		t.Fatalf("file = %q, want %q", file, want)
	}
	lines := w.pages[want]
	if len(lines) == 0 || lines[0] != "~~NOCACHE~~" {
		t.Fatalf("unexpected page: %q", lines)
	}
}

func TestGeneratePage_SeriesInGerman(t *testing.T) {
	w := &fakeWriter{}
	s := app.NewGenerateService(newRepo(), w, dokuwiki.New(), "out")

	file, err := s.GeneratePage(context.Background(), domain.KindSeries, 500, "de")
	if err != nil {
		t.Fatalf("GeneratePage: %v", err)
	}
	if want := filepath.Join("out", "de", "series", "heimat_0dw.txt"); file != want {
		t.Fatalf("file = %q, want %q", file, want)
	}
}

func TestGeneratePage_NotFound(t *testing.T) {
	w := &fakeWriter{}
	s := app.NewGenerateService(newRepo(), w, dokuwiki.New(), "out")

	_, err := s.GeneratePage(context.Background(), domain.KindMovie, 999, "en")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if len(w.pages) != 0 {
		t.Fatalf("nothing should be written, got %v", w.pages)
	}
}

func TestGeneratePage_InvalidLanguage(t *testing.T) {
	s := app.NewGenerateService(newRepo(), &fakeWriter{}, dokuwiki.New(), "out")

	_, err := s.GeneratePage(context.Background(), domain.KindMovie, 74, " ")
	if !errors.Is(err, content.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestGeneratePage_WriteFailure(t *testing.T) {
	w := &fakeWriter{fail: map[string]bool{"blade_runner_022.txt": true}}
	s := app.NewGenerateService(newRepo(), w, dokuwiki.New(), "out")

	_, err := s.GeneratePage(context.Background(), domain.KindMovie, 74, "en")
	if !errors.Is(err, errBoom) {
		t.Fatalf("want write error, got %v", err)
	}
}

func TestGenerateAll_SkipsFailingWorks(t *testing.T) {
	repo := newRepo()
	repo.ids = []int64{76, 74, 75} // 76 does not exist
	w := &fakeWriter{}
	s := app.NewGenerateService(repo, w, dokuwiki.New(), "out", app.WithWorkers(3))

	rep, err := s.GenerateAll(context.Background(), domain.KindMovie, "en")
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	wantWritten := []string{
		filepath.Join("out", "en", "movie", "blade_runner_022.txt"),
		filepath.Join("out", "en", "movie", "alien_023.txt"),
	}
	if len(rep.Written) != 2 || rep.Written[0] != wantWritten[0] || rep.Written[1] != wantWritten[1] {
		t.Fatalf("written = %v, want %v", rep.Written, wantWritten)
	}
	if len(rep.Failed) != 1 || rep.Failed[0].ID != 76 || !errors.Is(rep.Failed[0].Err, domain.ErrNotFound) {
		t.Fatalf("failed = %+v", rep.Failed)
	}
}

func TestGenerateAll_FailFast(t *testing.T) {
	repo := newRepo()
	repo.ids = []int64{76, 74, 75}
	s := app.NewGenerateService(repo, &fakeWriter{}, dokuwiki.New(), "out", app.WithFailFast(true))

	rep, err := s.GenerateAll(context.Background(), domain.KindMovie, "en")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want first failure returned, got %v", err)
	}
	if len(rep.Failed) == 0 || rep.Failed[len(rep.Failed)-1].ID != 76 {
		t.Fatalf("failure of 76 must be reported: %+v", rep.Failed)
	}
}

func TestGenerateAll_ListError(t *testing.T) {
	repo := newRepo()
	repo.listErr = errBoom
	s := app.NewGenerateService(repo, &fakeWriter{}, dokuwiki.New(), "out")

	if _, err := s.GenerateAll(context.Background(), domain.KindMovie, "en"); !errors.Is(err, errBoom) {
		t.Fatalf("want list error, got %v", err)
	}
}

func TestGenerateAll_CanceledContext(t *testing.T) {
	repo := newRepo()
	repo.ids = []int64{74, 75}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := app.NewGenerateService(repo, &fakeWriter{}, dokuwiki.New(), "out")

	if _, err := s.GenerateAll(ctx, domain.KindMovie, "en"); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
