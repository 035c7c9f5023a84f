package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"filmwiki/internal/domain"
)

var errBoom = errors.New("boom")

type fakeRepo struct {
	mu      sync.Mutex
	movies  map[int64]domain.Movie
	series  map[int64]domain.Series
	ids     []int64
	listErr error
	loads   int
}

func (f *fakeRepo) GetMovie(ctx context.Context, id int64) (domain.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	m, ok := f.movies[id]
	if !ok {
		return domain.Movie{}, domain.ErrNotFound
	}
	return m, nil
}

func (f *fakeRepo) GetSeries(ctx context.Context, id int64) (domain.Series, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	s, ok := f.series[id]
	if !ok {
		return domain.Series{}, domain.ErrNotFound
	}
	return s, nil
}

func (f *fakeRepo) ListWorkIDs(ctx context.Context, kind domain.Kind, status string) ([]int64, error) {
	return f.ids, f.listErr
}

func (f *fakeRepo) loadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loads
}

type fakeWriter struct {
	mu    sync.Mutex
	pages map[string][]string
	fail  map[string]bool // by file name
}

func (w *fakeWriter) WritePage(dir, name string, lines []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fail[name] {
		return errBoom
	}
	if w.pages == nil {
		w.pages = map[string][]string{}
	}
	w.pages[filepath.Join(dir, name)] = lines
	return nil
}

type fakeCache struct {
	store   map[string][]string
	dels    []string
	failDel map[string]bool
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	*dst.(*[]string) = v
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]string{}
	}
	c.store[key] = v.([]string)
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	if c.failDel[key] {
		return errBoom
	}
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

func movie(id int64, title string) domain.Movie {
	return domain.Movie{Work: domain.Work{
		ID:          id,
		Title:       domain.Text(title),
		Status:      domain.StatusOK,
		LastUpdated: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}}
}

func newRepo() *fakeRepo {
	return &fakeRepo{
		movies: map[int64]domain.Movie{
			74: movie(74, "Blade Runner"),
			75: movie(75, "Alien"),
		},
		series: map[int64]domain.Series{
			500: {Work: domain.Work{ID: 500, Title: domain.Text("Heimat"), Status: domain.StatusOK}, Seasons: 1},
		},
	}
}
