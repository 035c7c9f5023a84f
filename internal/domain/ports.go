package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

type WorkRepository interface {
	GetMovie(ctx context.Context, id int64) (Movie, error)
	GetSeries(ctx context.Context, id int64) (Series, error)
	// ListWorkIDs returns the ids of all works of kind with the given status, ascending.
	ListWorkIDs(ctx context.Context, kind Kind, status string) ([]int64, error)
}

type PageWriter interface {
	WritePage(dir, name string, lines []string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
