package services

import (
	"context"
	"fmt"
	"respire/internal/models"
	"respire/internal/storage/interfaces"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func NewSystemClock() Clock { return SystemClock{} }

// WriteGuard serializes every read-modify-write against the store. All
// mutating services share one instance.
type WriteGuard struct {
	sync.Mutex
}

func NewWriteGuard() *WriteGuard { return &WriteGuard{} }

func loadList[T any](ctx context.Context, store interfaces.KeyValueStoreInterface, key string) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}
	if !ok || raw == "" {
		return []T{}, nil
	}
	var list []T
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", models.ErrStoreUnavailable, key, err)
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

func saveList[T any](ctx context.Context, store interfaces.KeyValueStoreInterface, key string, list []T) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}
	return nil
}
