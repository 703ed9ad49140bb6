package memory

import (
	"context"
	"time"

	"github.com/ezraisw/quill/cache"
	"github.com/karlseguin/ccache/v2"
)

type memoryAdapter struct {
	cache *ccache.Cache
}

func NewAdapter() cache.Adapter {
	return NewAdapterWithConfiguration(ccache.Configure())
}

// The cache is built up front so the adapter is safe for concurrent use from the start.
func NewAdapterWithConfiguration(cacheCfg *ccache.Configuration) cache.Adapter {
	return &memoryAdapter{
		cache: ccache.New(cacheCfg),
	}
}

func (a *memoryAdapter) Exists(ctx context.Context, key string) (bool, error) {
	item := a.cache.Get(key)
	return item != nil && !item.Expired(), nil
}

func (a *memoryAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	item := a.cache.Get(key)
	if item == nil || item.Expired() {
		return nil, cache.ErrNotFound
	}

	data, ok := item.Value().([]byte)
	if !ok {
		return nil, cache.ErrNotFound
	}

	return data, nil
}

func (a *memoryAdapter) Set(ctx context.Context, key string, ttl time.Duration, data []byte) error {
	a.cache.Set(key, data, ttl)
	return nil
}

func (a *memoryAdapter) Delete(ctx context.Context, key string) error {
	a.cache.Delete(key)
	return nil
}

// Stop ends the ccache worker goroutine.
func (a *memoryAdapter) Stop() {
	a.cache.Stop()
}
