package cache

import (
	"context"
	"time"
)

// Adapter stores serialized records by key.
type Adapter interface {
	Exists(ctx context.Context, key string) (bool, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, ttl time.Duration, data []byte) error
	Delete(ctx context.Context, key string) error

	// Release background resources. The adapter must not be used afterwards.
	Stop()
}
