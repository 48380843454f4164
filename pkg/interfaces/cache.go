package interfaces

import (
	"context"
	"time"
)

type CacheProvider interface {
	Get(ctx context.Context, key string) (any, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// TagInvalidator expires every cached entry associated with a tag. Content
// mutations fire coarse-grained tags rather than enumerating keys, so cached
// lookups that merely fall back onto the mutated content are still expired.
type TagInvalidator interface {
	Invalidate(ctx context.Context, tag string) error
}
