package cache

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrCacheMiss marks an absent or expired entry.
var ErrCacheMiss = errors.New("cache: miss")

type entry struct {
	value     any
	expiresAt time.Time
	tags      []string
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Option configures the provider at construction time.
type Option func(*MemoryProvider)

// WithClock overrides the clock, for tests.
func WithClock(clock func() time.Time) Option {
	return func(p *MemoryProvider) {
		p.now = clock
	}
}

// WithDefaultTTL bounds entries stored without an explicit ttl. Zero keeps
// them until invalidated.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(p *MemoryProvider) {
		p.defaultTTL = ttl
	}
}

// MemoryProvider is a process-local cache with TTLs and a tag index. It
// implements interfaces.CacheProvider and interfaces.TagInvalidator: content
// mutations expire whole tags instead of enumerating keys.
type MemoryProvider struct {
	mu         sync.RWMutex
	entries    map[string]entry
	byTag      map[string]map[string]struct{}
	now        func() time.Time
	defaultTTL time.Duration
}

// NewMemoryProvider creates an empty cache.
func NewMemoryProvider(opts ...Option) *MemoryProvider {
	p := &MemoryProvider{
		entries: make(map[string]entry),
		byTag:   make(map[string]map[string]struct{}),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Get returns the cached value or ErrCacheMiss.
func (p *MemoryProvider) Get(_ context.Context, key string) (any, error) {
	p.mu.RLock()
	stored, ok := p.entries[key]
	p.mu.RUnlock()
	if !ok {
		return nil, ErrCacheMiss
	}
	if stored.expired(p.now()) {
		p.mu.Lock()
		p.remove(key)
		p.mu.Unlock()
		return nil, ErrCacheMiss
	}
	return stored.value, nil
}

// Set stores a value without tags. Zero ttl means no expiry.
func (p *MemoryProvider) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return p.SetWithTags(ctx, key, value, ttl)
}

// SetWithTags stores a value and indexes it under the given tags.
func (p *MemoryProvider) SetWithTags(_ context.Context, key string, value any, ttl time.Duration, tags ...string) error {
	if ttl == 0 {
		ttl = p.defaultTTL
	}
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = p.now().Add(ttl)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.remove(key)
	p.entries[key] = entry{value: value, expiresAt: expiresAt, tags: append([]string(nil), tags...)}
	for _, tag := range tags {
		keys, ok := p.byTag[tag]
		if !ok {
			keys = make(map[string]struct{})
			p.byTag[tag] = keys
		}
		keys[key] = struct{}{}
	}
	return nil
}

// Delete removes one key.
func (p *MemoryProvider) Delete(_ context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.remove(key)
	return nil
}

// Clear drops every entry and the whole tag index.
func (p *MemoryProvider) Clear(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = make(map[string]entry)
	p.byTag = make(map[string]map[string]struct{})
	return nil
}

// Invalidate expires every entry indexed under the tag. Implements
// interfaces.TagInvalidator.
func (p *MemoryProvider) Invalidate(_ context.Context, tag string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for key := range p.byTag[tag] {
		p.remove(key)
	}
	delete(p.byTag, tag)
	return nil
}

// remove drops a key and unlinks it from every tag. Callers hold the write
// lock.
func (p *MemoryProvider) remove(key string) {
	stored, ok := p.entries[key]
	if !ok {
		return
	}
	delete(p.entries, key)
	for _, tag := range stored.tags {
		if keys, ok := p.byTag[tag]; ok {
			delete(keys, key)
			if len(keys) == 0 {
				delete(p.byTag, tag)
			}
		}
	}
}
