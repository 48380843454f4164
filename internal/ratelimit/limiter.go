package ratelimit

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

var ErrKeyRequired = errors.New("ratelimit: key is required")

const (
	defaultMaxAttempts = 5
	defaultWindow      = 15 * time.Minute
)

// Decision is the limiter's answer for one attempt. RetryAfter is only set
// when the attempt is denied.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// AttemptStore persists attempt timestamps per key. Implementations must be
// safe for concurrent use. The memory store is process-local; a shared cache
// implementation can replace it without touching call sites.
type AttemptStore interface {
	// Attempts returns the recorded attempt times for a key.
	Attempts(ctx context.Context, key string) ([]time.Time, error)
	// Record appends one attempt and drops entries older than the cutoff.
	Record(ctx context.Context, key string, at time.Time, cutoff time.Time) error
	// Reset clears a key, typically after a successful login.
	Reset(ctx context.Context, key string) error
}

// Config bounds the limiter: at most MaxAttempts per Window.
type Config struct {
	MaxAttempts int
	Window      time.Duration
}

// Option configures the limiter at construction time.
type Option func(*Limiter)

// WithClock overrides the clock, for tests.
func WithClock(clock func() time.Time) Option {
	return func(l *Limiter) {
		l.now = clock
	}
}

// WithStore replaces the default in-memory attempt store.
func WithStore(store AttemptStore) Option {
	return func(l *Limiter) {
		if store != nil {
			l.store = store
		}
	}
}

// Limiter throttles repeated attempts per key over a sliding window.
type Limiter struct {
	store AttemptStore
	cfg   Config
	now   func() time.Time
}

// New creates a limiter; zero config fields fall back to defaults.
func New(cfg Config, opts ...Option) *Limiter {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.Window <= 0 {
		cfg.Window = defaultWindow
	}
	l := &Limiter{
		store: NewMemoryStore(),
		cfg:   cfg,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CheckAndRecord records one attempt for the key and reports whether it is
// allowed. Denied attempts are not recorded, so waiting out the window always
// clears the lock.
func (l *Limiter) CheckAndRecord(ctx context.Context, key string) (Decision, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return Decision{}, ErrKeyRequired
	}

	now := l.now()
	cutoff := now.Add(-l.cfg.Window)

	attempts, err := l.store.Attempts(ctx, key)
	if err != nil {
		return Decision{}, err
	}
	recent := make([]time.Time, 0, len(attempts))
	for _, at := range attempts {
		if at.After(cutoff) {
			recent = append(recent, at)
		}
	}

	if len(recent) >= l.cfg.MaxAttempts {
		oldest := recent[0]
		for _, at := range recent {
			if at.Before(oldest) {
				oldest = at
			}
		}
		return Decision{
			Allowed:    false,
			RetryAfter: oldest.Add(l.cfg.Window).Sub(now),
		}, nil
	}

	if err := l.store.Record(ctx, key, now, cutoff); err != nil {
		return Decision{}, err
	}
	return Decision{
		Allowed:   true,
		Remaining: l.cfg.MaxAttempts - len(recent) - 1,
	}, nil
}

// Reset clears the key's attempts, typically after a successful login.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return ErrKeyRequired
	}
	return l.store.Reset(ctx, key)
}

// MemoryStore is the default process-local attempt store.
type MemoryStore struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
}

// NewMemoryStore creates an empty in-memory attempt store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{attempts: make(map[string][]time.Time)}
}

func (m *MemoryStore) Attempts(_ context.Context, key string) ([]time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Time(nil), m.attempts[key]...), nil
}

func (m *MemoryStore) Record(_ context.Context, key string, at time.Time, cutoff time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := make([]time.Time, 0, len(m.attempts[key])+1)
	for _, existing := range m.attempts[key] {
		if existing.After(cutoff) {
			kept = append(kept, existing)
		}
	}
	m.attempts[key] = append(kept, at)
	return nil
}

func (m *MemoryStore) Reset(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.attempts, key)
	return nil
}
