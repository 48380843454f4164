package content

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryLocaleRepository is an in-memory implementation for scaffolding and tests.
type MemoryLocaleRepository struct {
	mu      sync.RWMutex
	locales map[string]*Locale
}

// NewMemoryLocaleRepository creates an empty in-memory locale repository.
func NewMemoryLocaleRepository() *MemoryLocaleRepository {
	return &MemoryLocaleRepository{
		locales: make(map[string]*Locale),
	}
}

// GetByCode resolves a locale by code (case-insensitive).
func (m *MemoryLocaleRepository) GetByCode(_ context.Context, code string) (*Locale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	locale, ok := m.locales[NormalizeCode(code)]
	if !ok {
		return nil, &NotFoundError{Resource: "locale", Key: code}
	}
	return cloneLocale(locale), nil
}

// List returns all locales ordered by code.
func (m *MemoryLocaleRepository) List(_ context.Context) ([]*Locale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Locale, 0, len(m.locales))
	for _, locale := range m.locales {
		out = append(out, cloneLocale(locale))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

// Upsert inserts or updates a locale keyed by code, preserving the default
// flag and creation timestamp of an existing row.
func (m *MemoryLocaleRepository) Upsert(_ context.Context, locale *Locale) (*Locale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneLocale(locale)
	copied.Code = NormalizeCode(copied.Code)
	if existing, ok := m.locales[copied.Code]; ok {
		copied.IsDefault = existing.IsDefault
		copied.CreatedAt = existing.CreatedAt
	}
	m.locales[copied.Code] = copied
	return cloneLocale(copied), nil
}

// SetDefault flags one locale as default and clears the rest under a single
// lock so readers never observe zero or two defaults.
func (m *MemoryLocaleRepository) SetDefault(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	normalized := NormalizeCode(code)
	target, ok := m.locales[normalized]
	if !ok {
		return &NotFoundError{Resource: "locale", Key: code}
	}
	now := time.Now().UTC()
	for _, locale := range m.locales {
		if locale.IsDefault && locale.Code != normalized {
			locale.IsDefault = false
			locale.UpdatedAt = now
		}
	}
	target.IsDefault = true
	target.UpdatedAt = now
	return nil
}

// SetEnabled toggles a locale.
func (m *MemoryLocaleRepository) SetEnabled(_ context.Context, code string, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	locale, ok := m.locales[NormalizeCode(code)]
	if !ok {
		return &NotFoundError{Resource: "locale", Key: code}
	}
	locale.IsEnabled = enabled
	locale.UpdatedAt = time.Now().UTC()
	return nil
}

func cloneLocale(src *Locale) *Locale {
	if src == nil {
		return nil
	}
	copied := *src
	if src.Flag != nil {
		flag := *src.Flag
		copied.Flag = &flag
	}
	return &copied
}
