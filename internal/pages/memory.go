package pages

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryPageRepository is an in-memory implementation for scaffolding and tests.
type MemoryPageRepository struct {
	mu           sync.RWMutex
	pages        map[uuid.UUID]*Page
	slugIndex    map[string]uuid.UUID
	translations map[uuid.UUID]map[string]*PageTranslation
}

// NewMemoryPageRepository creates an empty in-memory page repository.
func NewMemoryPageRepository() *MemoryPageRepository {
	return &MemoryPageRepository{
		pages:        make(map[uuid.UUID]*Page),
		slugIndex:    make(map[string]uuid.UUID),
		translations: make(map[uuid.UUID]map[string]*PageTranslation),
	}
}

// Create inserts the supplied page.
func (m *MemoryPageRepository) Create(_ context.Context, page *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := clonePage(page)
	m.pages[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return clonePage(copied), nil
}

// GetBySlug retrieves a page by slug, returning NotFoundError when absent.
func (m *MemoryPageRepository) GetBySlug(_ context.Context, slug string) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "page", Key: slug}
	}
	return clonePage(m.pages[id]), nil
}

// List returns all pages ordered by slug.
func (m *MemoryPageRepository) List(_ context.Context) ([]*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Page, 0, len(m.pages))
	for _, page := range m.pages {
		out = append(out, clonePage(page))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

// GetTranslation retrieves one (page, locale) row.
func (m *MemoryPageRepository) GetTranslation(_ context.Context, pageID uuid.UUID, localeCode string) (*PageTranslation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	translation, ok := m.translations[pageID][localeCode]
	if !ok {
		return nil, &NotFoundError{Resource: "page_translation", Key: localeCode}
	}
	return cloneTranslation(translation), nil
}

// ListTranslations returns all translations of a page ordered by locale code.
func (m *MemoryPageRepository) ListTranslations(_ context.Context, pageID uuid.UUID) ([]*PageTranslation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*PageTranslation, 0, len(m.translations[pageID]))
	for _, translation := range m.translations[pageID] {
		out = append(out, cloneTranslation(translation))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LocaleCode < out[j].LocaleCode })
	return out, nil
}

// EnsureTranslation inserts the row unless the (page, locale) pair already
// has one; the insert-or-fetch happens under one lock so concurrent callers
// converge on a single row.
func (m *MemoryPageRepository) EnsureTranslation(_ context.Context, translation *PageTranslation) (*PageTranslation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byLocale, ok := m.translations[translation.PageID]
	if !ok {
		byLocale = make(map[string]*PageTranslation)
		m.translations[translation.PageID] = byLocale
	}
	if existing, ok := byLocale[translation.LocaleCode]; ok {
		return cloneTranslation(existing), nil
	}
	copied := cloneTranslation(translation)
	byLocale[copied.LocaleCode] = copied
	return cloneTranslation(copied), nil
}

// UpdateTranslation replaces the stored row whole.
func (m *MemoryPageRepository) UpdateTranslation(_ context.Context, translation *PageTranslation) (*PageTranslation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byLocale, ok := m.translations[translation.PageID]
	if !ok {
		return nil, &NotFoundError{Resource: "page_translation", Key: translation.LocaleCode}
	}
	if _, ok := byLocale[translation.LocaleCode]; !ok {
		return nil, &NotFoundError{Resource: "page_translation", Key: translation.LocaleCode}
	}
	copied := cloneTranslation(translation)
	byLocale[copied.LocaleCode] = copied
	return cloneTranslation(copied), nil
}

func clonePage(src *Page) *Page {
	if src == nil {
		return nil
	}
	copied := *src
	if len(src.Translations) > 0 {
		copied.Translations = make([]*PageTranslation, len(src.Translations))
		for i, tr := range src.Translations {
			copied.Translations[i] = cloneTranslation(tr)
		}
	}
	return &copied
}

func cloneTranslation(src *PageTranslation) *PageTranslation {
	if src == nil {
		return nil
	}
	copied := *src
	if src.Blocks != nil {
		copied.Blocks = append(json.RawMessage(nil), src.Blocks...)
	}
	if src.SEOTitle != nil {
		v := *src.SEOTitle
		copied.SEOTitle = &v
	}
	if src.SEODescription != nil {
		v := *src.SEODescription
		copied.SEODescription = &v
	}
	if src.OGImage != nil {
		v := *src.OGImage
		copied.OGImage = &v
	}
	if src.UpdatedBy != nil {
		v := *src.UpdatedBy
		copied.UpdatedBy = &v
	}
	return &copied
}
