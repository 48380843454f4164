package insights

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryPostRepository is an in-memory implementation for scaffolding and tests.
type MemoryPostRepository struct {
	mu           sync.RWMutex
	posts        map[uuid.UUID]*InsightPost
	slugIndex    map[string]uuid.UUID
	translations map[uuid.UUID]map[string]*InsightTranslation
}

// NewMemoryPostRepository creates an empty in-memory post repository.
func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{
		posts:        make(map[uuid.UUID]*InsightPost),
		slugIndex:    make(map[string]uuid.UUID),
		translations: make(map[uuid.UUID]map[string]*InsightTranslation),
	}
}

// GetBySlug retrieves a post with its translations loaded.
func (m *MemoryPostRepository) GetBySlug(_ context.Context, slug string) (*InsightPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "insight_post", Key: slug}
	}
	return m.withTranslations(m.posts[id]), nil
}

// ListPublished returns published posts with translations, newest published
// first. Posts sharing a timestamp order by slug for determinism.
func (m *MemoryPostRepository) ListPublished(_ context.Context) ([]*InsightPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*InsightPost, 0, len(m.posts))
	for _, post := range m.posts {
		if !post.Status.IsPublished() || post.PublishedAt == nil {
			continue
		}
		out = append(out, m.withTranslations(post))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PublishedAt.Equal(*out[j].PublishedAt) {
			return out[i].Slug < out[j].Slug
		}
		return out[i].PublishedAt.After(*out[j].PublishedAt)
	})
	return out, nil
}

// Upsert inserts or replaces the post row keyed by slug. An existing row
// keeps its CreatedAt.
func (m *MemoryPostRepository) Upsert(_ context.Context, post *InsightPost) (*InsightPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := clonePost(post)
	copied.Translations = nil
	if existingID, ok := m.slugIndex[copied.Slug]; ok {
		copied.ID = existingID
		copied.CreatedAt = m.posts[existingID].CreatedAt
	}
	m.posts[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return clonePost(copied), nil
}

// UpsertTranslation inserts or replaces the (post, locale) row.
func (m *MemoryPostRepository) UpsertTranslation(_ context.Context, translation *InsightTranslation) (*InsightTranslation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byLocale, ok := m.translations[translation.PostID]
	if !ok {
		byLocale = make(map[string]*InsightTranslation)
		m.translations[translation.PostID] = byLocale
	}
	copied := cloneInsightTranslation(translation)
	if existing, ok := byLocale[copied.LocaleCode]; ok {
		copied.ID = existing.ID
		copied.CreatedAt = existing.CreatedAt
	}
	byLocale[copied.LocaleCode] = copied
	return cloneInsightTranslation(copied), nil
}

func (m *MemoryPostRepository) withTranslations(src *InsightPost) *InsightPost {
	copied := clonePost(src)
	byLocale := m.translations[src.ID]
	copied.Translations = make([]*InsightTranslation, 0, len(byLocale))
	for _, translation := range byLocale {
		copied.Translations = append(copied.Translations, cloneInsightTranslation(translation))
	}
	sort.Slice(copied.Translations, func(i, j int) bool {
		return copied.Translations[i].LocaleCode < copied.Translations[j].LocaleCode
	})
	return copied
}

func clonePost(src *InsightPost) *InsightPost {
	if src == nil {
		return nil
	}
	copied := *src
	if src.PublishedAt != nil {
		v := *src.PublishedAt
		copied.PublishedAt = &v
	}
	if src.CoverImageURL != nil {
		v := *src.CoverImageURL
		copied.CoverImageURL = &v
	}
	if src.SEOTitle != nil {
		v := *src.SEOTitle
		copied.SEOTitle = &v
	}
	if src.SEODescription != nil {
		v := *src.SEODescription
		copied.SEODescription = &v
	}
	if len(src.Translations) > 0 {
		copied.Translations = make([]*InsightTranslation, len(src.Translations))
		for i, tr := range src.Translations {
			copied.Translations[i] = cloneInsightTranslation(tr)
		}
	}
	return &copied
}

func cloneInsightTranslation(src *InsightTranslation) *InsightTranslation {
	if src == nil {
		return nil
	}
	copied := *src
	return &copied
}
