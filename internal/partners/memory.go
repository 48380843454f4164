package partners

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryPartnerRepository is an in-memory implementation for scaffolding and
// tests.
type MemoryPartnerRepository struct {
	mu           sync.RWMutex
	partners     map[uuid.UUID]*Partner
	translations map[uuid.UUID]map[string]*PartnerTranslation
}

// NewMemoryPartnerRepository creates an empty in-memory partner repository.
func NewMemoryPartnerRepository() *MemoryPartnerRepository {
	return &MemoryPartnerRepository{
		partners:     make(map[uuid.UUID]*Partner),
		translations: make(map[uuid.UUID]map[string]*PartnerTranslation),
	}
}

func (m *MemoryPartnerRepository) GetByID(_ context.Context, id uuid.UUID) (*Partner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	partner, ok := m.partners[id]
	if !ok {
		return nil, &NotFoundError{Resource: "partner", Key: id.String()}
	}
	return m.withTranslations(partner), nil
}

// List returns all partners with translations, ordered by sort order then
// name.
func (m *MemoryPartnerRepository) List(_ context.Context) ([]*Partner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Partner, 0, len(m.partners))
	for _, partner := range m.partners {
		out = append(out, m.withTranslations(partner))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Upsert inserts or replaces a partner row. An existing row keeps its
// CreatedAt and SortOrder unless the caller sets a new one.
func (m *MemoryPartnerRepository) Upsert(_ context.Context, partner *Partner) (*Partner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := clonePartner(partner)
	copied.Translations = nil
	if existing, ok := m.partners[copied.ID]; ok {
		copied.CreatedAt = existing.CreatedAt
	}
	m.partners[copied.ID] = copied
	return clonePartner(copied), nil
}

func (m *MemoryPartnerRepository) UpsertTranslation(_ context.Context, translation *PartnerTranslation) (*PartnerTranslation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byLocale, ok := m.translations[translation.PartnerID]
	if !ok {
		byLocale = make(map[string]*PartnerTranslation)
		m.translations[translation.PartnerID] = byLocale
	}
	copied := clonePartnerTranslation(translation)
	if existing, ok := byLocale[copied.LocaleCode]; ok {
		copied.ID = existing.ID
		copied.CreatedAt = existing.CreatedAt
	}
	byLocale[copied.LocaleCode] = copied
	return clonePartnerTranslation(copied), nil
}

func (m *MemoryPartnerRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.partners[id]; !ok {
		return &NotFoundError{Resource: "partner", Key: id.String()}
	}
	delete(m.partners, id)
	delete(m.translations, id)
	return nil
}

// Reorder swaps in every new sort order under one write lock, so readers see
// either all old positions or all new ones.
func (m *MemoryPartnerRepository) Reorder(_ context.Context, updates []SortOrderUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, update := range updates {
		if _, ok := m.partners[update.ID]; !ok {
			return &NotFoundError{Resource: "partner", Key: update.ID.String()}
		}
	}
	for _, update := range updates {
		m.partners[update.ID].SortOrder = update.SortOrder
	}
	return nil
}

func (m *MemoryPartnerRepository) withTranslations(src *Partner) *Partner {
	copied := clonePartner(src)
	byLocale := m.translations[src.ID]
	copied.Translations = make([]*PartnerTranslation, 0, len(byLocale))
	for _, translation := range byLocale {
		copied.Translations = append(copied.Translations, clonePartnerTranslation(translation))
	}
	sort.Slice(copied.Translations, func(i, j int) bool {
		return copied.Translations[i].LocaleCode < copied.Translations[j].LocaleCode
	})
	return copied
}

func clonePartner(src *Partner) *Partner {
	if src == nil {
		return nil
	}
	copied := *src
	if src.LogoURL != nil {
		v := *src.LogoURL
		copied.LogoURL = &v
	}
	if src.WebsiteURL != nil {
		v := *src.WebsiteURL
		copied.WebsiteURL = &v
	}
	if src.Location != nil {
		v := *src.Location
		copied.Location = &v
	}
	if src.Images != nil {
		copied.Images = append([]string(nil), src.Images...)
	}
	if src.Specialties != nil {
		copied.Specialties = append([]string(nil), src.Specialties...)
	}
	if len(src.Translations) > 0 {
		copied.Translations = make([]*PartnerTranslation, len(src.Translations))
		for i, tr := range src.Translations {
			copied.Translations[i] = clonePartnerTranslation(tr)
		}
	}
	return &copied
}

func clonePartnerTranslation(src *PartnerTranslation) *PartnerTranslation {
	if src == nil {
		return nil
	}
	copied := *src
	if src.Description != nil {
		v := *src.Description
		copied.Description = &v
	}
	return &copied
}
