package partners

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-sitecms/internal/content"
	"github.com/goliatone/go-sitecms/internal/domain"
	"github.com/goliatone/go-sitecms/internal/identity"
	"github.com/goliatone/go-sitecms/internal/logging"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
	"github.com/google/uuid"
)

var (
	ErrNameRequired     = errors.New("partners: name is required")
	ErrCategoryRequired = errors.New("partners: category is required")
	ErrEmptyReorder     = errors.New("partners: reorder requires at least one entry")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// PartnerRepository abstracts storage operations for partners.
type PartnerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Partner, error)
	// List returns partners with translations, ordered by sort order then
	// name.
	List(ctx context.Context) ([]*Partner, error)
	Upsert(ctx context.Context, partner *Partner) (*Partner, error)
	UpsertTranslation(ctx context.Context, translation *PartnerTranslation) (*PartnerTranslation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Reorder applies every sort order update atomically. A concurrent
	// reader sees either the old ordering or the new one, never a mix.
	Reorder(ctx context.Context, updates []SortOrderUpdate) error
}

// PartnerView is a partner resolved to a single locale.
type PartnerView struct {
	Partner
	Description *string
}

// Service exposes the partner directory use-cases.
type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*Partner, error)
	// ListPublished resolves published partners to the requested locale.
	ListPublished(ctx context.Context, locale string) ([]PartnerView, error)
	// ListAll returns every partner regardless of status, for admin use.
	ListAll(ctx context.Context) ([]*Partner, error)
	Save(ctx context.Context, req SavePartnerRequest) (*Partner, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, updates []SortOrderUpdate) error
}

// SavePartnerRequest captures one admin save of a partner and optionally one
// locale's description.
type SavePartnerRequest struct {
	Name        string
	LogoURL     *string
	WebsiteURL  *string
	Category    string
	Status      domain.Status
	SortOrder   int
	Images      []string
	Specialties []string
	Location    *string
	Locale      string
	Description *string
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		s.now = clock
	}
}

type IDGenerator func() uuid.UUID

func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger attaches a logger provider; default is no-op.
func WithLogger(provider interfaces.LoggerProvider) ServiceOption {
	return func(s *service) {
		if provider != nil {
			s.logger = logging.PartnersLogger(provider)
		}
	}
}

type service struct {
	partners PartnerRepository
	locales  LocaleSource
	now      func() time.Time
	id       IDGenerator
	logger   interfaces.Logger
}

// LocaleSource resolves the locale registry. Satisfied by content.Service.
type LocaleSource interface {
	DefaultLocale(ctx context.Context) (*content.Locale, error)
}

// NewService constructs a partner service with the required dependencies.
func NewService(partners PartnerRepository, locales LocaleSource, opts ...ServiceOption) Service {
	s := &service{
		partners: partners,
		locales:  locales,
		now:      time.Now,
		id:       uuid.New,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Partner, error) {
	return s.partners.GetByID(ctx, id)
}

// ListPublished returns published partners ordered by sort order then name,
// each resolved to the requested locale with default-locale fallback for
// descriptions.
func (s *service) ListPublished(ctx context.Context, locale string) ([]PartnerView, error) {
	locale = strings.ToLower(strings.TrimSpace(locale))
	def, err := s.locales.DefaultLocale(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.partners.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PartnerView, 0, len(all))
	for _, partner := range all {
		if !partner.Status.IsPublished() {
			continue
		}
		out = append(out, PartnerView{
			Partner:     *partner,
			Description: pickDescription(partner, locale, def.Code),
		})
	}
	return out, nil
}

func (s *service) ListAll(ctx context.Context) ([]*Partner, error) {
	return s.partners.List(ctx)
}

// Save upserts a partner keyed by its name-derived ID, plus one locale's
// description when the request carries one.
func (s *service) Save(ctx context.Context, req SavePartnerRequest) (*Partner, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, ErrCategoryRequired
	}

	now := s.now().UTC()
	partner, err := s.partners.Upsert(ctx, &Partner{
		ID:          identity.PartnerUUID(name),
		Name:        name,
		LogoURL:     req.LogoURL,
		WebsiteURL:  req.WebsiteURL,
		Category:    strings.TrimSpace(req.Category),
		Status:      domain.NormalizeStatus(string(req.Status)),
		SortOrder:   req.SortOrder,
		Images:      req.Images,
		Specialties: req.Specialties,
		Location:    req.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	locale := strings.ToLower(strings.TrimSpace(req.Locale))
	if locale != "" && req.Description != nil {
		if _, err := s.partners.UpsertTranslation(ctx, &PartnerTranslation{
			ID:          s.id(),
			PartnerID:   partner.ID,
			LocaleCode:  locale,
			Description: req.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}); err != nil {
			return nil, err
		}
	}
	s.logger.Info("partner saved", "name", name, "category", partner.Category)
	return partner, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.partners.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("partner deleted", "id", id.String())
	return nil
}

// Reorder applies the new sort orders in one atomic step.
func (s *service) Reorder(ctx context.Context, updates []SortOrderUpdate) error {
	if len(updates) == 0 {
		return ErrEmptyReorder
	}
	if err := s.partners.Reorder(ctx, updates); err != nil {
		return err
	}
	s.logger.Info("partners reordered", "count", len(updates))
	return nil
}

func pickDescription(partner *Partner, locale, defaultCode string) *string {
	var fallback *string
	for _, translation := range partner.Translations {
		if translation.LocaleCode == locale {
			return translation.Description
		}
		if translation.LocaleCode == defaultCode {
			fallback = translation.Description
		}
	}
	return fallback
}
