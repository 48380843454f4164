package pages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-sitecms/blocks"
	"github.com/goliatone/go-sitecms/internal/content"
	"github.com/goliatone/go-sitecms/internal/domain"
	"github.com/goliatone/go-sitecms/internal/identity"
	"github.com/goliatone/go-sitecms/internal/logging"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
	"github.com/google/uuid"
)

var (
	ErrSlugRequired   = errors.New("pages: slug is required")
	ErrLocaleRequired = errors.New("pages: locale is required")
	ErrTitleRequired  = errors.New("pages: title is required")
	ErrUnknownLocale  = errors.New("pages: locale is not enabled")
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

// PageRepository abstracts storage operations for pages and translations.
type PageRepository interface {
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	Create(ctx context.Context, page *Page) (*Page, error)
	List(ctx context.Context) ([]*Page, error)
	GetTranslation(ctx context.Context, pageID uuid.UUID, localeCode string) (*PageTranslation, error)
	ListTranslations(ctx context.Context, pageID uuid.UUID) ([]*PageTranslation, error)
	// EnsureTranslation inserts the row unless one already exists for the
	// (page, locale) pair, in which case the existing row is returned. A
	// uniqueness conflict is a fetch, not a failure.
	EnsureTranslation(ctx context.Context, translation *PageTranslation) (*PageTranslation, error)
	// UpdateTranslation replaces the full row in a single write.
	UpdateTranslation(ctx context.Context, translation *PageTranslation) (*PageTranslation, error)
}

// LocaleSource resolves the locale registry. Satisfied by content.Service.
type LocaleSource interface {
	DefaultLocale(ctx context.Context) (*content.Locale, error)
	EnabledLocales(ctx context.Context) ([]*content.Locale, error)
}

// Service exposes page content resolution and the admin save path.
type Service interface {
	GetPublished(ctx context.Context, slug, locale string) (*PageContent, error)
	GetForAdmin(ctx context.Context, slug, locale string) (*AdminPageContent, error)
	EnsurePage(ctx context.Context, slug string) (*Page, error)
	List(ctx context.Context) ([]*Page, error)
	SaveTranslation(ctx context.Context, req SaveTranslationRequest) (*PageTranslation, error)
	PropagateMedia(ctx context.Context, slug, sourceLocale string) (int, error)
}

// SaveTranslationRequest captures one admin save of a (page, locale) payload.
// The row is written whole; concurrent saves are last-write-wins.
type SaveTranslationRequest struct {
	Slug           string
	Locale         string
	Title          string
	SEOTitle       *string
	SEODescription *string
	OGImage        *string
	Blocks         []blocks.Block
	Status         domain.Status
	UpdatedBy      *uuid.UUID
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
			s.logger = logging.PagesLogger(provider)
		}
	}
}

// WithCacheInvalidator wires tag invalidation for page mutations.
func WithCacheInvalidator(invalidator interfaces.TagInvalidator) ServiceOption {
	return func(s *service) {
		s.invalidator = invalidator
	}
}

type service struct {
	pages       PageRepository
	locales     LocaleSource
	now         func() time.Time
	id          IDGenerator
	logger      interfaces.Logger
	invalidator interfaces.TagInvalidator
}

// NewService constructs a page service with the required dependencies.
func NewService(pages PageRepository, locales LocaleSource, opts ...ServiceOption) Service {
	s := &service{
		pages:   pages,
		locales: locales,
		now:     time.Now,
		id:      uuid.New,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetPublished resolves the published translation for a slug: requested
// locale first, then the default locale. The public path never writes.
func (s *service) GetPublished(ctx context.Context, slug, locale string) (*PageContent, error) {
	slug = normalizeSlug(slug)
	locale = normalizeLocale(locale)
	if slug == "" {
		return nil, ErrSlugRequired
	}
	if locale == "" {
		return nil, ErrLocaleRequired
	}

	page, err := s.pages.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	translation, err := s.publishedTranslation(ctx, page.ID, locale)
	if err != nil {
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			return nil, err
		}
		def, derr := s.locales.DefaultLocale(ctx)
		if derr != nil {
			return nil, derr
		}
		if def.Code == locale {
			return nil, err
		}
		translation, err = s.publishedTranslation(ctx, page.ID, def.Code)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("page resolved via fallback", "slug", slug, "requested", locale, "resolved", def.Code)
	}

	decoded, err := blocks.DecodeBlocksLenient(translation.Blocks)
	if err != nil {
		return nil, fmt.Errorf("pages: decode stored blocks for %q/%s: %w", slug, translation.LocaleCode, err)
	}
	return &PageContent{
		Slug:            slug,
		RequestedLocale: locale,
		Locale:          translation.LocaleCode,
		Title:           translation.Title,
		SEOTitle:        translation.SEOTitle,
		SEODescription:  translation.SEODescription,
		OGImage:         translation.OGImage,
		Blocks:          decoded,
	}, nil
}

func (s *service) publishedTranslation(ctx context.Context, pageID uuid.UUID, locale string) (*PageTranslation, error) {
	translation, err := s.pages.GetTranslation(ctx, pageID, locale)
	if err != nil {
		return nil, err
	}
	if !translation.Status.IsPublished() {
		return nil, &NotFoundError{Resource: "page_translation", Key: locale}
	}
	return translation, nil
}

// GetForAdmin returns the translation regardless of status. A missing row is
// synthesized as an empty draft through an idempotent insert so the admin
// can always begin editing; concurrent calls converge on one row.
func (s *service) GetForAdmin(ctx context.Context, slug, locale string) (*AdminPageContent, error) {
	slug = normalizeSlug(slug)
	locale = normalizeLocale(locale)
	if slug == "" {
		return nil, ErrSlugRequired
	}
	if locale == "" {
		return nil, ErrLocaleRequired
	}
	if err := s.requireEnabledLocale(ctx, locale); err != nil {
		return nil, err
	}

	page, err := s.pages.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	translation, err := s.pages.EnsureTranslation(ctx, &PageTranslation{
		ID:         s.id(),
		PageID:     page.ID,
		LocaleCode: locale,
		Title:      "",
		Blocks:     json.RawMessage("[]"),
		Status:     domain.StatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	decoded, err := blocks.DecodeBlocksLenient(translation.Blocks)
	if err != nil {
		return nil, fmt.Errorf("pages: decode stored blocks for %q/%s: %w", slug, locale, err)
	}

	summaries, err := s.translationSummaries(ctx, page.ID)
	if err != nil {
		return nil, err
	}

	return &AdminPageContent{
		Page:            page,
		Translation:     translation,
		Blocks:          decoded,
		AllTranslations: summaries,
	}, nil
}

func (s *service) translationSummaries(ctx context.Context, pageID uuid.UUID) ([]TranslationSummary, error) {
	enabled, err := s.locales.EnabledLocales(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.pages.ListTranslations(ctx, pageID)
	if err != nil {
		return nil, err
	}
	byLocale := make(map[string]*PageTranslation, len(existing))
	for _, tr := range existing {
		byLocale[tr.LocaleCode] = tr
	}

	out := make([]TranslationSummary, 0, len(enabled))
	for _, locale := range enabled {
		summary := TranslationSummary{Locale: locale.Code, Status: domain.StatusDraft}
		if tr, ok := byLocale[locale.Code]; ok {
			summary.Exists = true
			summary.Status = tr.Status
			summary.Title = tr.Title
			summary.UpdatedAt = tr.UpdatedAt
		}
		out = append(out, summary)
	}
	return out, nil
}

// EnsurePage creates the page row for a slug if missing. IDs derive from the
// slug so seeding is repeatable.
func (s *service) EnsurePage(ctx context.Context, slug string) (*Page, error) {
	slug = normalizeSlug(slug)
	if slug == "" {
		return nil, ErrSlugRequired
	}
	page, err := s.pages.GetBySlug(ctx, slug)
	if err == nil {
		return page, nil
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		return nil, err
	}
	now := s.now().UTC()
	return s.pages.Create(ctx, &Page{
		ID:        identity.PageUUID(slug),
		Slug:      slug,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *service) List(ctx context.Context) ([]*Page, error) {
	return s.pages.List(ctx)
}

// SaveTranslation validates the block array and writes the translation row
// whole. Missing rows are provisioned first, so saving to a never-edited
// (page, locale) pair works in one call.
func (s *service) SaveTranslation(ctx context.Context, req SaveTranslationRequest) (*PageTranslation, error) {
	slug := normalizeSlug(req.Slug)
	locale := normalizeLocale(req.Locale)
	if slug == "" {
		return nil, ErrSlugRequired
	}
	if locale == "" {
		return nil, ErrLocaleRequired
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if err := s.requireEnabledLocale(ctx, locale); err != nil {
		return nil, err
	}
	status := domain.NormalizeStatus(string(req.Status))

	if err := blocks.ValidateBlocks(req.Blocks); err != nil {
		return nil, err
	}
	encoded, err := blocks.EncodeBlocks(req.Blocks)
	if err != nil {
		return nil, err
	}

	page, err := s.pages.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	translation, err := s.pages.EnsureTranslation(ctx, &PageTranslation{
		ID:         s.id(),
		PageID:     page.ID,
		LocaleCode: locale,
		Blocks:     json.RawMessage("[]"),
		Status:     domain.StatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	translation.Title = strings.TrimSpace(req.Title)
	translation.SEOTitle = req.SEOTitle
	translation.SEODescription = req.SEODescription
	translation.OGImage = req.OGImage
	translation.Blocks = encoded
	translation.Status = status
	translation.UpdatedBy = req.UpdatedBy
	translation.UpdatedAt = now

	updated, err := s.pages.UpdateTranslation(ctx, translation)
	if err != nil {
		return nil, err
	}
	if err := s.invalidate(ctx, slug); err != nil {
		return nil, err
	}
	s.logger.Info("page translation saved", "slug", slug, "locale", locale, "status", string(status))
	return updated, nil
}

// PropagateMedia copies media fields from one locale's blocks onto every
// other translation of the page. Sharing media across locales is this
// explicit copy, never a live reference. Returns the number of translations
// updated.
func (s *service) PropagateMedia(ctx context.Context, slug, sourceLocale string) (int, error) {
	slug = normalizeSlug(slug)
	sourceLocale = normalizeLocale(sourceLocale)
	if slug == "" {
		return 0, ErrSlugRequired
	}
	if sourceLocale == "" {
		return 0, ErrLocaleRequired
	}

	page, err := s.pages.GetBySlug(ctx, slug)
	if err != nil {
		return 0, err
	}
	source, err := s.pages.GetTranslation(ctx, page.ID, sourceLocale)
	if err != nil {
		return 0, err
	}
	sourceBlocks, err := blocks.DecodeBlocksLenient(source.Blocks)
	if err != nil {
		return 0, fmt.Errorf("pages: decode source blocks for %q/%s: %w", slug, sourceLocale, err)
	}

	siblings, err := s.pages.ListTranslations(ctx, page.ID)
	if err != nil {
		return 0, err
	}

	updated := 0
	now := s.now().UTC()
	for _, sibling := range siblings {
		if sibling.LocaleCode == sourceLocale {
			continue
		}
		targetBlocks, err := blocks.DecodeBlocksLenient(sibling.Blocks)
		if err != nil {
			return updated, fmt.Errorf("pages: decode target blocks for %q/%s: %w", slug, sibling.LocaleCode, err)
		}
		merged := blocks.MergeGlobalMedia(sourceBlocks, targetBlocks)
		encoded, err := blocks.EncodeBlocks(merged)
		if err != nil {
			return updated, err
		}
		sibling.Blocks = encoded
		sibling.UpdatedAt = now
		if _, err := s.pages.UpdateTranslation(ctx, sibling); err != nil {
			return updated, err
		}
		updated++
	}
	if updated > 0 {
		if err := s.invalidate(ctx, slug); err != nil {
			return updated, err
		}
	}
	s.logger.Info("media propagated", "slug", slug, "source", sourceLocale, "updated", updated)
	return updated, nil
}

// invalidate fires the tag fan-out for one mutated page: the per-locale page
// tag for every enabled locale plus the slug-wide tag. Every locale's cached
// page can be affected because fallback rendering may serve the mutated
// translation anywhere.
func (s *service) invalidate(ctx context.Context, slug string) error {
	if s.invalidator == nil {
		return nil
	}
	enabled, err := s.locales.EnabledLocales(ctx)
	if err != nil {
		return err
	}
	for _, tag := range InvalidationTags(slug, enabled) {
		if err := s.invalidator.Invalidate(ctx, tag); err != nil {
			return fmt.Errorf("pages: invalidate %s: %w", tag, err)
		}
	}
	return nil
}

// InvalidationTags lists every cache tag a mutation of the given page must
// expire.
func InvalidationTags(slug string, enabled []*content.Locale) []string {
	tags := make([]string, 0, len(enabled)+1)
	for _, locale := range enabled {
		tags = append(tags, PageTag(slug, locale.Code))
	}
	return append(tags, SlugTag(slug))
}

func PageTag(slug, locale string) string { return "pages:" + slug + ":" + locale }
func SlugTag(slug string) string         { return "pages:" + slug }

func (s *service) requireEnabledLocale(ctx context.Context, locale string) error {
	enabled, err := s.locales.EnabledLocales(ctx)
	if err != nil {
		return err
	}
	for _, candidate := range enabled {
		if candidate.Code == locale {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownLocale, locale)
}

func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.TrimSpace(locale))
}
