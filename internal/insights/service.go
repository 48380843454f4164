package insights

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-sitecms/internal/content"
	"github.com/goliatone/go-sitecms/internal/domain"
	"github.com/goliatone/go-sitecms/internal/identity"
	"github.com/goliatone/go-sitecms/internal/logging"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
	"github.com/google/uuid"
)

// PageSize is the fixed number of posts per listing page.
const PageSize = 10

var (
	ErrSlugRequired     = errors.New("insights: slug is required")
	ErrLocaleRequired   = errors.New("insights: locale is required")
	ErrTitleRequired    = errors.New("insights: title is required")
	ErrCategoryRequired = errors.New("insights: category is required")
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

// PostRepository abstracts storage operations for insight posts.
type PostRepository interface {
	GetBySlug(ctx context.Context, slug string) (*InsightPost, error)
	// ListPublished returns published posts with translations loaded,
	// newest published first.
	ListPublished(ctx context.Context) ([]*InsightPost, error)
	Upsert(ctx context.Context, post *InsightPost) (*InsightPost, error)
	UpsertTranslation(ctx context.Context, translation *InsightTranslation) (*InsightTranslation, error)
}

// LocaleSource resolves the locale registry. Satisfied by content.Service.
type LocaleSource interface {
	DefaultLocale(ctx context.Context) (*content.Locale, error)
	EnabledLocales(ctx context.Context) ([]*content.Locale, error)
}

// Service exposes the insights pipeline: public listing and lookup with
// per-post locale fallback, plus the admin save path with cache-tag fan-out.
type Service interface {
	List(ctx context.Context, locale string, opts ListOptions) (*PostList, error)
	GetBySlug(ctx context.Context, locale, slug string) (*PostFull, error)
	Related(ctx context.Context, locale, slug, categoryKey string, limit int) ([]PostCard, error)
	Categories(ctx context.Context) ([]string, error)
	LatestPublished(ctx context.Context, locale string, limit int) ([]PostCard, error)
	Save(ctx context.Context, req SavePostRequest) (*InsightPost, error)
	Publish(ctx context.Context, slug string, publishedAt *time.Time) (*InsightPost, error)
	Unpublish(ctx context.Context, slug string) (*InsightPost, error)
}

// SavePostRequest captures one admin save of a post and one locale's text.
type SavePostRequest struct {
	Slug           string
	CategoryKey    string
	Status         domain.Status
	PublishedAt    *time.Time
	CoverImageURL  *string
	SEOTitle       *string
	SEODescription *string
	Locale         string
	Title          string
	Excerpt        string
	BodyMarkdown   string
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
			s.logger = logging.InsightsLogger(provider)
		}
	}
}

// WithCacheInvalidator wires tag-scoped invalidation fired on mutations.
func WithCacheInvalidator(invalidator interfaces.TagInvalidator) ServiceOption {
	return func(s *service) {
		s.invalidator = invalidator
	}
}

// WithMarkdown overrides the markdown parser and heading extractor.
func WithMarkdown(parser interfaces.MarkdownParser, headings interfaces.HeadingExtractor) ServiceOption {
	return func(s *service) {
		if parser != nil {
			s.parser = parser
		}
		if headings != nil {
			s.headings = headings
		}
	}
}

type service struct {
	posts       PostRepository
	locales     LocaleSource
	parser      interfaces.MarkdownParser
	headings    interfaces.HeadingExtractor
	invalidator interfaces.TagInvalidator
	now         func() time.Time
	id          IDGenerator
	logger      interfaces.Logger
}

// NewService constructs an insights service with the required dependencies.
func NewService(posts PostRepository, locales LocaleSource, parser interfaces.MarkdownParser, headings interfaces.HeadingExtractor, opts ...ServiceOption) Service {
	s := &service{
		posts:    posts,
		locales:  locales,
		parser:   parser,
		headings: headings,
		now:      time.Now,
		id:       uuid.New,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns one page of published posts resolved to the requested locale,
// newest published first. A post missing the requested locale's translation
// falls back to the default locale; posts with neither are skipped.
func (s *service) List(ctx context.Context, locale string, opts ListOptions) (*PostList, error) {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil, ErrLocaleRequired
	}
	defaultCode, err := s.defaultLocaleCode(ctx)
	if err != nil {
		return nil, err
	}

	published, err := s.posts.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(opts.Search))
	category := strings.TrimSpace(opts.Category)

	cards := make([]PostCard, 0, len(published))
	for _, post := range published {
		if category != "" && post.CategoryKey != category {
			continue
		}
		card, ok := resolveCard(post, locale, defaultCode)
		if !ok {
			continue
		}
		if search != "" && !matchesSearch(card, search) {
			continue
		}
		cards = append(cards, card)
	}

	total := len(cards)
	totalPages := (total + PageSize - 1) / PageSize
	page := opts.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start > total {
		start = total
	}
	end := start + PageSize
	if end > total {
		end = total
	}

	return &PostList{
		Posts:      cards[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// GetBySlug resolves one published post: requested locale, then default
// locale, then not found. The body is rendered to sanitized HTML with its
// table of contents extracted.
func (s *service) GetBySlug(ctx context.Context, locale, slug string) (*PostFull, error) {
	locale = normalizeLocale(locale)
	slug = strings.ToLower(strings.TrimSpace(slug))
	if locale == "" {
		return nil, ErrLocaleRequired
	}
	if slug == "" {
		return nil, ErrSlugRequired
	}

	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Status.IsPublished() {
		return nil, &NotFoundError{Resource: "insight_post", Key: slug}
	}
	defaultCode, err := s.defaultLocaleCode(ctx)
	if err != nil {
		return nil, err
	}
	translation := pickTranslation(post, locale, defaultCode)
	if translation == nil {
		return nil, &NotFoundError{Resource: "insight_translation", Key: fmt.Sprintf("%s:%s", slug, locale)}
	}

	full := &PostFull{
		PostCard: PostCard{
			Slug:          post.Slug,
			CategoryKey:   post.CategoryKey,
			Title:         translation.Title,
			Excerpt:       translation.Excerpt,
			CoverImageURL: post.CoverImageURL,
			Locale:        translation.LocaleCode,
			PublishedAt:   post.PublishedAt,
		},
		SEOTitle:       post.SEOTitle,
		SEODescription: post.SEODescription,
		BodyMarkdown:   translation.BodyMarkdown,
		UpdatedAt:      post.UpdatedAt,
	}

	if s.parser != nil {
		rendered, err := s.parser.ParseWithOptions([]byte(translation.BodyMarkdown), interfaces.ParseOptions{Sanitize: true})
		if err != nil {
			return nil, fmt.Errorf("insights: render body for %q: %w", slug, err)
		}
		full.BodyHTML = string(rendered)
	}
	if s.headings != nil {
		headings, err := s.headings.ExtractHeadings([]byte(translation.BodyMarkdown))
		if err != nil {
			return nil, fmt.Errorf("insights: extract headings for %q: %w", slug, err)
		}
		full.Headings = headings
	}
	return full, nil
}

// Related returns up to limit other published posts in the same category,
// excluding the given slug, newest published first.
func (s *service) Related(ctx context.Context, locale, slug, categoryKey string, limit int) ([]PostCard, error) {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil, ErrLocaleRequired
	}
	if limit <= 0 {
		return []PostCard{}, nil
	}
	defaultCode, err := s.defaultLocaleCode(ctx)
	if err != nil {
		return nil, err
	}
	published, err := s.posts.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PostCard, 0, limit)
	for _, post := range published {
		if post.Slug == slug || post.CategoryKey != categoryKey {
			continue
		}
		card, ok := resolveCard(post, locale, defaultCode)
		if !ok {
			continue
		}
		out = append(out, card)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// Categories returns the distinct category keys of published posts, sorted.
func (s *service) Categories(ctx context.Context) ([]string, error) {
	published, err := s.posts.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	out := make([]string, 0, len(published))
	for _, post := range published {
		if post.CategoryKey == "" {
			continue
		}
		if _, ok := seen[post.CategoryKey]; ok {
			continue
		}
		seen[post.CategoryKey] = struct{}{}
		out = append(out, post.CategoryKey)
	}
	sort.Strings(out)
	return out, nil
}

// LatestPublished returns the newest published posts for a locale, used by
// dynamic insights blocks on pages.
func (s *service) LatestPublished(ctx context.Context, locale string, limit int) ([]PostCard, error) {
	list, err := s.List(ctx, locale, ListOptions{Page: 1})
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(list.Posts) {
		return list.Posts[:limit], nil
	}
	return list.Posts, nil
}

// Save upserts a post and one locale's translation, then fires the cache
// tag fan-out.
func (s *service) Save(ctx context.Context, req SavePostRequest) (*InsightPost, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
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
	if strings.TrimSpace(req.CategoryKey) == "" {
		return nil, ErrCategoryRequired
	}

	now := s.now().UTC()
	status := domain.NormalizeStatus(string(req.Status))
	publishedAt := req.PublishedAt
	if status.IsPublished() && publishedAt == nil {
		publishedAt = &now
	}

	post, err := s.posts.Upsert(ctx, &InsightPost{
		ID:             identity.InsightUUID(slug),
		Slug:           slug,
		CategoryKey:    strings.TrimSpace(req.CategoryKey),
		Status:         status,
		PublishedAt:    publishedAt,
		CoverImageURL:  req.CoverImageURL,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.posts.UpsertTranslation(ctx, &InsightTranslation{
		ID:           s.id(),
		PostID:       post.ID,
		LocaleCode:   locale,
		Title:        strings.TrimSpace(req.Title),
		Excerpt:      req.Excerpt,
		BodyMarkdown: req.BodyMarkdown,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return nil, err
	}

	if err := s.invalidate(ctx, slug); err != nil {
		return nil, err
	}
	s.logger.Info("insight saved", "slug", slug, "locale", locale, "status", string(status))
	return post, nil
}

// Publish flips a post to published, stamping publishedAt when absent.
func (s *service) Publish(ctx context.Context, slug string, publishedAt *time.Time) (*InsightPost, error) {
	return s.setStatus(ctx, slug, domain.StatusPublished, publishedAt)
}

// Unpublish returns a post to draft. The post keeps its publishedAt so
// republishing preserves ordering history.
func (s *service) Unpublish(ctx context.Context, slug string) (*InsightPost, error) {
	return s.setStatus(ctx, slug, domain.StatusDraft, nil)
}

func (s *service) setStatus(ctx context.Context, slug string, status domain.Status, publishedAt *time.Time) (*InsightPost, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, ErrSlugRequired
	}
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	post.Status = status
	post.UpdatedAt = now
	if status.IsPublished() {
		if publishedAt != nil {
			post.PublishedAt = publishedAt
		} else if post.PublishedAt == nil {
			post.PublishedAt = &now
		}
	}
	updated, err := s.posts.Upsert(ctx, post)
	if err != nil {
		return nil, err
	}
	if err := s.invalidate(ctx, slug); err != nil {
		return nil, err
	}
	s.logger.Info("insight status changed", "slug", slug, "status", string(status))
	return updated, nil
}

// invalidate fires the full tag fan-out for one mutated post: the list tag
// for every enabled locale, the per-locale post tags, and the categories
// tag. Every locale's list can be affected because fallback rendering may
// surface this post anywhere.
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
			return fmt.Errorf("insights: invalidate %s: %w", tag, err)
		}
	}
	return nil
}

// InvalidationTags lists every cache tag a mutation of the given post must
// expire.
func InvalidationTags(slug string, enabled []*content.Locale) []string {
	tags := make([]string, 0, len(enabled)*2+1)
	for _, locale := range enabled {
		tags = append(tags, ListTag(locale.Code), PostTag(locale.Code, slug))
	}
	return append(tags, CategoriesTag())
}

func ListTag(locale string) string       { return "insights:list:" + locale }
func PostTag(locale, slug string) string { return "insights:post:" + locale + ":" + slug }
func CategoriesTag() string              { return "insights:categories" }

func (s *service) defaultLocaleCode(ctx context.Context) (string, error) {
	def, err := s.locales.DefaultLocale(ctx)
	if err != nil {
		return "", err
	}
	return def.Code, nil
}

func resolveCard(post *InsightPost, locale, defaultCode string) (PostCard, bool) {
	translation := pickTranslation(post, locale, defaultCode)
	if translation == nil {
		return PostCard{}, false
	}
	return PostCard{
		Slug:          post.Slug,
		CategoryKey:   post.CategoryKey,
		Title:         translation.Title,
		Excerpt:       translation.Excerpt,
		CoverImageURL: post.CoverImageURL,
		Locale:        translation.LocaleCode,
		PublishedAt:   post.PublishedAt,
	}, true
}

func pickTranslation(post *InsightPost, locale, defaultCode string) *InsightTranslation {
	var fallback *InsightTranslation
	for _, translation := range post.Translations {
		if translation.LocaleCode == locale {
			return translation
		}
		if translation.LocaleCode == defaultCode {
			fallback = translation
		}
	}
	return fallback
}

func matchesSearch(card PostCard, search string) bool {
	return strings.Contains(strings.ToLower(card.Title), search) ||
		strings.Contains(strings.ToLower(card.Excerpt), search)
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.TrimSpace(locale))
}
