// Package sitecms assembles the multilingual site CMS: localized pages built
// from structured content blocks, an insights article pipeline, a partner
// directory, and the admin section adapter, over either bun-backed or
// in-memory storage.
package sitecms

import (
	"context"

	"github.com/goliatone/go-sitecms/admin"
	"github.com/goliatone/go-sitecms/content"
	"github.com/goliatone/go-sitecms/insights"
	internalcache "github.com/goliatone/go-sitecms/internal/cache"
	"github.com/goliatone/go-sitecms/internal/markdown"
	"github.com/goliatone/go-sitecms/internal/ratelimit"
	"github.com/goliatone/go-sitecms/pages"
	"github.com/goliatone/go-sitecms/partners"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
	"github.com/goliatone/go-sitecms/render"
)

// Module is the assembled runtime: every service wired and sharing one
// locale registry, cache, and logger.
type Module struct {
	cfg Config

	locales  content.Service
	pages    pages.Service
	insights insights.Service
	partners partners.Service
	renderer *render.Renderer
	sections admin.Registry
	cache    *internalcache.MemoryProvider
	limiter  *ratelimit.Limiter
}

// New builds a module from the configuration. Without a database it runs
// entirely in memory.
func New(cfg Config, opts ...Option) (*Module, error) {
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Module{
		cfg:      cfg,
		cache:    internalcache.NewMemoryProvider(internalcache.WithDefaultTTL(cfg.CacheTTL)),
		limiter:  ratelimit.New(cfg.LoginRateLimit),
		sections: admin.DefaultRegistry(),
	}

	var (
		localeRepo  content.LocaleRepository
		pageRepo    pages.PageRepository
		postRepo    insights.PostRepository
		partnerRepo partners.PartnerRepository
	)
	if cfg.DB != nil {
		localeRepo = content.NewBunLocaleRepository(cfg.DB)
		pageRepo = pages.NewBunPageRepository(cfg.DB)
		postRepo = insights.NewBunPostRepository(cfg.DB)
		partnerRepo = partners.NewBunPartnerRepository(cfg.DB)
	} else {
		localeRepo = content.NewMemoryLocaleRepository()
		pageRepo = pages.NewMemoryPageRepository()
		postRepo = insights.NewMemoryPostRepository()
		partnerRepo = partners.NewMemoryPartnerRepository()
	}

	m.locales = content.NewService(localeRepo)
	m.pages = pages.NewService(pageRepo, m.locales,
		pages.WithLogger(cfg.Logging),
		pages.WithCacheInvalidator(m.cache),
	)
	m.insights = insights.NewService(postRepo, m.locales,
		markdown.NewGoldmarkParser(cfg.Markdown),
		markdown.NewHeadingExtractor(),
		insights.WithLogger(cfg.Logging),
		insights.WithCacheInvalidator(m.cache),
	)
	m.partners = partners.NewService(partnerRepo, m.locales,
		partners.WithLogger(cfg.Logging),
	)
	m.renderer = render.New(
		render.WithInsightSource(&teaserSource{insights: m.insights}),
		render.WithLogger(cfg.Logging),
	)
	return m, nil
}

// Seed provisions the configured locales. Safe to call on every start; the
// registration converges on the same rows.
func (m *Module) Seed(ctx context.Context) error {
	if len(m.cfg.Locales) == 0 {
		return nil
	}
	return content.Seed(ctx, m.locales, m.cfg.Locales)
}

// Locales returns the locale registry service.
func (m *Module) Locales() content.Service { return m.locales }

// Pages returns the page content service.
func (m *Module) Pages() pages.Service { return m.pages }

// Insights returns the article pipeline service.
func (m *Module) Insights() insights.Service { return m.insights }

// Partners returns the partner directory service.
func (m *Module) Partners() partners.Service { return m.partners }

// Renderer returns the block renderer, with dynamic insights wired.
func (m *Module) Renderer() *render.Renderer { return m.renderer }

// Sections returns the admin section layout registry.
func (m *Module) Sections() admin.Registry { return m.sections }

// Cache returns the built-in tag cache.
func (m *Module) Cache() *internalcache.MemoryProvider { return m.cache }

// LoginLimiter returns the login attempt limiter for the host's auth layer.
func (m *Module) LoginLimiter() *ratelimit.Limiter { return m.limiter }

// Auth returns the host's session service, nil when the host did not wire
// one.
func (m *Module) Auth() interfaces.AuthService { return m.cfg.Auth }

// Uploads returns the host's upload service, nil when the host did not wire
// one.
func (m *Module) Uploads() interfaces.Uploader { return m.cfg.Uploads }

// teaserSource adapts the insights service to the renderer's source
// contract.
type teaserSource struct {
	insights insights.Service
}

func (s *teaserSource) LatestPublished(ctx context.Context, locale string, limit int) ([]render.Teaser, error) {
	cards, err := s.insights.LatestPublished(ctx, locale, limit)
	if err != nil {
		return nil, err
	}
	out := make([]render.Teaser, len(cards))
	for i, card := range cards {
		out[i] = render.Teaser{
			Slug:     card.Slug,
			Title:    card.Title,
			Excerpt:  card.Excerpt,
			Category: card.CategoryKey,
		}
		if card.CoverImageURL != nil {
			out[i].Image = *card.CoverImageURL
		}
	}
	return out, nil
}
