package sitecms

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-sitecms/blocks"
	"github.com/goliatone/go-sitecms/content"
	"github.com/goliatone/go-sitecms/domain"
	"github.com/goliatone/go-sitecms/insights"
	internalcache "github.com/goliatone/go-sitecms/internal/cache"
	"github.com/goliatone/go-sitecms/pages"
)

func newModule(t *testing.T) *Module {
	t.Helper()
	module, err := New(DefaultConfig(), WithLocales(
		content.SeedLocale{Code: "en", Display: "English", IsDefault: true},
		content.SeedLocale{Code: "az", Display: "Azərbaycan"},
	))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := module.Seed(context.Background()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	return module
}

func TestModulePageFallbackFlow(t *testing.T) {
	module := newModule(t)
	ctx := context.Background()

	if _, err := module.Pages().EnsurePage(ctx, "home"); err != nil {
		t.Fatalf("EnsurePage() error = %v", err)
	}
	if _, err := module.Pages().SaveTranslation(ctx, pages.SaveTranslationRequest{
		Slug:   "home",
		Locale: "en",
		Title:  "Home",
		Blocks: []blocks.Block{&blocks.Hero{Tagline: "Welcome"}},
		Status: domain.StatusPublished,
	}); err != nil {
		t.Fatalf("SaveTranslation() error = %v", err)
	}

	got, err := module.Pages().GetPublished(ctx, "home", "az")
	if err != nil {
		t.Fatalf("GetPublished() error = %v", err)
	}
	if got.Locale != "en" || got.RequestedLocale != "az" {
		t.Errorf("locale = %q requested = %q", got.Locale, got.RequestedLocale)
	}
}

func TestModulePageSaveExpiresCachedEntries(t *testing.T) {
	module := newModule(t)
	ctx := context.Background()

	if _, err := module.Pages().EnsurePage(ctx, "home"); err != nil {
		t.Fatalf("EnsurePage() error = %v", err)
	}
	if err := module.Cache().SetWithTags(ctx, "pages:home:en:rendered", "stale", 0,
		pages.PageTag("home", "en")); err != nil {
		t.Fatalf("SetWithTags() error = %v", err)
	}
	if err := module.Cache().SetWithTags(ctx, "pages:home:summary", "stale", 0,
		pages.SlugTag("home")); err != nil {
		t.Fatalf("SetWithTags() error = %v", err)
	}

	if _, err := module.Pages().SaveTranslation(ctx, pages.SaveTranslationRequest{
		Slug:   "home",
		Locale: "en",
		Title:  "Home",
		Blocks: []blocks.Block{&blocks.Hero{Tagline: "Welcome"}},
		Status: domain.StatusPublished,
	}); err != nil {
		t.Fatalf("SaveTranslation() error = %v", err)
	}

	if _, err := module.Cache().Get(ctx, "pages:home:en:rendered"); !errors.Is(err, internalcache.ErrCacheMiss) {
		t.Errorf("per-locale entry after save: err = %v, want ErrCacheMiss", err)
	}
	if _, err := module.Cache().Get(ctx, "pages:home:summary"); !errors.Is(err, internalcache.ErrCacheMiss) {
		t.Errorf("slug-wide entry after save: err = %v, want ErrCacheMiss", err)
	}
}

func TestModuleRendererUsesInsights(t *testing.T) {
	module := newModule(t)
	ctx := context.Background()

	if _, err := module.Insights().Save(ctx, insights.SavePostRequest{
		Slug:         "first-post",
		CategoryKey:  "care",
		Status:       domain.StatusPublished,
		Locale:       "en",
		Title:        "First Post",
		Excerpt:      "The first one",
		BodyMarkdown: "## Heading\n\nbody\n",
	}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	rendered, err := module.Renderer().Render(ctx, "en", []blocks.Block{
		&blocks.Hero{Tagline: "Welcome"},
		&blocks.InsightsList{Dynamic: true, Limit: 3},
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(rendered) != 2 {
		t.Fatalf("rendered = %d blocks", len(rendered))
	}
	items, ok := rendered[1].Props["items"].([]map[string]any)
	if !ok || len(items) != 1 {
		t.Fatalf("items = %#v", rendered[1].Props["items"])
	}
	if items[0]["slug"] != "first-post" {
		t.Errorf("teaser = %#v", items[0])
	}
}
