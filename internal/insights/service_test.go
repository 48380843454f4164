package insights

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-sitecms/internal/content"
	"github.com/goliatone/go-sitecms/internal/domain"
	"github.com/goliatone/go-sitecms/internal/markdown"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

type recordingInvalidator struct {
	tags []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, tag string) error {
	r.tags = append(r.tags, tag)
	return nil
}

type fixture struct {
	repo        *MemoryPostRepository
	locales     content.Service
	invalidator *recordingInvalidator
	svc         Service
	clock       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	locales := content.NewService(content.NewMemoryLocaleRepository())
	err := content.Seed(ctx, locales, []content.SeedLocale{
		{Code: "en", Display: "English", IsDefault: true},
		{Code: "az", Display: "Azərbaycan"},
		{Code: "ru", Display: "Русский"},
	})
	if err != nil {
		t.Fatalf("seed locales: %v", err)
	}

	f := &fixture{
		repo:        NewMemoryPostRepository(),
		locales:     locales,
		invalidator: &recordingInvalidator{},
		clock:       time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.svc = NewService(
		f.repo, locales,
		markdown.NewGoldmarkParser(interfaces.ParseOptions{Sanitize: true}),
		markdown.NewHeadingExtractor(),
		WithCacheInvalidator(f.invalidator),
		WithClock(func() time.Time { return f.clock }),
	)
	return f
}

// seedPost publishes a post whose publishedAt is offset days before the
// fixture clock, so lower offsets are newer.
func (f *fixture) seedPost(t *testing.T, slug, category, locale string, daysAgo int) {
	t.Helper()
	publishedAt := f.clock.AddDate(0, 0, -daysAgo)
	_, err := f.svc.Save(context.Background(), SavePostRequest{
		Slug:         slug,
		CategoryKey:  category,
		Status:       domain.StatusPublished,
		PublishedAt:  &publishedAt,
		Locale:       locale,
		Title:        "Title " + slug + " " + locale,
		Excerpt:      "Excerpt " + slug,
		BodyMarkdown: "## Section One\n\nbody of " + slug + "\n",
	})
	if err != nil {
		t.Fatalf("Save(%q, %q): %v", slug, locale, err)
	}
}

func TestListNewestFirst(t *testing.T) {
	f := newFixture(t)
	f.seedPost(t, "older", "care", "en", 5)
	f.seedPost(t, "newest", "care", "en", 1)
	f.seedPost(t, "middle", "tips", "en", 3)

	list, err := f.svc.List(context.Background(), "en", ListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if list.Total != 3 || list.TotalPages != 1 {
		t.Fatalf("total = %d pages = %d", list.Total, list.TotalPages)
	}
	got := []string{list.Posts[0].Slug, list.Posts[1].Slug, list.Posts[2].Slug}
	want := []string{"newest", "middle", "older"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order = %v, want %v", got, want)
			break
		}
	}
}

func TestListCategoryFilter(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		f.seedPost(t, fmt.Sprintf("care-%d", i), "care", "en", i+1)
	}
	for i := 0; i < 2; i++ {
		f.seedPost(t, fmt.Sprintf("tips-%d", i), "tips", "en", i+1)
	}

	list, err := f.svc.List(context.Background(), "en", ListOptions{Category: "tips"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if list.Total != 2 {
		t.Fatalf("total = %d, want 2", list.Total)
	}
	for _, card := range list.Posts {
		if card.CategoryKey != "tips" {
			t.Errorf("card %q category = %q", card.Slug, card.CategoryKey)
		}
	}
}

func TestListPagination(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 12; i++ {
		f.seedPost(t, fmt.Sprintf("post-%02d", i), "care", "en", i+1)
	}

	first, err := f.svc.List(context.Background(), "en", ListOptions{Page: 1})
	if err != nil {
		t.Fatalf("List(page 1) error = %v", err)
	}
	if len(first.Posts) != PageSize || first.Total != 12 || first.TotalPages != 2 {
		t.Fatalf("page 1: len = %d total = %d pages = %d", len(first.Posts), first.Total, first.TotalPages)
	}

	second, err := f.svc.List(context.Background(), "en", ListOptions{Page: 2})
	if err != nil {
		t.Fatalf("List(page 2) error = %v", err)
	}
	if len(second.Posts) != 2 {
		t.Fatalf("page 2: len = %d, want 2", len(second.Posts))
	}
	if second.Posts[0].Slug == first.Posts[0].Slug {
		t.Error("pages overlap")
	}

	beyond, err := f.svc.List(context.Background(), "en", ListOptions{Page: 5})
	if err != nil {
		t.Fatalf("List(page 5) error = %v", err)
	}
	if len(beyond.Posts) != 0 {
		t.Errorf("page beyond range returned %d posts", len(beyond.Posts))
	}
}

func TestListSearch(t *testing.T) {
	f := newFixture(t)
	f.seedPost(t, "winter-care", "care", "en", 1)
	f.seedPost(t, "summer-tips", "tips", "en", 2)

	list, err := f.svc.List(context.Background(), "en", ListOptions{Search: "WINTER"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if list.Total != 1 || list.Posts[0].Slug != "winter-care" {
		t.Fatalf("search result = %+v", list.Posts)
	}
}

func TestListFallsBackToDefaultLocale(t *testing.T) {
	f := newFixture(t)
	f.seedPost(t, "only-english", "care", "en", 1)
	f.seedPost(t, "translated", "care", "en", 2)
	f.seedPost(t, "translated", "care", "az", 2)

	list, err := f.svc.List(context.Background(), "az", ListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if list.Total != 2 {
		t.Fatalf("total = %d, want 2", list.Total)
	}
	byLocale := map[string]string{}
	for _, card := range list.Posts {
		byLocale[card.Slug] = card.Locale
	}
	if byLocale["translated"] != "az" {
		t.Errorf("translated resolved to %q, want az", byLocale["translated"])
	}
	if byLocale["only-english"] != "en" {
		t.Errorf("only-english resolved to %q, want en fallback", byLocale["only-english"])
	}
}

func TestListExcludesDrafts(t *testing.T) {
	f := newFixture(t)
	f.seedPost(t, "live", "care", "en", 1)
	if _, err := f.svc.Save(context.Background(), SavePostRequest{
		Slug:        "hidden-draft",
		CategoryKey: "care",
		Status:      domain.StatusDraft,
		Locale:      "en",
		Title:       "Draft",
	}); err != nil {
		t.Fatalf("Save(draft): %v", err)
	}

	list, err := f.svc.List(context.Background(), "en", ListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if list.Total != 1 || list.Posts[0].Slug != "live" {
		t.Fatalf("list = %+v", list.Posts)
	}
}

func TestGetBySlugRendersBody(t *testing.T) {
	f := newFixture(t)
	f.seedPost(t, "deep-dive", "care", "en", 1)

	post, err := f.svc.GetBySlug(context.Background(), "en", "deep-dive")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if !strings.Contains(post.BodyHTML, `id="section-one"`) {
		t.Errorf("body html missing anchored heading: %s", post.BodyHTML)
	}
	if len(post.Headings) != 1 || post.Headings[0].ID != "section-one" || post.Headings[0].Level != 2 {
		t.Errorf("headings = %+v", post.Headings)
	}
	if post.Title != "Title deep-dive en" {
		t.Errorf("title = %q", post.Title)
	}
}

func TestGetBySlugFallsBack(t *testing.T) {
	f := newFixture(t)
	f.seedPost(t, "solo", "care", "en", 1)

	post, err := f.svc.GetBySlug(context.Background(), "ru", "solo")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if post.Locale != "en" {
		t.Errorf("locale = %q, want en fallback", post.Locale)
	}
}

func TestGetBySlugDraftNotFound(t *testing.T) {
	f := newFixture(t)
	if _, err := f.svc.Save(context.Background(), SavePostRequest{
		Slug:        "secret",
		CategoryKey: "care",
		Status:      domain.StatusDraft,
		Locale:      "en",
		Title:       "Secret",
	}); err != nil {
		t.Fatalf("Save(draft): %v", err)
	}

	_, err := f.svc.GetBySlug(context.Background(), "en", "secret")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
}

func TestRelatedExcludesSelf(t *testing.T) {
	f := newFixture(t)
	f.seedPost(t, "anchor", "care", "en", 1)
	f.seedPost(t, "sibling-a", "care", "en", 2)
	f.seedPost(t, "sibling-b", "care", "en", 3)
	f.seedPost(t, "other-category", "tips", "en", 1)

	related, err := f.svc.Related(context.Background(), "en", "anchor", "care", 2)
	if err != nil {
		t.Fatalf("Related() error = %v", err)
	}
	if len(related) != 2 {
		t.Fatalf("related = %d entries", len(related))
	}
	for _, card := range related {
		if card.Slug == "anchor" || card.CategoryKey != "care" {
			t.Errorf("unexpected related card %+v", card)
		}
	}
	if related[0].Slug != "sibling-a" {
		t.Errorf("related order = %q first", related[0].Slug)
	}
}

func TestCategories(t *testing.T) {
	f := newFixture(t)
	f.seedPost(t, "a", "tips", "en", 1)
	f.seedPost(t, "b", "care", "en", 2)
	f.seedPost(t, "c", "care", "en", 3)

	categories, err := f.svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	want := []string{"care", "tips"}
	if len(categories) != 2 || categories[0] != want[0] || categories[1] != want[1] {
		t.Fatalf("categories = %v, want %v", categories, want)
	}
}

func TestLatestPublishedLimits(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 5; i++ {
		f.seedPost(t, fmt.Sprintf("latest-%d", i), "care", "en", i+1)
	}

	cards, err := f.svc.LatestPublished(context.Background(), "en", 3)
	if err != nil {
		t.Fatalf("LatestPublished() error = %v", err)
	}
	if len(cards) != 3 || cards[0].Slug != "latest-0" {
		t.Fatalf("cards = %+v", cards)
	}
}

func TestSaveFiresTagFanOut(t *testing.T) {
	f := newFixture(t)
	f.seedPost(t, "fan-out", "care", "en", 1)

	got := append([]string(nil), f.invalidator.tags...)
	sort.Strings(got)
	want := []string{
		"insights:categories",
		"insights:list:az",
		"insights:list:en",
		"insights:list:ru",
		"insights:post:az:fan-out",
		"insights:post:en:fan-out",
		"insights:post:ru:fan-out",
	}
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("tags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tags = %v, want %v", got, want)
		}
	}
}

func TestPublishStampsTimestamp(t *testing.T) {
	f := newFixture(t)
	if _, err := f.svc.Save(context.Background(), SavePostRequest{
		Slug:        "pending",
		CategoryKey: "care",
		Status:      domain.StatusDraft,
		Locale:      "en",
		Title:       "Pending",
	}); err != nil {
		t.Fatalf("Save(draft): %v", err)
	}

	post, err := f.svc.Publish(context.Background(), "pending", nil)
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if !post.Status.IsPublished() {
		t.Errorf("status = %q", post.Status)
	}
	if post.PublishedAt == nil || !post.PublishedAt.Equal(f.clock) {
		t.Errorf("publishedAt = %v, want %v", post.PublishedAt, f.clock)
	}

	unpublished, err := f.svc.Unpublish(context.Background(), "pending")
	if err != nil {
		t.Fatalf("Unpublish() error = %v", err)
	}
	if unpublished.Status.IsPublished() {
		t.Errorf("status after unpublish = %q", unpublished.Status)
	}
	if unpublished.PublishedAt == nil {
		t.Error("publishedAt cleared on unpublish")
	}
}

func TestSaveRejectsMissingFields(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.Save(context.Background(), SavePostRequest{Locale: "en", Title: "x", CategoryKey: "c"}); !errors.Is(err, ErrSlugRequired) {
		t.Errorf("missing slug error = %v", err)
	}
	if _, err := f.svc.Save(context.Background(), SavePostRequest{Slug: "s", Title: "x", CategoryKey: "c"}); !errors.Is(err, ErrLocaleRequired) {
		t.Errorf("missing locale error = %v", err)
	}
	if _, err := f.svc.Save(context.Background(), SavePostRequest{Slug: "s", Locale: "en", CategoryKey: "c"}); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("missing title error = %v", err)
	}
	if _, err := f.svc.Save(context.Background(), SavePostRequest{Slug: "s", Locale: "en", Title: "x"}); !errors.Is(err, ErrCategoryRequired) {
		t.Errorf("missing category error = %v", err)
	}
}
