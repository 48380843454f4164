package insights

import (
	"time"

	"github.com/goliatone/go-sitecms/internal/domain"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// InsightPost is one article. Locale-independent fields live here; titles,
// excerpts and bodies live on per-locale translations.
type InsightPost struct {
	bun.BaseModel `bun:"table:insight_posts,alias:ip"`

	ID             uuid.UUID     `bun:",pk,type:uuid" json:"id"`
	Slug           string        `bun:"slug,notnull,unique" json:"slug"`
	CategoryKey    string        `bun:"category_key,notnull" json:"category_key"`
	Status         domain.Status `bun:"status,notnull,default:'draft'" json:"status"`
	PublishedAt    *time.Time    `bun:"published_at,nullzero" json:"published_at,omitempty"`
	CoverImageURL  *string       `bun:"cover_image_url" json:"cover_image_url,omitempty"`
	SEOTitle       *string       `bun:"seo_title" json:"seo_title,omitempty"`
	SEODescription *string       `bun:"seo_description" json:"seo_description,omitempty"`
	CreatedAt      time.Time     `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt      time.Time     `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Translations []*InsightTranslation `bun:"rel:has-many,join:id=post_id" json:"translations,omitempty"`
}

// InsightTranslation is one locale's text for a post.
type InsightTranslation struct {
	bun.BaseModel `bun:"table:insight_translations,alias:it"`

	ID           uuid.UUID `bun:",pk,type:uuid" json:"id"`
	PostID       uuid.UUID `bun:"post_id,notnull,type:uuid,unique:insight_locale" json:"post_id"`
	LocaleCode   string    `bun:"locale_code,notnull,unique:insight_locale" json:"locale_code"`
	Title        string    `bun:"title,notnull" json:"title"`
	Excerpt      string    `bun:"excerpt" json:"excerpt"`
	BodyMarkdown string    `bun:"body_markdown" json:"body_markdown"`
	CreatedAt    time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// PostCard is the listing read model: one post resolved to a single locale.
type PostCard struct {
	Slug          string
	CategoryKey   string
	Title         string
	Excerpt       string
	CoverImageURL *string
	Locale        string
	PublishedAt   *time.Time
}

// PostFull is the detail read model: the card fields plus the rendered body
// and its table of contents.
type PostFull struct {
	PostCard
	SEOTitle       *string
	SEODescription *string
	BodyMarkdown   string
	BodyHTML       string
	Headings       []interfaces.TocItem
	UpdatedAt      time.Time
}

// PostList is one page of listing results.
type PostList struct {
	Posts      []PostCard
	Total      int
	Page       int
	TotalPages int
}

// ListOptions filters a listing request. Page is 1-based; zero means first.
type ListOptions struct {
	Category string
	Search   string
	Page     int
}
