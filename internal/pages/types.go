package pages

import (
	"encoding/json"
	"time"

	"github.com/goliatone/go-sitecms/blocks"
	"github.com/goliatone/go-sitecms/internal/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Page is a locale-independent content slot identified by slug. All localized
// content lives on its translations.
type Page struct {
	bun.BaseModel `bun:"table:pages,alias:p"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Slug      string    `bun:"slug,notnull,unique" json:"slug"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Translations []*PageTranslation `bun:"rel:has-many,join:id=page_id" json:"translations,omitempty"`
}

// PageTranslation holds one locale's content payload for a page: title, SEO
// overrides and the ordered block array as stored JSON. At most one row per
// (page, locale); rows are created lazily on first admin edit and toggled by
// status instead of being deleted.
type PageTranslation struct {
	bun.BaseModel `bun:"table:page_translations,alias:pt"`

	ID             uuid.UUID       `bun:",pk,type:uuid" json:"id"`
	PageID         uuid.UUID       `bun:"page_id,notnull,type:uuid,unique:page_locale" json:"page_id"`
	LocaleCode     string          `bun:"locale_code,notnull,unique:page_locale" json:"locale_code"`
	Title          string          `bun:"title,notnull" json:"title"`
	SEOTitle       *string         `bun:"seo_title" json:"seo_title,omitempty"`
	SEODescription *string         `bun:"seo_description" json:"seo_description,omitempty"`
	OGImage        *string         `bun:"og_image" json:"og_image,omitempty"`
	Blocks         json.RawMessage `bun:"blocks,type:jsonb,notnull" json:"blocks"`
	Status         domain.Status   `bun:"status,notnull,default:'draft'" json:"status"`
	UpdatedBy      *uuid.UUID      `bun:"updated_by,type:uuid" json:"updated_by,omitempty"`
	CreatedAt      time.Time       `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt      time.Time       `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// PageContent is the public read model: the resolved translation with its
// blocks decoded. Locale reports where the content actually came from, which
// differs from RequestedLocale when fallback kicked in.
type PageContent struct {
	Slug            string
	RequestedLocale string
	Locale          string
	Title           string
	SEOTitle        *string
	SEODescription  *string
	OGImage         *string
	Blocks          []blocks.Block
}

// AdminPageContent is the admin read model: the translation row for the
// requested locale (synthesized as an empty draft when missing) plus a
// cross-locale completion summary.
type AdminPageContent struct {
	Page            *Page
	Translation     *PageTranslation
	Blocks          []blocks.Block
	AllTranslations []TranslationSummary
}

// TranslationSummary reports per-locale completion state for a page.
type TranslationSummary struct {
	Locale    string
	Exists    bool
	Status    domain.Status
	Title     string
	UpdatedAt time.Time
}
