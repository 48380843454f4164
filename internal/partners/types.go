package partners

import (
	"time"

	"github.com/goliatone/go-sitecms/internal/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Partner is one directory entry. Descriptions are per-locale and live on
// translations; everything else is locale-independent.
type Partner struct {
	bun.BaseModel `bun:"table:partners,alias:pr"`

	ID          uuid.UUID     `bun:",pk,type:uuid" json:"id"`
	Name        string        `bun:"name,notnull" json:"name"`
	LogoURL     *string       `bun:"logo_url" json:"logo_url,omitempty"`
	WebsiteURL  *string       `bun:"website_url" json:"website_url,omitempty"`
	Category    string        `bun:"category,notnull" json:"category"`
	Status      domain.Status `bun:"status,notnull,default:'draft'" json:"status"`
	SortOrder   int           `bun:"sort_order,notnull,default:0" json:"sort_order"`
	Images      []string      `bun:"images,type:jsonb" json:"images,omitempty"`
	Specialties []string      `bun:"specialties,type:jsonb" json:"specialties,omitempty"`
	Location    *string       `bun:"location" json:"location,omitempty"`
	CreatedAt   time.Time     `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time     `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Translations []*PartnerTranslation `bun:"rel:has-many,join:id=partner_id" json:"translations,omitempty"`
}

// PartnerTranslation is one locale's description for a partner.
type PartnerTranslation struct {
	bun.BaseModel `bun:"table:partner_translations,alias:prt"`

	ID          uuid.UUID `bun:",pk,type:uuid" json:"id"`
	PartnerID   uuid.UUID `bun:"partner_id,notnull,type:uuid,unique:partner_locale" json:"partner_id"`
	LocaleCode  string    `bun:"locale_code,notnull,unique:partner_locale" json:"locale_code"`
	Description *string   `bun:"description" json:"description,omitempty"`
	CreatedAt   time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// SortOrderUpdate assigns one partner its new position.
type SortOrderUpdate struct {
	ID        uuid.UUID
	SortOrder int
}
