package content

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Locale represents a language the site publishes in. Exactly one locale is
// flagged default; it is the fallback target whenever a translation is
// missing in the requested locale.
type Locale struct {
	bun.BaseModel `bun:"table:locales,alias:l"`

	ID        uuid.UUID `bun:",pk,type:uuid"         json:"id"`
	Code      string    `bun:"code,notnull"          json:"code"`
	Display   string    `bun:"display_name,notnull"  json:"display_name"`
	Flag      *string   `bun:"flag"                  json:"flag,omitempty"`
	IsDefault bool      `bun:"is_default,notnull,default:false" json:"is_default"`
	IsEnabled bool      `bun:"is_enabled,notnull,default:true"  json:"is_enabled"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
