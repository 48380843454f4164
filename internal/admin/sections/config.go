package sections

import (
	"fmt"

	"github.com/goliatone/go-sitecms/blocks"
)

// FieldKind names the admin input widget used to edit a field.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTextarea FieldKind = "textarea"
	FieldMarkdown FieldKind = "markdown"
	FieldImage    FieldKind = "image"
	FieldURL      FieldKind = "url"
	FieldToggle   FieldKind = "toggle"
)

// FieldConfig describes one editable property of a section. Key is the
// block's JSON field name.
type FieldConfig struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
}

// SectionConfig binds one admin section to a block type. ServiceID
// disambiguates pages carrying several blocks of the same type.
type SectionConfig struct {
	Key       string        `json:"key"`
	Label     string        `json:"label"`
	BlockType blocks.Type   `json:"block_type"`
	ServiceID string        `json:"service_id,omitempty"`
	Fields    []FieldConfig `json:"fields"`
}

// PageConfig is the fixed, ordered section layout of one page. Editors can
// change values and visibility inside these slots, never the slots
// themselves.
type PageConfig struct {
	Slug     string          `json:"slug"`
	Sections []SectionConfig `json:"sections"`
}

// Registry maps page slugs to their section layouts.
type Registry map[string]PageConfig

// Lookup returns the configuration for a page slug.
func (r Registry) Lookup(slug string) (PageConfig, bool) {
	cfg, ok := r[slug]
	return cfg, ok
}

// ConfigFor is Lookup with a typed error for pages outside the registry.
func (r Registry) ConfigFor(slug string) (PageConfig, error) {
	cfg, ok := r[slug]
	if !ok {
		return PageConfig{}, fmt.Errorf("%w: %s", ErrUnknownPage, slug)
	}
	return cfg, nil
}

// DefaultRegistry is the site's static page layout registry.
func DefaultRegistry() Registry {
	return Registry{
		"home": {
			Slug: "home",
			Sections: []SectionConfig{
				{
					Key: "hero", Label: "Hero", BlockType: blocks.TypeHero,
					Fields: []FieldConfig{
						{Key: "tagline", Label: "Tagline", Kind: FieldText, Required: true},
						{Key: "heading", Label: "Heading", Kind: FieldText},
						{Key: "subheading", Label: "Subheading", Kind: FieldTextarea},
						{Key: "backgroundImage", Label: "Background image", Kind: FieldImage},
					},
				},
				{
					Key: "intro", Label: "Introduction", BlockType: blocks.TypeIntro,
					Fields: []FieldConfig{
						{Key: "heading", Label: "Heading", Kind: FieldText, Required: true},
						{Key: "body", Label: "Body", Kind: FieldTextarea},
						{Key: "image", Label: "Image", Kind: FieldImage},
					},
				},
				{
					Key: "services", Label: "Services", BlockType: blocks.TypeServices,
					Fields: []FieldConfig{
						{Key: "heading", Label: "Heading", Kind: FieldText},
					},
				},
				{
					Key: "cta", Label: "Call to action", BlockType: blocks.TypeCTA,
					Fields: []FieldConfig{
						{Key: "heading", Label: "Heading", Kind: FieldText, Required: true},
						{Key: "body", Label: "Body", Kind: FieldTextarea},
					},
				},
			},
		},
		"about": {
			Slug: "about",
			Sections: []SectionConfig{
				{
					Key: "about", Label: "About", BlockType: blocks.TypeAbout,
					Fields: []FieldConfig{
						{Key: "heading", Label: "Heading", Kind: FieldText, Required: true},
						{Key: "body", Label: "Body", Kind: FieldTextarea},
					},
				},
				{
					Key: "story", Label: "Our story", BlockType: blocks.TypeStory,
					Fields: []FieldConfig{
						{Key: "heading", Label: "Heading", Kind: FieldText},
						{Key: "body", Label: "Body", Kind: FieldTextarea},
						{Key: "image", Label: "Image", Kind: FieldImage},
					},
				},
			},
		},
		"services": {
			Slug: "services",
			Sections: []SectionConfig{
				{
					Key: "intro", Label: "Introduction", BlockType: blocks.TypeIntro,
					Fields: []FieldConfig{
						{Key: "heading", Label: "Heading", Kind: FieldText, Required: true},
						{Key: "body", Label: "Body", Kind: FieldTextarea},
					},
				},
				{
					Key: "homecare", Label: "Home care", BlockType: blocks.TypeServiceDetails, ServiceID: "homecare",
					Fields: []FieldConfig{
						{Key: "heading", Label: "Heading", Kind: FieldText, Required: true},
						{Key: "body", Label: "Body", Kind: FieldTextarea},
						{Key: "image", Label: "Image", Kind: FieldImage},
					},
				},
				{
					Key: "transport", Label: "Medical transport", BlockType: blocks.TypeServiceDetails, ServiceID: "transport",
					Fields: []FieldConfig{
						{Key: "heading", Label: "Heading", Kind: FieldText, Required: true},
						{Key: "body", Label: "Body", Kind: FieldTextarea},
						{Key: "image", Label: "Image", Kind: FieldImage},
					},
				},
			},
		},
		"contact": {
			Slug: "contact",
			Sections: []SectionConfig{
				{
					Key: "contact", Label: "Contact", BlockType: blocks.TypeContact,
					Fields: []FieldConfig{
						{Key: "heading", Label: "Heading", Kind: FieldText, Required: true},
						{Key: "address", Label: "Address", Kind: FieldTextarea},
						{Key: "phone", Label: "Phone", Kind: FieldText},
						{Key: "email", Label: "Email", Kind: FieldText},
					},
				},
			},
		},
	}
}
