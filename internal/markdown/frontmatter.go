package markdown

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	slug "github.com/goliatone/go-slug"
)

// ArticleFrontMatter is the metadata header of an importable insights
// article file.
type ArticleFrontMatter struct {
	Title          string    `yaml:"title"`
	Slug           string    `yaml:"slug"`
	Excerpt        string    `yaml:"excerpt"`
	Category       string    `yaml:"category"`
	Locale         string    `yaml:"locale"`
	Date           time.Time `yaml:"date"`
	Draft          bool      `yaml:"draft"`
	CoverImage     string    `yaml:"coverImage"`
	SEOTitle       string    `yaml:"seoTitle"`
	SEODescription string    `yaml:"seoDescription"`
}

// ParseArticle extracts the frontmatter and Markdown body from an article
// file. A missing slug is derived from the title; a missing locale is left
// for the caller to default.
func ParseArticle(source []byte) (ArticleFrontMatter, []byte, error) {
	var meta ArticleFrontMatter

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return ArticleFrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	if strings.TrimSpace(meta.Title) == "" {
		return ArticleFrontMatter{}, nil, fmt.Errorf("parse frontmatter: title is required")
	}
	if strings.TrimSpace(meta.Slug) == "" {
		derived, err := slug.Normalize(meta.Title)
		if err != nil {
			return ArticleFrontMatter{}, nil, fmt.Errorf("parse frontmatter: derive slug: %w", err)
		}
		meta.Slug = derived
	}
	meta.Slug = strings.ToLower(strings.TrimSpace(meta.Slug))
	meta.Locale = strings.ToLower(strings.TrimSpace(meta.Locale))
	meta.Category = strings.TrimSpace(meta.Category)

	return meta, body, nil
}
