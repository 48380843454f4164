package markdown

import (
	"strings"
	"testing"

	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

func TestAnchorID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World! ", "hello-world"},
		{"Simple", "simple"},
		{"  Multiple   Spaces  ", "multiple-spaces"},
		{"Ümlauts & Émojis 🎉", "mlauts-mojis"},
		{"2024 Review", "2024-review"},
		{"---", ""},
		{"already-hyphenated", "already-hyphenated"},
	}
	for _, tc := range cases {
		if got := AnchorID(tc.in); got != tc.want {
			t.Errorf("AnchorID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExtractHeadings(t *testing.T) {
	source := []byte("# Title\n\n## Hello, World! \n\nbody\n\n### Detail Section\n\n#### Too Deep\n\n## Wrap Up\n")

	items, err := NewHeadingExtractor().ExtractHeadings(source)
	if err != nil {
		t.Fatalf("ExtractHeadings() error = %v", err)
	}
	want := []interfaces.TocItem{
		{ID: "hello-world", Text: "Hello, World!", Level: 2},
		{ID: "detail-section", Text: "Detail Section", Level: 3},
		{ID: "wrap-up", Text: "Wrap Up", Level: 2},
	}
	if len(items) != len(want) {
		t.Fatalf("items = %+v, want %d entries", items, len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestParseRendersAnchoredHeadings(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{Sanitize: true})

	out, err := parser.Parse([]byte("## Hello, World!\n\nSome **bold** text.\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	htmlOut := string(out)
	if !strings.Contains(htmlOut, `id="hello-world"`) {
		t.Errorf("heading id missing: %s", htmlOut)
	}
	if !strings.Contains(htmlOut, "<strong>bold</strong>") {
		t.Errorf("emphasis missing: %s", htmlOut)
	}
}

func TestParseSanitizesScripts(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{Sanitize: true})

	out, err := parser.Parse([]byte("hello\n\n<script>alert(1)</script>\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Errorf("script tag survived sanitization: %s", out)
	}
}

func TestParseArticleFrontMatter(t *testing.T) {
	source := []byte(`---
title: "Care At Home"
excerpt: "What home care looks like"
category: "homecare"
locale: en
draft: true
---

## Body Heading

content
`)

	meta, body, err := ParseArticle(source)
	if err != nil {
		t.Fatalf("ParseArticle() error = %v", err)
	}
	if meta.Title != "Care At Home" {
		t.Errorf("title = %q", meta.Title)
	}
	if meta.Slug != "care-at-home" {
		t.Errorf("derived slug = %q, want care-at-home", meta.Slug)
	}
	if meta.Category != "homecare" || meta.Locale != "en" || !meta.Draft {
		t.Errorf("meta = %+v", meta)
	}
	if !strings.Contains(string(body), "## Body Heading") {
		t.Errorf("body = %q", body)
	}
}

func TestParseArticleRequiresTitle(t *testing.T) {
	_, _, err := ParseArticle([]byte("---\nslug: x\n---\nbody\n"))
	if err == nil {
		t.Fatal("expected error for missing title")
	}
}
