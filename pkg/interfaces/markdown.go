package interfaces

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be stateless so callers can reuse a single instance
// across requests without additional locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// TocItem is one entry of a rendered article's table of contents. ID follows
// the anchor rule shared with in-page navigation: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, edge hyphens
// trimmed.
type TocItem struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// HeadingExtractor produces the table of contents for a Markdown document.
// Only levels 2 and 3 participate; deeper headings are navigation noise.
type HeadingExtractor interface {
	ExtractHeadings(markdown []byte) ([]TocItem, error)
}
