package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

// AnchorID derives the anchor for a heading: lowercase, every run of
// non-alphanumeric characters collapsed to a single hyphen, edge hyphens
// trimmed. Table-of-contents navigation links against these ids, so the rule
// is a contract and must not drift.
func AnchorID(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pendingHyphen := false
	for _, r := range strings.ToLower(text) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// anchorIDTransformer stamps every heading with the AnchorID of its text so
// rendered HTML and extracted TOC entries agree.
type anchorIDTransformer struct{}

func (anchorIDTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := node.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		heading.SetAttribute([]byte("id"), []byte(AnchorID(headingText(heading, reader.Source()))))
		return ast.WalkContinue, nil
	})
}

func headingText(node ast.Node, source []byte) string {
	var b strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(source))
		default:
			b.WriteString(headingText(child, source))
		}
	}
	return b.String()
}

// HeadingExtractor walks the Markdown AST and returns the level 2 and 3
// headings in document order. Implements interfaces.HeadingExtractor.
type HeadingExtractor struct {
	engine goldmark.Markdown
}

// NewHeadingExtractor constructs an extractor with a bare goldmark engine;
// heading structure does not depend on rendering extensions.
func NewHeadingExtractor() *HeadingExtractor {
	return &HeadingExtractor{engine: goldmark.New()}
}

// ExtractHeadings returns the table of contents for a document.
func (e *HeadingExtractor) ExtractHeadings(markdown []byte) ([]interfaces.TocItem, error) {
	reader := text.NewReader(markdown)
	doc := e.engine.Parser().Parse(reader)

	var items []interfaces.TocItem
	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := node.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if heading.Level != 2 && heading.Level != 3 {
			return ast.WalkContinue, nil
		}
		headingTitle := strings.TrimSpace(headingText(heading, markdown))
		items = append(items, interfaces.TocItem{
			ID:    AnchorID(headingTitle),
			Text:  headingTitle,
			Level: heading.Level,
		})
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("markdown headings: %w", err)
	}
	return items, nil
}

var (
	_ interfaces.MarkdownParser   = (*GoldmarkParser)(nil)
	_ interfaces.HeadingExtractor = (*HeadingExtractor)(nil)
)
