// Package render turns an ordered block array into presentation-neutral
// output. Rendering is split into an async data pass, which resolves blocks
// that need external data, and a pure synchronous dispatch over block types.
package render

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/goliatone/go-sitecms/blocks"
	"github.com/goliatone/go-sitecms/internal/logging"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

// Teaser is the resolved shape of one dynamic insights entry.
type Teaser struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt,omitempty"`
	Image    string `json:"image,omitempty"`
	Category string `json:"category,omitempty"`
}

// InsightSource feeds dynamic insightsList blocks with the latest published
// articles for a locale.
type InsightSource interface {
	LatestPublished(ctx context.Context, locale string, limit int) ([]Teaser, error)
}

// Rendered is one displayable block: its type plus a flat property map. The
// renderer never decides markup; hosts map Type to whatever view layer they
// use.
type Rendered struct {
	Type  blocks.Type
	Props map[string]any
}

// defaultDynamicLimit caps a dynamic insightsList that does not set its own.
const defaultDynamicLimit = 3

// Option configures a Renderer.
type Option func(*Renderer)

// WithInsightSource wires the article source for dynamic blocks. Without it,
// dynamic insightsList blocks are omitted.
func WithInsightSource(source InsightSource) Option {
	return func(r *Renderer) {
		r.insights = source
	}
}

// WithLogger attaches a logger provider; default is no-op.
func WithLogger(provider interfaces.LoggerProvider) Option {
	return func(r *Renderer) {
		if provider != nil {
			r.logger = logging.RenderLogger(provider)
		}
	}
}

// Renderer renders block arrays. Safe for concurrent use.
type Renderer struct {
	insights InsightSource
	logger   interfaces.Logger
}

// New constructs a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces one Rendered element per displayable block, in array
// order. Hidden blocks are skipped. A block whose type the dispatch does not
// recognize is logged and skipped, never an error: persisted content must
// not take down a live page. Empty list blocks and dynamic blocks that
// resolve to zero articles are omitted.
func (r *Renderer) Render(ctx context.Context, locale string, list []blocks.Block) ([]Rendered, error) {
	resolved, err := r.resolveData(ctx, locale, list)
	if err != nil {
		return nil, err
	}

	out := make([]Rendered, 0, len(list))
	for i, block := range list {
		if block == nil || block.Hidden() {
			continue
		}
		props, ok := r.renderBlock(block, resolved[i])
		if !ok {
			continue
		}
		out = append(out, Rendered{Type: block.BlockType(), Props: props})
	}
	return out, nil
}

// resolveData runs the async pass: every dynamic insightsList fetch runs
// concurrently and all must finish before dispatch begins. Returns fetched
// teasers keyed by block index.
func (r *Renderer) resolveData(ctx context.Context, locale string, list []blocks.Block) (map[int][]Teaser, error) {
	resolved := make(map[int][]Teaser)
	if r.insights == nil {
		return resolved, nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i, block := range list {
		dynamic, ok := block.(*blocks.InsightsList)
		if !ok || !dynamic.Dynamic || dynamic.Hidden() {
			continue
		}
		limit := dynamic.Limit
		if limit <= 0 {
			limit = defaultDynamicLimit
		}
		wg.Add(1)
		go func(index, limit int) {
			defer wg.Done()
			teasers, err := r.insights.LatestPublished(ctx, locale, limit)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			resolved[index] = teasers
		}(i, limit)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return resolved, nil
}

// renderBlock is the synchronous per-type dispatch. It reports false when
// the block should be omitted from output.
func (r *Renderer) renderBlock(block blocks.Block, teasers []Teaser) (map[string]any, bool) {
	blockType := block.BlockType()
	if !blocks.KnownType(blockType) {
		r.logger.Warn("skipping unknown block type", "type", string(blockType))
		return nil, false
	}

	switch b := block.(type) {
	case *blocks.InsightsList:
		if b.Dynamic {
			if len(teasers) == 0 {
				return nil, false
			}
			props := blockProps(block)
			items := make([]map[string]any, 0, len(teasers))
			for _, teaser := range teasers {
				items = append(items, teaserProps(teaser))
			}
			props["items"] = items
			delete(props, "dynamic")
			return props, true
		}
		if len(b.Items) == 0 {
			return nil, false
		}
	case *blocks.Services:
		if len(b.Items) == 0 {
			return nil, false
		}
	case *blocks.Storyline:
		if len(b.Entries) == 0 {
			return nil, false
		}
	case *blocks.Milestones:
		if len(b.Items) == 0 {
			return nil, false
		}
	case *blocks.Values:
		if len(b.Items) == 0 {
			return nil, false
		}
	case *blocks.Team:
		if len(b.Members) == 0 {
			return nil, false
		}
	case *blocks.Process:
		if len(b.Steps) == 0 {
			return nil, false
		}
	case *blocks.StatsRow:
		if len(b.Stats) == 0 {
			return nil, false
		}
	case *blocks.WhyUs:
		if len(b.Reasons) == 0 {
			return nil, false
		}
	case *blocks.HowItWorks:
		if len(b.Steps) == 0 {
			return nil, false
		}
	case *blocks.FAQ:
		if len(b.Items) == 0 {
			return nil, false
		}
	case *blocks.InteractiveServices:
		if len(b.Services) == 0 {
			return nil, false
		}
	case *blocks.Areas:
		if len(b.Items) == 0 {
			return nil, false
		}
	case *blocks.Gallery:
		if len(b.Images) == 0 {
			return nil, false
		}
	case *blocks.Packages:
		if len(b.Items) == 0 {
			return nil, false
		}
	case *blocks.VehicleFleet:
		if len(b.Vehicles) == 0 {
			return nil, false
		}
	case *blocks.FormSelector:
		if len(b.Forms) == 0 {
			return nil, false
		}
	case *blocks.LogoGrid:
		if len(b.Logos) == 0 {
			return nil, false
		}
	case *blocks.Testimonials:
		if len(b.Items) == 0 {
			return nil, false
		}
	}
	return blockProps(block), true
}

// blockProps flattens a block into its property map through the codec, so
// extras survive and hidden/type bookkeeping stays out of the output.
func blockProps(block blocks.Block) map[string]any {
	encoded, err := blocks.EncodeBlocks([]blocks.Block{block})
	if err != nil {
		return map[string]any{}
	}
	var raw []map[string]any
	if err := json.Unmarshal(encoded, &raw); err != nil || len(raw) == 0 {
		return map[string]any{}
	}
	props := raw[0]
	delete(props, "type")
	delete(props, "_isHidden")
	return props
}

func teaserProps(teaser Teaser) map[string]any {
	props := map[string]any{
		"slug":  teaser.Slug,
		"title": teaser.Title,
	}
	if teaser.Excerpt != "" {
		props["excerpt"] = teaser.Excerpt
	}
	if teaser.Image != "" {
		props["image"] = teaser.Image
	}
	if teaser.Category != "" {
		props["category"] = teaser.Category
	}
	return props
}
