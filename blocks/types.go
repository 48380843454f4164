package blocks

// Type discriminates the closed set of content block variants. Every block
// persisted inside a page translation carries one of these values in its
// "type" field; validation rejects anything outside the set.
type Type string

const (
	TypeHero                Type = "hero"
	TypeAbout               Type = "about"
	TypeServices            Type = "services"
	TypePartners            Type = "partners"
	TypeContact             Type = "contact"
	TypeInsights            Type = "insights"
	TypeInsightsList        Type = "insightsList"
	TypeIntro               Type = "intro"
	TypeStory               Type = "story"
	TypeStoryline           Type = "storyline"
	TypeMilestones          Type = "milestones"
	TypeValues              Type = "values"
	TypeTeam                Type = "team"
	TypeCTA                 Type = "cta"
	TypeServiceDetails      Type = "serviceDetails"
	TypeProcess             Type = "process"
	TypeStatsRow            Type = "statsRow"
	TypeWhyUs               Type = "whyUs"
	TypeHowItWorks          Type = "howItWorks"
	TypeFAQ                 Type = "faq"
	TypeInteractiveServices Type = "interactiveServices"
	TypeAreas               Type = "areas"
	TypePartnersEmpty       Type = "partnersEmpty"
	TypeGallery             Type = "gallery"
	TypePackages            Type = "packages"
	TypeVehicleFleet        Type = "vehicleFleet"
	TypeFormSelector        Type = "formSelector"
	TypeLogoGrid            Type = "logoGrid"
	TypeTestimonials        Type = "testimonials"
	TypeImage               Type = "image"
)

// Block is one discriminated content unit in a page's ordered array. The
// interface carries an unexported method so the variant set stays closed to
// this package; order within the array is render order and blocks never
// reference each other by identity.
type Block interface {
	BlockType() Type
	Hidden() bool

	extraFields() map[string]any
	setExtraFields(map[string]any)
}

// Meta holds the fields shared by every block variant: the editorial
// hidden flag and the pass-through side channel for fields the current
// schema does not know about yet.
type Meta struct {
	IsHidden bool `json:"_isHidden,omitempty"`

	// Extra preserves unrecognized fields found inside a known block type so
	// schema evolution never requires a forced migration. The codec merges
	// these back verbatim on encode; typed fields always win on collision.
	Extra map[string]any `json:"-"`
}

func (m *Meta) Hidden() bool                     { return m.IsHidden }
func (m *Meta) extraFields() map[string]any      { return m.Extra }
func (m *Meta) setExtraFields(ex map[string]any) { m.Extra = ex }

// Link pairs a label with a destination URL.
type Link struct {
	Label string `json:"label,omitempty"`
	URL   string `json:"url,omitempty"`
}

// ServiceItem is one entry of a services overview.
type ServiceItem struct {
	ServiceID string `json:"serviceId,omitempty"`
	Title     string `json:"title"`
	Summary   string `json:"summary,omitempty"`
	Icon      string `json:"icon,omitempty"`
}

// TeamMember describes one person on a team block.
type TeamMember struct {
	Name        string `json:"name"`
	Role        string `json:"role,omitempty"`
	Image       string `json:"image,omitempty"`
	LinkedInURL string `json:"linkedinUrl,omitempty"`
}

// StorylineEntry is one dated chapter of a storyline block.
type StorylineEntry struct {
	Year  string `json:"year"`
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

// Stat is one labelled figure in a milestones or stats row block.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ValueItem is one entry of a values block.
type ValueItem struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// Step is one entry of a process or how-it-works block.
type Step struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// Reason is one entry of a why-us block.
type Reason struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// FAQItem pairs a question with its answer.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AreaItem is one entry of a coverage-areas block.
type AreaItem struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// PackageItem is one entry of a packages block.
type PackageItem struct {
	Title    string   `json:"title"`
	Body     string   `json:"body,omitempty"`
	Price    string   `json:"price,omitempty"`
	Features []string `json:"features,omitempty"`
	Image    string   `json:"image,omitempty"`
}

// Vehicle is one entry of a vehicle fleet block.
type Vehicle struct {
	Name     string `json:"name"`
	Capacity string `json:"capacity,omitempty"`
	Body     string `json:"body,omitempty"`
	Image    string `json:"image,omitempty"`
}

// FormOption is one selectable entry of a form selector block.
type FormOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// LogoItem is one entry of a logo grid block.
type LogoItem struct {
	Name string `json:"name,omitempty"`
	Logo string `json:"logo"`
	URL  string `json:"url,omitempty"`
}

// Testimonial is one quoted endorsement.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// InsightTeaser is a statically authored article reference inside an
// insights listing block.
type InsightTeaser struct {
	Slug    string `json:"slug,omitempty"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt,omitempty"`
	Image   string `json:"image,omitempty"`
}

// InteractiveService is one entry of an interactive services block.
type InteractiveService struct {
	ServiceID string `json:"serviceId"`
	Title     string `json:"title"`
	Summary   string `json:"summary,omitempty"`
	Icon      string `json:"icon,omitempty"`
}

// Hero is the page opener: tagline, headings, optional background media and
// call to action.
type Hero struct {
	Meta

	Tagline         string `json:"tagline"`
	Heading         string `json:"heading,omitempty"`
	Subheading      string `json:"subheading,omitempty"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
	CTA             Link   `json:"cta,omitempty"`
}

func (*Hero) BlockType() Type { return TypeHero }

// About is a free-form company introduction.
type About struct {
	Meta

	Heading string `json:"heading"`
	Body    string `json:"body,omitempty"`
}

func (*About) BlockType() Type { return TypeAbout }

// Services lists the service catalogue in overview form.
type Services struct {
	Meta

	Heading string        `json:"heading,omitempty"`
	Items   []ServiceItem `json:"items,omitempty"`
}

func (*Services) BlockType() Type { return TypeServices }

// Partners marks the position where the partner directory renders. Logos and
// descriptions come from partner records, not from the block itself.
type Partners struct {
	Meta

	Heading    string   `json:"heading,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

func (*Partners) BlockType() Type { return TypePartners }

// Contact carries the contact details and optional map embed.
type Contact struct {
	Meta

	Heading     string `json:"heading"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	MapEmbedURL string `json:"mapEmbedUrl,omitempty"`
}

func (*Contact) BlockType() Type { return TypeContact }

// Insights references hand-picked articles by slug.
type Insights struct {
	Meta

	Heading string   `json:"heading,omitempty"`
	Slugs   []string `json:"slugs,omitempty"`
}

func (*Insights) BlockType() Type { return TypeInsights }

// InsightsList renders article teasers. In dynamic mode the renderer fetches
// the latest published articles instead of the authored items.
type InsightsList struct {
	Meta

	Heading string          `json:"heading,omitempty"`
	Dynamic bool            `json:"dynamic,omitempty"`
	Limit   int             `json:"limit,omitempty"`
	Items   []InsightTeaser `json:"items,omitempty"`
}

func (*InsightsList) BlockType() Type { return TypeInsightsList }

// Intro is a heading/body/image lead-in section.
type Intro struct {
	Meta

	Heading string `json:"heading"`
	Body    string `json:"body,omitempty"`
	Image   string `json:"image,omitempty"`
}

func (*Intro) BlockType() Type { return TypeIntro }

// Story is a narrative section with an optional illustration.
type Story struct {
	Meta

	Heading string `json:"heading,omitempty"`
	Body    string `json:"body,omitempty"`
	Image   string `json:"image,omitempty"`
}

func (*Story) BlockType() Type { return TypeStory }

// Storyline is a chronological company history.
type Storyline struct {
	Meta

	Heading string           `json:"heading,omitempty"`
	Entries []StorylineEntry `json:"entries,omitempty"`
}

func (*Storyline) BlockType() Type { return TypeStoryline }

// Milestones is a row of labelled figures.
type Milestones struct {
	Meta

	Items []Stat `json:"items,omitempty"`
}

func (*Milestones) BlockType() Type { return TypeMilestones }

// Values lists company values.
type Values struct {
	Meta

	Heading string      `json:"heading,omitempty"`
	Items   []ValueItem `json:"items,omitempty"`
}

func (*Values) BlockType() Type { return TypeValues }

// Team presents the people behind the company.
type Team struct {
	Meta

	Heading string       `json:"heading,omitempty"`
	Members []TeamMember `json:"members,omitempty"`
}

func (*Team) BlockType() Type { return TypeTeam }

// CTA is a standalone call-to-action banner.
type CTA struct {
	Meta

	Heading string `json:"heading"`
	Body    string `json:"body,omitempty"`
	Button  Link   `json:"button,omitempty"`
}

func (*CTA) BlockType() Type { return TypeCTA }

// ServiceDetails describes a single service in depth. ServiceID ties the
// block to its service and disambiguates multiple serviceDetails blocks on
// one page.
type ServiceDetails struct {
	Meta

	ServiceID string   `json:"serviceId"`
	Heading   string   `json:"heading"`
	Body      string   `json:"body,omitempty"`
	Features  []string `json:"features,omitempty"`
	Image     string   `json:"image,omitempty"`
}

func (*ServiceDetails) BlockType() Type { return TypeServiceDetails }

// Process walks through the engagement steps.
type Process struct {
	Meta

	Heading string `json:"heading,omitempty"`
	Steps   []Step `json:"steps,omitempty"`
}

func (*Process) BlockType() Type { return TypeProcess }

// StatsRow is a horizontal band of figures.
type StatsRow struct {
	Meta

	Stats []Stat `json:"stats,omitempty"`
}

func (*StatsRow) BlockType() Type { return TypeStatsRow }

// WhyUs lists differentiators.
type WhyUs struct {
	Meta

	Heading string   `json:"heading,omitempty"`
	Reasons []Reason `json:"reasons,omitempty"`
}

func (*WhyUs) BlockType() Type { return TypeWhyUs }

// HowItWorks explains the service flow step by step.
type HowItWorks struct {
	Meta

	Heading string `json:"heading,omitempty"`
	Steps   []Step `json:"steps,omitempty"`
}

func (*HowItWorks) BlockType() Type { return TypeHowItWorks }

// FAQ lists question/answer pairs.
type FAQ struct {
	Meta

	Heading string    `json:"heading,omitempty"`
	Items   []FAQItem `json:"items,omitempty"`
}

func (*FAQ) BlockType() Type { return TypeFAQ }

// InteractiveServices is the tabbed/clickable service explorer.
type InteractiveServices struct {
	Meta

	Heading  string               `json:"heading,omitempty"`
	Services []InteractiveService `json:"services,omitempty"`
}

func (*InteractiveServices) BlockType() Type { return TypeInteractiveServices }

// Areas lists geographic or clinical coverage areas.
type Areas struct {
	Meta

	Heading string     `json:"heading,omitempty"`
	Items   []AreaItem `json:"items,omitempty"`
}

func (*Areas) BlockType() Type { return TypeAreas }

// PartnersEmpty is the placeholder shown while the partner directory has no
// published entries.
type PartnersEmpty struct {
	Meta

	Heading string `json:"heading,omitempty"`
	Body    string `json:"body,omitempty"`
}

func (*PartnersEmpty) BlockType() Type { return TypePartnersEmpty }

// Gallery is a plain image grid.
type Gallery struct {
	Meta

	Heading string   `json:"heading,omitempty"`
	Images  []string `json:"images,omitempty"`
}

func (*Gallery) BlockType() Type { return TypeGallery }

// Packages lists bundled offerings.
type Packages struct {
	Meta

	Heading string        `json:"heading,omitempty"`
	Items   []PackageItem `json:"items,omitempty"`
}

func (*Packages) BlockType() Type { return TypePackages }

// VehicleFleet presents transport vehicles.
type VehicleFleet struct {
	Meta

	Heading  string    `json:"heading,omitempty"`
	Vehicles []Vehicle `json:"vehicles,omitempty"`
}

func (*VehicleFleet) BlockType() Type { return TypeVehicleFleet }

// FormSelector lets the visitor pick one of several request forms.
type FormSelector struct {
	Meta

	Heading string       `json:"heading,omitempty"`
	Forms   []FormOption `json:"forms,omitempty"`
}

func (*FormSelector) BlockType() Type { return TypeFormSelector }

// LogoGrid is a grid of brand logos.
type LogoGrid struct {
	Meta

	Heading string     `json:"heading,omitempty"`
	Logos   []LogoItem `json:"logos,omitempty"`
}

func (*LogoGrid) BlockType() Type { return TypeLogoGrid }

// Testimonials lists quoted endorsements.
type Testimonials struct {
	Meta

	Heading string        `json:"heading,omitempty"`
	Items   []Testimonial `json:"items,omitempty"`
}

func (*Testimonials) BlockType() Type { return TypeTestimonials }

// Unknown preserves a persisted block whose type is outside the closed set.
// Strict decoding rejects these; the lenient read path keeps them so the
// renderer can skip them and a later re-save does not lose data.
type Unknown struct {
	Meta

	TypeName Type           `json:"-"`
	Raw      map[string]any `json:"-"`
}

func (b *Unknown) BlockType() Type { return b.TypeName }

// Image is a single full-width image.
type Image struct {
	Meta

	Src     string `json:"src"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

func (*Image) BlockType() Type { return TypeImage }
