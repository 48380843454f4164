package blocks

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Per-variant required-field rules. Fields without rules are optional by
// design: editors routinely leave headings or media empty and the renderer
// omits what it cannot show. Nested item slices validate element-wise so a
// failure names the offending index.

func (b *Hero) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Tagline, validation.Required),
	)
}

func (b *About) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Heading, validation.Required),
	)
}

func (b *Services) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Items),
	)
}

func (s ServiceItem) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required),
	)
}

func (b *Contact) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Heading, validation.Required),
	)
}

func (b *InsightsList) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Limit, validation.Min(0)),
		validation.Field(&b.Items),
	)
}

func (t InsightTeaser) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Title, validation.Required),
	)
}

func (b *Intro) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Heading, validation.Required),
	)
}

func (b *Storyline) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Entries),
	)
}

func (e StorylineEntry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Year, validation.Required),
	)
}

func (b *Milestones) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Items),
	)
}

func (s Stat) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Label, validation.Required),
		validation.Field(&s.Value, validation.Required),
	)
}

func (b *Values) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Items),
	)
}

func (v ValueItem) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Title, validation.Required),
	)
}

func (b *Team) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Members),
	)
}

func (m TeamMember) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required),
	)
}

func (b *CTA) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Heading, validation.Required),
	)
}

func (b *ServiceDetails) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.ServiceID, validation.Required),
		validation.Field(&b.Heading, validation.Required),
	)
}

func (b *Process) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Steps),
	)
}

func (s Step) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required),
	)
}

func (b *StatsRow) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Stats),
	)
}

func (b *WhyUs) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Reasons),
	)
}

func (r Reason) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
	)
}

func (b *HowItWorks) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Steps),
	)
}

func (b *FAQ) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Items),
	)
}

func (f FAQItem) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Question, validation.Required),
		validation.Field(&f.Answer, validation.Required),
	)
}

func (b *InteractiveServices) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Services),
	)
}

func (s InteractiveService) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ServiceID, validation.Required),
		validation.Field(&s.Title, validation.Required),
	)
}

func (b *Areas) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Items),
	)
}

func (a AreaItem) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Title, validation.Required),
	)
}

func (b *Packages) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Items),
	)
}

func (p PackageItem) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
	)
}

func (b *VehicleFleet) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Vehicles),
	)
}

func (v Vehicle) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Name, validation.Required),
	)
}

func (b *FormSelector) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Forms),
	)
}

func (f FormOption) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Key, validation.Required),
		validation.Field(&f.Label, validation.Required),
	)
}

func (b *LogoGrid) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Logos),
	)
}

func (l LogoItem) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Logo, validation.Required),
	)
}

func (b *Testimonials) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Items),
	)
}

func (t Testimonial) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Quote, validation.Required),
		validation.Field(&t.Author, validation.Required),
	)
}

func (b *Image) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Src, validation.Required),
	)
}
