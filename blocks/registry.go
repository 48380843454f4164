package blocks

import (
	"reflect"
	"strings"
)

// factories maps every discriminant to a constructor for its variant. This
// table is the single source of truth for what "valid content" means;
// decoding rejects any type not listed here.
var factories = map[Type]func() Block{
	TypeHero:                func() Block { return &Hero{} },
	TypeAbout:               func() Block { return &About{} },
	TypeServices:            func() Block { return &Services{} },
	TypePartners:            func() Block { return &Partners{} },
	TypeContact:             func() Block { return &Contact{} },
	TypeInsights:            func() Block { return &Insights{} },
	TypeInsightsList:        func() Block { return &InsightsList{} },
	TypeIntro:               func() Block { return &Intro{} },
	TypeStory:               func() Block { return &Story{} },
	TypeStoryline:           func() Block { return &Storyline{} },
	TypeMilestones:          func() Block { return &Milestones{} },
	TypeValues:              func() Block { return &Values{} },
	TypeTeam:                func() Block { return &Team{} },
	TypeCTA:                 func() Block { return &CTA{} },
	TypeServiceDetails:      func() Block { return &ServiceDetails{} },
	TypeProcess:             func() Block { return &Process{} },
	TypeStatsRow:            func() Block { return &StatsRow{} },
	TypeWhyUs:               func() Block { return &WhyUs{} },
	TypeHowItWorks:          func() Block { return &HowItWorks{} },
	TypeFAQ:                 func() Block { return &FAQ{} },
	TypeInteractiveServices: func() Block { return &InteractiveServices{} },
	TypeAreas:               func() Block { return &Areas{} },
	TypePartnersEmpty:       func() Block { return &PartnersEmpty{} },
	TypeGallery:             func() Block { return &Gallery{} },
	TypePackages:            func() Block { return &Packages{} },
	TypeVehicleFleet:        func() Block { return &VehicleFleet{} },
	TypeFormSelector:        func() Block { return &FormSelector{} },
	TypeLogoGrid:            func() Block { return &LogoGrid{} },
	TypeTestimonials:        func() Block { return &Testimonials{} },
	TypeImage:               func() Block { return &Image{} },
}

// knownKeys lists, per variant, the JSON keys owned by the typed schema.
// Anything else found on a decoded block lands in the Extra side channel.
var knownKeys = map[Type]map[string]struct{}{}

func init() {
	for blockType, factory := range factories {
		keys := map[string]struct{}{"type": {}}
		collectJSONKeys(reflect.TypeOf(factory()).Elem(), keys)
		knownKeys[blockType] = keys
	}
}

func collectJSONKeys(rt reflect.Type, keys map[string]struct{}) {
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.Anonymous {
			collectJSONKeys(field.Type, keys)
			continue
		}
		tag := field.Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name != "" {
			keys[name] = struct{}{}
		}
	}
}

// KnownType reports whether the discriminant belongs to the closed set.
func KnownType(t Type) bool {
	_, ok := factories[t]
	return ok
}

// Types returns every discriminant in the closed set, unordered.
func Types() []Type {
	out := make([]Type, 0, len(factories))
	for t := range factories {
		out = append(out, t)
	}
	return out
}

// New constructs an empty block of the given type, or nil for unknown types.
func New(t Type) Block {
	factory, ok := factories[t]
	if !ok {
		return nil
	}
	return factory()
}
