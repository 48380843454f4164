package blocks

// Media fields are shared across locales: an editor uploads one hero image
// and every translation shows it. MergeGlobalMedia copies the media-bearing
// fields of source blocks onto the matching target blocks, leaving all text
// untouched. The operation is idempotent and only overwrites when the source
// value is non-empty, so merging a sparse source never blanks target media.
//
// Blocks match by (type, occurrence): the second gallery in the source feeds
// the second gallery in the target. serviceDetails blocks match by serviceId
// instead, since translations may order service sections differently.
// Item arrays merge element-wise by position; the tail of the longer side is
// left alone.

type mergeKey struct {
	t   Type
	occ int
	sub string
}

// mediaCopiers maps each media-bearing type to its field copier. Types not
// listed carry no shared media and pass through the merge unchanged.
var mediaCopiers = map[Type]func(src, dst Block){
	TypeHero: func(src, dst Block) {
		s, d := src.(*Hero), dst.(*Hero)
		copyMedia(s.BackgroundImage, &d.BackgroundImage)
	},
	TypeIntro: func(src, dst Block) {
		s, d := src.(*Intro), dst.(*Intro)
		copyMedia(s.Image, &d.Image)
	},
	TypeStory: func(src, dst Block) {
		s, d := src.(*Story), dst.(*Story)
		copyMedia(s.Image, &d.Image)
	},
	TypeTeam: func(src, dst Block) {
		s, d := src.(*Team), dst.(*Team)
		for i := range d.Members {
			if i >= len(s.Members) {
				break
			}
			copyMedia(s.Members[i].Image, &d.Members[i].Image)
		}
	},
	TypeGallery: func(src, dst Block) {
		s, d := src.(*Gallery), dst.(*Gallery)
		for i := range d.Images {
			if i >= len(s.Images) {
				break
			}
			copyMedia(s.Images[i], &d.Images[i])
		}
	},
	TypeLogoGrid: func(src, dst Block) {
		s, d := src.(*LogoGrid), dst.(*LogoGrid)
		for i := range d.Logos {
			if i >= len(s.Logos) {
				break
			}
			copyMedia(s.Logos[i].Logo, &d.Logos[i].Logo)
		}
	},
	TypeServiceDetails: func(src, dst Block) {
		s, d := src.(*ServiceDetails), dst.(*ServiceDetails)
		copyMedia(s.Image, &d.Image)
	},
	TypeTestimonials: func(src, dst Block) {
		s, d := src.(*Testimonials), dst.(*Testimonials)
		for i := range d.Items {
			if i >= len(s.Items) {
				break
			}
			copyMedia(s.Items[i].Avatar, &d.Items[i].Avatar)
		}
	},
	TypeVehicleFleet: func(src, dst Block) {
		s, d := src.(*VehicleFleet), dst.(*VehicleFleet)
		for i := range d.Vehicles {
			if i >= len(s.Vehicles) {
				break
			}
			copyMedia(s.Vehicles[i].Image, &d.Vehicles[i].Image)
		}
	},
	TypePackages: func(src, dst Block) {
		s, d := src.(*Packages), dst.(*Packages)
		for i := range d.Items {
			if i >= len(s.Items) {
				break
			}
			copyMedia(s.Items[i].Image, &d.Items[i].Image)
		}
	},
	TypeImage: func(src, dst Block) {
		s, d := src.(*Image), dst.(*Image)
		copyMedia(s.Src, &d.Src)
	},
	TypeInsightsList: func(src, dst Block) {
		s, d := src.(*InsightsList), dst.(*InsightsList)
		for i := range d.Items {
			if i >= len(s.Items) {
				break
			}
			copyMedia(s.Items[i].Image, &d.Items[i].Image)
		}
	},
}

func copyMedia(src string, dst *string) {
	if src != "" {
		*dst = src
	}
}

// MergeGlobalMedia copies media from source onto target in place and returns
// target. Neither slice is reordered and unmatched blocks on either side are
// left untouched.
func MergeGlobalMedia(source, target []Block) []Block {
	if len(source) == 0 || len(target) == 0 {
		return target
	}

	index := map[mergeKey]Block{}
	occ := map[Type]int{}
	for _, block := range source {
		if block == nil {
			continue
		}
		key := keyFor(block, occ)
		if _, exists := index[key]; !exists {
			index[key] = block
		}
	}

	occ = map[Type]int{}
	for _, block := range target {
		if block == nil {
			continue
		}
		copier, ok := mediaCopiers[block.BlockType()]
		if !ok {
			keyFor(block, occ)
			continue
		}
		key := keyFor(block, occ)
		src, ok := index[key]
		if !ok {
			continue
		}
		copier(src, block)
	}
	return target
}

// keyFor builds the merge key for a block and advances the per-type
// occurrence counter. serviceDetails keys on serviceId with a zero
// occurrence so translations can reorder service sections freely.
func keyFor(block Block, occ map[Type]int) mergeKey {
	t := block.BlockType()
	if sd, ok := block.(*ServiceDetails); ok && sd.ServiceID != "" {
		return mergeKey{t: t, sub: sd.ServiceID}
	}
	key := mergeKey{t: t, occ: occ[t]}
	occ[t]++
	return key
}
