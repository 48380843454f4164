package blocks

import "testing"

func TestMergeGlobalMediaCopiesByTypeAndOccurrence(t *testing.T) {
	source := []Block{
		&Hero{Tagline: "en", BackgroundImage: "/img/hero.jpg"},
		&Gallery{Images: []string{"/img/a.jpg", "/img/b.jpg"}},
		&Gallery{Images: []string{"/img/second.jpg"}},
	}
	target := []Block{
		&Hero{Tagline: "de"},
		&Gallery{Images: []string{"", ""}},
		&Gallery{Images: []string{""}},
	}

	merged := MergeGlobalMedia(source, target)

	if merged[0].(*Hero).BackgroundImage != "/img/hero.jpg" {
		t.Errorf("hero background = %q", merged[0].(*Hero).BackgroundImage)
	}
	if merged[0].(*Hero).Tagline != "de" {
		t.Errorf("merge touched text: tagline = %q", merged[0].(*Hero).Tagline)
	}
	first := merged[1].(*Gallery)
	if first.Images[0] != "/img/a.jpg" || first.Images[1] != "/img/b.jpg" {
		t.Errorf("first gallery = %v", first.Images)
	}
	second := merged[2].(*Gallery)
	if second.Images[0] != "/img/second.jpg" {
		t.Errorf("second gallery = %v", second.Images)
	}
}

func TestMergeGlobalMediaSkipsEmptySource(t *testing.T) {
	source := []Block{&Intro{Heading: "en", Image: ""}}
	target := []Block{&Intro{Heading: "de", Image: "/img/keep.jpg"}}

	merged := MergeGlobalMedia(source, target)
	if merged[0].(*Intro).Image != "/img/keep.jpg" {
		t.Errorf("empty source overwrote target: %q", merged[0].(*Intro).Image)
	}
}

func TestMergeGlobalMediaIsIdempotent(t *testing.T) {
	source := []Block{
		&Team{Members: []TeamMember{{Name: "Ada", Image: "/img/ada.jpg"}}},
	}
	target := []Block{
		&Team{Members: []TeamMember{{Name: "Ada (de)"}}},
	}

	MergeGlobalMedia(source, target)
	once := target[0].(*Team).Members[0].Image
	MergeGlobalMedia(source, target)
	twice := target[0].(*Team).Members[0].Image

	if once != "/img/ada.jpg" || once != twice {
		t.Errorf("merge not idempotent: once=%q twice=%q", once, twice)
	}
}

func TestMergeGlobalMediaServiceDetailsMatchesByServiceID(t *testing.T) {
	source := []Block{
		&ServiceDetails{ServiceID: "homecare", Heading: "Home care", Image: "/img/home.jpg"},
		&ServiceDetails{ServiceID: "transport", Heading: "Transport", Image: "/img/bus.jpg"},
	}
	// Translation orders the service sections differently.
	target := []Block{
		&ServiceDetails{ServiceID: "transport", Heading: "Transport (de)"},
		&ServiceDetails{ServiceID: "homecare", Heading: "Pflege"},
	}

	MergeGlobalMedia(source, target)

	if target[0].(*ServiceDetails).Image != "/img/bus.jpg" {
		t.Errorf("transport image = %q", target[0].(*ServiceDetails).Image)
	}
	if target[1].(*ServiceDetails).Image != "/img/home.jpg" {
		t.Errorf("homecare image = %q", target[1].(*ServiceDetails).Image)
	}
}

func TestMergeGlobalMediaItemLengthMismatch(t *testing.T) {
	source := []Block{
		&LogoGrid{Logos: []LogoItem{{Logo: "/l/one.svg"}}},
	}
	target := []Block{
		&LogoGrid{Logos: []LogoItem{{}, {Logo: "/l/translated.svg"}}},
	}

	MergeGlobalMedia(source, target)

	logos := target[0].(*LogoGrid).Logos
	if logos[0].Logo != "/l/one.svg" {
		t.Errorf("overlap element = %q", logos[0].Logo)
	}
	if logos[1].Logo != "/l/translated.svg" {
		t.Errorf("tail element touched: %q", logos[1].Logo)
	}
}

func TestMergeGlobalMediaLeavesUnmatchedBlocks(t *testing.T) {
	source := []Block{&Hero{Tagline: "en", BackgroundImage: "/img/hero.jpg"}}
	target := []Block{
		&About{Heading: "Über uns"},
		&Image{Src: "/img/existing.jpg"},
	}

	merged := MergeGlobalMedia(source, target)

	if len(merged) != 2 {
		t.Fatalf("merge changed block count: %d", len(merged))
	}
	if merged[1].(*Image).Src != "/img/existing.jpg" {
		t.Errorf("unmatched image changed: %q", merged[1].(*Image).Src)
	}
}
