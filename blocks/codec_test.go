package blocks

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecodeBlocksTyped(t *testing.T) {
	doc := []byte(`[
		{"type":"hero","tagline":"Care at home","heading":"Welcome","cta":{"label":"Call us","url":"/contact"}},
		{"type":"faq","items":[{"question":"Q1","answer":"A1"}]}
	]`)

	decoded, err := DecodeBlocks(doc)
	if err != nil {
		t.Fatalf("DecodeBlocks() error = %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(decoded))
	}

	hero, ok := decoded[0].(*Hero)
	if !ok {
		t.Fatalf("expected *Hero, got %T", decoded[0])
	}
	if hero.Tagline != "Care at home" {
		t.Errorf("hero tagline = %q", hero.Tagline)
	}
	if hero.CTA.URL != "/contact" {
		t.Errorf("hero cta url = %q", hero.CTA.URL)
	}

	faq, ok := decoded[1].(*FAQ)
	if !ok {
		t.Fatalf("expected *FAQ, got %T", decoded[1])
	}
	if len(faq.Items) != 1 || faq.Items[0].Answer != "A1" {
		t.Errorf("faq items = %+v", faq.Items)
	}
}

func TestDecodeBlocksPreservesOrder(t *testing.T) {
	doc := []byte(`[{"type":"cta","heading":"One"},{"type":"cta","heading":"Two"},{"type":"about","heading":"Three"}]`)

	decoded, err := DecodeBlocks(doc)
	if err != nil {
		t.Fatalf("DecodeBlocks() error = %v", err)
	}
	want := []Type{TypeCTA, TypeCTA, TypeAbout}
	for i, block := range decoded {
		if block.BlockType() != want[i] {
			t.Errorf("block %d type = %q, want %q", i, block.BlockType(), want[i])
		}
	}
}

func TestDecodeBlocksUnknownType(t *testing.T) {
	doc := []byte(`[{"type":"hero","tagline":"t"},{"type":"carousel"}]`)

	_, err := DecodeBlocks(doc)
	if !errors.Is(err, ErrUnknownBlockType) {
		t.Fatalf("expected ErrUnknownBlockType, got %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Index != 1 {
		t.Errorf("error index = %d, want 1", verr.Index)
	}
}

func TestDecodeBlocksMissingType(t *testing.T) {
	_, err := DecodeBlocks([]byte(`[{"heading":"no discriminant"}]`))
	if !errors.Is(err, ErrTypeRequired) {
		t.Fatalf("expected ErrTypeRequired, got %v", err)
	}
}

func TestDecodeBlocksValidationNamesIndexAndField(t *testing.T) {
	doc := []byte(`[
		{"type":"about","heading":"ok"},
		{"type":"faq","items":[{"question":"Q1","answer":"A1"},{"question":"Q2"}]}
	]`)

	_, err := DecodeBlocks(doc)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Index != 1 {
		t.Errorf("error index = %d, want 1", verr.Index)
	}
	if verr.Type != TypeFAQ {
		t.Errorf("error type = %q, want %q", verr.Type, TypeFAQ)
	}
	if verr.Field != "items.1.answer" {
		t.Errorf("error field = %q, want %q", verr.Field, "items.1.answer")
	}
}

func TestDecodeBlocksLenientSkipsFieldRules(t *testing.T) {
	doc := []byte(`[{"type":"hero"}]`)

	if _, err := DecodeBlocks(doc); err == nil {
		t.Fatal("strict decode should reject an empty hero")
	}
	decoded, err := DecodeBlocksLenient(doc)
	if err != nil {
		t.Fatalf("DecodeBlocksLenient() error = %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 block, got %d", len(decoded))
	}
}

func TestDecodeBlocksLenientKeepsUnknownTypes(t *testing.T) {
	doc := []byte(`[{"type":"legacyWidget","payload":{"a":1},"_isHidden":true},{"type":"about","heading":"h"}]`)

	decoded, err := DecodeBlocksLenient(doc)
	if err != nil {
		t.Fatalf("DecodeBlocksLenient() error = %v", err)
	}
	unknown, ok := decoded[0].(*Unknown)
	if !ok {
		t.Fatalf("expected *Unknown, got %T", decoded[0])
	}
	if unknown.BlockType() != Type("legacyWidget") {
		t.Errorf("unknown type = %q", unknown.BlockType())
	}
	if !unknown.Hidden() {
		t.Error("hidden flag lost on unknown block")
	}

	encoded, err := EncodeBlocks(decoded)
	if err != nil {
		t.Fatalf("EncodeBlocks() error = %v", err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(encoded, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw[0]["type"] != "legacyWidget" {
		t.Errorf("round trip type = %v", raw[0]["type"])
	}
	payload, _ := raw[0]["payload"].(map[string]any)
	if payload["a"] != float64(1) {
		t.Errorf("round trip dropped unknown payload: %v", raw[0])
	}
	if raw[0]["_isHidden"] != true {
		t.Errorf("round trip dropped hidden flag: %v", raw[0])
	}
}

func TestDecodeBlocksEmptyDocument(t *testing.T) {
	for _, doc := range []string{"", "null", "[]"} {
		decoded, err := DecodeBlocks([]byte(doc))
		if err != nil {
			t.Fatalf("DecodeBlocks(%q) error = %v", doc, err)
		}
		if len(decoded) != 0 {
			t.Errorf("DecodeBlocks(%q) = %d blocks, want 0", doc, len(decoded))
		}
	}
}

func TestRoundTripPreservesExtraFields(t *testing.T) {
	doc := []byte(`[{"type":"hero","tagline":"t","videoUrl":"https://example.com/v.mp4","theme":{"accent":"teal"}}]`)

	decoded, err := DecodeBlocks(doc)
	if err != nil {
		t.Fatalf("DecodeBlocks() error = %v", err)
	}
	hero := decoded[0].(*Hero)
	if hero.Extra["videoUrl"] != "https://example.com/v.mp4" {
		t.Fatalf("extra videoUrl = %v", hero.Extra["videoUrl"])
	}

	encoded, err := EncodeBlocks(decoded)
	if err != nil {
		t.Fatalf("EncodeBlocks() error = %v", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(encoded, &raw); err != nil {
		t.Fatalf("unmarshal round trip: %v", err)
	}
	if raw[0]["videoUrl"] != "https://example.com/v.mp4" {
		t.Errorf("round trip dropped videoUrl: %v", raw[0])
	}
	theme, _ := raw[0]["theme"].(map[string]any)
	if theme["accent"] != "teal" {
		t.Errorf("round trip dropped nested extra: %v", raw[0]["theme"])
	}
	if raw[0]["type"] != "hero" {
		t.Errorf("round trip type = %v", raw[0]["type"])
	}
}

func TestEncodeTypedFieldsWinOverExtras(t *testing.T) {
	hero := &Hero{Tagline: "edited"}
	hero.Extra = map[string]any{"tagline": "stale"}

	encoded, err := EncodeBlocks([]Block{hero})
	if err != nil {
		t.Fatalf("EncodeBlocks() error = %v", err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(encoded, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw[0]["tagline"] != "edited" {
		t.Errorf("tagline = %v, want edited", raw[0]["tagline"])
	}
}

func TestHiddenFlagRoundTrip(t *testing.T) {
	doc := []byte(`[{"type":"about","heading":"h","_isHidden":true}]`)

	decoded, err := DecodeBlocks(doc)
	if err != nil {
		t.Fatalf("DecodeBlocks() error = %v", err)
	}
	if !decoded[0].Hidden() {
		t.Fatal("expected hidden block")
	}

	encoded, err := EncodeBlocks(decoded)
	if err != nil {
		t.Fatalf("EncodeBlocks() error = %v", err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(encoded, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw[0]["_isHidden"] != true {
		t.Errorf("_isHidden = %v, want true", raw[0]["_isHidden"])
	}
}

func TestCloneBlocksIsDeep(t *testing.T) {
	original := []Block{
		&Team{Heading: "People", Members: []TeamMember{{Name: "Ada"}}},
	}

	clone, err := CloneBlocks(original)
	if err != nil {
		t.Fatalf("CloneBlocks() error = %v", err)
	}
	clone[0].(*Team).Members[0].Name = "Grace"
	if original[0].(*Team).Members[0].Name != "Ada" {
		t.Fatal("clone shares member slice with original")
	}
}

func TestValidateDocumentEnvelope(t *testing.T) {
	if err := ValidateDocument([]byte(`[{"type":"hero"}]`)); err != nil {
		t.Fatalf("valid envelope rejected: %v", err)
	}
	if err := ValidateDocument([]byte(`{"type":"hero"}`)); err == nil {
		t.Fatal("object at top level should fail the envelope schema")
	}
	if err := ValidateDocument([]byte(`[{"heading":"x"}]`)); err == nil {
		t.Fatal("block without type should fail the envelope schema")
	}
}

func TestRegistryCoversEveryType(t *testing.T) {
	for _, blockType := range Types() {
		block := New(blockType)
		if block == nil {
			t.Fatalf("New(%q) = nil", blockType)
		}
		if block.BlockType() != blockType {
			t.Errorf("New(%q).BlockType() = %q", blockType, block.BlockType())
		}
	}
	if New(Type("carousel")) != nil {
		t.Error("unknown type should construct nil")
	}
}
