package blocks

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-sitecms/internal/validation"
)

// BlocksDocumentSchema is the JSON Schema envelope every stored content
// document must satisfy before typed decoding: an array of objects where
// each element carries a string "type". Shape-level checks live here; the
// per-variant field rules live on the typed structs.
func BlocksDocumentSchema() map[string]any {
	return map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type":    "array",
		"items": map[string]any{
			"type":     "object",
			"required": []any{"type"},
			"properties": map[string]any{
				"type": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
				"_isHidden": map[string]any{
					"type": "boolean",
				},
			},
		},
	}
}

// ValidateDocument checks a raw stored document against the envelope schema.
// It is cheaper than a full decode and gives schema-addressed locations for
// structural mistakes.
func ValidateDocument(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}
	if payload == nil {
		return nil
	}
	return validation.ValidatePayload(BlocksDocumentSchema(), payload)
}
