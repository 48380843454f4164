package blocks

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrDocumentInvalid  = errors.New("blocks: document is not a JSON array of objects")
	ErrTypeRequired     = errors.New("blocks: block is missing its type discriminant")
	ErrUnknownBlockType = errors.New("blocks: unknown block type")
)

// ValidationError reports the first problem found while decoding or
// validating a block array, addressed by array index so editors can locate
// the offending block.
type ValidationError struct {
	Index int
	Type  Type
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	label := fmt.Sprintf("block %d", e.Index)
	if e.Type != "" {
		label = fmt.Sprintf("block %d (%s)", e.Index, e.Type)
	}
	if e.Field != "" {
		return fmt.Sprintf("blocks: %s field %q: %v", label, e.Field, e.Err)
	}
	return fmt.Sprintf("blocks: %s: %v", label, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// DecodeBlocks parses a stored content document into typed blocks. The
// document must be a JSON array where every element is an object carrying a
// known "type" discriminant; fields the typed schema does not declare are
// preserved on the block's Extra side channel. Each decoded block is
// validated, and the first failure aborts the whole decode.
func DecodeBlocks(data []byte) ([]Block, error) {
	return decodeBlocks(data, true)
}

// DecodeBlocksLenient parses without per-block field validation and keeps
// unknown-typed elements as *Unknown instead of failing. The read paths use
// it: drafts may be half filled in, and content persisted under an older or
// newer schema must load so the renderer can skip what it cannot show.
func DecodeBlocksLenient(data []byte) ([]Block, error) {
	return decodeBlocks(data, false)
}

func decodeBlocks(data []byte, strict bool) ([]Block, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return []Block{}, nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}

	out := make([]Block, 0, len(raws))
	for i, raw := range raws {
		block, err := decodeBlock(raw, strict)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				verr.Index = i
				return nil, verr
			}
			return nil, &ValidationError{Index: i, Err: err}
		}
		if strict {
			if v, ok := block.(validation.Validatable); ok {
				if err := v.Validate(); err != nil {
					field, cause := firstIssue(err)
					return nil, &ValidationError{Index: i, Type: block.BlockType(), Field: field, Err: cause}
				}
			}
		}
		out = append(out, block)
	}
	return out, nil
}

func decodeBlock(raw json.RawMessage, strict bool) (Block, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}

	typeRaw, ok := probe["type"]
	if !ok {
		return nil, &ValidationError{Err: ErrTypeRequired}
	}
	var blockType Type
	if err := json.Unmarshal(typeRaw, &blockType); err != nil || blockType == "" {
		return nil, &ValidationError{Err: ErrTypeRequired}
	}

	block := New(blockType)
	if block == nil {
		if strict {
			return nil, &ValidationError{Type: blockType, Err: fmt.Errorf("%w: %q", ErrUnknownBlockType, blockType)}
		}
		return decodeUnknownBlock(blockType, raw)
	}
	if err := json.Unmarshal(raw, block); err != nil {
		return nil, &ValidationError{Type: blockType, Err: err}
	}

	known := knownKeys[blockType]
	var extra map[string]any
	for key, value := range probe {
		if _, ok := known[key]; ok {
			continue
		}
		if extra == nil {
			extra = map[string]any{}
		}
		var decoded any
		if err := json.Unmarshal(value, &decoded); err != nil {
			return nil, &ValidationError{Type: blockType, Field: key, Err: err}
		}
		extra[key] = decoded
	}
	block.setExtraFields(extra)
	return block, nil
}

func decodeUnknownBlock(blockType Type, raw json.RawMessage) (Block, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}
	block := &Unknown{TypeName: blockType, Raw: fields}
	if hidden, ok := fields["_isHidden"].(bool); ok {
		block.IsHidden = hidden
	}
	delete(fields, "type")
	delete(fields, "_isHidden")
	return block, nil
}

// EncodeBlocks serializes typed blocks back into the stored array form,
// re-attaching each block's preserved extra fields. Typed fields win over
// extras on key collision so a round trip cannot let stale pass-through data
// shadow edited content.
func EncodeBlocks(list []Block) ([]byte, error) {
	out := make([]map[string]any, 0, len(list))
	for i, block := range list {
		if block == nil {
			return nil, &ValidationError{Index: i, Err: errors.New("nil block")}
		}
		encoded, err := encodeBlock(block)
		if err != nil {
			return nil, &ValidationError{Index: i, Type: block.BlockType(), Err: err}
		}
		out = append(out, encoded)
	}
	return json.Marshal(out)
}

func encodeBlock(block Block) (map[string]any, error) {
	if unknown, ok := block.(*Unknown); ok {
		merged := make(map[string]any, len(unknown.Raw)+2)
		for key, value := range unknown.Raw {
			merged[key] = value
		}
		merged["type"] = string(unknown.TypeName)
		if unknown.IsHidden {
			merged["_isHidden"] = true
		}
		return merged, nil
	}

	typed, err := json.Marshal(block)
	if err != nil {
		return nil, err
	}
	merged := map[string]any{}
	for key, value := range block.extraFields() {
		merged[key] = value
	}
	if err := json.Unmarshal(typed, &merged); err != nil {
		return nil, err
	}
	merged["type"] = string(block.BlockType())
	return merged, nil
}

// CloneBlocks deep-copies a block array through the codec so callers can
// mutate the copy freely. Validation is skipped so partially filled drafts
// clone as-is.
func CloneBlocks(list []Block) ([]Block, error) {
	if list == nil {
		return nil, nil
	}
	data, err := EncodeBlocks(list)
	if err != nil {
		return nil, err
	}
	return decodeBlocks(data, false)
}

// ValidateBlocks runs per-block field validation over an already decoded
// array and reports the first failure.
func ValidateBlocks(list []Block) error {
	for i, block := range list {
		if block == nil {
			return &ValidationError{Index: i, Err: errors.New("nil block")}
		}
		if v, ok := block.(validation.Validatable); ok {
			if err := v.Validate(); err != nil {
				field, cause := firstIssue(err)
				return &ValidationError{Index: i, Type: block.BlockType(), Field: field, Err: cause}
			}
		}
	}
	return nil
}

// firstIssue flattens nested ozzo validation errors into a dotted field path
// and the leaf cause. Keys are visited in sorted order so the reported field
// is deterministic.
func firstIssue(err error) (string, error) {
	var errs validation.Errors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "", err
	}
	keys := make([]string, 0, len(errs))
	for key := range errs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	key := keys[0]
	field, cause := firstIssue(errs[key])
	if field == "" {
		return key, cause
	}
	return key + "." + field, cause
}

// FieldPath joins an array index and dotted field into the editor-facing
// location string, e.g. "3.items.0.title".
func FieldPath(index int, field string) string {
	if field == "" {
		return strconv.Itoa(index)
	}
	return strconv.Itoa(index) + "." + field
}
