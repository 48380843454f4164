package sections

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-sitecms/blocks"
)

var (
	// ErrSectionStructureLocked rejects form submissions that add, remove,
	// or reorder section slots. Editors change values and visibility only.
	ErrSectionStructureLocked = errors.New("sections: section structure is locked")
	ErrUnknownPage            = errors.New("sections: no section configuration for page")
)

// SectionState is the editable form state of one section slot.
type SectionState struct {
	Key       string         `json:"key"`
	Label     string         `json:"label"`
	BlockType blocks.Type    `json:"block_type"`
	ServiceID string         `json:"service_id,omitempty"`
	Present   bool           `json:"present"`
	Hidden    bool           `json:"hidden"`
	Values    map[string]any `json:"values"`
	Fields    []FieldConfig  `json:"fields"`
}

// BlocksToSections projects a persisted block array onto the page's fixed
// section layout. Slots with no matching block come back empty, ready for
// the form to show defaults.
func BlocksToSections(list []blocks.Block, cfg PageConfig) ([]SectionState, error) {
	encoded, err := encodeToMaps(list)
	if err != nil {
		return nil, err
	}
	matches := matchSections(cfg, encoded)

	out := make([]SectionState, len(cfg.Sections))
	for i, section := range cfg.Sections {
		state := SectionState{
			Key:       section.Key,
			Label:     section.Label,
			BlockType: section.BlockType,
			ServiceID: section.ServiceID,
			Values:    make(map[string]any, len(section.Fields)),
			Fields:    section.Fields,
		}
		if idx := matches[i]; idx >= 0 {
			state.Present = true
			state.Hidden, _ = encoded[idx]["_isHidden"].(bool)
			for _, field := range section.Fields {
				if value, ok := encoded[idx][field.Key]; ok {
					state.Values[field.Key] = value
				}
			}
		}
		out[i] = state
	}
	return out, nil
}

// SectionsToBlocks writes edited section values back into the existing block
// array. Only configured fields and the hidden flag change; unmanaged fields,
// unmanaged blocks, and array order pass through untouched. Submissions whose
// slots do not mirror the configuration exactly are rejected.
func SectionsToBlocks(sections []SectionState, existing []blocks.Block, cfg PageConfig) ([]blocks.Block, error) {
	if err := checkStructure(sections, cfg); err != nil {
		return nil, err
	}
	encoded, err := encodeToMaps(existing)
	if err != nil {
		return nil, err
	}
	matches := matchSections(cfg, encoded)

	for i, section := range cfg.Sections {
		idx := matches[i]
		if idx < 0 {
			continue
		}
		state := sections[i]
		for _, field := range section.Fields {
			value, ok := state.Values[field.Key]
			if !ok {
				continue
			}
			if value == nil {
				delete(encoded[idx], field.Key)
				continue
			}
			encoded[idx][field.Key] = value
		}
		if state.Hidden {
			encoded[idx]["_isHidden"] = true
		} else {
			delete(encoded[idx], "_isHidden")
		}
	}

	raw, err := json.Marshal(encoded)
	if err != nil {
		return nil, fmt.Errorf("sections: encode blocks: %w", err)
	}
	return blocks.DecodeBlocksLenient(raw)
}

func checkStructure(sections []SectionState, cfg PageConfig) error {
	if len(sections) != len(cfg.Sections) {
		return ErrSectionStructureLocked
	}
	for i, section := range cfg.Sections {
		if sections[i].Key != section.Key || sections[i].BlockType != section.BlockType {
			return ErrSectionStructureLocked
		}
	}
	return nil
}

// matchSections resolves each section slot to a block index, or -1 when the
// page has no block for that slot. Slots carrying a service ID claim their
// block first; the rest take same-typed blocks in document order.
func matchSections(cfg PageConfig, encoded []map[string]any) []int {
	matches := make([]int, len(cfg.Sections))
	claimed := make([]bool, len(encoded))
	for i := range matches {
		matches[i] = -1
	}

	for i, section := range cfg.Sections {
		if section.ServiceID == "" {
			continue
		}
		for idx, block := range encoded {
			if claimed[idx] || blockType(block) != section.BlockType {
				continue
			}
			if serviceID, _ := block["serviceId"].(string); serviceID == section.ServiceID {
				matches[i] = idx
				claimed[idx] = true
				break
			}
		}
	}
	for i, section := range cfg.Sections {
		if section.ServiceID != "" {
			continue
		}
		for idx, block := range encoded {
			if claimed[idx] || blockType(block) != section.BlockType {
				continue
			}
			matches[i] = idx
			claimed[idx] = true
			break
		}
	}
	return matches
}

func blockType(block map[string]any) blocks.Type {
	name, _ := block["type"].(string)
	return blocks.Type(name)
}

func encodeToMaps(list []blocks.Block) ([]map[string]any, error) {
	raw, err := blocks.EncodeBlocks(list)
	if err != nil {
		return nil, fmt.Errorf("sections: encode blocks: %w", err)
	}
	var encoded []map[string]any
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, fmt.Errorf("sections: decode block maps: %w", err)
	}
	return encoded, nil
}
