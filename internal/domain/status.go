package domain

import "strings"

// Status represents lifecycle states for site content entities.
type Status string

const (
	// StatusDraft indicates content still under preparation.
	StatusDraft Status = "draft"
	// StatusPublished identifies content available to site visitors.
	StatusPublished Status = "published"
	// StatusArchived marks content retained for history but no longer visible.
	StatusArchived Status = "archived"
)

// NormalizeStatus coerces arbitrary status strings into a known representation,
// defaulting to draft for empty input.
func NormalizeStatus(input string) Status {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return StatusDraft
	}
	switch Status(trimmed) {
	case StatusDraft, StatusPublished, StatusArchived:
		return Status(trimmed)
	default:
		return Status(trimmed)
	}
}

// IsPublished reports whether the status makes content publicly visible.
func (s Status) IsPublished() bool {
	return s == StatusPublished
}
