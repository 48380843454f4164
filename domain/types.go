package domain

import internaldomain "github.com/goliatone/go-sitecms/internal/domain"

// Status represents lifecycle states for site content entities.
type Status = internaldomain.Status

const (
	// StatusDraft indicates content still under preparation.
	StatusDraft = internaldomain.StatusDraft
	// StatusPublished identifies content available to site visitors.
	StatusPublished = internaldomain.StatusPublished
	// StatusArchived marks content retained for history but no longer visible.
	StatusArchived = internaldomain.StatusArchived
)

// NormalizeStatus coerces arbitrary status strings into a known representation.
func NormalizeStatus(input string) Status {
	return internaldomain.NormalizeStatus(input)
}
