// Package admin exposes the section adapter: the fixed, per-page layout of
// editable sections and the bidirectional mapping between persisted blocks
// and admin form state.
package admin

import (
	sections "github.com/goliatone/go-sitecms/internal/admin/sections"
)

type (
	FieldKind     = sections.FieldKind
	FieldConfig   = sections.FieldConfig
	SectionConfig = sections.SectionConfig
	PageConfig    = sections.PageConfig
	Registry      = sections.Registry
	SectionState  = sections.SectionState
)

const (
	FieldText     = sections.FieldText
	FieldTextarea = sections.FieldTextarea
	FieldMarkdown = sections.FieldMarkdown
	FieldImage    = sections.FieldImage
	FieldURL      = sections.FieldURL
	FieldToggle   = sections.FieldToggle
)

var (
	ErrSectionStructureLocked = sections.ErrSectionStructureLocked
	ErrUnknownPage            = sections.ErrUnknownPage
)

var (
	DefaultRegistry  = sections.DefaultRegistry
	BlocksToSections = sections.BlocksToSections
	SectionsToBlocks = sections.SectionsToBlocks
)
