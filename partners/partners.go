// Package partners exposes the partner directory: ordered entries with
// per-locale descriptions and an atomic reorder operation.
package partners

import (
	internal "github.com/goliatone/go-sitecms/internal/partners"
)

type (
	Partner            = internal.Partner
	PartnerTranslation = internal.PartnerTranslation
	PartnerView        = internal.PartnerView
	SortOrderUpdate    = internal.SortOrderUpdate
	Service            = internal.Service
	PartnerRepository  = internal.PartnerRepository
	SavePartnerRequest = internal.SavePartnerRequest
	ServiceOption      = internal.ServiceOption
	NotFoundError      = internal.NotFoundError
)

var (
	ErrNameRequired     = internal.ErrNameRequired
	ErrCategoryRequired = internal.ErrCategoryRequired
	ErrEmptyReorder     = internal.ErrEmptyReorder
)

var (
	NewService                       = internal.NewService
	NewMemoryPartnerRepository       = internal.NewMemoryPartnerRepository
	NewBunPartnerRepository          = internal.NewBunPartnerRepository
	NewBunPartnerRepositoryWithCache = internal.NewBunPartnerRepositoryWithCache
	WithClock                        = internal.WithClock
	WithIDGenerator                  = internal.WithIDGenerator
	WithLogger                       = internal.WithLogger
)
