// Package pages resolves localized page content. The public path reads
// published translations with default-locale fallback; the admin path reads
// any status and lazily provisions missing translation rows.
package pages

import (
	internal "github.com/goliatone/go-sitecms/internal/pages"
)

type (
	Page                   = internal.Page
	PageTranslation        = internal.PageTranslation
	PageContent            = internal.PageContent
	AdminPageContent       = internal.AdminPageContent
	TranslationSummary     = internal.TranslationSummary
	Service                = internal.Service
	PageRepository         = internal.PageRepository
	LocaleSource           = internal.LocaleSource
	SaveTranslationRequest = internal.SaveTranslationRequest
	ServiceOption          = internal.ServiceOption
	NotFoundError          = internal.NotFoundError
)

var (
	ErrSlugRequired   = internal.ErrSlugRequired
	ErrLocaleRequired = internal.ErrLocaleRequired
	ErrTitleRequired  = internal.ErrTitleRequired
	ErrUnknownLocale  = internal.ErrUnknownLocale
)

var (
	NewService                    = internal.NewService
	NewMemoryPageRepository       = internal.NewMemoryPageRepository
	NewBunPageRepository          = internal.NewBunPageRepository
	NewBunPageRepositoryWithCache = internal.NewBunPageRepositoryWithCache
	WithClock                     = internal.WithClock
	WithIDGenerator               = internal.WithIDGenerator
	WithLogger                    = internal.WithLogger
	WithCacheInvalidator          = internal.WithCacheInvalidator
	InvalidationTags              = internal.InvalidationTags
	PageTag                       = internal.PageTag
	SlugTag                       = internal.SlugTag
)
