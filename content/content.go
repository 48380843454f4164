// Package content exposes the locale registry: the languages the site
// publishes in, which one is the default fallback, and which are enabled.
package content

import (
	internal "github.com/goliatone/go-sitecms/internal/content"
)

type (
	Locale                = internal.Locale
	Service               = internal.Service
	LocaleRepository      = internal.LocaleRepository
	RegisterLocaleRequest = internal.RegisterLocaleRequest
	SeedLocale            = internal.SeedLocale
	ServiceOption         = internal.ServiceOption
	NotFoundError         = internal.NotFoundError
)

var (
	ErrLocaleCodeRequired    = internal.ErrLocaleCodeRequired
	ErrLocaleDisplayRequired = internal.ErrLocaleDisplayRequired
	ErrDefaultLocaleMissing  = internal.ErrDefaultLocaleMissing
	ErrDefaultLocaleDisabled = internal.ErrDefaultLocaleDisabled
	ErrUnknownLocale         = internal.ErrUnknownLocale
)

var (
	NewService                      = internal.NewService
	NewMemoryLocaleRepository       = internal.NewMemoryLocaleRepository
	NewBunLocaleRepository          = internal.NewBunLocaleRepository
	NewBunLocaleRepositoryWithCache = internal.NewBunLocaleRepositoryWithCache
	WithClock                       = internal.WithClock
	Seed                            = internal.Seed
	NormalizeCode                   = internal.NormalizeCode
)
