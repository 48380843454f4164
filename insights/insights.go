// Package insights exposes the articles pipeline: Markdown-backed posts
// with per-locale translations, published listings with category and
// search filters, and the admin save path with cache-tag invalidation.
package insights

import (
	internal "github.com/goliatone/go-sitecms/internal/insights"
)

type (
	InsightPost        = internal.InsightPost
	InsightTranslation = internal.InsightTranslation
	PostCard           = internal.PostCard
	PostFull           = internal.PostFull
	PostList           = internal.PostList
	ListOptions        = internal.ListOptions
	Service            = internal.Service
	PostRepository     = internal.PostRepository
	SavePostRequest    = internal.SavePostRequest
	ServiceOption      = internal.ServiceOption
	NotFoundError      = internal.NotFoundError
)

const PageSize = internal.PageSize

var (
	ErrSlugRequired     = internal.ErrSlugRequired
	ErrLocaleRequired   = internal.ErrLocaleRequired
	ErrTitleRequired    = internal.ErrTitleRequired
	ErrCategoryRequired = internal.ErrCategoryRequired
)

var (
	NewService                    = internal.NewService
	NewMemoryPostRepository       = internal.NewMemoryPostRepository
	NewBunPostRepository          = internal.NewBunPostRepository
	NewBunPostRepositoryWithCache = internal.NewBunPostRepositoryWithCache
	WithClock                     = internal.WithClock
	WithIDGenerator               = internal.WithIDGenerator
	WithLogger                    = internal.WithLogger
	WithCacheInvalidator          = internal.WithCacheInvalidator
	WithMarkdown                  = internal.WithMarkdown
	InvalidationTags              = internal.InvalidationTags
	ListTag                       = internal.ListTag
	PostTag                       = internal.PostTag
	CategoriesTag                 = internal.CategoriesTag
)
