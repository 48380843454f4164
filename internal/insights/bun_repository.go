package insights

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/uptrace/bun"
)

// BunPostRepository implements PostRepository with optional caching.
type BunPostRepository struct {
	db           *bun.DB
	posts        repository.Repository[*InsightPost]
	translations repository.Repository[*InsightTranslation]
}

// NewBunPostRepository creates a post repository without caching.
func NewBunPostRepository(db *bun.DB) *BunPostRepository {
	return NewBunPostRepositoryWithCache(db, nil, nil)
}

// NewBunPostRepositoryWithCache creates a post repository with caching services.
func NewBunPostRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunPostRepository {
	posts := NewInsightPostRepository(db)
	translations := NewInsightTranslationRepository(db)
	if cacheService != nil && serializer != nil {
		posts = repositorycache.New(posts, cacheService, serializer)
		translations = repositorycache.New(translations, cacheService, serializer)
	}
	return &BunPostRepository{db: db, posts: posts, translations: translations}
}

func (r *BunPostRepository) GetBySlug(ctx context.Context, slug string) (*InsightPost, error) {
	records, _, err := r.posts.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.slug = ?", slug).
				Relation("Translations")
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "insight_post", slug)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "insight_post", Key: slug}
	}
	return records[0], nil
}

func (r *BunPostRepository) ListPublished(ctx context.Context) ([]*InsightPost, error) {
	records, _, err := r.posts.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.status = ?", "published").
				Where("?TableAlias.published_at IS NOT NULL").
				Relation("Translations").
				OrderExpr("?TableAlias.published_at DESC, ?TableAlias.slug ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "insight_post", "")
	}
	return records, nil
}

// Upsert inserts or updates the post keyed by slug.
func (r *BunPostRepository) Upsert(ctx context.Context, post *InsightPost) (*InsightPost, error) {
	record, err := r.posts.Upsert(ctx, post)
	if err != nil {
		return nil, mapRepositoryError(err, "insight_post", post.Slug)
	}
	return record, nil
}

// UpsertTranslation inserts the row or replaces the text of an existing
// (post, locale) pair in one statement.
func (r *BunPostRepository) UpsertTranslation(ctx context.Context, translation *InsightTranslation) (*InsightTranslation, error) {
	if r.db == nil {
		return nil, fmt.Errorf("insight repository: database not configured")
	}
	_, err := r.db.NewInsert().
		Model(translation).
		On("CONFLICT (post_id, locale_code) DO UPDATE").
		Set("title = EXCLUDED.title").
		Set("excerpt = EXCLUDED.excerpt").
		Set("body_markdown = EXCLUDED.body_markdown").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("upsert insight translation: %w", err)
	}
	return translation, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) || errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
