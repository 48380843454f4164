package pages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunPageRepository implements PageRepository with optional caching.
type BunPageRepository struct {
	db           *bun.DB
	pages        repository.Repository[*Page]
	translations repository.Repository[*PageTranslation]
}

// NewBunPageRepository creates a page repository without caching.
func NewBunPageRepository(db *bun.DB) *BunPageRepository {
	return NewBunPageRepositoryWithCache(db, nil, nil)
}

// NewBunPageRepositoryWithCache creates a page repository with caching services.
func NewBunPageRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunPageRepository {
	pages := NewPageRepository(db)
	translations := NewPageTranslationRepository(db)
	if cacheService != nil && serializer != nil {
		pages = repositorycache.New(pages, cacheService, serializer)
		translations = repositorycache.New(translations, cacheService, serializer)
	}
	return &BunPageRepository{db: db, pages: pages, translations: translations}
}

func (r *BunPageRepository) Create(ctx context.Context, page *Page) (*Page, error) {
	record, err := r.pages.Create(ctx, page)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunPageRepository) GetBySlug(ctx context.Context, slug string) (*Page, error) {
	record, err := r.pages.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "page", slug)
	}
	return record, nil
}

func (r *BunPageRepository) List(ctx context.Context) ([]*Page, error) {
	records, _, err := r.pages.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.slug ASC")
		}),
	)
	return records, err
}

func (r *BunPageRepository) GetTranslation(ctx context.Context, pageID uuid.UUID, localeCode string) (*PageTranslation, error) {
	records, _, err := r.translations.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.page_id = ?", pageID).
				Where("?TableAlias.locale_code = ?", localeCode)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "page_translation", localeCode)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "page_translation", Key: fmt.Sprintf("%s:%s", pageID, localeCode)}
	}
	return records[0], nil
}

func (r *BunPageRepository) ListTranslations(ctx context.Context, pageID uuid.UUID) ([]*PageTranslation, error) {
	records, _, err := r.translations.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.page_id = ?", pageID).
				OrderExpr("?TableAlias.locale_code ASC")
		}),
	)
	return records, err
}

// EnsureTranslation inserts the row, treating a (page_id, locale_code)
// uniqueness conflict as "already exists, fetch instead". The insert ignores
// conflicts so two concurrent admin reads provision exactly one row.
func (r *BunPageRepository) EnsureTranslation(ctx context.Context, translation *PageTranslation) (*PageTranslation, error) {
	if r.db == nil {
		return nil, fmt.Errorf("page repository: database not configured")
	}
	res, err := r.db.NewInsert().
		Model(translation).
		On("CONFLICT (page_id, locale_code) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("ensure page translation: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected > 0 {
		return translation, nil
	}
	return r.GetTranslation(ctx, translation.PageID, translation.LocaleCode)
}

func (r *BunPageRepository) UpdateTranslation(ctx context.Context, translation *PageTranslation) (*PageTranslation, error) {
	record, err := r.translations.Update(ctx, translation)
	if err != nil {
		return nil, mapRepositoryError(err, "page_translation", translation.LocaleCode)
	}
	return record, nil
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
