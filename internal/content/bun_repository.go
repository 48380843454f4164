package content

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/uptrace/bun"
)

// BunLocaleRepository implements LocaleRepository with optional caching.
type BunLocaleRepository struct {
	db   *bun.DB
	repo repository.Repository[*Locale]
}

// NewBunLocaleRepository creates a locale repository without caching.
func NewBunLocaleRepository(db *bun.DB) *BunLocaleRepository {
	return NewBunLocaleRepositoryWithCache(db, nil, nil)
}

// NewBunLocaleRepositoryWithCache creates a locale repository with caching services.
func NewBunLocaleRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunLocaleRepository {
	base := NewLocaleRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunLocaleRepository{db: db, repo: base}
}

func (r *BunLocaleRepository) GetByCode(ctx context.Context, code string) (*Locale, error) {
	record, err := r.repo.GetByIdentifier(ctx, NormalizeCode(code))
	if err != nil {
		return nil, mapRepositoryError(err, "locale", code)
	}
	return record, nil
}

func (r *BunLocaleRepository) List(ctx context.Context) ([]*Locale, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.code ASC")
		}),
	)
	return records, err
}

func (r *BunLocaleRepository) Upsert(ctx context.Context, locale *Locale) (*Locale, error) {
	record, err := r.repo.Upsert(ctx, locale)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// SetDefault clears the previous default and flags the new one inside a
// single transaction so readers never observe zero or two defaults.
func (r *BunLocaleRepository) SetDefault(ctx context.Context, code string) error {
	if r.db == nil {
		return fmt.Errorf("locale repository: database not configured")
	}
	normalized := NormalizeCode(code)
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().
			Model((*Locale)(nil)).
			Set("is_default = ?", false).
			Set("updated_at = current_timestamp").
			Where("?TableAlias.is_default = ?", true).
			Where("?TableAlias.code != ?", normalized).
			Exec(ctx); err != nil {
			return fmt.Errorf("clear default locale: %w", err)
		}
		res, err := tx.NewUpdate().
			Model((*Locale)(nil)).
			Set("is_default = ?", true).
			Set("updated_at = current_timestamp").
			Where("?TableAlias.code = ?", normalized).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("set default locale: %w", err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return &NotFoundError{Resource: "locale", Key: code}
		}
		return nil
	})
}

func (r *BunLocaleRepository) SetEnabled(ctx context.Context, code string, enabled bool) error {
	if r.db == nil {
		return fmt.Errorf("locale repository: database not configured")
	}
	res, err := r.db.NewUpdate().
		Model((*Locale)(nil)).
		Set("is_enabled = ?", enabled).
		Set("updated_at = current_timestamp").
		Where("?TableAlias.code = ?", NormalizeCode(code)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set locale enabled: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return &NotFoundError{Resource: "locale", Key: code}
	}
	return nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
