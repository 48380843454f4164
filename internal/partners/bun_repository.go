package partners

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

// BunPartnerRepository implements PartnerRepository with optional caching.
type BunPartnerRepository struct {
	db           *bun.DB
	partners     repository.Repository[*Partner]
	translations repository.Repository[*PartnerTranslation]
}

// NewBunPartnerRepository creates a partner repository without caching.
func NewBunPartnerRepository(db *bun.DB) *BunPartnerRepository {
	return NewBunPartnerRepositoryWithCache(db, nil, nil)
}

// NewBunPartnerRepositoryWithCache creates a partner repository with caching services.
func NewBunPartnerRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunPartnerRepository {
	partners := NewPartnerRepository(db)
	translations := NewPartnerTranslationRepository(db)
	if cacheService != nil && serializer != nil {
		partners = repositorycache.New(partners, cacheService, serializer)
		translations = repositorycache.New(translations, cacheService, serializer)
	}
	return &BunPartnerRepository{db: db, partners: partners, translations: translations}
}

func (r *BunPartnerRepository) GetByID(ctx context.Context, id uuid.UUID) (*Partner, error) {
	records, _, err := r.partners.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.id = ?", id).
				Relation("Translations")
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "partner", id.String())
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "partner", Key: id.String()}
	}
	return records[0], nil
}

func (r *BunPartnerRepository) List(ctx context.Context) ([]*Partner, error) {
	records, _, err := r.partners.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Relation("Translations").
				OrderExpr("?TableAlias.sort_order ASC, ?TableAlias.name ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "partner", "")
	}
	return records, nil
}

func (r *BunPartnerRepository) Upsert(ctx context.Context, partner *Partner) (*Partner, error) {
	record, err := r.partners.Upsert(ctx, partner)
	if err != nil {
		return nil, mapRepositoryError(err, "partner", partner.Name)
	}
	return record, nil
}

// UpsertTranslation inserts the row or replaces the description of an
// existing (partner, locale) pair in one statement.
func (r *BunPartnerRepository) UpsertTranslation(ctx context.Context, translation *PartnerTranslation) (*PartnerTranslation, error) {
	if r.db == nil {
		return nil, fmt.Errorf("partner repository: database not configured")
	}
	_, err := r.db.NewInsert().
		Model(translation).
		On("CONFLICT (partner_id, locale_code) DO UPDATE").
		Set("description = EXCLUDED.description").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("upsert partner translation: %w", err)
	}
	return translation, nil
}

func (r *BunPartnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.partners.Delete(ctx, &Partner{ID: id}); err != nil {
		return mapRepositoryError(err, "partner", id.String())
	}
	return nil
}

// Reorder runs every sort order update inside one transaction, so a reader
// sees either the previous ordering or the new one.
func (r *BunPartnerRepository) Reorder(ctx context.Context, updates []SortOrderUpdate) error {
	if r.db == nil {
		return fmt.Errorf("partner repository: database not configured")
	}
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, update := range updates {
			res, err := tx.NewUpdate().
				Model((*Partner)(nil)).
				Set("sort_order = ?", update.SortOrder).
				Where("id = ?", update.ID).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("reorder partner %s: %w", update.ID, err)
			}
			if affected, _ := res.RowsAffected(); affected == 0 {
				return &NotFoundError{Resource: "partner", Key: update.ID.String()}
			}
		}
		return nil
	})
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
