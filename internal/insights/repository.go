package insights

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewInsightPostRepository(db *bun.DB) repository.Repository[*InsightPost] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*InsightPost]{
		NewRecord: func() *InsightPost { return &InsightPost{} },
		GetID: func(p *InsightPost) uuid.UUID {
			return p.ID
		},
		SetID: func(p *InsightPost, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(p *InsightPost) string {
			return p.Slug
		},
	})
}

func NewInsightTranslationRepository(db *bun.DB) repository.Repository[*InsightTranslation] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*InsightTranslation]{
		NewRecord: func() *InsightTranslation { return &InsightTranslation{} },
		GetID: func(it *InsightTranslation) uuid.UUID {
			return it.ID
		},
		SetID: func(it *InsightTranslation, id uuid.UUID) {
			it.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(it *InsightTranslation) string {
			if it == nil {
				return ""
			}
			return it.ID.String()
		},
	})
}
