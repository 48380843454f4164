package partners

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewPartnerRepository(db *bun.DB) repository.Repository[*Partner] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Partner]{
		NewRecord: func() *Partner { return &Partner{} },
		GetID: func(p *Partner) uuid.UUID {
			return p.ID
		},
		SetID: func(p *Partner, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(p *Partner) string {
			if p == nil {
				return ""
			}
			return p.ID.String()
		},
	})
}

func NewPartnerTranslationRepository(db *bun.DB) repository.Repository[*PartnerTranslation] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*PartnerTranslation]{
		NewRecord: func() *PartnerTranslation { return &PartnerTranslation{} },
		GetID: func(pt *PartnerTranslation) uuid.UUID {
			return pt.ID
		},
		SetID: func(pt *PartnerTranslation, id uuid.UUID) {
			pt.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(pt *PartnerTranslation) string {
			if pt == nil {
				return ""
			}
			return pt.ID.String()
		},
	})
}
