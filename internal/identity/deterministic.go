package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

func LocaleUUID(localeCode string) uuid.UUID {
	return UUID("go-sitecms:locale:" + strings.ToLower(strings.TrimSpace(localeCode)))
}

func PageUUID(slug string) uuid.UUID {
	return UUID("go-sitecms:page:" + strings.ToLower(strings.TrimSpace(slug)))
}

func PageTranslationUUID(pageID uuid.UUID, localeCode string) uuid.UUID {
	return UUID("go-sitecms:page_translation:" + pageID.String() + ":" + strings.ToLower(strings.TrimSpace(localeCode)))
}

func InsightUUID(slug string) uuid.UUID {
	return UUID("go-sitecms:insight:" + strings.ToLower(strings.TrimSpace(slug)))
}

func PartnerUUID(name string) uuid.UUID {
	return UUID("go-sitecms:partner:" + strings.ToLower(strings.TrimSpace(name)))
}
