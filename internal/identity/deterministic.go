package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
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

// PageUUID derives the identity for a page imported or seeded by path.
func PageUUID(path string) uuid.UUID {
	return UUID("go-pagebuilder:page:" + strings.TrimSpace(path))
}

// BlogPostUUID derives the identity for a blog post imported by slug.
func BlogPostUUID(slug string) uuid.UUID {
	return UUID("go-pagebuilder:blog_post:" + strings.ToLower(strings.TrimSpace(slug)))
}

// SectionUUID derives a stable identity for a section key within a page.
func SectionUUID(pageID uuid.UUID, key string) uuid.UUID {
	return UUID("go-pagebuilder:section:" + pageID.String() + ":" + strings.TrimSpace(key))
}
