package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsStableForTheSameKey(t *testing.T) {
	first := UUID("go-pagebuilder:test:alpha")
	second := UUID("go-pagebuilder:test:alpha")
	if first != second {
		t.Fatalf("expected stable id, got %s and %s", first, second)
	}
	if first == uuid.Nil {
		t.Fatalf("expected non-nil id")
	}
}

func TestUUIDReturnsNilForBlankKey(t *testing.T) {
	if UUID("   ") != uuid.Nil {
		t.Fatalf("expected nil id for blank key")
	}
}

func TestEntityKeysDoNotCollideAcrossDomains(t *testing.T) {
	page := PageUUID("/notes")
	post := BlogPostUUID("notes")
	if page == post {
		t.Fatalf("page and blog identities must not collide")
	}
}

func TestSectionUUIDVariesByKey(t *testing.T) {
	pageID := PageUUID("/home")
	if SectionUUID(pageID, "hero") == SectionUUID(pageID, "footer") {
		t.Fatalf("distinct section keys must produce distinct ids")
	}
}

func TestBlogPostUUIDNormalizesSlugCase(t *testing.T) {
	if BlogPostUUID("My-Post") != BlogPostUUID("my-post") {
		t.Fatalf("expected case-insensitive slug identity")
	}
}
