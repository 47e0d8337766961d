package markdown

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-pagebuilder/internal/blocks"
	"github.com/goliatone/go-pagebuilder/internal/blogs"
	"github.com/goliatone/go-pagebuilder/internal/domain"
	"github.com/goliatone/go-pagebuilder/internal/identity"
)

func testImporter(t *testing.T) *Importer {
	t.Helper()
	svc := blogs.NewService(blogs.NewMemoryRepository(),
		blogs.WithClock(func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }),
	)
	return NewImporter(ImporterConfig{Blogs: svc})
}

func TestImportPostCreatesDraftFromDocument(t *testing.T) {
	importer := testImporter(t)

	source := []byte(`---
title: Planting Season
slug: planting-season
summary: Notes from the field.
tags: [field, notes]
author: amal
---
## Week One

We planted the first saplings.
`)

	post, err := importer.ImportPost(context.Background(), source)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if post.Slug != "planting-season" {
		t.Fatalf("expected frontmatter slug, got %q", post.Slug)
	}
	if post.Status != domain.StatusDraft {
		t.Fatalf("expected draft default, got %q", post.Status)
	}
	if post.EN.Excerpt != "Notes from the field." {
		t.Fatalf("expected summary as excerpt, got %q", post.EN.Excerpt)
	}
	if len(post.EN.Blocks) != 2 {
		t.Fatalf("expected heading and paragraph, got %d blocks", len(post.EN.Blocks))
	}
	if _, ok := post.EN.Blocks[0].(blocks.Heading); !ok {
		t.Fatalf("expected heading first, got %T", post.EN.Blocks[0])
	}
}

func TestImportPostUsesFrontmatterDateForPublishedPosts(t *testing.T) {
	importer := testImporter(t)

	source := []byte(`---
title: Backdated Announcement
status: published
date: 2025-06-01T00:00:00Z
---
Old news worth keeping.
`)

	post, err := importer.ImportPost(context.Background(), source)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if post.Status != domain.StatusPublished {
		t.Fatalf("expected published, got %q", post.Status)
	}
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if post.PublishedAt == nil || !post.PublishedAt.Equal(want) {
		t.Fatalf("expected frontmatter date, got %v", post.PublishedAt)
	}
}

func TestImportPostFallsBackToFirstHeadingTitle(t *testing.T) {
	importer := testImporter(t)

	post, err := importer.ImportPost(context.Background(), []byte("# Field Report\n\nBody.\n"))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if post.EN.Title != "Field Report" {
		t.Fatalf("expected heading title, got %q", post.EN.Title)
	}
	if post.Slug != "field-report" {
		t.Fatalf("expected derived slug, got %q", post.Slug)
	}
}

func TestImportPostAssignsSlugDerivedIdentity(t *testing.T) {
	importer := testImporter(t)

	post, err := importer.ImportPost(context.Background(), []byte(`---
title: Stable Identity
slug: stable-identity
---
Body.
`))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if post.ID != identity.BlogPostUUID("stable-identity") {
		t.Fatalf("expected slug-derived id, got %s", post.ID)
	}

	// Re-importing the same document targets the same identity instead of
	// minting a second record.
	if _, err := importer.ImportPost(context.Background(), []byte(`---
title: Stable Identity
slug: stable-identity
---
Body.
`)); err == nil {
		t.Fatal("expected re-import to collide with the existing record")
	}
}

func TestImportPostDerivesIdentityFromHeadingTitle(t *testing.T) {
	importer := testImporter(t)

	post, err := importer.ImportPost(context.Background(), []byte("# Derived Identity\n\nBody.\n"))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if post.ID != identity.BlogPostUUID("derived-identity") {
		t.Fatalf("expected slug-derived id, got %s", post.ID)
	}
}

func TestImportPostRejectsUntitledDocument(t *testing.T) {
	importer := testImporter(t)

	_, err := importer.ImportPost(context.Background(), []byte("Just a paragraph.\n"))
	if !errors.Is(err, ErrTitleMissing) {
		t.Fatalf("expected ErrTitleMissing, got %v", err)
	}
}

func TestImportPostRejectsEmptyBody(t *testing.T) {
	importer := testImporter(t)

	_, err := importer.ImportPost(context.Background(), []byte("---\ntitle: Empty\n---\n"))
	if !errors.Is(err, ErrBodyEmpty) {
		t.Fatalf("expected ErrBodyEmpty, got %v", err)
	}
}

func TestImportPostRequiresBlogService(t *testing.T) {
	importer := NewImporter(ImporterConfig{})

	_, err := importer.ImportPost(context.Background(), []byte("# Title\n\nBody.\n"))
	if !errors.Is(err, ErrBlogServiceRequired) {
		t.Fatalf("expected ErrBlogServiceRequired, got %v", err)
	}
}

func TestImportPostsCollectsFailuresWithoutAborting(t *testing.T) {
	importer := testImporter(t)

	sources := [][]byte{
		[]byte("# First Post\n\nBody one.\n"),
		[]byte("no title here\n"),
		[]byte("# Second Post\n\nBody two.\n"),
	}

	posts, errs := importer.ImportPosts(context.Background(), sources)
	if len(posts) != 2 {
		t.Fatalf("expected 2 imported posts, got %d", len(posts))
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(errs))
	}
}
