package pages

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-pagebuilder/internal/blocks"
	"github.com/goliatone/go-pagebuilder/internal/content"
	"github.com/goliatone/go-pagebuilder/internal/domain"
	"github.com/goliatone/go-pagebuilder/internal/layout"
	"github.com/goliatone/go-pagebuilder/internal/validation"
)

func testService(t *testing.T) (Service, *MemoryRepository) {
	t.Helper()
	repo := NewMemoryRepository()
	svc := NewService(repo,
		WithClock(func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }),
	)
	return svc, repo
}

func gridWith(text string) *content.LocaleContent {
	return &content.LocaleContent{
		Title: "Grid",
		Sections: []layout.Section{{
			Key: "main",
			Blocks: blocks.Blocks{
				blocks.Paragraph{Text: blocks.LocalizedText{EN: text, AR: text}},
			},
		}},
	}
}

func TestCreateDerivesPathFromTitle(t *testing.T) {
	svc, _ := testService(t)

	page, err := svc.Create(context.Background(), CreateRequest{Title: "My Page"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if page.Path != "/my-page" {
		t.Fatalf("expected derived path, got %q", page.Path)
	}
	if page.Template != domain.TemplateDefault {
		t.Fatalf("expected default template, got %q", page.Template)
	}
	if page.Status != domain.StatusDraft {
		t.Fatalf("expected draft default, got %q", page.Status)
	}
}

func TestCreateSuffixesPathOnCollision(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateRequest{Title: "About Us"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.Create(ctx, CreateRequest{Title: "About Us"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if first.Path != "/about-us" || second.Path != "/about-us-2" {
		t.Fatalf("expected /about-us then /about-us-2, got %q and %q", first.Path, second.Path)
	}
}

func TestCreateSeedsPlaceholderSections(t *testing.T) {
	svc, _ := testService(t)

	page, err := svc.Create(context.Background(), CreateRequest{Title: "Empty Start"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(page.EN.Sections) != 1 || len(page.AR.Sections) != 1 {
		t.Fatalf("expected one placeholder section per locale")
	}
	if page.EN.Sections[0].Key != "main" {
		t.Fatalf("expected main section key, got %q", page.EN.Sections[0].Key)
	}
}

func TestCreateRejectsInvalidGridContent(t *testing.T) {
	svc, _ := testService(t)

	bad := &content.LocaleContent{
		Title: "Broken",
		Sections: []layout.Section{{
			Key: "main",
			Rows: []layout.Row{{
				Columns: []layout.GridCol{{
					Span:   layout.Responsive[int]{layout.BreakpointBase: 13},
					Blocks: blocks.Blocks{blocks.Paragraph{Text: blocks.LocalizedText{EN: "x"}}},
				}},
			}},
		}},
	}

	_, err := svc.Create(context.Background(), CreateRequest{Title: "Bad Grid", EN: bad})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	issues := validation.IssuesOf(err)
	if len(issues) == 0 {
		t.Fatalf("expected accumulated issues, got %v", err)
	}
	want := "en.sections[0].rows[0].columns[0].span.base"
	if issues[0].Path != want {
		t.Fatalf("expected issue at %q, got %q", want, issues[0].Path)
	}
}

func TestGetByPathReturnsNotFoundForUnknownPath(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.GetByPath(context.Background(), "/missing")
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPublishAndUnpublishToggleStatus(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	page, err := svc.Create(ctx, CreateRequest{Title: "Lifecycle"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	published, err := svc.Publish(ctx, page.ID)
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if published.Status != domain.StatusPublished {
		t.Fatalf("expected published, got %q", published.Status)
	}

	reverted, err := svc.Unpublish(ctx, page.ID)
	if err != nil {
		t.Fatalf("unpublish failed: %v", err)
	}
	if reverted.Status != domain.StatusDraft {
		t.Fatalf("expected draft, got %q", reverted.Status)
	}
}

func TestUpdateReplacesOnlyProvidedFields(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	page, err := svc.Create(ctx, CreateRequest{Title: "Original", Template: "landing"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	path := "/renamed"
	updated, err := svc.Update(ctx, UpdateRequest{
		ID:   page.ID,
		Path: &path,
		EN:   gridWith("rewritten"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Path != "/renamed" {
		t.Fatalf("expected new path, got %q", updated.Path)
	}
	if updated.Template != "landing" {
		t.Fatalf("untouched template changed: %q", updated.Template)
	}
	if updated.AR.Title != "Original" {
		t.Fatalf("nil AR payload should leave stored content alone")
	}
}

func TestMemoryRepositoryIsolatesStoredState(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	record := &Page{ID: uuid.New(), Path: "/isolated", EN: *gridWith("en"), AR: *gridWith("ar")}
	if _, err := repo.Create(ctx, record); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Mutating the caller's section tree after Create must not reach the store.
	record.EN.Sections[0].Blocks[0] = blocks.Paragraph{Text: blocks.LocalizedText{EN: "tampered"}}

	stored, err := repo.GetByID(ctx, record.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	paragraph := stored.EN.Sections[0].Blocks[0].(blocks.Paragraph)
	if paragraph.Text.EN != "en" {
		t.Fatalf("expected stored block untouched, got %q", paragraph.Text.EN)
	}

	stored.EN.Sections[0].Blocks[0] = blocks.Paragraph{Text: blocks.LocalizedText{EN: "also tampered"}}
	again, err := repo.GetByID(ctx, record.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if again.EN.Sections[0].Blocks[0].(blocks.Paragraph).Text.EN != "en" {
		t.Fatal("expected reads to return independent copies")
	}
}

func TestMemoryRepositoryRejectsDuplicatePath(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first := &Page{ID: uuid.New(), Path: "/taken", Template: domain.TemplateDefault}
	if _, err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	second := &Page{ID: uuid.New(), Path: "/taken"}
	if _, err := repo.Create(ctx, second); !errors.Is(err, ErrPathExists) {
		t.Fatalf("expected ErrPathExists, got %v", err)
	}
}

func TestDeleteRemovesPathIndex(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	page, err := svc.Create(ctx, CreateRequest{Title: "Short Lived"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(ctx, page.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByPath(ctx, page.Path); !IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
