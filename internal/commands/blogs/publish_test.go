package blogscmd

import (
	"context"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/goliatone/go-pagebuilder/internal/blogs"
	"github.com/goliatone/go-pagebuilder/internal/domain"
)

func newBlogService(t *testing.T) blogs.Service {
	t.Helper()
	return blogs.NewService(blogs.NewMemoryRepository(),
		blogs.WithClock(func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }),
	)
}

func TestPublishPostCommandRequiresPostID(t *testing.T) {
	if err := (PublishPostCommand{}).Validate(); err == nil {
		t.Fatal("expected validation error for missing post id")
	}
	if err := (PublishPostCommand{PostID: uuid.New()}).Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
}

func TestPublishPostHandlerPublishesThroughService(t *testing.T) {
	svc := newBlogService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, blogs.CreateRequest{Title: "Command Driven"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	handler := NewPublishPostHandler(svc, nil)
	at := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	if err := handler.Execute(ctx, PublishPostCommand{PostID: post.ID, PublishedAt: &at}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	stored, err := svc.Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if stored.Status != domain.StatusPublished {
		t.Fatalf("expected published, got %q", stored.Status)
	}
	if stored.PublishedAt == nil || !stored.PublishedAt.Equal(at) {
		t.Fatalf("expected command date, got %v", stored.PublishedAt)
	}
}

func TestPublishPostHandlerRejectsInvalidMessage(t *testing.T) {
	handler := NewPublishPostHandler(newBlogService(t), nil)

	err := handler.Execute(context.Background(), PublishPostCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestUnpublishPostHandlerRevertsToDraft(t *testing.T) {
	svc := newBlogService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, blogs.CreateRequest{Title: "Revert Me", Status: "published"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	handler := NewUnpublishPostHandler(svc, nil)
	if err := handler.Execute(ctx, UnpublishPostCommand{PostID: post.ID}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	stored, err := svc.Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if stored.Status != domain.StatusDraft {
		t.Fatalf("expected draft, got %q", stored.Status)
	}
}
