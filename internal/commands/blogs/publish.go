// Package blogscmd exposes blog post lifecycle transitions as go-command
// messages.
package blogscmd

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-pagebuilder/internal/blogs"
	"github.com/goliatone/go-pagebuilder/internal/commands"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

const publishPostMessageType = "pagebuilder.blogs.publish"

// PublishPostCommand requests publication of a blog post.
type PublishPostCommand struct {
	PostID      uuid.UUID  `json:"post_id"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// Type implements command.Message.
func (PublishPostCommand) Type() string { return publishPostMessageType }

// Validate ensures the message carries the required fields before reaching
// handlers.
func (m PublishPostCommand) Validate() error {
	errs := validation.Errors{}
	if m.PostID == uuid.Nil {
		errs["post_id"] = validation.NewError("pagebuilder.blogs.publish.post_id_required", "post_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PublishPostHandler publishes posts via the blog service using the shared
// command handler foundation.
type PublishPostHandler struct {
	inner *commands.Handler[PublishPostCommand]
}

// NewPublishPostHandler constructs a handler wired to the provided blog
// service.
func NewPublishPostHandler(service blogs.Service, logger interfaces.Logger, opts ...commands.HandlerOption[PublishPostCommand]) *PublishPostHandler {
	exec := func(ctx context.Context, msg PublishPostCommand) error {
		_, err := service.Publish(ctx, msg.PostID, msg.PublishedAt)
		return err
	}

	options := []commands.HandlerOption[PublishPostCommand]{
		commands.WithLogger[PublishPostCommand](logger),
		commands.WithOperation[PublishPostCommand]("blogs.publish"),
	}
	options = append(options, opts...)

	return &PublishPostHandler{inner: commands.NewHandler(exec, options...)}
}

// Execute satisfies command.Commander.
func (h *PublishPostHandler) Execute(ctx context.Context, msg PublishPostCommand) error {
	return h.inner.Execute(ctx, msg)
}
