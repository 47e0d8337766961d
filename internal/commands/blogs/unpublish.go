package blogscmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-pagebuilder/internal/blogs"
	"github.com/goliatone/go-pagebuilder/internal/commands"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

const unpublishPostMessageType = "pagebuilder.blogs.unpublish"

// UnpublishPostCommand reverts a blog post to draft.
type UnpublishPostCommand struct {
	PostID uuid.UUID `json:"post_id"`
}

// Type implements command.Message.
func (UnpublishPostCommand) Type() string { return unpublishPostMessageType }

func (m UnpublishPostCommand) Validate() error {
	errs := validation.Errors{}
	if m.PostID == uuid.Nil {
		errs["post_id"] = validation.NewError("pagebuilder.blogs.unpublish.post_id_required", "post_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UnpublishPostHandler reverts posts to draft via the blog service.
type UnpublishPostHandler struct {
	inner *commands.Handler[UnpublishPostCommand]
}

func NewUnpublishPostHandler(service blogs.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UnpublishPostCommand]) *UnpublishPostHandler {
	exec := func(ctx context.Context, msg UnpublishPostCommand) error {
		_, err := service.Unpublish(ctx, msg.PostID)
		return err
	}

	options := []commands.HandlerOption[UnpublishPostCommand]{
		commands.WithLogger[UnpublishPostCommand](logger),
		commands.WithOperation[UnpublishPostCommand]("blogs.unpublish"),
	}
	options = append(options, opts...)

	return &UnpublishPostHandler{inner: commands.NewHandler(exec, options...)}
}

// Execute satisfies command.Commander.
func (h *UnpublishPostHandler) Execute(ctx context.Context, msg UnpublishPostCommand) error {
	return h.inner.Execute(ctx, msg)
}
