// Package pagescmd exposes page lifecycle transitions as go-command
// messages.
package pagescmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-pagebuilder/internal/commands"
	"github.com/goliatone/go-pagebuilder/internal/pages"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

const publishPageMessageType = "pagebuilder.pages.publish"

// PublishPageCommand requests publication of a page.
type PublishPageCommand struct {
	PageID uuid.UUID `json:"page_id"`
}

// Type implements command.Message.
func (PublishPageCommand) Type() string { return publishPageMessageType }

func (m PublishPageCommand) Validate() error {
	errs := validation.Errors{}
	if m.PageID == uuid.Nil {
		errs["page_id"] = validation.NewError("pagebuilder.pages.publish.page_id_required", "page_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PublishPageHandler publishes pages via the page service using the shared
// command handler foundation.
type PublishPageHandler struct {
	inner *commands.Handler[PublishPageCommand]
}

func NewPublishPageHandler(service pages.Service, logger interfaces.Logger, opts ...commands.HandlerOption[PublishPageCommand]) *PublishPageHandler {
	exec := func(ctx context.Context, msg PublishPageCommand) error {
		_, err := service.Publish(ctx, msg.PageID)
		return err
	}

	options := []commands.HandlerOption[PublishPageCommand]{
		commands.WithLogger[PublishPageCommand](logger),
		commands.WithOperation[PublishPageCommand]("pages.publish"),
	}
	options = append(options, opts...)

	return &PublishPageHandler{inner: commands.NewHandler(exec, options...)}
}

// Execute satisfies command.Commander.
func (h *PublishPageHandler) Execute(ctx context.Context, msg PublishPageCommand) error {
	return h.inner.Execute(ctx, msg)
}
