package pagescmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-pagebuilder/internal/commands"
	"github.com/goliatone/go-pagebuilder/internal/pages"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

const unpublishPageMessageType = "pagebuilder.pages.unpublish"

// UnpublishPageCommand reverts a page to draft.
type UnpublishPageCommand struct {
	PageID uuid.UUID `json:"page_id"`
}

// Type implements command.Message.
func (UnpublishPageCommand) Type() string { return unpublishPageMessageType }

func (m UnpublishPageCommand) Validate() error {
	errs := validation.Errors{}
	if m.PageID == uuid.Nil {
		errs["page_id"] = validation.NewError("pagebuilder.pages.unpublish.page_id_required", "page_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UnpublishPageHandler reverts pages to draft via the page service.
type UnpublishPageHandler struct {
	inner *commands.Handler[UnpublishPageCommand]
}

func NewUnpublishPageHandler(service pages.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UnpublishPageCommand]) *UnpublishPageHandler {
	exec := func(ctx context.Context, msg UnpublishPageCommand) error {
		_, err := service.Unpublish(ctx, msg.PageID)
		return err
	}

	options := []commands.HandlerOption[UnpublishPageCommand]{
		commands.WithLogger[UnpublishPageCommand](logger),
		commands.WithOperation[UnpublishPageCommand]("pages.unpublish"),
	}
	options = append(options, opts...)

	return &UnpublishPageHandler{inner: commands.NewHandler(exec, options...)}
}

// Execute satisfies command.Commander.
func (h *UnpublishPageHandler) Execute(ctx context.Context, msg UnpublishPageCommand) error {
	return h.inner.Execute(ctx, msg)
}
