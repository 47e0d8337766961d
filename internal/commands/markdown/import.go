// Package markdowncmd exposes Markdown document import as a go-command
// message.
package markdowncmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-pagebuilder/internal/commands"
	"github.com/goliatone/go-pagebuilder/internal/markdown"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

const importPostMessageType = "pagebuilder.markdown.import"

// ImportPostCommand carries a raw Markdown document to import as a blog
// post.
type ImportPostCommand struct {
	Source []byte `json:"source"`
}

// Type implements command.Message.
func (ImportPostCommand) Type() string { return importPostMessageType }

func (m ImportPostCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.Source) == 0 {
		errs["source"] = validation.NewError("pagebuilder.markdown.import.source_required", "source is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ImportPostHandler imports documents through the markdown importer.
type ImportPostHandler struct {
	inner *commands.Handler[ImportPostCommand]
}

func NewImportPostHandler(importer *markdown.Importer, logger interfaces.Logger, opts ...commands.HandlerOption[ImportPostCommand]) *ImportPostHandler {
	exec := func(ctx context.Context, msg ImportPostCommand) error {
		_, err := importer.ImportPost(ctx, msg.Source)
		return err
	}

	options := []commands.HandlerOption[ImportPostCommand]{
		commands.WithLogger[ImportPostCommand](logger),
		commands.WithOperation[ImportPostCommand]("markdown.import"),
	}
	options = append(options, opts...)

	return &ImportPostHandler{inner: commands.NewHandler(exec, options...)}
}

// Execute satisfies command.Commander.
func (h *ImportPostHandler) Execute(ctx context.Context, msg ImportPostCommand) error {
	return h.inner.Execute(ctx, msg)
}
