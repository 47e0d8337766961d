// Package commands provides the shared execution wrapper for builder command
// messages: validation, timeout enforcement, structured logging, and error
// categorisation around go-command handlers.
package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-pagebuilder/internal/logging"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

const defaultHandlerTimeout = 30 * time.Second

// HandlerOption configures a Handler instance.
type HandlerOption[T command.Message] func(*Handler[T])

// WithTimeout overrides the default execution timeout. Zero or negative
// disables the deadline entirely.
func WithTimeout[T command.Message](timeout time.Duration) HandlerOption[T] {
	return func(h *Handler[T]) {
		if timeout <= 0 {
			h.timeout = 0
			return
		}
		h.timeout = timeout
	}
}

// WithLogger injects the logger used during execution. Defaults to a no-op
// logger.
func WithLogger[T command.Message](logger interfaces.Logger) HandlerOption[T] {
	return func(h *Handler[T]) {
		if logger == nil {
			h.logger = logging.NoOp()
			return
		}
		h.logger = logger
	}
}

// WithOperation sets a human-friendly operation name emitted with every log
// entry.
func WithOperation[T command.Message](operation string) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.op = operation
	}
}

// Handler wraps command execution with shared concerns so individual
// handlers stay focused on their use-case.
type Handler[T command.Message] struct {
	run     command.CommandFunc[T]
	logger  interfaces.Logger
	timeout time.Duration
	op      string
}

// NewHandler creates a handler that satisfies go-command's Commander
// interface.
func NewHandler[T command.Message](fn command.CommandFunc[T], opts ...HandlerOption[T]) *Handler[T] {
	if fn == nil {
		panic("commands: handler function cannot be nil")
	}
	h := &Handler[T]{
		run:     fn,
		logger:  logging.NoOp(),
		timeout: defaultHandlerTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute conforms to command.Commander[T].Execute: validate the message,
// bound the context, run the wrapped function, and categorise whatever goes
// wrong along the way.
func (h *Handler[T]) Execute(ctx context.Context, msg T) error {
	if err := command.ValidateMessage(msg); err != nil {
		return wrapValidationError(err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return wrapContextError(err)
	}

	log := h.execLogger(msg)
	log.Debug("command started")

	if err := h.run(ctx, msg); err != nil {
		log.Error("command failed", "error", err)
		return wrapExecuteError(err)
	}
	if err := ctx.Err(); err != nil {
		log.Error("command interrupted", "error", err)
		return wrapContextError(err)
	}

	log.Info("command completed")
	return nil
}

func (h *Handler[T]) execLogger(msg T) interfaces.Logger {
	fields := map[string]any{
		"command": command.GetMessageType(msg),
	}
	if h.op != "" {
		fields["operation"] = h.op
	}
	return logging.WithFields(h.logger, fields)
}

func (h *Handler[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.timeout)
}
