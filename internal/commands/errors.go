package commands

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-pagebuilder/internal/validation"
)

// Text codes attached to categorised command errors.
const (
	codeMessageInvalid = "COMMAND_MESSAGE_INVALID"
	codeFieldIssues    = "COMMAND_FIELD_ISSUES"
	codeCancelled      = "COMMAND_CANCELLED"
	codeTimedOut       = "COMMAND_TIMED_OUT"
	codeFailed         = "COMMAND_FAILED"
)

// wrapValidationError categorises a message validation failure. When the
// error carries accumulated field issues their count and first path surface
// in the message, so callers see what to fix without unwrapping.
func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	if issues := validation.IssuesOf(err); len(issues) > 0 {
		msg := fmt.Sprintf("command message has %d invalid field(s), first: %s",
			len(issues), issues[0].String())
		return goerrors.Wrap(err, goerrors.CategoryValidation, msg).
			WithTextCode(codeFieldIssues)
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command message rejected").
		WithTextCode(codeMessageInvalid)
}

// wrapContextError categorises a context failure. ctx.Err only ever reports
// cancellation or an expired deadline.
func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command timed out").
			WithTextCode(codeTimedOut)
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command cancelled").
		WithTextCode(codeCancelled)
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command failed").
		WithTextCode(codeFailed)
}
