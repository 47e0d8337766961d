// Package validation re-exports the accumulated issue model returned by the
// document validators.
package validation

import "github.com/goliatone/go-pagebuilder/internal/validation"

type (
	Issue = validation.Issue
	Error = validation.Error
)

const (
	CodeUnknownBlockType     = validation.CodeUnknownBlockType
	CodeFieldConstraint      = validation.CodeFieldConstraint
	CodeMissingPublishedDate = validation.CodeMissingPublishedDate
	CodeSlugFormatInvalid    = validation.CodeSlugFormatInvalid
	CodeSlugCollision        = validation.CodeSlugCollision
)

var (
	// ErrValidation is the sentinel every accumulated validation error
	// unwraps to.
	ErrValidation = validation.ErrValidation

	// IssuesOf extracts the issue list from an error when it carries one.
	IssuesOf = validation.IssuesOf
)
