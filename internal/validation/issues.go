package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is the sentinel every accumulated validation failure unwraps to.
var ErrValidation = errors.New("validation failed")

// Issue codes shared across block, content, and document validators.
const (
	CodeUnknownBlockType     = "unknown_block_type"
	CodeFieldConstraint      = "field_constraint_violation"
	CodeMissingPublishedDate = "missing_published_date"
	CodeSlugFormatInvalid    = "slug_format_invalid"
	CodeSlugCollision        = "slug_collision"
)

// Issue captures a single validation failure addressed to the originating
// field, e.g. "sections[2].rows[0].columns[1].blocks[3].text". Editing UIs
// route each issue back to the exact form control via Path.
type Issue struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	path := strings.TrimSpace(i.Path)
	if path == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", path, i.Message)
}

// Error aggregates every issue found during a validation pass. Validators
// accumulate rather than fail fast so a caller can surface all problems at
// once.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error {
	return ErrValidation
}

// Collector accumulates issues while a validator walks a document tree.
// The zero value is ready to use.
type Collector struct {
	issues []Issue
}

// Add records an issue at the given path.
func (c *Collector) Add(path, code, message string) {
	c.issues = append(c.issues, Issue{Path: path, Code: code, Message: message})
}

// Merge appends child issues, prefixing each relative path with parent.
func (c *Collector) Merge(parent string, issues []Issue) {
	for _, issue := range issues {
		c.issues = append(c.issues, Issue{
			Path:    JoinPath(parent, issue.Path),
			Code:    issue.Code,
			Message: issue.Message,
		})
	}
}

// MergeErr appends the issues carried by err, if any, under parent.
func (c *Collector) MergeErr(parent string, err error) {
	if err == nil {
		return
	}
	issues := IssuesOf(err)
	if len(issues) == 0 {
		issues = []Issue{{Code: CodeFieldConstraint, Message: err.Error()}}
	}
	c.Merge(parent, issues)
}

// Len returns the number of accumulated issues.
func (c *Collector) Len() int { return len(c.issues) }

// Issues returns the accumulated issues in insertion order.
func (c *Collector) Issues() []Issue { return c.issues }

// Err returns an *Error when at least one issue was recorded, nil otherwise.
func (c *Collector) Err() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &Error{Issues: c.issues}
}

// IssuesOf extracts validation issues from an error chain.
func IssuesOf(err error) []Issue {
	if err == nil {
		return nil
	}
	var verr *Error
	if errors.As(err, &verr) && verr != nil {
		return verr.Issues
	}
	return nil
}

// JoinPath composes a child path under parent, handling blank segments and
// index-only children ("[3]") without inserting a stray dot.
func JoinPath(parent, child string) string {
	parent = strings.TrimSpace(parent)
	child = strings.TrimSpace(child)
	switch {
	case parent == "":
		return child
	case child == "":
		return parent
	case strings.HasPrefix(child, "["):
		return parent + child
	default:
		return parent + "." + child
	}
}

// IndexPath renders "name[i]" for addressing ordered children.
func IndexPath(name string, i int) string {
	return fmt.Sprintf("%s[%d]", name, i)
}
