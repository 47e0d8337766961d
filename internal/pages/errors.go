package pages

import (
	"errors"
	"fmt"
)

var (
	ErrIDRequired   = errors.New("pages: page id required")
	ErrPathRequired = errors.New("pages: path is required")
	ErrPathExists   = errors.New("pages: path already exists")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	if e == nil || e.Key == "" {
		return "page not found"
	}
	return fmt.Sprintf("page %q not found", e.Key)
}

// IsNotFound reports whether err indicates a missing page.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
