package blogs

import (
	"errors"
	"fmt"
)

var (
	ErrIDRequired    = errors.New("blogs: post id required")
	ErrTitleRequired = errors.New("blogs: title is required")
	ErrSlugExists    = errors.New("blogs: slug already exists")
	ErrNotPublished  = errors.New("blogs: post is not published")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	if e == nil || e.Key == "" {
		return "blog post not found"
	}
	return fmt.Sprintf("blog post %q not found", e.Key)
}

// IsNotFound reports whether err indicates a missing blog post.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
