// Package blogs re-exports the blog post service and model.
package blogs

import "github.com/goliatone/go-pagebuilder/internal/blogs"

type (
	BlogPost      = blogs.BlogPost
	Service       = blogs.Service
	ServiceOption = blogs.ServiceOption
	Repository    = blogs.Repository
	CreateRequest = blogs.CreateRequest
	UpdateRequest = blogs.UpdateRequest
	NotFoundError = blogs.NotFoundError
)

var (
	ErrIDRequired = blogs.ErrIDRequired
	ErrSlugExists = blogs.ErrSlugExists

	NewService                    = blogs.NewService
	NewMemoryRepository           = blogs.NewMemoryRepository
	NewBunBlogRepository          = blogs.NewBunBlogRepository
	NewBunBlogRepositoryWithCache = blogs.NewBunBlogRepositoryWithCache
	WithClock                     = blogs.WithClock
	WithIDGenerator               = blogs.WithIDGenerator
	WithLogger                    = blogs.WithLogger
	Validate                      = blogs.Validate
	NormalizeTags                 = blogs.NormalizeTags
	IsNotFound                    = blogs.IsNotFound
)
