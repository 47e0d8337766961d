// Package pages re-exports the page service and model.
package pages

import "github.com/goliatone/go-pagebuilder/internal/pages"

type (
	Page          = pages.Page
	Service       = pages.Service
	ServiceOption = pages.ServiceOption
	Repository    = pages.Repository
	CreateRequest = pages.CreateRequest
	UpdateRequest = pages.UpdateRequest
	NotFoundError = pages.NotFoundError
)

var (
	ErrIDRequired = pages.ErrIDRequired
	ErrPathExists = pages.ErrPathExists

	NewService                    = pages.NewService
	NewMemoryRepository           = pages.NewMemoryRepository
	NewBunPageRepository          = pages.NewBunPageRepository
	NewBunPageRepositoryWithCache = pages.NewBunPageRepositoryWithCache
	WithClock                     = pages.WithClock
	WithIDGenerator               = pages.WithIDGenerator
	WithLogger                    = pages.WithLogger
	Validate                      = pages.Validate
	IsNotFound                    = pages.IsNotFound
)
