package pages

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository abstracts storage operations for pages. The store, not the
// validator, enforces path uniqueness at write time.
type Repository interface {
	Create(ctx context.Context, record *Page) (*Page, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Page, error)
	GetByPath(ctx context.Context, path string) (*Page, error)
	List(ctx context.Context) ([]*Page, error)
	Update(ctx context.Context, record *Page) (*Page, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListPaths(ctx context.Context) (map[string]struct{}, error)
}

// NewPageRepository wires the bun model handlers used by the SQL-backed
// repository.
func NewPageRepository(db *bun.DB) repository.Repository[*Page] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Page]{
		NewRecord: func() *Page { return &Page{} },
		GetID: func(p *Page) uuid.UUID {
			return p.ID
		},
		SetID: func(p *Page, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "path"
		},
		GetIdentifierValue: func(p *Page) string {
			return p.Path
		},
	})
}
