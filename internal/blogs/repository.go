package blogs

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository abstracts storage operations for blog posts. The store, not the
// validator, enforces slug uniqueness at write time.
type Repository interface {
	Create(ctx context.Context, record *BlogPost) (*BlogPost, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
	List(ctx context.Context) ([]*BlogPost, error)
	Update(ctx context.Context, record *BlogPost) (*BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListSlugs(ctx context.Context) (map[string]struct{}, error)
}

// NewBlogPostRepository wires the bun model handlers used by the SQL-backed
// repository.
func NewBlogPostRepository(db *bun.DB) repository.Repository[*BlogPost] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*BlogPost]{
		NewRecord: func() *BlogPost { return &BlogPost{} },
		GetID: func(p *BlogPost) uuid.UUID {
			return p.ID
		},
		SetID: func(p *BlogPost, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(p *BlogPost) string {
			return p.Slug
		},
	})
}
