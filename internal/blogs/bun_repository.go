package blogs

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunBlogRepository is the SQL-backed Repository built on go-repository-bun.
type BunBlogRepository struct {
	db   *bun.DB
	repo repository.Repository[*BlogPost]
}

func NewBunBlogRepository(db *bun.DB) *BunBlogRepository {
	return NewBunBlogRepositoryWithCache(db, nil, nil)
}

// NewBunBlogRepositoryWithCache constructs a Repository backed by bun with
// optional read-through caching.
func NewBunBlogRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunBlogRepository {
	base := NewBlogPostRepository(db)
	return &BunBlogRepository{
		db:   db,
		repo: wrapWithCache(base, cacheService, keySerializer),
	}
}

func (r *BunBlogRepository) Create(ctx context.Context, record *BlogPost) (*BlogPost, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunBlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*BlogPost, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "blog post", id.String())
	}
	return result, nil
}

func (r *BunBlogRepository) GetBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.slug = ?", slug)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "blog post", slug)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Key: slug}
	}
	return records[0], nil
}

func (r *BunBlogRepository) List(ctx context.Context) ([]*BlogPost, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.created_at DESC")
		}),
	)
	return records, err
}

func (r *BunBlogRepository) Update(ctx context.Context, record *BlogPost) (*BlogPost, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"slug",
			"status",
			"cover_image",
			"tags",
			"author",
			"published_at",
			"en",
			"ar",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "blog post", record.ID.String())
	}
	return updated, nil
}

func (r *BunBlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.repo.Delete(ctx, &BlogPost{ID: id}); err != nil {
		return mapRepositoryError(err, "blog post", id.String())
	}
	return nil
}

func (r *BunBlogRepository) ListSlugs(ctx context.Context) (map[string]struct{}, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Column("slug")
		}),
	)
	if err != nil {
		return nil, err
	}
	slugs := make(map[string]struct{}, len(records))
	for _, record := range records {
		slugs[record.Slug] = struct{}{}
	}
	return slugs, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}

	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Key: key}
	}

	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
