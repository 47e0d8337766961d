package blogs

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository used by tests and the preview
// tooling. All reads and writes operate on clones so callers cannot mutate
// stored state.
type MemoryRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*BlogPost
	bySlug map[string]uuid.UUID
}

// NewMemoryRepository returns an empty in-memory blog post store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:   make(map[uuid.UUID]*BlogPost),
		bySlug: make(map[string]uuid.UUID),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, record *BlogPost) (*BlogPost, error) {
	if record == nil {
		return nil, ErrIDRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == uuid.Nil {
		return nil, ErrIDRequired
	}
	if _, exists := r.byID[record.ID]; exists {
		return nil, ErrSlugExists
	}
	if _, exists := r.bySlug[record.Slug]; exists {
		return nil, ErrSlugExists
	}

	stored := clonePost(record)
	r.byID[stored.ID] = stored
	r.bySlug[stored.Slug] = stored.ID
	return clonePost(stored), nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, &NotFoundError{Key: id.String()}
	}
	return clonePost(stored), nil
}

func (r *MemoryRepository) GetBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bySlug[slug]
	if !ok {
		return nil, &NotFoundError{Key: slug}
	}
	return clonePost(r.byID[id]), nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*BlogPost, 0, len(r.byID))
	for _, stored := range r.byID {
		out = append(out, clonePost(stored))
	}
	return out, nil
}

func (r *MemoryRepository) Update(ctx context.Context, record *BlogPost) (*BlogPost, error) {
	if record == nil {
		return nil, ErrIDRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[record.ID]
	if !ok {
		return nil, &NotFoundError{Key: record.ID.String()}
	}
	if record.Slug != stored.Slug {
		if _, exists := r.bySlug[record.Slug]; exists {
			return nil, ErrSlugExists
		}
		delete(r.bySlug, stored.Slug)
		r.bySlug[record.Slug] = record.ID
	}

	replacement := clonePost(record)
	r.byID[record.ID] = replacement
	return clonePost(replacement), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return &NotFoundError{Key: id.String()}
	}
	delete(r.bySlug, stored.Slug)
	delete(r.byID, id)
	return nil
}

func (r *MemoryRepository) ListSlugs(ctx context.Context) (map[string]struct{}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slugs := make(map[string]struct{}, len(r.bySlug))
	for slug := range r.bySlug {
		slugs[slug] = struct{}{}
	}
	return slugs, nil
}
