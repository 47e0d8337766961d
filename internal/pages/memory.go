package pages

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
	byID   map[uuid.UUID]*Page
	byPath map[string]uuid.UUID
}

// NewMemoryRepository returns an empty in-memory page store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:   make(map[uuid.UUID]*Page),
		byPath: make(map[string]uuid.UUID),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, record *Page) (*Page, error) {
	if record == nil || record.ID == uuid.Nil {
		return nil, ErrIDRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[record.ID]; exists {
		return nil, ErrPathExists
	}
	if _, exists := r.byPath[record.Path]; exists {
		return nil, ErrPathExists
	}

	stored := clonePage(record)
	r.byID[stored.ID] = stored
	r.byPath[stored.Path] = stored.ID
	return clonePage(stored), nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, &NotFoundError{Key: id.String()}
	}
	return clonePage(stored), nil
}

func (r *MemoryRepository) GetByPath(ctx context.Context, path string) (*Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byPath[path]
	if !ok {
		return nil, &NotFoundError{Key: path}
	}
	return clonePage(r.byID[id]), nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Page, 0, len(r.byID))
	for _, stored := range r.byID {
		out = append(out, clonePage(stored))
	}
	return out, nil
}

func (r *MemoryRepository) Update(ctx context.Context, record *Page) (*Page, error) {
	if record == nil {
		return nil, ErrIDRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[record.ID]
	if !ok {
		return nil, &NotFoundError{Key: record.ID.String()}
	}
	if record.Path != stored.Path {
		if _, exists := r.byPath[record.Path]; exists {
			return nil, ErrPathExists
		}
		delete(r.byPath, stored.Path)
		r.byPath[record.Path] = record.ID
	}

	replacement := clonePage(record)
	r.byID[record.ID] = replacement
	return clonePage(replacement), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return &NotFoundError{Key: id.String()}
	}
	delete(r.byPath, stored.Path)
	delete(r.byID, id)
	return nil
}

func (r *MemoryRepository) ListPaths(ctx context.Context) (map[string]struct{}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paths := make(map[string]struct{}, len(r.byPath))
	for path := range r.byPath {
		paths[path] = struct{}{}
	}
	return paths, nil
}
