package products

import (
	"context"
	"sync"
)

// MemoryRepo keeps the collection in process memory. It backs the pure-client
// table variant, where the grid itself is the source of truth and mutations
// are local splices.
type MemoryRepo struct {
	mu    sync.Mutex
	items []Product
}

func NewMemoryRepo(seed ...Product) *MemoryRepo {
	r := &MemoryRepo{}
	r.items = append(r.items, seed...)
	return r
}

func (r *MemoryRepo) List(ctx context.Context) ([]Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Product, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Create assigns max(existing id)+1, starting at 1 for an empty collection,
// and appends.
func (r *MemoryRepo) Create(ctx context.Context, p Product) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var max int64
	for _, it := range r.items {
		if it.ID > max {
			max = it.ID
		}
	}
	p.ID = max + 1
	r.items = append(r.items, p)
	return p.ID, nil
}

func (r *MemoryRepo) Update(ctx context.Context, id int64, p Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == id {
			p.ID = id
			r.items[i] = p
			return nil
		}
	}
	return ErrNotFound
}

// Delete of a missing id is a no-op.
func (r *MemoryRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// DeleteMany filters the collection in one pass, preserving the order of the
// survivors.
func (r *MemoryRepo) DeleteMany(ctx context.Context, ids []int64) error {
	drop := make(map[int64]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, it := range r.items {
		if !drop[it.ID] {
			kept = append(kept, it)
		}
	}
	r.items = kept
	return nil
}
