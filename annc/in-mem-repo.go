package annc

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type inMemAnncRepo struct {
	mu    sync.RWMutex
	anncs map[uuid.UUID]Announcement
}

func NewInMemAnncRepo() AnncRepo {
	return &inMemAnncRepo{
		anncs: make(map[uuid.UUID]Announcement),
	}
}

func (r *inMemAnncRepo) Store(ctx context.Context, annc Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.anncs[annc.UUID] = annc
	return nil
}

func (r *inMemAnncRepo) List(ctx context.Context) ([]Announcement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	anncs := make([]Announcement, 0, len(r.anncs))
	for _, a := range r.anncs {
		anncs = append(anncs, a)
	}
	sort.Slice(anncs, func(i, j int) bool {
		return anncs[i].CreatedAt.After(anncs[j].CreatedAt)
	})
	return anncs, nil
}

func (r *inMemAnncRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.anncs[id]; !ok {
		return false, nil
	}
	delete(r.anncs, id)
	return true, nil
}
