package clarif

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type inMemClarifRepo struct {
	mu      sync.RWMutex
	clarifs map[uuid.UUID]Clarif
}

func NewInMemClarifRepo() ClarifRepo {
	return &inMemClarifRepo{
		clarifs: make(map[uuid.UUID]Clarif),
	}
}

func (r *inMemClarifRepo) Store(ctx context.Context, clarif Clarif) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clarifs[clarif.UUID] = clarif
	return nil
}

func (r *inMemClarifRepo) Update(ctx context.Context, clarif Clarif) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clarifs[clarif.UUID] = clarif
	return nil
}

func (r *inMemClarifRepo) Get(ctx context.Context, id uuid.UUID) (*Clarif, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clarif, ok := r.clarifs[id]
	if !ok {
		return nil, nil
	}
	return &clarif, nil
}

func (r *inMemClarifRepo) List(ctx context.Context) ([]Clarif, error) {
	return r.filter(func(Clarif) bool { return true }), nil
}

func (r *inMemClarifRepo) ListByTeam(ctx context.Context, teamID string) ([]Clarif, error) {
	return r.filter(func(c Clarif) bool { return c.TeamID == teamID }), nil
}

func (r *inMemClarifRepo) ListPublic(ctx context.Context) ([]Clarif, error) {
	return r.filter(func(c Clarif) bool {
		return c.Public && c.Status == StatusAnswered
	}), nil
}

func (r *inMemClarifRepo) CountPending(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, c := range r.clarifs {
		if c.Status == StatusPending {
			count++
		}
	}
	return count, nil
}

func (r *inMemClarifRepo) filter(keep func(Clarif) bool) []Clarif {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var clarifs []Clarif
	for _, c := range r.clarifs {
		if keep(c) {
			clarifs = append(clarifs, c)
		}
	}
	sort.Slice(clarifs, func(i, j int) bool {
		return clarifs[i].CreatedAt.After(clarifs[j].CreatedAt)
	})
	return clarifs
}
