package subm

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type inMemSubmRepo struct {
	mu    sync.RWMutex
	subms map[uuid.UUID]Submission
}

func NewInMemSubmRepo() SubmRepo {
	return &inMemSubmRepo{
		subms: make(map[uuid.UUID]Submission),
	}
}

// Store implements SubmRepo
func (r *inMemSubmRepo) Store(ctx context.Context, subm Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subms[subm.UUID] = subm
	return nil
}

// Update implements SubmRepo
func (r *inMemSubmRepo) Update(ctx context.Context, subm Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subms[subm.UUID] = subm
	return nil
}

// Get implements SubmRepo
func (r *inMemSubmRepo) Get(ctx context.Context, id uuid.UUID) (*Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if subm, ok := r.subms[id]; ok {
		return &subm, nil
	}
	return nil, nil
}

// List implements SubmRepo
func (r *inMemSubmRepo) List(ctx context.Context, limit int) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	subms := make([]Submission, 0, len(r.subms))
	for _, subm := range r.subms {
		subms = append(subms, subm)
	}
	sort.Slice(subms, func(i, j int) bool {
		return subms[i].SubmittedAt.After(subms[j].SubmittedAt)
	})
	if len(subms) > limit {
		subms = subms[:limit]
	}
	return subms, nil
}

// ListByTeam implements SubmRepo
func (r *inMemSubmRepo) ListByTeam(ctx context.Context, teamID string) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var subms []Submission
	for _, subm := range r.subms {
		if subm.TeamID == teamID {
			subms = append(subms, subm)
		}
	}
	sort.Slice(subms, func(i, j int) bool {
		return subms[i].SubmittedAt.After(subms[j].SubmittedAt)
	})
	return subms, nil
}

// CountPending implements SubmRepo
func (r *inMemSubmRepo) CountPending(ctx context.Context, teamID, problemID, section string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, subm := range r.subms {
		if subm.TeamID == teamID &&
			subm.ProblemID == problemID &&
			subm.Section == section &&
			subm.Status == StatusPending {
			count++
		}
	}
	return count, nil
}

// CountUnreviewed implements SubmRepo
func (r *inMemSubmRepo) CountUnreviewed(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, subm := range r.subms {
		if subm.ReviewStatus == ReviewStatusUnderReview {
			count++
		}
	}
	return count, nil
}
