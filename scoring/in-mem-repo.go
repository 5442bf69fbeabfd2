package scoring

import (
	"context"
	"sort"
	"sync"
)

type inMemScoreRepo struct {
	mu     sync.RWMutex
	scores map[string]*TeamScore
}

func NewInMemScoreRepo() ScoreRepo {
	return &inMemScoreRepo{
		scores: make(map[string]*TeamScore),
	}
}

// Load implements ScoreRepo
func (r *inMemScoreRepo) Load(ctx context.Context, teamID string) (*TeamScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if score, ok := r.scores[teamID]; ok {
		return score.Clone(), nil
	}
	return nil, nil
}

// Save implements ScoreRepo
func (r *inMemScoreRepo) Save(ctx context.Context, score *TeamScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scores[score.TeamID] = score.Clone()
	return nil
}

// List implements ScoreRepo
func (r *inMemScoreRepo) List(ctx context.Context) ([]TeamScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	scores := make([]TeamScore, 0, len(r.scores))
	for _, score := range r.scores {
		scores = append(scores, *score.Clone())
	}
	sort.Slice(scores, func(i, j int) bool {
		return scores[i].TeamID < scores[j].TeamID
	})
	return scores, nil
}
