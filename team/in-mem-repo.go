package team

import (
	"context"
	"sort"
	"sync"
)

type inMemTeamRepo struct {
	mu    sync.RWMutex
	teams map[string]Team
}

func NewInMemTeamRepo() TeamRepo {
	return &inMemTeamRepo{
		teams: make(map[string]Team),
	}
}

// Store implements TeamRepo
func (r *inMemTeamRepo) Store(ctx context.Context, team Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams[team.TeamID] = team
	return nil
}

// Update implements TeamRepo
func (r *inMemTeamRepo) Update(ctx context.Context, team Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams[team.TeamID] = team
	return nil
}

// Get implements TeamRepo
func (r *inMemTeamRepo) Get(ctx context.Context, teamID string) (*Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if team, ok := r.teams[teamID]; ok {
		return &team, nil
	}
	return nil, nil
}

// List implements TeamRepo
func (r *inMemTeamRepo) List(ctx context.Context) ([]Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	teams := make([]Team, 0, len(r.teams))
	for _, team := range r.teams {
		teams = append(teams, team)
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].TeamID < teams[j].TeamID
	})
	return teams, nil
}
