package scoring

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ScoreSrvc owns all mutations of team score records. Every mutation
// runs under a per-team lock so that read-modify-write over a record
// stays atomic; the storage layer is the only suspension point.
type ScoreSrvc struct {
	logger *slog.Logger
	repo   ScoreRepo

	lockMu    sync.Mutex
	teamLocks map[string]*sync.Mutex

	now func() time.Time
}

func NewScoreSrvc(repo ScoreRepo) *ScoreSrvc {
	return &ScoreSrvc{
		logger:    slog.Default().With("module", "scoring"),
		repo:      repo,
		teamLocks: make(map[string]*sync.Mutex),
		now:       time.Now,
	}
}

func (s *ScoreSrvc) lockTeam(teamID string) func() {
	s.lockMu.Lock()
	l, ok := s.teamLocks[teamID]
	if !ok {
		l = &sync.Mutex{}
		s.teamLocks[teamID] = l
	}
	s.lockMu.Unlock()
	l.Lock()
	return l.Unlock
}

// GetTeamScore returns the current score record for a team.
func (s *ScoreSrvc) GetTeamScore(ctx context.Context, teamID string) (*TeamScore, error) {
	score, err := s.repo.Load(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if score == nil {
		return nil, newErrTeamScoreNotFound(teamID)
	}
	return score, nil
}

// ListTeamScores returns the records of all teams, for scoreboard use.
func (s *ScoreSrvc) ListTeamScores(ctx context.Context) ([]TeamScore, error) {
	return s.repo.List(ctx)
}
