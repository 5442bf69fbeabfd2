package scoring

import "context"

// Provision creates the score record for a team with every known
// problem and section pre-populated at unsolved/zero. Records are
// created once per team, before or at first login; sections are never
// added lazily mid-contest. Provisioning an already provisioned team
// is a no-op.
func (s *ScoreSrvc) Provision(ctx context.Context, teamID string, problems []ProblemSpec) error {
	unlock := s.lockTeam(teamID)
	defer unlock()

	existing, err := s.repo.Load(ctx, teamID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	score := &TeamScore{
		TeamID:      teamID,
		Problems:    make(map[string]*ProblemScore, len(problems)),
		LastUpdated: s.now(),
	}
	for _, p := range problems {
		if len(p.Sections) == 0 {
			return newErrProblemWithoutSections(p.ProblemID)
		}
		problem := newProblemScore()
		for _, sec := range p.Sections {
			problem.Sections[sec.Key] = newSectionScore(sec.Points)
		}
		score.Problems[p.ProblemID] = problem
	}

	return s.repo.Save(ctx, score)
}

// Reset zeroes every section of a team's record. Administrative and
// testing use only; the section set itself is kept.
func (s *ScoreSrvc) Reset(ctx context.Context, teamID string) error {
	unlock := s.lockTeam(teamID)
	defer unlock()

	score, err := s.repo.Load(ctx, teamID)
	if err != nil {
		return err
	}
	if score == nil {
		return newErrTeamScoreNotFound(teamID)
	}

	for _, p := range score.Problems {
		for key, sec := range p.Sections {
			p.Sections[key] = newSectionScore(sec.Points)
		}
		p.TotalScore = 0
		p.Status = StatusUnsolved
	}
	recomputeTotals(score)
	score.LastUpdated = s.now()

	return s.repo.Save(ctx, score)
}

// Rebuild re-derives every problem status/total and every team total
// from the stored sections, repairing cached fields after manual data
// edits. Idempotent.
func (s *ScoreSrvc) Rebuild(ctx context.Context) error {
	scores, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for i := range scores {
		score := &scores[i]
		unlock := s.lockTeam(score.TeamID)
		for problemID, p := range score.Problems {
			if err := deriveProblem(p); err != nil {
				unlock()
				return newErrProblemWithoutSections(problemID)
			}
		}
		recomputeTotals(score)
		score.LastUpdated = s.now()
		if err := s.repo.Save(ctx, score); err != nil {
			unlock()
			return err
		}
		unlock()
		s.logger.Info("rebuilt score record", "team", score.TeamID,
			"totalScore", score.TotalScore, "totalPenalty", score.TotalPenalty)
	}
	return nil
}
