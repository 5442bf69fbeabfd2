package scoring

import "context"

// IncrementTrial bumps the trial counter of one section by exactly
// one. Each call represents one recorded submission, so the operation
// is deliberately not idempotent. No status change, no recompute.
func (s *ScoreSrvc) IncrementTrial(ctx context.Context, teamID, problemID, sectionID string) error {
	unlock := s.lockTeam(teamID)
	defer unlock()

	score, err := s.repo.Load(ctx, teamID)
	if err != nil {
		return err
	}
	if score == nil {
		return newErrTeamScoreNotFound(teamID)
	}

	section := ensureSection(score, problemID, sectionID)
	section.Trials += 1
	score.LastUpdated = s.now()

	return s.repo.Save(ctx, score)
}

// ensureSection returns the section entry, creating zero-value
// problem and section entries when absent. Provisioning populates
// every catalog key up front, so this path only runs for records
// created before a catalog change; keys unknown to the catalog are
// rejected at submission intake and never reach the engine.
func ensureSection(score *TeamScore, problemID, sectionID string) *SectionScore {
	if score.Problems == nil {
		score.Problems = make(map[string]*ProblemScore)
	}
	problem, ok := score.Problems[problemID]
	if !ok {
		problem = newProblemScore()
		score.Problems[problemID] = problem
	}
	section, ok := problem.Sections[sectionID]
	if !ok {
		section = newSectionScore(DefaultSectionPoints)
		problem.Sections[sectionID] = section
	}
	return section
}
