package scoring

import "context"

// ParseDecision validates an admin decision value.
func ParseDecision(raw string) (Decision, error) {
	switch Decision(raw) {
	case DecisionCorrect:
		return DecisionCorrect, nil
	case DecisionWrong:
		return DecisionWrong, nil
	default:
		return "", newErrInvalidDecision(raw)
	}
}

// ApplyDecision applies an admin review decision to one section and
// recomputes the problem's derived status/total and the team's cached
// totals. The whole update happens in memory and persists with a
// single save, so a failed derivation leaves stored state unchanged.
//
// Rules:
//   - correct on a not-yet-correct section awards the fixed point
//     value, stamps the first-solved time once, and sets the penalty
//     to penaltyDelta (replaces, does not add).
//   - correct on an already-correct section is a no-op, so duplicate
//     admin actions cannot double-score.
//   - wrong marks the section wrong and adds penaltyDelta to the
//     accumulated penalty; a section that already reached correct is
//     left untouched (correct is terminal).
func (s *ScoreSrvc) ApplyDecision(ctx context.Context, teamID, problemID, sectionID string, decision Decision, penaltyDelta int) error {
	if decision != DecisionCorrect && decision != DecisionWrong {
		return newErrInvalidDecision(string(decision))
	}
	if penaltyDelta < 0 {
		return newErrNegativePenalty(penaltyDelta)
	}

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

	switch decision {
	case DecisionCorrect:
		if section.Status == StatusCorrect {
			break
		}
		section.Status = StatusCorrect
		section.Score = section.Points
		now := s.now()
		section.FirstSolvedTime = &now
		section.Penalty = penaltyDelta
	case DecisionWrong:
		if section.Status == StatusCorrect {
			break
		}
		section.Status = StatusWrong
		section.Penalty += penaltyDelta
	}

	if err := deriveProblem(score.Problems[problemID]); err != nil {
		return newErrProblemWithoutSections(problemID)
	}
	recomputeTotals(score)
	score.LastUpdated = s.now()

	if err := s.repo.Save(ctx, score); err != nil {
		return err
	}

	s.logger.Info("decision applied",
		"team", teamID,
		"problem", problemID,
		"section", sectionID,
		"decision", decision,
		"penalty", penaltyDelta,
		"totalScore", score.TotalScore)
	return nil
}
