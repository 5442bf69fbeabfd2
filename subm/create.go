package subm

import (
	"context"
	"fmt"

	"github.com/coderelay/backend/scoring"
	"github.com/coderelay/backend/srvcerror"
	"github.com/google/uuid"
)

const (
	minCodeLength   = 10
	maxCodeLengthKB = 64
)

// CreateSubmission records one submission and bumps the section's
// trial counter. The trial increment represents this one real
// submission event, so it happens exactly once, after the entity is
// stored.
func (s *SubmSrvc) CreateSubmission(ctx context.Context, p CreateSubmissionParams) (*Submission, error) {
	if status := s.WindowStatus(); status != WindowActive {
		return nil, newErrContestNotActive(status)
	}
	if !validLanguage(p.Language) {
		return nil, newErrInvalidLanguage(p.Language)
	}
	if len(p.Code) < minCodeLength {
		return nil, newErrCodeTooShort(minCodeLength)
	}
	if len(p.Code) > maxCodeLengthKB*1024 {
		return nil, newErrCodeTooLong(maxCodeLengthKB)
	}
	if !s.catalog.HasSection(p.ProblemID, p.Section) {
		return nil, newErrUnknownProblemSection(p.ProblemID, p.Section)
	}

	score, err := s.scores.GetTeamScore(ctx, p.TeamID)
	if err != nil {
		return nil, err
	}
	if problem, ok := score.Problems[p.ProblemID]; ok {
		if section, ok := problem.Sections[p.Section]; ok {
			if section.Status == scoring.StatusCorrect {
				return nil, newErrSectionAlreadySolved()
			}
		}
	}

	pending, err := s.repo.CountPending(ctx, p.TeamID, p.ProblemID, p.Section)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error counting pending submissions: %w", err))
	}
	if pending > 0 {
		return nil, newErrPendingReview()
	}

	submission := Submission{
		UUID:         uuid.New(),
		TeamID:       p.TeamID,
		ProblemID:    p.ProblemID,
		Section:      p.Section,
		Language:     p.Language,
		Code:         p.Code,
		CodeLength:   len(p.Code),
		SubmittedAt:  s.now(),
		Status:       StatusPending,
		ReviewStatus: ReviewStatusUnderReview,
	}
	if err := s.repo.Store(ctx, submission); err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error storing submission: %w", err))
	}

	if err := s.scores.IncrementTrial(ctx, p.TeamID, p.ProblemID, p.Section); err != nil {
		return nil, err
	}

	s.logger.Info("submission received",
		"team", p.TeamID,
		"problem", p.ProblemID,
		"section", p.Section,
		"language", p.Language,
		"codeLength", submission.CodeLength)
	return &submission, nil
}
