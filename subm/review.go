package subm

import (
	"context"
	"fmt"

	"github.com/coderelay/backend/scoring"
	"github.com/coderelay/backend/srvcerror"
)

// DefaultWrongPenalty is the penalty applied to a wrong decision when
// the reviewer does not supply an explicit value.
const DefaultWrongPenalty = 20

// ReviewSubmission applies an admin decision to a submission. The
// scoring engine is updated first; only after that succeeds are the
// review fields written, so a failed score update leaves the
// submission open for another review attempt.
func (s *SubmSrvc) ReviewSubmission(ctx context.Context, p ReviewParams) (*Submission, error) {
	decision, err := scoring.ParseDecision(p.Decision)
	if err != nil {
		return nil, err
	}

	submission, err := s.repo.Get(ctx, p.SubmissionUUID)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error loading submission: %w", err))
	}
	if submission == nil {
		return nil, newErrSubmissionNotFound()
	}
	if submission.ReviewStatus == ReviewStatusReviewed {
		return nil, newErrAlreadyReviewed()
	}

	penalty := 0
	if decision == scoring.DecisionWrong {
		penalty = DefaultWrongPenalty
	}
	if p.PenaltyOverride != nil {
		penalty = *p.PenaltyOverride
	}

	err = s.scores.ApplyDecision(ctx,
		submission.TeamID, submission.ProblemID, submission.Section,
		decision, penalty)
	if err != nil {
		return nil, err
	}

	now := s.now()
	submission.Status = Status(decision)
	submission.ReviewStatus = ReviewStatusReviewed
	submission.ReviewedAt = &now
	submission.ReviewedBy = &p.Reviewer
	submission.ReviewNotes = p.Notes
	if err := s.repo.Update(ctx, *submission); err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error updating reviewed submission: %w", err))
	}

	s.logger.Info("submission reviewed",
		"submission", submission.UUID,
		"team", submission.TeamID,
		"problem", submission.ProblemID,
		"section", submission.Section,
		"decision", decision,
		"penalty", penalty,
		"reviewer", p.Reviewer)
	return submission, nil
}
