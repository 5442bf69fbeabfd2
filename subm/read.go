package subm

import (
	"context"
	"fmt"

	"github.com/coderelay/backend/srvcerror"
	"github.com/google/uuid"
)

const defaultListLimit = 50

func (s *SubmSrvc) GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error) {
	submission, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error loading submission: %w", err))
	}
	if submission == nil {
		return nil, newErrSubmissionNotFound()
	}
	return submission, nil
}

// ListSubmissions returns the most recent submissions, newest first.
func (s *SubmSrvc) ListSubmissions(ctx context.Context, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	submissions, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error listing submissions: %w", err))
	}
	return submissions, nil
}

func (s *SubmSrvc) ListTeamSubmissions(ctx context.Context, teamID string) ([]Submission, error) {
	submissions, err := s.repo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error listing team submissions: %w", err))
	}
	return submissions, nil
}

// CountUnreviewed returns how many submissions still wait for an
// admin decision.
func (s *SubmSrvc) CountUnreviewed(ctx context.Context) (int, error) {
	count, err := s.repo.CountUnreviewed(ctx)
	if err != nil {
		return 0, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error counting unreviewed submissions: %w", err))
	}
	return count, nil
}
