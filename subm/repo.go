package subm

import (
	"context"

	"github.com/google/uuid"
)

// SubmRepo persists submissions. Get returns (nil, nil) when the
// submission does not exist.
type SubmRepo interface {
	Store(ctx context.Context, subm Submission) error
	Update(ctx context.Context, subm Submission) error
	Get(ctx context.Context, id uuid.UUID) (*Submission, error)
	List(ctx context.Context, limit int) ([]Submission, error)
	ListByTeam(ctx context.Context, teamID string) ([]Submission, error)
	CountPending(ctx context.Context, teamID, problemID, section string) (int, error)
	CountUnreviewed(ctx context.Context) (int, error)
}
