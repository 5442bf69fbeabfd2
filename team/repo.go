package team

import "context"

// TeamRepo persists team accounts. Get returns (nil, nil) when the
// team does not exist.
type TeamRepo interface {
	Store(ctx context.Context, team Team) error
	Update(ctx context.Context, team Team) error
	Get(ctx context.Context, teamID string) (*Team, error)
	List(ctx context.Context) ([]Team, error)
}
