package scoring

import "context"

// ScoreRepo persists team score records. Load returns (nil, nil) when
// the team has no record; the service turns that into a not-found
// error. Implementations must give read-your-writes consistency per
// team.
type ScoreRepo interface {
	Load(ctx context.Context, teamID string) (*TeamScore, error)
	Save(ctx context.Context, score *TeamScore) error
	List(ctx context.Context) ([]TeamScore, error)
}
