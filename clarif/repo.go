package clarif

import (
	"context"

	"github.com/google/uuid"
)

type ClarifRepo interface {
	Store(ctx context.Context, clarif Clarif) error
	Update(ctx context.Context, clarif Clarif) error
	Get(ctx context.Context, id uuid.UUID) (*Clarif, error)
	// List returns clarifications newest first.
	List(ctx context.Context) ([]Clarif, error)
	ListByTeam(ctx context.Context, teamID string) ([]Clarif, error)
	ListPublic(ctx context.Context) ([]Clarif, error)
	CountPending(ctx context.Context) (int, error)
}
