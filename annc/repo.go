package annc

import (
	"context"

	"github.com/google/uuid"
)

type AnncRepo interface {
	Store(ctx context.Context, annc Announcement) error
	// List returns announcements newest first.
	List(ctx context.Context) ([]Announcement, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
