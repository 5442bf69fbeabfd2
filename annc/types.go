package annc

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is a broadcast message from the organizers; every team
// sees the same list.
type Announcement struct {
	UUID      uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
}

type CreateAnncParams struct {
	Title   string
	Content string
}
