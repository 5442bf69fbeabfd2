package subm

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusCorrect Status = "correct"
	StatusWrong   Status = "wrong"
)

type ReviewStatus string

const (
	ReviewStatusUnderReview ReviewStatus = "under_review"
	ReviewStatusReviewed    ReviewStatus = "reviewed"
)

// Submission is an append-only record of one code submission. Review
// fields are written exactly once, by the admin decision; everything
// else is immutable history.
type Submission struct {
	UUID        uuid.UUID
	TeamID      string
	ProblemID   string
	Section     string
	Language    string
	Code        string
	CodeLength  int
	SubmittedAt time.Time

	Status       Status
	ReviewStatus ReviewStatus
	ReviewedAt   *time.Time
	ReviewedBy   *string
	ReviewNotes  string
}

type CreateSubmissionParams struct {
	TeamID    string
	ProblemID string
	Section   string
	Language  string
	Code      string
}

type ReviewParams struct {
	SubmissionUUID  uuid.UUID
	Decision        string
	PenaltyOverride *int
	Notes           string
	Reviewer        string
}

// ContestWindow is the contest's submission window.
type ContestWindow struct {
	Start time.Time
	End   time.Time
}

const (
	WindowBefore = "before"
	WindowActive = "active"
	WindowEnded  = "ended"
)

func (w ContestWindow) StatusAt(now time.Time) string {
	if now.Before(w.Start) {
		return WindowBefore
	}
	if now.Before(w.End) {
		return WindowActive
	}
	return WindowEnded
}
