package clarif

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAnswered Status = "answered"
)

// Clarif is a clarification request from a team. An answer marked
// public becomes visible to every team, not just the asker.
type Clarif struct {
	UUID      uuid.UUID
	TeamID    string
	ProblemID string // empty for general questions
	Question  string

	Status     Status
	Answer     string
	Public     bool
	CreatedAt  time.Time
	AnsweredAt *time.Time
	AnsweredBy *string
}

type CreateClarifParams struct {
	TeamID    string
	ProblemID string
	Question  string
}

type AnswerClarifParams struct {
	ClarifUUID uuid.UUID
	Answer     string
	Public     bool
	Reviewer   string
}
