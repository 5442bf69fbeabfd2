package http

import (
	"time"

	"github.com/coderelay/backend/annc"
	"github.com/coderelay/backend/clarif"
	"github.com/coderelay/backend/problem"
	"github.com/coderelay/backend/subm"
	"github.com/coderelay/backend/team"
)

type teamResponse struct {
	TeamID    string        `json:"teamId"`
	Name      string        `json:"name"`
	School    string        `json:"school"`
	Members   []team.Member `json:"members"`
	Active    bool          `json:"active"`
	LoginTime *time.Time    `json:"loginTime,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

func mapTeam(t team.Team) teamResponse {
	return teamResponse{
		TeamID:    t.TeamID,
		Name:      t.Name,
		School:    t.School,
		Members:   t.Members,
		Active:    t.Active,
		LoginTime: t.LoginTime,
		CreatedAt: t.CreatedAt,
	}
}

type sectionResponse struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

type problemResponse struct {
	ID          string            `json:"id"`
	Label       string            `json:"label"`
	Number      int               `json:"number"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	MaxPoints   int               `json:"maxPoints"`
	Sections    []sectionResponse `json:"sections"`
}

func mapProblem(p problem.Problem) problemResponse {
	sections := make([]sectionResponse, len(p.Sections))
	for i, s := range p.Sections {
		sections[i] = sectionResponse{
			Key:         s.Key,
			Title:       s.Title,
			Description: s.Description,
			Points:      s.Points,
		}
	}
	return problemResponse{
		ID:          p.ID,
		Label:       p.Label,
		Number:      p.Number,
		Title:       p.Title,
		Description: p.Description,
		MaxPoints:   p.MaxPoints,
		Sections:    sections,
	}
}

type submResponse struct {
	UUID         string     `json:"uuid"`
	TeamID       string     `json:"teamId"`
	ProblemID    string     `json:"problemId"`
	Section      string     `json:"section"`
	Language     string     `json:"language"`
	Code         string     `json:"code,omitempty"`
	CodeLength   int        `json:"codeLength"`
	SubmittedAt  time.Time  `json:"submittedAt"`
	Status       string     `json:"status"`
	ReviewStatus string     `json:"reviewStatus"`
	ReviewedAt   *time.Time `json:"reviewedAt,omitempty"`
	ReviewedBy   *string    `json:"reviewedBy,omitempty"`
	ReviewNotes  string     `json:"reviewNotes,omitempty"`
}

func mapSubm(s subm.Submission, includeCode bool) submResponse {
	resp := submResponse{
		UUID:         s.UUID.String(),
		TeamID:       s.TeamID,
		ProblemID:    s.ProblemID,
		Section:      s.Section,
		Language:     s.Language,
		CodeLength:   s.CodeLength,
		SubmittedAt:  s.SubmittedAt,
		Status:       string(s.Status),
		ReviewStatus: string(s.ReviewStatus),
		ReviewedAt:   s.ReviewedAt,
		ReviewedBy:   s.ReviewedBy,
		ReviewNotes:  s.ReviewNotes,
	}
	if includeCode {
		resp.Code = s.Code
	}
	return resp
}

func mapSubms(subms []subm.Submission, includeCode bool) []submResponse {
	resps := make([]submResponse, len(subms))
	for i, s := range subms {
		resps[i] = mapSubm(s, includeCode)
	}
	return resps
}

type anncResponse struct {
	UUID      string    `json:"uuid"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func mapAnnc(a annc.Announcement) anncResponse {
	return anncResponse{
		UUID:      a.UUID.String(),
		Title:     a.Title,
		Content:   a.Content,
		CreatedAt: a.CreatedAt,
	}
}

type clarifResponse struct {
	UUID       string     `json:"uuid"`
	TeamID     string     `json:"teamId"`
	ProblemID  string     `json:"problemId,omitempty"`
	Question   string     `json:"question"`
	Status     string     `json:"status"`
	Answer     string     `json:"answer,omitempty"`
	Public     bool       `json:"public"`
	CreatedAt  time.Time  `json:"createdAt"`
	AnsweredAt *time.Time `json:"answeredAt,omitempty"`
}

func mapClarif(c clarif.Clarif) clarifResponse {
	return clarifResponse{
		UUID:       c.UUID.String(),
		TeamID:     c.TeamID,
		ProblemID:  c.ProblemID,
		Question:   c.Question,
		Status:     string(c.Status),
		Answer:     c.Answer,
		Public:     c.Public,
		CreatedAt:  c.CreatedAt,
		AnsweredAt: c.AnsweredAt,
	}
}

func mapClarifs(clarifs []clarif.Clarif) []clarifResponse {
	resps := make([]clarifResponse, len(clarifs))
	for i, c := range clarifs {
		resps[i] = mapClarif(c)
	}
	return resps
}
