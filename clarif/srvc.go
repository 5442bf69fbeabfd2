package clarif

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/coderelay/backend/srvcerror"
	"github.com/google/uuid"
)

type ClarifSrvc struct {
	logger *slog.Logger
	repo   ClarifRepo

	now func() time.Time
}

func NewClarifSrvc(repo ClarifRepo) *ClarifSrvc {
	return &ClarifSrvc{
		logger: slog.Default().With("module", "clarif"),
		repo:   repo,
		now:    time.Now,
	}
}

func (s *ClarifSrvc) CreateClarif(ctx context.Context, p CreateClarifParams) (*Clarif, error) {
	if strings.TrimSpace(p.Question) == "" {
		return nil, newErrQuestionEmpty()
	}

	clarif := Clarif{
		UUID:      uuid.New(),
		TeamID:    p.TeamID,
		ProblemID: p.ProblemID,
		Question:  p.Question,
		Status:    StatusPending,
		CreatedAt: s.now(),
	}
	if err := s.repo.Store(ctx, clarif); err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error storing clarification: %w", err))
	}

	s.logger.Info("clarification asked",
		"clarification", clarif.UUID,
		"team", clarif.TeamID,
		"problem", clarif.ProblemID)
	return &clarif, nil
}

func (s *ClarifSrvc) AnswerClarif(ctx context.Context, p AnswerClarifParams) (*Clarif, error) {
	if strings.TrimSpace(p.Answer) == "" {
		return nil, newErrAnswerEmpty()
	}

	clarif, err := s.repo.Get(ctx, p.ClarifUUID)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error loading clarification: %w", err))
	}
	if clarif == nil {
		return nil, newErrClarifNotFound()
	}
	if clarif.Status == StatusAnswered {
		return nil, newErrAlreadyAnswered()
	}

	now := s.now()
	clarif.Status = StatusAnswered
	clarif.Answer = p.Answer
	clarif.Public = p.Public
	clarif.AnsweredAt = &now
	clarif.AnsweredBy = &p.Reviewer
	if err := s.repo.Update(ctx, *clarif); err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error updating clarification: %w", err))
	}

	s.logger.Info("clarification answered",
		"clarification", clarif.UUID,
		"team", clarif.TeamID,
		"public", clarif.Public,
		"reviewer", p.Reviewer)
	return clarif, nil
}

// ListTeamClarifs returns what one team may see: its own questions
// plus all public answers.
func (s *ClarifSrvc) ListTeamClarifs(ctx context.Context, teamID string) ([]Clarif, error) {
	own, err := s.repo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error listing team clarifications: %w", err))
	}
	public, err := s.repo.ListPublic(ctx)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error listing public clarifications: %w", err))
	}

	seen := make(map[uuid.UUID]bool, len(own))
	for _, c := range own {
		seen[c.UUID] = true
	}
	for _, c := range public {
		if !seen[c.UUID] {
			own = append(own, c)
		}
	}
	return own, nil
}

func (s *ClarifSrvc) ListAllClarifs(ctx context.Context) ([]Clarif, error) {
	clarifs, err := s.repo.List(ctx)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error listing clarifications: %w", err))
	}
	return clarifs, nil
}

func (s *ClarifSrvc) CountPending(ctx context.Context) (int, error) {
	count, err := s.repo.CountPending(ctx)
	if err != nil {
		return 0, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error counting pending clarifications: %w", err))
	}
	return count, nil
}
