package annc

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/coderelay/backend/srvcerror"
	"github.com/google/uuid"
)

type AnncSrvc struct {
	logger *slog.Logger
	repo   AnncRepo

	now func() time.Time
}

func NewAnncSrvc(repo AnncRepo) *AnncSrvc {
	return &AnncSrvc{
		logger: slog.Default().With("module", "annc"),
		repo:   repo,
		now:    time.Now,
	}
}

func (s *AnncSrvc) CreateAnnc(ctx context.Context, p CreateAnncParams) (*Announcement, error) {
	if strings.TrimSpace(p.Content) == "" {
		return nil, newErrContentEmpty()
	}

	annc := Announcement{
		UUID:      uuid.New(),
		Title:     strings.TrimSpace(p.Title),
		Content:   p.Content,
		CreatedAt: s.now(),
	}
	if err := s.repo.Store(ctx, annc); err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error storing announcement: %w", err))
	}

	s.logger.Info("announcement published", "announcement", annc.UUID, "title", annc.Title)
	return &annc, nil
}

func (s *AnncSrvc) ListAnncs(ctx context.Context) ([]Announcement, error) {
	anncs, err := s.repo.List(ctx)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error listing announcements: %w", err))
	}
	return anncs, nil
}

func (s *AnncSrvc) DeleteAnnc(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error deleting announcement: %w", err))
	}
	if !deleted {
		return newErrAnncNotFound()
	}

	s.logger.Info("announcement deleted", "announcement", id)
	return nil
}
