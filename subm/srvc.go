package subm

import (
	"log/slog"
	"time"

	"github.com/coderelay/backend/scoring"
)

// Catalog is the subset of the problem catalog submission intake
// needs: existence checks for problem/section keys. Unknown keys are
// rejected here so they never reach the scoring engine.
type Catalog interface {
	HasSection(problemID, sectionKey string) bool
}

type SubmSrvc struct {
	logger *slog.Logger

	repo    SubmRepo
	scores  *scoring.ScoreSrvc
	catalog Catalog
	window  ContestWindow

	now func() time.Time
}

func NewSubmSrvc(repo SubmRepo, scores *scoring.ScoreSrvc, catalog Catalog, window ContestWindow) *SubmSrvc {
	return &SubmSrvc{
		logger:  slog.Default().With("module", "subm"),
		repo:    repo,
		scores:  scores,
		catalog: catalog,
		window:  window,
		now:     time.Now,
	}
}

// WindowStatus reports whether the contest is before, active or ended.
func (s *SubmSrvc) WindowStatus() string {
	return s.window.StatusAt(s.now())
}

func (s *SubmSrvc) Window() ContestWindow {
	return s.window
}
