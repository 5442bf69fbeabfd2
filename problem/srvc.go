package problem

import (
	"log/slog"
	"sort"

	"github.com/coderelay/backend/scoring"
)

// ProblemSrvc serves the fixed problem catalog. The catalog never
// changes mid-contest, so everything is held in memory.
type ProblemSrvc struct {
	logger   *slog.Logger
	problems []Problem
	byID     map[string]*Problem
}

func NewProblemSrvc(problems []Problem) *ProblemSrvc {
	sorted := make([]Problem, len(problems))
	copy(sorted, problems)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Label != sorted[j].Label {
			return sorted[i].Label < sorted[j].Label
		}
		return sorted[i].Number < sorted[j].Number
	})

	byID := make(map[string]*Problem, len(sorted))
	for i := range sorted {
		byID[sorted[i].ID] = &sorted[i]
	}

	return &ProblemSrvc{
		logger:   slog.Default().With("module", "problem"),
		problems: sorted,
		byID:     byID,
	}
}

func (s *ProblemSrvc) List() []Problem {
	return s.problems
}

func (s *ProblemSrvc) Get(problemID string) (*Problem, bool) {
	p, ok := s.byID[problemID]
	return p, ok
}

func (s *ProblemSrvc) HasSection(problemID, sectionKey string) bool {
	p, ok := s.byID[problemID]
	if !ok {
		return false
	}
	_, ok = p.Section(sectionKey)
	return ok
}

// ProvisionSpecs converts the catalog into the shape the scoring
// engine needs at score-record provisioning time.
func (s *ProblemSrvc) ProvisionSpecs() []scoring.ProblemSpec {
	specs := make([]scoring.ProblemSpec, 0, len(s.problems))
	for _, p := range s.problems {
		spec := scoring.ProblemSpec{ProblemID: p.ID}
		for _, sec := range p.Sections {
			spec.Sections = append(spec.Sections, scoring.SectionSpec{
				Key:    sec.Key,
				Points: sec.Points,
			})
		}
		specs = append(specs, spec)
	}
	return specs
}
