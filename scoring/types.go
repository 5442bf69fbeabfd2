package scoring

import "time"

type Status string

const (
	StatusUnsolved Status = "unsolved"
	StatusWrong    Status = "wrong"
	StatusCorrect  Status = "correct"
	StatusPartial  Status = "partial" // problem-level only
)

type Decision string

const (
	DecisionCorrect Decision = "correct"
	DecisionWrong   Decision = "wrong"
)

// DefaultSectionPoints is awarded when the catalog did not specify a
// point value for a section.
const DefaultSectionPoints = 20

// SectionScore is the scoring state of one (team, problem, section)
// triple. Points is the value awarded on first solve, fixed at
// provisioning time from the catalog. Once Status reaches correct it
// never leaves it for the rest of the contest.
type SectionScore struct {
	Status          Status     `json:"status"`
	Score           int        `json:"score"`
	Points          int        `json:"points"`
	Trials          int        `json:"trials"`
	Penalty         int        `json:"penalty"`
	FirstSolvedTime *time.Time `json:"firstSolvedTime,omitempty"`
}

// ProblemScore aggregates the team's sections of one problem.
// Status and TotalScore are derived, never set by callers.
type ProblemScore struct {
	TotalScore int                      `json:"totalScore"`
	Status     Status                   `json:"status"`
	Sections   map[string]*SectionScore `json:"sections"`
}

// TeamScore is the full per-team score record. TotalScore and
// TotalPenalty are cache fields, always recomputable from the nested
// sections.
type TeamScore struct {
	TeamID       string                   `json:"teamId"`
	TotalScore   int                      `json:"totalScore"`
	TotalPenalty int                      `json:"totalPenalty"`
	Problems     map[string]*ProblemScore `json:"problems"`
	LastUpdated  time.Time                `json:"lastUpdated"`
}

// SectionSpec and ProblemSpec describe the catalog shape needed at
// provisioning time. The catalog is consulted only here, never during
// decision processing.
type SectionSpec struct {
	Key    string
	Points int
}

type ProblemSpec struct {
	ProblemID string
	Sections  []SectionSpec
}

func newSectionScore(points int) *SectionScore {
	if points <= 0 {
		points = DefaultSectionPoints
	}
	return &SectionScore{
		Status: StatusUnsolved,
		Points: points,
	}
}

func newProblemScore() *ProblemScore {
	return &ProblemScore{
		Status:   StatusUnsolved,
		Sections: make(map[string]*SectionScore),
	}
}

// Clone returns a deep copy of the record. Reads hand out clones so
// callers cannot mutate shared state.
func (ts *TeamScore) Clone() *TeamScore {
	if ts == nil {
		return nil
	}
	cp := &TeamScore{
		TeamID:       ts.TeamID,
		TotalScore:   ts.TotalScore,
		TotalPenalty: ts.TotalPenalty,
		Problems:     make(map[string]*ProblemScore, len(ts.Problems)),
		LastUpdated:  ts.LastUpdated,
	}
	for pk, p := range ts.Problems {
		pcp := &ProblemScore{
			TotalScore: p.TotalScore,
			Status:     p.Status,
			Sections:   make(map[string]*SectionScore, len(p.Sections)),
		}
		for sk, s := range p.Sections {
			scp := *s
			if s.FirstSolvedTime != nil {
				t := *s.FirstSolvedTime
				scp.FirstSolvedTime = &t
			}
			pcp.Sections[sk] = &scp
		}
		cp.Problems[pk] = pcp
	}
	return cp
}
