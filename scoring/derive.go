package scoring

import "fmt"

// deriveProblem recomputes a problem's status and total from its
// sections. Precedence: all correct > all wrong > any correct
// (partial) > unsolved. The four outcomes are mutually exclusive
// given the counts. A problem with zero sections is a configuration
// error.
func deriveProblem(p *ProblemScore) error {
	n := len(p.Sections)
	if n == 0 {
		return fmt.Errorf("problem has no sections")
	}

	correctCount := 0
	wrongCount := 0
	total := 0
	for _, s := range p.Sections {
		switch s.Status {
		case StatusCorrect:
			correctCount++
			total += s.Score
		case StatusWrong:
			wrongCount++
		}
	}

	p.TotalScore = total
	switch {
	case correctCount == n:
		p.Status = StatusCorrect
	case wrongCount == n:
		p.Status = StatusWrong
	case correctCount > 0:
		p.Status = StatusPartial
	default:
		p.Status = StatusUnsolved
	}
	return nil
}

// recomputeTotals re-sums the team's cached totals from the nested
// sections. Full re-sums, not incremental deltas.
func recomputeTotals(ts *TeamScore) {
	ts.TotalScore = 0
	ts.TotalPenalty = 0
	for _, p := range ts.Problems {
		ts.TotalScore += p.TotalScore
		for _, s := range p.Sections {
			ts.TotalPenalty += s.Penalty
		}
	}
}
