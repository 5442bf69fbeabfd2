package scoring

import "sort"

// RankTeams orders score records for the scoreboard: total score
// descending, then total penalty ascending, then team id so that ties
// render stably.
func RankTeams(scores []TeamScore) []TeamScore {
	ranked := make([]TeamScore, len(scores))
	copy(ranked, scores)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}
		if ranked[i].TotalPenalty != ranked[j].TotalPenalty {
			return ranked[i].TotalPenalty < ranked[j].TotalPenalty
		}
		return ranked[i].TeamID < ranked[j].TeamID
	})
	return ranked
}
