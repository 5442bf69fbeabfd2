package scoring_test

import (
	"testing"

	"github.com/coderelay/backend/scoring"
	"github.com/stretchr/testify/assert"
)

func TestRankTeams(t *testing.T) {
	scores := []scoring.TeamScore{
		{TeamID: "A", TotalScore: 40, TotalPenalty: 10},
		{TeamID: "B", TotalScore: 40, TotalPenalty: 5},
		{TeamID: "C", TotalScore: 60, TotalPenalty: 100},
	}

	ranked := scoring.RankTeams(scores)

	ids := make([]string, len(ranked))
	for i, s := range ranked {
		ids[i] = s.TeamID
	}
	assert.Equal(t, []string{"C", "B", "A"}, ids,
		"score descending, penalty ascending")

	// input order untouched
	assert.Equal(t, "A", scores[0].TeamID)
}

func TestRankTeamsTieBreaksByTeamID(t *testing.T) {
	scores := []scoring.TeamScore{
		{TeamID: "ZULU", TotalScore: 20, TotalPenalty: 5},
		{TeamID: "ECHO", TotalScore: 20, TotalPenalty: 5},
	}

	ranked := scoring.RankTeams(scores)
	assert.Equal(t, "ECHO", ranked[0].TeamID)
	assert.Equal(t, "ZULU", ranked[1].TeamID)
}

func TestRankTeamsEmpty(t *testing.T) {
	assert.Empty(t, scoring.RankTeams(nil))
}
