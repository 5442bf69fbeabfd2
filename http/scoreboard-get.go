package http

import (
	"net/http"
	"time"

	"github.com/coderelay/backend/httpjson"
	"github.com/coderelay/backend/scoring"
)

type scoreboardProblem struct {
	Status string `json:"status"`
	Score  int    `json:"score"`
}

type scoreboardRow struct {
	Rank         int                          `json:"rank"`
	TeamID       string                       `json:"teamId"`
	TeamName     string                       `json:"teamName"`
	School       string                       `json:"school"`
	TotalScore   int                          `json:"totalScore"`
	TotalPenalty int                          `json:"totalPenalty"`
	Problems     map[string]scoreboardProblem `json:"problems"`
	LastUpdated  time.Time                    `json:"lastUpdated"`
}

// getScoreboard is public. Deactivated teams are kept off the board
// but their score records are retained.
func (s *HttpServer) getScoreboard(w http.ResponseWriter, r *http.Request) {
	scores, err := s.scoreSrvc.ListTeamScores(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	teams, err := s.teamSrvc.ListTeams(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	type teamInfo struct {
		name   string
		school string
	}
	activeTeams := make(map[string]teamInfo, len(teams))
	for _, t := range teams {
		if t.Active {
			activeTeams[t.TeamID] = teamInfo{name: t.Name, school: t.School}
		}
	}

	visible := make([]scoring.TeamScore, 0, len(scores))
	for _, score := range scores {
		if _, ok := activeTeams[score.TeamID]; ok {
			visible = append(visible, score)
		}
	}

	ranked := scoring.RankTeams(visible)
	rows := make([]scoreboardRow, len(ranked))
	for i, score := range ranked {
		info := activeTeams[score.TeamID]
		problems := make(map[string]scoreboardProblem, len(score.Problems))
		for id, p := range score.Problems {
			problems[id] = scoreboardProblem{
				Status: string(p.Status),
				Score:  p.TotalScore,
			}
		}
		rows[i] = scoreboardRow{
			Rank:         i + 1,
			TeamID:       score.TeamID,
			TeamName:     info.name,
			School:       info.school,
			TotalScore:   score.TotalScore,
			TotalPenalty: score.TotalPenalty,
			Problems:     problems,
			LastUpdated:  score.LastUpdated,
		}
	}

	httpjson.WriteSuccessJson(w, rows)
}
