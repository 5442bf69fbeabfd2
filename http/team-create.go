package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coderelay/backend/auth"
	"github.com/coderelay/backend/httpjson"
	"github.com/coderelay/backend/team"
)

func (s *HttpServer) createTeam(w http.ResponseWriter, r *http.Request) {
	if s.requireScope(w, r, auth.ScopeAdmin) == nil {
		return
	}

	type createTeamRequest struct {
		TeamID   string        `json:"teamId"`
		Name     string        `json:"name"`
		School   string        `json:"school"`
		Members  []team.Member `json:"members"`
		Password string        `json:"password"`
	}

	var request createTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpjson.WriteErrorJson(w,
			http.StatusText(http.StatusBadRequest),
			http.StatusBadRequest, "bad_request")
		return
	}

	created, err := s.teamSrvc.CreateTeam(r.Context(), team.CreateTeamParams{
		TeamID:   request.TeamID,
		Name:     request.Name,
		School:   request.School,
		Members:  request.Members,
		Password: request.Password,
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapTeam(*created))
}

func (s *HttpServer) listTeams(w http.ResponseWriter, r *http.Request) {
	if s.requireScope(w, r, auth.ScopeAdmin) == nil {
		return
	}

	teams, err := s.teamSrvc.ListTeams(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	resps := make([]teamResponse, len(teams))
	for i, t := range teams {
		resps[i] = mapTeam(t)
	}
	httpjson.WriteSuccessJson(w, resps)
}

func (s *HttpServer) deactivateTeam(w http.ResponseWriter, r *http.Request) {
	if s.requireScope(w, r, auth.ScopeAdmin) == nil {
		return
	}

	teamID := chi.URLParam(r, "teamId")
	if err := s.teamSrvc.Deactivate(r.Context(), teamID); err != nil {
		s.handleError(w, r, err)
		return
	}
	httpjson.WriteSuccessJson(w, nil)
}
