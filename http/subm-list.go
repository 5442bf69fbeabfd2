package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/coderelay/backend/auth"
	"github.com/coderelay/backend/httpjson"
)

// listSubmissions serves two audiences: admins see all submissions,
// teams see only their own.
func (s *HttpServer) listSubmissions(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	if claims.HasScope(auth.ScopeAdmin) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, _ = strconv.Atoi(raw)
		}
		subms, err := s.submSrvc.ListSubmissions(r.Context(), limit)
		if err != nil {
			s.handleError(w, r, err)
			return
		}
		httpjson.WriteSuccessJson(w, mapSubms(subms, false))
		return
	}

	if claims.HasScope(auth.ScopeTeam) {
		subms, err := s.submSrvc.ListTeamSubmissions(r.Context(), claims.TeamID)
		if err != nil {
			s.handleError(w, r, err)
			return
		}
		httpjson.WriteSuccessJson(w, mapSubms(subms, false))
		return
	}

	httpjson.WriteErrorJson(w,
		"Authentication required",
		http.StatusUnauthorized, "unauthorized")
}

func (s *HttpServer) getSubmission(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "submUuid"))
	if err != nil {
		httpjson.WriteErrorJson(w,
			"Invalid submission id",
			http.StatusBadRequest, "bad_request")
		return
	}

	submission, err := s.submSrvc.GetSubmission(r.Context(), id)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	allowed := claims.HasScope(auth.ScopeAdmin) ||
		(claims.HasScope(auth.ScopeTeam) && claims.TeamID == submission.TeamID)
	if !allowed {
		httpjson.WriteErrorJson(w,
			"Authentication required",
			http.StatusUnauthorized, "unauthorized")
		return
	}

	httpjson.WriteSuccessJson(w, mapSubm(*submission, true))
}

func (s *HttpServer) getUnreviewedCount(w http.ResponseWriter, r *http.Request) {
	if s.requireScope(w, r, auth.ScopeAdmin) == nil {
		return
	}

	count, err := s.submSrvc.CountUnreviewed(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	httpjson.WriteSuccessJson(w, struct {
		Count int `json:"count"`
	}{Count: count})
}
