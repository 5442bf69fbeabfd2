package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coderelay/backend/auth"
	"github.com/coderelay/backend/httpjson"
)

// getTeamScore returns the full score record of one team. Teams may
// only read their own; admins may read any.
func (s *HttpServer) getTeamScore(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	teamID := chi.URLParam(r, "teamId")

	allowed := claims.HasScope(auth.ScopeAdmin) ||
		(claims.HasScope(auth.ScopeTeam) && claims.TeamID == teamID)
	if !allowed {
		httpjson.WriteErrorJson(w,
			"Authentication required",
			http.StatusUnauthorized, "unauthorized")
		return
	}

	score, err := s.scoreSrvc.GetTeamScore(r.Context(), teamID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	httpjson.WriteSuccessJson(w, score)
}
