package http

import (
	"encoding/json"
	"net/http"

	"github.com/coderelay/backend/auth"
	"github.com/coderelay/backend/httpjson"
	"github.com/coderelay/backend/subm"
)

func (s *HttpServer) createSubmission(w http.ResponseWriter, r *http.Request) {
	claims := s.requireScope(w, r, auth.ScopeTeam)
	if claims == nil {
		return
	}

	type createSubmissionRequest struct {
		ProblemID string `json:"problemId"`
		Section   string `json:"section"`
		Language  string `json:"language"`
		Code      string `json:"code"`
	}

	var request createSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpjson.WriteErrorJson(w,
			http.StatusText(http.StatusBadRequest),
			http.StatusBadRequest, "bad_request")
		return
	}

	created, err := s.submSrvc.CreateSubmission(r.Context(), subm.CreateSubmissionParams{
		TeamID:    claims.TeamID,
		ProblemID: request.ProblemID,
		Section:   request.Section,
		Language:  request.Language,
		Code:      request.Code,
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapSubm(*created, false))
}
