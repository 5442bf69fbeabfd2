package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/coderelay/backend/auth"
	"github.com/coderelay/backend/httpjson"
	"github.com/coderelay/backend/subm"
)

func (s *HttpServer) reviewSubmission(w http.ResponseWriter, r *http.Request) {
	claims := s.requireScope(w, r, auth.ScopeAdmin)
	if claims == nil {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "submUuid"))
	if err != nil {
		httpjson.WriteErrorJson(w,
			"Invalid submission id",
			http.StatusBadRequest, "bad_request")
		return
	}

	type reviewRequest struct {
		Decision string `json:"decision"`
		Penalty  *int   `json:"penalty,omitempty"`
		Notes    string `json:"notes,omitempty"`
	}

	var request reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpjson.WriteErrorJson(w,
			http.StatusText(http.StatusBadRequest),
			http.StatusBadRequest, "bad_request")
		return
	}

	reviewed, err := s.submSrvc.ReviewSubmission(r.Context(), subm.ReviewParams{
		SubmissionUUID:  id,
		Decision:        request.Decision,
		PenaltyOverride: request.Penalty,
		Notes:           request.Notes,
		Reviewer:        claims.TeamName,
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapSubm(*reviewed, false))
}
