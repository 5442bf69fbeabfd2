package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/coderelay/backend/auth"
	"github.com/coderelay/backend/clarif"
	"github.com/coderelay/backend/httpjson"
)

func (s *HttpServer) createClarif(w http.ResponseWriter, r *http.Request) {
	claims := s.requireScope(w, r, auth.ScopeTeam)
	if claims == nil {
		return
	}

	type createClarifRequest struct {
		ProblemID string `json:"problemId,omitempty"`
		Question  string `json:"question"`
	}

	var request createClarifRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpjson.WriteErrorJson(w,
			http.StatusText(http.StatusBadRequest),
			http.StatusBadRequest, "bad_request")
		return
	}

	created, err := s.clarifSrvc.CreateClarif(r.Context(), clarif.CreateClarifParams{
		TeamID:    claims.TeamID,
		ProblemID: request.ProblemID,
		Question:  request.Question,
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapClarif(*created))
}

// listClarifs: admins see everything, teams see their own questions
// plus public answers.
func (s *HttpServer) listClarifs(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	if claims.HasScope(auth.ScopeAdmin) {
		clarifs, err := s.clarifSrvc.ListAllClarifs(r.Context())
		if err != nil {
			s.handleError(w, r, err)
			return
		}
		httpjson.WriteSuccessJson(w, mapClarifs(clarifs))
		return
	}

	if claims.HasScope(auth.ScopeTeam) {
		clarifs, err := s.clarifSrvc.ListTeamClarifs(r.Context(), claims.TeamID)
		if err != nil {
			s.handleError(w, r, err)
			return
		}
		httpjson.WriteSuccessJson(w, mapClarifs(clarifs))
		return
	}

	httpjson.WriteErrorJson(w,
		"Authentication required",
		http.StatusUnauthorized, "unauthorized")
}

func (s *HttpServer) answerClarif(w http.ResponseWriter, r *http.Request) {
	claims := s.requireScope(w, r, auth.ScopeAdmin)
	if claims == nil {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "clarifUuid"))
	if err != nil {
		httpjson.WriteErrorJson(w,
			"Invalid clarification id",
			http.StatusBadRequest, "bad_request")
		return
	}

	type answerClarifRequest struct {
		Answer string `json:"answer"`
		Public bool   `json:"public"`
	}

	var request answerClarifRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpjson.WriteErrorJson(w,
			http.StatusText(http.StatusBadRequest),
			http.StatusBadRequest, "bad_request")
		return
	}

	answered, err := s.clarifSrvc.AnswerClarif(r.Context(), clarif.AnswerClarifParams{
		ClarifUUID: id,
		Answer:     request.Answer,
		Public:     request.Public,
		Reviewer:   claims.TeamName,
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapClarif(*answered))
}
