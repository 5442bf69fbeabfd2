package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/coderelay/backend/annc"
	"github.com/coderelay/backend/auth"
	"github.com/coderelay/backend/httpjson"
)

// listAnncs is public.
func (s *HttpServer) listAnncs(w http.ResponseWriter, r *http.Request) {
	anncs, err := s.anncSrvc.ListAnncs(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	resps := make([]anncResponse, len(anncs))
	for i, a := range anncs {
		resps[i] = mapAnnc(a)
	}
	httpjson.WriteSuccessJson(w, resps)
}

func (s *HttpServer) createAnnc(w http.ResponseWriter, r *http.Request) {
	if s.requireScope(w, r, auth.ScopeAdmin) == nil {
		return
	}

	type createAnncRequest struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}

	var request createAnncRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpjson.WriteErrorJson(w,
			http.StatusText(http.StatusBadRequest),
			http.StatusBadRequest, "bad_request")
		return
	}

	created, err := s.anncSrvc.CreateAnnc(r.Context(), annc.CreateAnncParams{
		Title:   request.Title,
		Content: request.Content,
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapAnnc(*created))
}

func (s *HttpServer) deleteAnnc(w http.ResponseWriter, r *http.Request) {
	if s.requireScope(w, r, auth.ScopeAdmin) == nil {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "anncUuid"))
	if err != nil {
		httpjson.WriteErrorJson(w,
			"Invalid announcement id",
			http.StatusBadRequest, "bad_request")
		return
	}

	if err := s.anncSrvc.DeleteAnnc(r.Context(), id); err != nil {
		s.handleError(w, r, err)
		return
	}
	httpjson.WriteSuccessJson(w, nil)
}
