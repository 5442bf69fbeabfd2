package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coderelay/backend/httpjson"
)

func (s *HttpServer) listProblems(w http.ResponseWriter, r *http.Request) {
	problems := s.problemSrvc.List()
	resps := make([]problemResponse, len(problems))
	for i, p := range problems {
		resps[i] = mapProblem(p)
	}
	httpjson.WriteSuccessJson(w, resps)
}

func (s *HttpServer) getProblem(w http.ResponseWriter, r *http.Request) {
	problemID := chi.URLParam(r, "problemId")
	p, ok := s.problemSrvc.Get(problemID)
	if !ok {
		httpjson.WriteErrorJson(w,
			"Problem not found",
			http.StatusNotFound, "problem_not_found")
		return
	}
	httpjson.WriteSuccessJson(w, mapProblem(*p))
}
