package http

import (
	"net/http"
	"time"

	"github.com/coderelay/backend/httpjson"
	"github.com/coderelay/backend/subm"
)

// getContest is public: teams poll it before the contest opens.
func (s *HttpServer) getContest(w http.ResponseWriter, r *http.Request) {
	window := s.submSrvc.Window()

	httpjson.WriteSuccessJson(w, struct {
		Status    string          `json:"status"`
		StartTime time.Time       `json:"startTime"`
		EndTime   time.Time       `json:"endTime"`
		Languages []subm.Language `json:"languages"`
	}{
		Status:    s.submSrvc.WindowStatus(),
		StartTime: window.Start,
		EndTime:   window.End,
		Languages: subm.Languages(),
	})
}
