package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"

	"github.com/coderelay/backend/annc"
	"github.com/coderelay/backend/auth"
	"github.com/coderelay/backend/clarif"
	"github.com/coderelay/backend/httpjson"
	"github.com/coderelay/backend/logger"
	"github.com/coderelay/backend/problem"
	"github.com/coderelay/backend/scoring"
	"github.com/coderelay/backend/subm"
	"github.com/coderelay/backend/team"
)

// AdminCreds is the single organizer account. The password is stored
// as a bcrypt hash, same as team passwords.
type AdminCreds struct {
	Username  string
	BcryptPwd string
}

type HttpServer struct {
	scoreSrvc   *scoring.ScoreSrvc
	problemSrvc *problem.ProblemSrvc
	teamSrvc    *team.TeamSrvc
	submSrvc    *subm.SubmSrvc
	anncSrvc    *annc.AnncSrvc
	clarifSrvc  *clarif.ClarifSrvc

	adminCreds AdminCreds
	jwtKey     []byte
	router     *chi.Mux
}

func NewHttpServer(
	scoreSrvc *scoring.ScoreSrvc,
	problemSrvc *problem.ProblemSrvc,
	teamSrvc *team.TeamSrvc,
	submSrvc *subm.SubmSrvc,
	anncSrvc *annc.AnncSrvc,
	clarifSrvc *clarif.ClarifSrvc,
	adminCreds AdminCreds,
	jwtKey []byte,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("coderelay", httplog.Options{
		LogLevel:         slog.LevelInfo,
		Concise:          true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))
	router.Use(requestIDMiddleware)

	server := &HttpServer{
		scoreSrvc:   scoreSrvc,
		problemSrvc: problemSrvc,
		teamSrvc:    teamSrvc,
		submSrvc:    submSrvc,
		anncSrvc:    anncSrvc,
		clarifSrvc:  clarifSrvc,
		adminCreds:  adminCreds,
		jwtKey:      jwtKey,
		router:      router,
	}

	server.routes()

	return server
}

func (s *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, s.router)
}

// Handler exposes the router for tests.
func (s *HttpServer) Handler() http.Handler {
	return s.router
}

func (s *HttpServer) routes() {
	r := s.router

	r.Post("/auth/login", s.authLogin)
	r.Post("/auth/admin-login", s.authAdminLogin)

	r.Get("/contest", s.getContest)
	r.Get("/problems", s.listProblems)
	r.Get("/problems/{problemId}", s.getProblem)
	r.Get("/scoreboard", s.getScoreboard)

	r.Get("/teams/{teamId}/score", s.getTeamScore)
	r.Post("/teams", s.createTeam)
	r.Get("/teams", s.listTeams)
	r.Delete("/teams/{teamId}", s.deactivateTeam)

	r.Post("/submissions", s.createSubmission)
	r.Get("/submissions", s.listSubmissions)
	r.Get("/submissions/unreviewed-count", s.getUnreviewedCount)
	r.Get("/submissions/{submUuid}", s.getSubmission)
	r.Post("/submissions/{submUuid}/review", s.reviewSubmission)

	r.Get("/announcements", s.listAnncs)
	r.Post("/announcements", s.createAnnc)
	r.Delete("/announcements/{anncUuid}", s.deleteAnnc)

	r.Post("/clarifications", s.createClarif)
	r.Get("/clarifications", s.listClarifs)
	r.Post("/clarifications/{clarifUuid}/answer", s.answerClarif)
}

// requestIDMiddleware puts a request-scoped logger into the context so
// service errors can be correlated with access log lines.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequestID(r.Context(), uuid.NewString())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// handleError writes an error response using the request's logger.
func (s *HttpServer) handleError(w http.ResponseWriter, r *http.Request, err error) {
	httpjson.HandleError(logger.FromContext(r.Context()), w, err)
}

// requireScope checks the request's JWT claims for a scope and writes
// the error response itself when the check fails.
func (s *HttpServer) requireScope(w http.ResponseWriter, r *http.Request, scope string) *auth.JwtClaims {
	claims := auth.ClaimsFromContext(r.Context())
	if !claims.HasScope(scope) {
		httpjson.WriteErrorJson(w,
			"Authentication required",
			http.StatusUnauthorized,
			"unauthorized")
		return nil
	}
	return claims
}
