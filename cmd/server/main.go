package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/coderelay/backend/annc"
	"github.com/coderelay/backend/clarif"
	"github.com/coderelay/backend/conf"
	"github.com/coderelay/backend/http"
	"github.com/coderelay/backend/problem"
	"github.com/coderelay/backend/scoring"
	"github.com/coderelay/backend/subm"
	"github.com/coderelay/backend/team"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		panic("Error loading .env file")
	}

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	adminCreds := http.AdminCreds{
		Username:  os.Getenv("ADMIN_USERNAME"),
		BcryptPwd: os.Getenv("ADMIN_PW_BCRYPT"),
	}
	if adminCreds.Username == "" || adminCreds.BcryptPwd == "" {
		slog.Error("ADMIN_USERNAME or ADMIN_PW_BCRYPT is not set")
		os.Exit(1)
	}

	start, end, err := conf.ContestWindow()
	if err != nil {
		slog.Error("invalid contest window", "error", err)
		os.Exit(1)
	}

	catalogPath := os.Getenv("PROBLEM_CATALOG")
	if catalogPath == "" {
		catalogPath = "problems.toml"
	}
	problems, err := problem.ReadCatalog(catalogPath)
	if err != nil {
		slog.Error("failed to read problem catalog", "path", catalogPath, "error", err)
		os.Exit(1)
	}
	problemSrvc := problem.NewProblemSrvc(problems)

	var scoreRepo scoring.ScoreRepo
	var teamRepo team.TeamRepo
	var submRepo subm.SubmRepo
	var anncRepo annc.AnncRepo
	var clarifRepo clarif.ClarifRepo

	switch mode := conf.StorageMode(); mode {
	case "postgres":
		pool, err := pgxpool.New(context.Background(), conf.GetPgConnStrFromEnv())
		if err != nil {
			slog.Error("failed to create postgres pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		scoreRepo = scoring.NewPgScoreRepo(pool)
		teamRepo = team.NewPgTeamRepo(pool)
		submRepo, err = subm.NewPgSubmRepo(pool)
		if err != nil {
			slog.Error("failed to create submission repo", "error", err)
			os.Exit(1)
		}
		anncRepo = annc.NewPgAnncRepo(pool)
		clarifRepo = clarif.NewPgClarifRepo(pool)
	case "memory":
		slog.Warn("using in-memory storage, all state is lost on restart")
		scoreRepo = scoring.NewInMemScoreRepo()
		teamRepo = team.NewInMemTeamRepo()
		submRepo = subm.NewInMemSubmRepo()
		anncRepo = annc.NewInMemAnncRepo()
		clarifRepo = clarif.NewInMemClarifRepo()
	default:
		slog.Error("unknown STORAGE mode", "mode", mode)
		os.Exit(1)
	}

	scoreSrvc := scoring.NewScoreSrvc(scoreRepo)
	teamSrvc := team.NewTeamSrvc(teamRepo, scoreSrvc, problemSrvc)
	submSrvc := subm.NewSubmSrvc(submRepo, scoreSrvc, problemSrvc,
		subm.ContestWindow{Start: start, End: end})
	anncSrvc := annc.NewAnncSrvc(anncRepo)
	clarifSrvc := clarif.NewClarifSrvc(clarifRepo)

	httpServer := http.NewHttpServer(
		scoreSrvc, problemSrvc, teamSrvc, submSrvc, anncSrvc, clarifSrvc,
		adminCreds, []byte(jwtKey))

	address := os.Getenv("HTTP_ADDRESS")
	if address == "" {
		address = ":8080"
	}
	log.Printf("Starting server on %s", address)
	err = httpServer.Start(address)
	log.Printf("Server stopped with error: %v", err)
}
