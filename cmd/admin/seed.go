package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/rand"

	"github.com/coderelay/backend/conf"
	"github.com/coderelay/backend/problem"
	"github.com/coderelay/backend/scoring"
	"github.com/coderelay/backend/team"
)

type teamSeedTOML struct {
	Teams []struct {
		TeamID  string `toml:"team_id"`
		Name    string `toml:"name"`
		School  string `toml:"school"`
		Members []struct {
			Name  string `toml:"name"`
			Email string `toml:"email"`
			Grade string `toml:"grade"`
		} `toml:"members"`
	} `toml:"teams"`
}

func seedTeams(seedFile, catalogPath string) error {
	content, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("error reading teams file: %w", err)
	}
	var seed teamSeedTOML
	if err := toml.Unmarshal(content, &seed); err != nil {
		return fmt.Errorf("error parsing teams file: %w", err)
	}

	problems, err := problem.ReadCatalog(catalogPath)
	if err != nil {
		return fmt.Errorf("error reading problem catalog: %w", err)
	}
	problemSrvc := problem.NewProblemSrvc(problems)

	pool, _, teamSrvc, err := connect(problemSrvc)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx := context.Background()
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	for _, t := range seed.Teams {
		password := generatePassword(rng)
		members := make([]team.Member, len(t.Members))
		for i, m := range t.Members {
			members[i] = team.Member{Name: m.Name, Email: m.Email, Grade: m.Grade}
		}
		created, err := teamSrvc.CreateTeam(ctx, team.CreateTeamParams{
			TeamID:   t.TeamID,
			Name:     t.Name,
			School:   t.School,
			Members:  members,
			Password: password,
		})
		if err != nil {
			return fmt.Errorf("error creating team %s: %w", t.TeamID, err)
		}
		fmt.Printf("%s\t%s\t%s\n", created.TeamID, created.Name, password)
	}
	return nil
}

func rebuildScores() error {
	pool, scoreSrvc, _, err := connect(nil)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := scoreSrvc.Rebuild(context.Background()); err != nil {
		return fmt.Errorf("error rebuilding scores: %w", err)
	}
	fmt.Println("scores rebuilt")
	return nil
}

func resetTeam(teamID string) error {
	pool, scoreSrvc, _, err := connect(nil)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := scoreSrvc.Reset(context.Background(), teamID); err != nil {
		return fmt.Errorf("error resetting team %s: %w", teamID, err)
	}
	fmt.Printf("team %s reset\n", teamID)
	return nil
}

func connect(catalog team.CatalogProvider) (*pgxpool.Pool, *scoring.ScoreSrvc, *team.TeamSrvc, error) {
	pool, err := pgxpool.New(context.Background(), conf.GetPgConnStrFromEnv())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error creating postgres pool: %w", err)
	}
	scoreSrvc := scoring.NewScoreSrvc(scoring.NewPgScoreRepo(pool))
	teamSrvc := team.NewTeamSrvc(team.NewPgTeamRepo(pool), scoreSrvc, catalog)
	return pool, scoreSrvc, teamSrvc, nil
}

const passwordChars = "abcdefghjkmnpqrstuvwxyz23456789"

func generatePassword(rng *rand.Rand) string {
	pwd := make([]byte, 10)
	for i := range pwd {
		pwd[i] = passwordChars[rng.Intn(len(passwordChars))]
	}
	return string(pwd)
}
