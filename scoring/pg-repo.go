package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgScoreRepo stores one row per team; the nested problem/section
// document lives in a jsonb column. The single-writer-per-team
// assumption makes the whole-document upsert safe.
type pgScoreRepo struct {
	pool *pgxpool.Pool
}

func NewPgScoreRepo(pool *pgxpool.Pool) ScoreRepo {
	return &pgScoreRepo{pool: pool}
}

func (r *pgScoreRepo) Load(ctx context.Context, teamID string) (*TeamScore, error) {
	query := `
		SELECT team_id, total_score, total_penalty, problems, last_updated
		FROM team_scores
		WHERE team_id = $1
	`
	var score TeamScore
	var problemsJson []byte
	err := r.pool.QueryRow(ctx, query, teamID).Scan(
		&score.TeamID,
		&score.TotalScore,
		&score.TotalPenalty,
		&problemsJson,
		&score.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query team score: %w", err)
	}

	if err := json.Unmarshal(problemsJson, &score.Problems); err != nil {
		return nil, fmt.Errorf("failed to unmarshal problems document: %w", err)
	}
	return &score, nil
}

func (r *pgScoreRepo) Save(ctx context.Context, score *TeamScore) error {
	problemsJson, err := json.Marshal(score.Problems)
	if err != nil {
		return fmt.Errorf("failed to marshal problems document: %w", err)
	}

	upsertQuery := `
		INSERT INTO team_scores (team_id, total_score, total_penalty, problems, last_updated)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (team_id) DO UPDATE SET
			total_score = EXCLUDED.total_score,
			total_penalty = EXCLUDED.total_penalty,
			problems = EXCLUDED.problems,
			last_updated = EXCLUDED.last_updated
	`
	_, err = r.pool.Exec(ctx, upsertQuery,
		score.TeamID,
		score.TotalScore,
		score.TotalPenalty,
		problemsJson,
		score.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert team score: %w", err)
	}
	return nil
}

func (r *pgScoreRepo) List(ctx context.Context) ([]TeamScore, error) {
	query := `
		SELECT team_id, total_score, total_penalty, problems, last_updated
		FROM team_scores
		ORDER BY team_id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query team scores: %w", err)
	}
	defer rows.Close()

	var scores []TeamScore
	for rows.Next() {
		var score TeamScore
		var problemsJson []byte
		err := rows.Scan(
			&score.TeamID,
			&score.TotalScore,
			&score.TotalPenalty,
			&problemsJson,
			&score.LastUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team score: %w", err)
		}
		if err := json.Unmarshal(problemsJson, &score.Problems); err != nil {
			return nil, fmt.Errorf("failed to unmarshal problems document: %w", err)
		}
		scores = append(scores, score)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team scores: %w", err)
	}
	return scores, nil
}
