package clarif

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgClarifRepo struct {
	pool *pgxpool.Pool
}

func NewPgClarifRepo(pool *pgxpool.Pool) ClarifRepo {
	return &pgClarifRepo{pool: pool}
}

const clarifSelectColumns = `
	uuid, team_id, problem_id, question,
	status, answer, public, created_at, answered_at, answered_by
`

func (r *pgClarifRepo) Store(ctx context.Context, clarif Clarif) error {
	insertQuery := `
		INSERT INTO clarifications (
			uuid, team_id, problem_id, question,
			status, answer, public, created_at, answered_at, answered_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, insertQuery,
		clarif.UUID,
		clarif.TeamID,
		clarif.ProblemID,
		clarif.Question,
		clarif.Status,
		clarif.Answer,
		clarif.Public,
		clarif.CreatedAt,
		clarif.AnsweredAt,
		clarif.AnsweredBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert clarification: %w", err)
	}
	return nil
}

func (r *pgClarifRepo) Update(ctx context.Context, clarif Clarif) error {
	updateQuery := `
		UPDATE clarifications
		SET status = $2, answer = $3, public = $4,
			answered_at = $5, answered_by = $6
		WHERE uuid = $1
	`
	_, err := r.pool.Exec(ctx, updateQuery,
		clarif.UUID,
		clarif.Status,
		clarif.Answer,
		clarif.Public,
		clarif.AnsweredAt,
		clarif.AnsweredBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update clarification: %w", err)
	}
	return nil
}

func (r *pgClarifRepo) Get(ctx context.Context, id uuid.UUID) (*Clarif, error) {
	query := `SELECT ` + clarifSelectColumns + ` FROM clarifications WHERE uuid = $1`
	clarif, err := scanClarif(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query clarification: %w", err)
	}
	return clarif, nil
}

func (r *pgClarifRepo) List(ctx context.Context) ([]Clarif, error) {
	query := `SELECT ` + clarifSelectColumns + `
		FROM clarifications
		ORDER BY created_at DESC`
	return r.queryClarifs(ctx, query)
}

func (r *pgClarifRepo) ListByTeam(ctx context.Context, teamID string) ([]Clarif, error) {
	query := `SELECT ` + clarifSelectColumns + `
		FROM clarifications
		WHERE team_id = $1
		ORDER BY created_at DESC`
	return r.queryClarifs(ctx, query, teamID)
}

func (r *pgClarifRepo) ListPublic(ctx context.Context) ([]Clarif, error) {
	query := `SELECT ` + clarifSelectColumns + `
		FROM clarifications
		WHERE public AND status = $1
		ORDER BY created_at DESC`
	return r.queryClarifs(ctx, query, StatusAnswered)
}

func (r *pgClarifRepo) CountPending(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM clarifications WHERE status = $1`
	var count int
	err := r.pool.QueryRow(ctx, query, StatusPending).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending clarifications: %w", err)
	}
	return count, nil
}

func (r *pgClarifRepo) queryClarifs(ctx context.Context, query string, args ...any) ([]Clarif, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clarifications: %w", err)
	}
	defer rows.Close()

	var clarifs []Clarif
	for rows.Next() {
		clarif, err := scanClarif(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clarification: %w", err)
		}
		clarifs = append(clarifs, *clarif)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clarifications: %w", err)
	}
	return clarifs, nil
}

func scanClarif(row pgx.Row) (*Clarif, error) {
	var clarif Clarif
	err := row.Scan(
		&clarif.UUID,
		&clarif.TeamID,
		&clarif.ProblemID,
		&clarif.Question,
		&clarif.Status,
		&clarif.Answer,
		&clarif.Public,
		&clarif.CreatedAt,
		&clarif.AnsweredAt,
		&clarif.AnsweredBy,
	)
	if err != nil {
		return nil, err
	}
	return &clarif, nil
}
