package subm

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/klauspost/compress/zstd"
)

// pgSubmRepo stores submissions in postgres. Code bodies are
// zstd-compressed at rest; everything else is plain columns.
type pgSubmRepo struct {
	pool    *pgxpool.Pool
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func NewPgSubmRepo(pool *pgxpool.Pool) (SubmRepo, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &pgSubmRepo{pool: pool, encoder: encoder, decoder: decoder}, nil
}

func (r *pgSubmRepo) Store(ctx context.Context, subm Submission) error {
	insertQuery := `
		INSERT INTO submissions (
			uuid, team_id, problem_id, section, language,
			code_zstd, code_length, submitted_at, status, review_status,
			reviewed_at, reviewed_by, review_notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	codeZstd := r.encoder.EncodeAll([]byte(subm.Code), nil)
	_, err := r.pool.Exec(ctx, insertQuery,
		subm.UUID,
		subm.TeamID,
		subm.ProblemID,
		subm.Section,
		subm.Language,
		codeZstd,
		subm.CodeLength,
		subm.SubmittedAt,
		subm.Status,
		subm.ReviewStatus,
		subm.ReviewedAt,
		subm.ReviewedBy,
		subm.ReviewNotes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

// Update writes only the review fields; the submission body itself is
// immutable history.
func (r *pgSubmRepo) Update(ctx context.Context, subm Submission) error {
	updateQuery := `
		UPDATE submissions
		SET status = $2, review_status = $3, reviewed_at = $4,
			reviewed_by = $5, review_notes = $6
		WHERE uuid = $1
	`
	_, err := r.pool.Exec(ctx, updateQuery,
		subm.UUID,
		subm.Status,
		subm.ReviewStatus,
		subm.ReviewedAt,
		subm.ReviewedBy,
		subm.ReviewNotes,
	)
	if err != nil {
		return fmt.Errorf("failed to update submission: %w", err)
	}
	return nil
}

const submSelectColumns = `
	uuid, team_id, problem_id, section, language,
	code_zstd, code_length, submitted_at, status, review_status,
	reviewed_at, reviewed_by, review_notes
`

func (r *pgSubmRepo) Get(ctx context.Context, id uuid.UUID) (*Submission, error) {
	query := `SELECT ` + submSelectColumns + ` FROM submissions WHERE uuid = $1`
	subm, err := r.scanSubm(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query submission: %w", err)
	}
	return subm, nil
}

func (r *pgSubmRepo) List(ctx context.Context, limit int) ([]Submission, error) {
	query := `SELECT ` + submSelectColumns + `
		FROM submissions
		ORDER BY submitted_at DESC
		LIMIT $1`
	return r.querySubms(ctx, query, limit)
}

func (r *pgSubmRepo) ListByTeam(ctx context.Context, teamID string) ([]Submission, error) {
	query := `SELECT ` + submSelectColumns + `
		FROM submissions
		WHERE team_id = $1
		ORDER BY submitted_at DESC`
	return r.querySubms(ctx, query, teamID)
}

func (r *pgSubmRepo) CountPending(ctx context.Context, teamID, problemID, section string) (int, error) {
	query := `
		SELECT COUNT(*) FROM submissions
		WHERE team_id = $1 AND problem_id = $2 AND section = $3 AND status = $4
	`
	var count int
	err := r.pool.QueryRow(ctx, query, teamID, problemID, section, StatusPending).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending submissions: %w", err)
	}
	return count, nil
}

func (r *pgSubmRepo) CountUnreviewed(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM submissions WHERE review_status = $1`
	var count int
	err := r.pool.QueryRow(ctx, query, ReviewStatusUnderReview).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unreviewed submissions: %w", err)
	}
	return count, nil
}

func (r *pgSubmRepo) querySubms(ctx context.Context, query string, args ...any) ([]Submission, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var subms []Submission
	for rows.Next() {
		subm, err := r.scanSubm(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		subms = append(subms, *subm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submissions: %w", err)
	}
	return subms, nil
}

func (r *pgSubmRepo) scanSubm(row pgx.Row) (*Submission, error) {
	var subm Submission
	var codeZstd []byte
	err := row.Scan(
		&subm.UUID,
		&subm.TeamID,
		&subm.ProblemID,
		&subm.Section,
		&subm.Language,
		&codeZstd,
		&subm.CodeLength,
		&subm.SubmittedAt,
		&subm.Status,
		&subm.ReviewStatus,
		&subm.ReviewedAt,
		&subm.ReviewedBy,
		&subm.ReviewNotes,
	)
	if err != nil {
		return nil, err
	}

	code, err := r.decoder.DecodeAll(codeZstd, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress submission code: %w", err)
	}
	subm.Code = string(code)
	return &subm, nil
}
