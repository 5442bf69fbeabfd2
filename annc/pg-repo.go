package annc

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgAnncRepo struct {
	pool *pgxpool.Pool
}

func NewPgAnncRepo(pool *pgxpool.Pool) AnncRepo {
	return &pgAnncRepo{pool: pool}
}

func (r *pgAnncRepo) Store(ctx context.Context, annc Announcement) error {
	insertQuery := `
		INSERT INTO announcements (uuid, title, content, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, insertQuery,
		annc.UUID, annc.Title, annc.Content, annc.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert announcement: %w", err)
	}
	return nil
}

func (r *pgAnncRepo) List(ctx context.Context) ([]Announcement, error) {
	query := `
		SELECT uuid, title, content, created_at
		FROM announcements
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query announcements: %w", err)
	}
	defer rows.Close()

	var anncs []Announcement
	for rows.Next() {
		var a Announcement
		err := rows.Scan(&a.UUID, &a.Title, &a.Content, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		anncs = append(anncs, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating announcements: %w", err)
	}
	return anncs, nil
}

func (r *pgAnncRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM announcements WHERE uuid = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete announcement: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
