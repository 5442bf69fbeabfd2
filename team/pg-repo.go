package team

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgTeamRepo struct {
	pool *pgxpool.Pool
}

func NewPgTeamRepo(pool *pgxpool.Pool) TeamRepo {
	return &pgTeamRepo{pool: pool}
}

func (r *pgTeamRepo) Store(ctx context.Context, team Team) error {
	membersJson, err := json.Marshal(team.Members)
	if err != nil {
		return fmt.Errorf("failed to marshal members: %w", err)
	}

	insertQuery := `
		INSERT INTO teams (
			team_id, name, school, members, bcrypt_pwd, login_time, active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.pool.Exec(ctx, insertQuery,
		team.TeamID,
		team.Name,
		team.School,
		membersJson,
		team.BcryptPwd,
		team.LoginTime,
		team.Active,
		team.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert team: %w", err)
	}
	return nil
}

func (r *pgTeamRepo) Update(ctx context.Context, team Team) error {
	membersJson, err := json.Marshal(team.Members)
	if err != nil {
		return fmt.Errorf("failed to marshal members: %w", err)
	}

	updateQuery := `
		UPDATE teams
		SET name = $2, school = $3, members = $4, bcrypt_pwd = $5,
			login_time = $6, active = $7
		WHERE team_id = $1
	`
	_, err = r.pool.Exec(ctx, updateQuery,
		team.TeamID,
		team.Name,
		team.School,
		membersJson,
		team.BcryptPwd,
		team.LoginTime,
		team.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to update team: %w", err)
	}
	return nil
}

func (r *pgTeamRepo) Get(ctx context.Context, teamID string) (*Team, error) {
	query := `
		SELECT team_id, name, school, members, bcrypt_pwd, login_time, active, created_at
		FROM teams
		WHERE team_id = $1
	`
	team, err := scanTeam(r.pool.QueryRow(ctx, query, teamID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query team: %w", err)
	}
	return team, nil
}

func (r *pgTeamRepo) List(ctx context.Context) ([]Team, error) {
	query := `
		SELECT team_id, name, school, members, bcrypt_pwd, login_time, active, created_at
		FROM teams
		ORDER BY team_id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, *team)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teams: %w", err)
	}
	return teams, nil
}

func scanTeam(row pgx.Row) (*Team, error) {
	var team Team
	var membersJson []byte
	err := row.Scan(
		&team.TeamID,
		&team.Name,
		&team.School,
		&membersJson,
		&team.BcryptPwd,
		&team.LoginTime,
		&team.Active,
		&team.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(membersJson, &team.Members); err != nil {
		return nil, fmt.Errorf("failed to unmarshal members: %w", err)
	}
	return &team, nil
}
