package pgrepo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillarena/backend/challenge"
)

type pgChallengeRepo struct {
	pool *pgxpool.Pool
}

func NewPgChallengeRepo(pool *pgxpool.Pool) *pgChallengeRepo {
	return &pgChallengeRepo{pool: pool}
}

func (r *pgChallengeRepo) ListChallenges(ctx context.Context) ([]challenge.Challenge, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, is_public
		FROM challenges
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query challenges: %w", err)
	}
	defer rows.Close()

	var challenges []challenge.Challenge
	for rows.Next() {
		var c challenge.Challenge
		if err := rows.Scan(&c.ID, &c.Title, &c.Public); err != nil {
			return nil, fmt.Errorf("failed to scan challenge row: %w", err)
		}
		challenges = append(challenges, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read challenge rows: %w", err)
	}
	return challenges, nil
}

func (r *pgChallengeRepo) AllowedChallengeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT challenge_id
		FROM challenge_access
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query challenge access: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan challenge access row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read challenge access rows: %w", err)
	}
	return ids, nil
}
