package pgrepo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillarena/backend/logger"
	"github.com/skillarena/backend/scoreboard/domain"
)

// pgScoreboardRepo reads grading, membership and eligibility rows from
// Postgres. The engine only ever reads; the grading pipeline owns writes.
type pgScoreboardRepo struct {
	pool *pgxpool.Pool
}

func NewPgScoreboardRepo(pool *pgxpool.Pool) *pgScoreboardRepo {
	return &pgScoreboardRepo{pool: pool}
}

func (r *pgScoreboardRepo) ListSubmissions(ctx context.Context, challengeIDs []uuid.UUID) ([]domain.SubmRecord, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing graded submissions", "challenge_filter", len(challengeIDs))

	query := `
		SELECT s.user_id, s.problem_id, s.session_id,
			s.total_tests, s.passed_tests, s.total_criteria, s.criterion_sum
		FROM submissions s
		JOIN problems p ON p.id = s.problem_id
	`
	args := []any{}
	if challengeIDs != nil {
		query += ` WHERE p.challenge_id = ANY($1)`
		args = append(args, challengeIDs)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var subs []domain.SubmRecord
	for rows.Next() {
		var rec domain.SubmRecord
		var sessionID *uuid.UUID
		err := rows.Scan(&rec.ParticipantID, &rec.ProblemID, &sessionID,
			&rec.TotalTests, &rec.PassedTests, &rec.TotalCriteria, &rec.CriterionSum)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission row: %w", err)
		}
		if sessionID != nil {
			rec.SessionID = *sessionID
		}
		subs = append(subs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read submission rows: %w", err)
	}
	return subs, nil
}

func (r *pgScoreboardRepo) ListProblems(ctx context.Context, challengeIDs []uuid.UUID) ([]domain.ProblemRef, error) {
	query := `
		SELECT id, challenge_id, COALESCE(title, '')
		FROM problems
	`
	args := []any{}
	if challengeIDs != nil {
		query += ` WHERE challenge_id = ANY($1)`
		args = append(args, challengeIDs)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query problems: %w", err)
	}
	defer rows.Close()

	var refs []domain.ProblemRef
	for rows.Next() {
		var ref domain.ProblemRef
		if err := rows.Scan(&ref.ID, &ref.ChallengeID, &ref.Title); err != nil {
			return nil, fmt.Errorf("failed to scan problem row: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read problem rows: %w", err)
	}
	return refs, nil
}

func (r *pgScoreboardRepo) ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT tm.team_id, t.name, tm.user_id,
			COALESCE(u.display_name, ''), COALESCE(u.avatar_url, '')
		FROM team_members tm
		JOIN teams t ON t.id = tm.team_id
		JOIN users u ON u.id = tm.user_id
		ORDER BY t.created_at, tm.created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.TeamID, &m.TeamName, &m.UserID, &m.Name, &m.Avatar); err != nil {
			return nil, fmt.Errorf("failed to scan team member row: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read team member rows: %w", err)
	}
	return members, nil
}

func (r *pgScoreboardRepo) ListEligible(ctx context.Context) ([]domain.EligibleParticipant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, COALESCE(display_name, ''), COALESCE(avatar_url, '')
		FROM users
		WHERE access_enabled
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query eligible participants: %w", err)
	}
	defer rows.Close()

	var eligible []domain.EligibleParticipant
	for rows.Next() {
		var p domain.EligibleParticipant
		if err := rows.Scan(&p.ID, &p.Name, &p.Avatar); err != nil {
			return nil, fmt.Errorf("failed to scan eligible participant row: %w", err)
		}
		eligible = append(eligible, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read eligible participant rows: %w", err)
	}
	return eligible, nil
}
