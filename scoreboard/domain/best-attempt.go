package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/skillarena/backend/logger"
)

// ProblemRef identifies a problem and the challenge it belongs to.
// Every problem belongs to exactly one challenge.
type ProblemRef struct {
	ID          uuid.UUID
	ChallengeID uuid.UUID
	Title       string
}

// ProblemScore is a participant's best normalized score for one problem.
type ProblemScore struct {
	ProblemID   uuid.UUID
	ChallengeID uuid.UUID
	Title       string
	Score       float64
}

func problemTitle(ref ProblemRef) string {
	if ref.Title != "" {
		return ref.Title
	}
	return "Problem " + ref.ID.String()[:8]
}

// BestProblemScores collapses submissions down to the maximum score per
// (participant, problem) pair, irrespective of which session the submission
// came from. On a tie the first submission encountered wins; the score is
// identical either way. A submission whose problem id is absent from problems
// is a data inconsistency: it is logged and skipped, never fatal.
func BestProblemScores(
	ctx context.Context,
	policy ScorePolicy,
	subs []SubmRecord,
	problems map[uuid.UUID]ProblemRef,
) map[uuid.UUID]map[uuid.UUID]ProblemScore {
	log := logger.FromContext(ctx)

	best := make(map[uuid.UUID]map[uuid.UUID]ProblemScore)
	for _, sub := range subs {
		ref, ok := problems[sub.ProblemID]
		if !ok {
			log.Warn("skipping submission with unknown problem",
				"problem_id", sub.ProblemID,
				"participant_id", sub.ParticipantID)
			continue
		}

		byProblem, ok := best[sub.ParticipantID]
		if !ok {
			byProblem = make(map[uuid.UUID]ProblemScore)
			best[sub.ParticipantID] = byProblem
		}

		score := policy.SubmScore(sub)
		if existing, ok := byProblem[sub.ProblemID]; !ok || score > existing.Score {
			byProblem[sub.ProblemID] = ProblemScore{
				ProblemID:   sub.ProblemID,
				ChallengeID: ref.ChallengeID,
				Title:       problemTitle(ref),
				Score:       score,
			}
		}
	}
	return best
}

// BestProblemScoresBySession is the session-aware variant: the maximum is kept
// per (participant, session, problem), so a participant's separate attempt
// windows stay separate for the official per-challenge reduction.
func BestProblemScoresBySession(
	ctx context.Context,
	policy ScorePolicy,
	subs []SubmRecord,
	problems map[uuid.UUID]ProblemRef,
) map[uuid.UUID]map[uuid.UUID]map[uuid.UUID]ProblemScore {
	log := logger.FromContext(ctx)

	best := make(map[uuid.UUID]map[uuid.UUID]map[uuid.UUID]ProblemScore)
	for _, sub := range subs {
		ref, ok := problems[sub.ProblemID]
		if !ok {
			log.Warn("skipping submission with unknown problem",
				"problem_id", sub.ProblemID,
				"participant_id", sub.ParticipantID)
			continue
		}

		bySession, ok := best[sub.ParticipantID]
		if !ok {
			bySession = make(map[uuid.UUID]map[uuid.UUID]ProblemScore)
			best[sub.ParticipantID] = bySession
		}
		byProblem, ok := bySession[sub.SessionID]
		if !ok {
			byProblem = make(map[uuid.UUID]ProblemScore)
			bySession[sub.SessionID] = byProblem
		}

		score := policy.SubmScore(sub)
		if existing, ok := byProblem[sub.ProblemID]; !ok || score > existing.Score {
			byProblem[sub.ProblemID] = ProblemScore{
				ProblemID:   sub.ProblemID,
				ChallengeID: ref.ChallengeID,
				Title:       problemTitle(ref),
				Score:       score,
			}
		}
	}
	return best
}
