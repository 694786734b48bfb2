package scoreboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/skillarena/backend/challenge"
	"github.com/skillarena/backend/participant"
	"github.com/skillarena/backend/scoreboard/domain"
)

// SubmissionSource supplies the raw grading rows and problem references.
// An empty challengeIDs slice means no filter.
type SubmissionSource interface {
	ListSubmissions(ctx context.Context, challengeIDs []uuid.UUID) ([]domain.SubmRecord, error)
	ListProblems(ctx context.Context, challengeIDs []uuid.UUID) ([]domain.ProblemRef, error)
}

// MembershipSource supplies team membership rows and the eligible-participant
// roster (everyone with platform access enabled).
type MembershipSource interface {
	ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error)
	ListEligible(ctx context.Context) ([]domain.EligibleParticipant, error)
}

// ParticipantDirectory resolves display metadata for participant ids.
type ParticipantDirectory interface {
	GetProfiles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]participant.Profile, error)
}

// VisibilityResolver returns the challenges a viewer may query. The engine
// treats the result as the already-filtered set.
type VisibilityResolver interface {
	VisibleChallenges(ctx context.Context, viewer challenge.Viewer) ([]challenge.Challenge, error)
}

// IndividualLeaderboard is the result of ComputeIndividualLeaderboard.
type IndividualLeaderboard struct {
	Data       []domain.Entry
	TopThree   []domain.Entry
	BasicInfo  domain.BasicInfo
	HasMore    bool
	TotalPages int
}

// TeamLeaderboard is the result of ComputeTeamLeaderboard.
type TeamLeaderboard struct {
	Data    []domain.TeamAggregate
	HasMore bool
}
