package scoreboard

import "github.com/skillarena/backend/scoreboard/domain"

// ScoreboardSrvc turns raw grading data into ranked, paginated leaderboards.
// It holds no mutable state: every computation reads from the sources and
// recomputes from scratch, so concurrent requests need no locking.
type ScoreboardSrvc struct {
	subms      SubmissionSource
	membership MembershipSource
	dir        ParticipantDirectory
	visibility VisibilityResolver
	policy     domain.ScorePolicy
}

func NewScoreboardSrvc(
	subms SubmissionSource,
	membership MembershipSource,
	dir ParticipantDirectory,
	visibility VisibilityResolver,
	policy domain.ScorePolicy,
) *ScoreboardSrvc {
	return &ScoreboardSrvc{
		subms:      subms,
		membership: membership,
		dir:        dir,
		visibility: visibility,
		policy:     policy,
	}
}
