package scoreboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/skillarena/backend/scoreboard/domain"
)

// ComputeTeamLeaderboard builds the ranked team leaderboard. Teams fold in
// each member's flat best score per problem, taken across all of the
// member's sessions; this is a simpler reduction than the session-scoped one
// used for individuals and the two are not numerically equivalent for
// multi-session participants.
func (s *ScoreboardSrvc) ComputeTeamLeaderboard(
	ctx context.Context,
	page int,
	limit int,
	locale string,
) (*TeamLeaderboard, error) {
	subs, err := s.subms.ListSubmissions(ctx, nil)
	if err != nil {
		return nil, newErrLeaderboardUnavailable(err)
	}
	problems, err := s.listProblemRefs(ctx, nil)
	if err != nil {
		return nil, newErrLeaderboardUnavailable(err)
	}
	members, err := s.membership.ListTeamMembers(ctx)
	if err != nil {
		return nil, newErrLeaderboardUnavailable(err)
	}

	flat := domain.BestProblemScores(ctx, s.policy, subs, problems)

	challengeSums := make(map[uuid.UUID]map[uuid.UUID]float64, len(flat))
	problemDetail := make(map[uuid.UUID]map[uuid.UUID][]domain.ProblemScore, len(flat))
	for userID, best := range flat {
		challengeSums[userID] = domain.ChallengeSums(best)
		problemDetail[userID] = domain.ProblemsByChallenge(best)
	}

	teams := domain.RollupTeams(members, challengeSums, problemDetail)
	ranked := domain.AssignRanks(domain.NewRanker(locale), teams)
	data, hasMore, _ := domain.SlicePage(ranked, page, limit)

	return &TeamLeaderboard{
		Data:    data,
		HasMore: hasMore,
	}, nil
}
