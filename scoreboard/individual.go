package scoreboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/skillarena/backend/challenge"
	"github.com/skillarena/backend/participant"
	"github.com/skillarena/backend/scoreboard/domain"
)

// ComputeIndividualLeaderboard builds the ranked individual leaderboard for
// the viewer. When scope is non-nil the board covers that single challenge
// and entries carry per-problem detail for it; otherwise it covers every
// challenge the viewer may see. A scope outside the visible set yields a
// challenge_not_visible error the transport layer turns into a redirect to
// the default scope.
//
// The official per-challenge score of a participant is the maximum over
// their sessions of that session's summed best problem scores.
func (s *ScoreboardSrvc) ComputeIndividualLeaderboard(
	ctx context.Context,
	viewer challenge.Viewer,
	scope *uuid.UUID,
	page int,
	limit int,
	locale string,
) (*IndividualLeaderboard, error) {
	visible, err := s.visibility.VisibleChallenges(ctx, viewer)
	if err != nil {
		return nil, newErrLeaderboardUnavailable(err)
	}

	challengeIDs := make([]uuid.UUID, 0, len(visible))
	for _, c := range visible {
		challengeIDs = append(challengeIDs, c.ID)
	}
	if scope != nil {
		found := false
		for _, id := range challengeIDs {
			if id == *scope {
				found = true
				break
			}
		}
		if !found {
			return nil, newErrScopeNotVisible()
		}
		challengeIDs = []uuid.UUID{*scope}
	}

	subs, err := s.subms.ListSubmissions(ctx, challengeIDs)
	if err != nil {
		return nil, newErrLeaderboardUnavailable(err)
	}
	problems, err := s.listProblemRefs(ctx, challengeIDs)
	if err != nil {
		return nil, newErrLeaderboardUnavailable(err)
	}

	bySession := domain.BestProblemScoresBySession(ctx, s.policy, subs, problems)

	participantIDs := make([]uuid.UUID, 0, len(bySession))
	for id := range bySession {
		participantIDs = append(participantIDs, id)
	}
	profiles, err := s.dir.GetProfiles(ctx, participantIDs)
	if err != nil {
		return nil, newErrLeaderboardUnavailable(err)
	}

	entries := make([]domain.Entry, 0, len(bySession))
	for participantID, sessions := range bySession {
		official, detail := domain.OfficialChallengeScores(sessions)

		entry := domain.Entry{
			ID:              participantID,
			Score:           domain.TotalScore(official),
			ChallengeScores: official,
		}
		if scope != nil {
			entry.ProblemScores = map[uuid.UUID][]domain.ProblemScore{
				*scope: detail[*scope],
			}
		}
		entry.Name, entry.Avatar = displayMeta(profiles, participantID, locale)
		entries = append(entries, entry)
	}

	eligible, err := s.membership.ListEligible(ctx)
	if err != nil {
		return nil, newErrLeaderboardUnavailable(err)
	}
	entries = domain.InjectPlaceholders(entries, eligible)

	ranked := domain.AssignRanks(domain.NewRanker(locale), entries)
	topThree, basicInfo := domain.Summarize(ranked, viewer.ID)
	data, hasMore, totalPages := domain.SlicePage(ranked, page, limit)

	return &IndividualLeaderboard{
		Data:       data,
		TopThree:   topThree,
		BasicInfo:  basicInfo,
		HasMore:    hasMore,
		TotalPages: totalPages,
	}, nil
}

func (s *ScoreboardSrvc) listProblemRefs(ctx context.Context, challengeIDs []uuid.UUID) (map[uuid.UUID]domain.ProblemRef, error) {
	refs, err := s.subms.ListProblems(ctx, challengeIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]domain.ProblemRef, len(refs))
	for _, ref := range refs {
		byID[ref.ID] = ref
	}
	return byID, nil
}

func displayMeta(profiles map[uuid.UUID]participant.Profile, id uuid.UUID, locale string) (name string, avatar string) {
	if profile, ok := profiles[id]; ok && profile.Name != "" {
		return profile.Name, profile.Avatar
	}
	return participant.FallbackName(id, locale), ""
}
