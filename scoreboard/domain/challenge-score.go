package domain

import (
	"sort"

	"github.com/google/uuid"
)

// ChallengeSums sums one participant's best problem scores per challenge.
// A challenge sum never exceeds MaxPoints times the problem count of that
// challenge because each ProblemScore is already capped.
func ChallengeSums(best map[uuid.UUID]ProblemScore) map[uuid.UUID]float64 {
	sums := make(map[uuid.UUID]float64, len(best))
	for _, ps := range best {
		sums[ps.ChallengeID] += ps.Score
	}
	return sums
}

// ProblemsByChallenge groups one participant's best problem scores by
// challenge. Lists are ordered by title (then problem id) so callers never
// depend on map iteration order.
func ProblemsByChallenge(best map[uuid.UUID]ProblemScore) map[uuid.UUID][]ProblemScore {
	grouped := make(map[uuid.UUID][]ProblemScore)
	for _, ps := range best {
		grouped[ps.ChallengeID] = append(grouped[ps.ChallengeID], ps)
	}
	for id := range grouped {
		sortProblemScores(grouped[id])
	}
	return grouped
}

func sortProblemScores(scores []ProblemScore) {
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Title != scores[j].Title {
			return scores[i].Title < scores[j].Title
		}
		return scores[i].ProblemID.String() < scores[j].ProblemID.String()
	})
}

// OfficialChallengeScores reduces one participant's session-scoped problem
// scores into the official score per challenge: each session's problem scores
// are summed per challenge, then the maximum sum across the participant's
// sessions wins. The returned detail maps each challenge to the problem
// scores of the winning session; on equal sums the session with the smallest
// id wins, which keeps the detail deterministic.
//
// Note the team rollup deliberately does not use this reduction: teams sum
// the flat best-per-problem scores across all sessions (see RollupTeams),
// so the two paths are not numerically equivalent for multi-session
// participants.
func OfficialChallengeScores(
	bySession map[uuid.UUID]map[uuid.UUID]ProblemScore,
) (map[uuid.UUID]float64, map[uuid.UUID][]ProblemScore) {
	sessionIDs := make([]uuid.UUID, 0, len(bySession))
	for id := range bySession {
		sessionIDs = append(sessionIDs, id)
	}
	sort.Slice(sessionIDs, func(i, j int) bool {
		return sessionIDs[i].String() < sessionIDs[j].String()
	})

	official := make(map[uuid.UUID]float64)
	detail := make(map[uuid.UUID][]ProblemScore)
	for _, sessionID := range sessionIDs {
		sums := ChallengeSums(bySession[sessionID])
		problems := ProblemsByChallenge(bySession[sessionID])
		for challengeID, sum := range sums {
			if current, ok := official[challengeID]; ok && sum <= current {
				continue
			}
			official[challengeID] = sum
			detail[challengeID] = problems[challengeID]
		}
	}
	return official, detail
}
