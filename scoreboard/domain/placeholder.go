package domain

import "github.com/google/uuid"

// EligibleParticipant is someone with platform access enabled who may appear
// on the leaderboard even without a single submission.
type EligibleParticipant struct {
	ID     uuid.UUID
	Name   string
	Avatar string
}

// InjectPlaceholders appends a zero-score entry for every eligible
// participant not already present, so the board always shows the full field.
// The assigned rank is provisional; AssignRanks recomputes all ranks after
// injection. Participants already on the board are never duplicated.
func InjectPlaceholders(entries []Entry, eligible []EligibleParticipant) []Entry {
	present := make(map[uuid.UUID]struct{}, len(entries))
	for _, e := range entries {
		present[e.ID] = struct{}{}
	}

	out := make([]Entry, len(entries), len(entries)+len(eligible))
	copy(out, entries)
	for _, p := range eligible {
		if _, ok := present[p.ID]; ok {
			continue
		}
		present[p.ID] = struct{}{}
		out = append(out, Entry{
			ID:              p.ID,
			Rank:            len(out) + 1,
			Name:            p.Name,
			Avatar:          p.Avatar,
			Score:           0,
			ChallengeScores: map[uuid.UUID]float64{},
			ProblemScores:   map[uuid.UUID][]ProblemScore{},
		})
	}
	return out
}
