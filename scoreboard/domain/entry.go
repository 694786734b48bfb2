package domain

import "github.com/google/uuid"

// Entry is one participant's row on the leaderboard. Entries are value
// objects recreated per request; Rank is only meaningful after AssignRanks.
type Entry struct {
	ID              uuid.UUID
	Rank            int
	Name            string
	Avatar          string
	Score           float64
	ChallengeScores map[uuid.UUID]float64
	ProblemScores   map[uuid.UUID][]ProblemScore
}

func (e Entry) RankScore() float64 { return e.Score }

func (e Entry) RankName() string { return e.Name }

func (e Entry) WithRank(rank int) Entry {
	e.Rank = rank
	return e
}

// TotalScore is the grand total over all per-challenge scores.
func TotalScore(challengeScores map[uuid.UUID]float64) float64 {
	total := 0.0
	for _, score := range challengeScores {
		total += score
	}
	return total
}
