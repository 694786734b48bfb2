package domain

import "github.com/google/uuid"

// TeamMember is one team-membership row with display metadata.
type TeamMember struct {
	TeamID   uuid.UUID
	TeamName string
	UserID   uuid.UUID
	Name     string
	Avatar   string
}

// MemberInfo is the display view of a member inside a team aggregate.
type MemberInfo struct {
	UserID uuid.UUID
	Name   string
	Avatar string
}

// TeamAggregate is one team's row on the team leaderboard, built by folding
// every member's per-challenge and per-problem scores into the team's maps.
type TeamAggregate struct {
	TeamID          uuid.UUID
	Rank            int
	Name            string
	Members         []MemberInfo
	ChallengeScores map[uuid.UUID]float64
	ProblemScores   map[uuid.UUID][]ProblemScore
	Score           float64
	Avatars         []string
}

func (t TeamAggregate) RankScore() float64 { return t.Score }

func (t TeamAggregate) RankName() string { return t.Name }

func (t TeamAggregate) WithRank(rank int) TeamAggregate {
	t.Rank = rank
	return t
}

// RollupTeams groups members by team and folds each member's challenge sums
// and per-problem detail into the team's maps. Members without any score data
// still count as members. After all members are folded in, each challenge
// bucket of the problem detail is consolidated: list entries sharing a
// problem id are merged into one entry whose score is the sum of the
// duplicates. The team score is the sum of the team's challenge scores.
func RollupTeams(
	members []TeamMember,
	challengeScores map[uuid.UUID]map[uuid.UUID]float64,
	problemScores map[uuid.UUID]map[uuid.UUID][]ProblemScore,
) []TeamAggregate {
	byTeam := make(map[uuid.UUID]*TeamAggregate)
	order := make([]uuid.UUID, 0)

	for _, m := range members {
		team, ok := byTeam[m.TeamID]
		if !ok {
			team = &TeamAggregate{
				TeamID:          m.TeamID,
				Name:            m.TeamName,
				ChallengeScores: map[uuid.UUID]float64{},
				ProblemScores:   map[uuid.UUID][]ProblemScore{},
			}
			byTeam[m.TeamID] = team
			order = append(order, m.TeamID)
		}

		team.Members = append(team.Members, MemberInfo{
			UserID: m.UserID,
			Name:   m.Name,
			Avatar: m.Avatar,
		})
		if m.Avatar != "" {
			team.Avatars = append(team.Avatars, m.Avatar)
		}

		for challengeID, score := range challengeScores[m.UserID] {
			team.ChallengeScores[challengeID] += score
		}
		for challengeID, problems := range problemScores[m.UserID] {
			team.ProblemScores[challengeID] = append(team.ProblemScores[challengeID], problems...)
		}
	}

	teams := make([]TeamAggregate, 0, len(order))
	for _, teamID := range order {
		team := byTeam[teamID]
		for challengeID := range team.ProblemScores {
			team.ProblemScores[challengeID] = consolidateProblemScores(team.ProblemScores[challengeID])
		}
		team.Score = TotalScore(team.ChallengeScores)
		teams = append(teams, *team)
	}
	return teams
}

// consolidateProblemScores merges list entries sharing a problem id into one
// entry with the summed score, keeping first-seen order. The merge is
// required for a correct team total when member score data overlaps.
func consolidateProblemScores(scores []ProblemScore) []ProblemScore {
	index := make(map[uuid.UUID]int, len(scores))
	merged := make([]ProblemScore, 0, len(scores))
	for _, ps := range scores {
		if i, ok := index[ps.ProblemID]; ok {
			merged[i].Score += ps.Score
			continue
		}
		index[ps.ProblemID] = len(merged)
		merged = append(merged, ps)
	}
	return merged
}
