package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/skillarena/backend/scoreboard/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollupTeamsFoldsMemberScores(t *testing.T) {
	teamID := uuid.New()
	challengeID := uuid.New()
	alice, bob := uuid.New(), uuid.New()
	p1, p2 := uuid.New(), uuid.New()

	members := []domain.TeamMember{
		{TeamID: teamID, TeamName: "Bears", UserID: alice, Name: "Alice", Avatar: "a.png"},
		{TeamID: teamID, TeamName: "Bears", UserID: bob, Name: "Bob"},
	}
	challengeScores := map[uuid.UUID]map[uuid.UUID]float64{
		alice: {challengeID: 7},
		bob:   {challengeID: 5},
	}
	problemScores := map[uuid.UUID]map[uuid.UUID][]domain.ProblemScore{
		alice: {challengeID: {{ProblemID: p1, ChallengeID: challengeID, Title: "A", Score: 7}}},
		bob:   {challengeID: {{ProblemID: p2, ChallengeID: challengeID, Title: "B", Score: 5}}},
	}

	teams := domain.RollupTeams(members, challengeScores, problemScores)

	require.Len(t, teams, 1)
	team := teams[0]
	assert.Equal(t, "Bears", team.Name)
	assert.Len(t, team.Members, 2)
	assert.Equal(t, []string{"a.png"}, team.Avatars)
	assert.InDelta(t, 12.0, team.ChallengeScores[challengeID], 1e-9)
	assert.InDelta(t, 12.0, team.Score, 1e-9)
}

func TestRollupTeamsConsolidatesDuplicateProblems(t *testing.T) {
	teamID := uuid.New()
	challengeID := uuid.New()
	alice, bob := uuid.New(), uuid.New()
	shared := uuid.New()

	members := []domain.TeamMember{
		{TeamID: teamID, TeamName: "Bears", UserID: alice, Name: "Alice"},
		{TeamID: teamID, TeamName: "Bears", UserID: bob, Name: "Bob"},
	}
	challengeScores := map[uuid.UUID]map[uuid.UUID]float64{
		alice: {challengeID: 6},
		bob:   {challengeID: 4},
	}
	problemScores := map[uuid.UUID]map[uuid.UUID][]domain.ProblemScore{
		alice: {challengeID: {{ProblemID: shared, ChallengeID: challengeID, Title: "Shared", Score: 6}}},
		bob:   {challengeID: {{ProblemID: shared, ChallengeID: challengeID, Title: "Shared", Score: 4}}},
	}

	teams := domain.RollupTeams(members, challengeScores, problemScores)

	require.Len(t, teams, 1)
	team := teams[0]
	require.Len(t, team.ProblemScores[challengeID], 1)
	assert.InDelta(t, 10.0, team.ProblemScores[challengeID][0].Score, 1e-9)
}

func TestRollupTeamsScoreMatchesConsolidatedProblems(t *testing.T) {
	teamID := uuid.New()
	challengeA, challengeB := uuid.New(), uuid.New()
	alice, bob := uuid.New(), uuid.New()
	p1, p2, p3 := uuid.New(), uuid.New(), uuid.New()

	members := []domain.TeamMember{
		{TeamID: teamID, TeamName: "Bears", UserID: alice, Name: "Alice"},
		{TeamID: teamID, TeamName: "Bears", UserID: bob, Name: "Bob"},
	}
	challengeScores := map[uuid.UUID]map[uuid.UUID]float64{
		alice: {challengeA: 9, challengeB: 4},
		bob:   {challengeA: 3},
	}
	problemScores := map[uuid.UUID]map[uuid.UUID][]domain.ProblemScore{
		alice: {
			challengeA: {
				{ProblemID: p1, ChallengeID: challengeA, Score: 6},
				{ProblemID: p2, ChallengeID: challengeA, Score: 3},
			},
			challengeB: {{ProblemID: p3, ChallengeID: challengeB, Score: 4}},
		},
		bob: {
			challengeA: {{ProblemID: p1, ChallengeID: challengeA, Score: 3}},
		},
	}

	teams := domain.RollupTeams(members, challengeScores, problemScores)

	require.Len(t, teams, 1)
	team := teams[0]

	problemTotal := 0.0
	for _, list := range team.ProblemScores {
		for _, ps := range list {
			problemTotal += ps.Score
		}
	}
	assert.InDelta(t, team.Score, problemTotal, 1e-9)
	assert.InDelta(t, 16.0, team.Score, 1e-9)
}

func TestRollupTeamsMembersWithoutScores(t *testing.T) {
	teamID := uuid.New()
	lurker := uuid.New()

	members := []domain.TeamMember{
		{TeamID: teamID, TeamName: "Bears", UserID: lurker, Name: "Lurker"},
	}

	teams := domain.RollupTeams(members, nil, nil)

	require.Len(t, teams, 1)
	assert.Len(t, teams[0].Members, 1)
	assert.Zero(t, teams[0].Score)
}

func TestRollupTeamsSeparateTeams(t *testing.T) {
	teamA, teamB := uuid.New(), uuid.New()
	challengeID := uuid.New()
	alice, bob := uuid.New(), uuid.New()

	members := []domain.TeamMember{
		{TeamID: teamA, TeamName: "Bears", UserID: alice, Name: "Alice"},
		{TeamID: teamB, TeamName: "Wolves", UserID: bob, Name: "Bob"},
	}
	challengeScores := map[uuid.UUID]map[uuid.UUID]float64{
		alice: {challengeID: 6},
		bob:   {challengeID: 9},
	}

	teams := domain.RollupTeams(members, challengeScores, nil)

	require.Len(t, teams, 2)
	scores := map[string]float64{}
	for _, team := range teams {
		scores[team.Name] = team.Score
	}
	assert.InDelta(t, 6.0, scores["Bears"], 1e-9)
	assert.InDelta(t, 9.0, scores["Wolves"], 1e-9)
}
