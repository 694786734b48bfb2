package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/skillarena/backend/scoreboard/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectPlaceholdersAppendsMissing(t *testing.T) {
	competing := uuid.New()
	absent := uuid.New()

	entries := []domain.Entry{
		{ID: competing, Name: "Ann", Score: 7, Rank: 1},
	}
	eligible := []domain.EligibleParticipant{
		{ID: competing, Name: "Ann"},
		{ID: absent, Name: "Dee"},
	}

	out := domain.InjectPlaceholders(entries, eligible)

	require.Len(t, out, 2)
	assert.Equal(t, "Dee", out[1].Name)
	assert.Zero(t, out[1].Score)
	assert.Equal(t, 2, out[1].Rank)
	assert.NotNil(t, out[1].ChallengeScores)
	assert.NotNil(t, out[1].ProblemScores)
}

func TestInjectPlaceholdersNoDuplicates(t *testing.T) {
	id := uuid.New()
	entries := []domain.Entry{{ID: id, Name: "Ann", Score: 3}}
	eligible := []domain.EligibleParticipant{
		{ID: id, Name: "Ann"},
		{ID: id, Name: "Ann again"},
	}

	out := domain.InjectPlaceholders(entries, eligible)

	assert.Len(t, out, 1)
}

func TestPlaceholderSortsBelowScorersAfterRanking(t *testing.T) {
	entries := []domain.Entry{
		{ID: uuid.New(), Name: "Bob", Score: 10},
		{ID: uuid.New(), Name: "Ann", Score: 10},
		{ID: uuid.New(), Name: "Cy", Score: 5},
	}
	eligible := []domain.EligibleParticipant{{ID: uuid.New(), Name: "Dee"}}

	out := domain.AssignRanks(domain.NewRanker("en"),
		domain.InjectPlaceholders(entries, eligible))

	require.Len(t, out, 4)
	assert.Equal(t, "Dee", out[3].Name)
	assert.Equal(t, 4, out[3].Rank)
}

func TestInjectPlaceholdersEmptyBoard(t *testing.T) {
	eligible := []domain.EligibleParticipant{
		{ID: uuid.New(), Name: "Ann"},
		{ID: uuid.New(), Name: "Bob"},
	}

	out := domain.InjectPlaceholders(nil, eligible)

	require.Len(t, out, 2)
	for _, e := range out {
		assert.Zero(t, e.Score)
	}
}
