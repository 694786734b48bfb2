package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"
	"github.com/skillarena/backend/challenge"
	"github.com/skillarena/backend/participant"
	"github.com/skillarena/backend/scoreboard"
	"github.com/skillarena/backend/scoreboard/domain"
	scoreboardhttp "github.com/skillarena/backend/scoreboard/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	subs     []domain.SubmRecord
	problems []domain.ProblemRef
	members  []domain.TeamMember
	eligible []domain.EligibleParticipant
	profiles map[uuid.UUID]participant.Profile
	visible  []challenge.Challenge

	failWith error
}

func (s *stubSource) ListSubmissions(_ context.Context, _ []uuid.UUID) ([]domain.SubmRecord, error) {
	return s.subs, s.failWith
}

func (s *stubSource) ListProblems(_ context.Context, _ []uuid.UUID) ([]domain.ProblemRef, error) {
	return s.problems, s.failWith
}

func (s *stubSource) ListTeamMembers(_ context.Context) ([]domain.TeamMember, error) {
	return s.members, s.failWith
}

func (s *stubSource) ListEligible(_ context.Context) ([]domain.EligibleParticipant, error) {
	return s.eligible, s.failWith
}

func (s *stubSource) GetProfiles(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]participant.Profile, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := map[uuid.UUID]participant.Profile{}
	for _, id := range ids {
		if p, ok := s.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (s *stubSource) VisibleChallenges(_ context.Context, _ challenge.Viewer) ([]challenge.Challenge, error) {
	return s.visible, s.failWith
}

func newTestRouter(s *stubSource) http.Handler {
	srvc := scoreboard.NewScoreboardSrvc(s, s, s, s, domain.DefaultScorePolicy())
	handler := scoreboardhttp.NewScoreboardHttpHandler(srvc)

	router := chi.NewRouter()
	router.Use(httplog.RequestLogger(httplog.NewLogger("test", httplog.Options{
		Writer: io.Discard,
	})))
	handler.RegisterRoutes(router)
	return router
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
}

func TestGetLeaderboardSuccess(t *testing.T) {
	challengeID := uuid.New()
	problemID := uuid.New()
	alice := uuid.New()

	s := &stubSource{
		visible:  []challenge.Challenge{{ID: challengeID, Public: true}},
		problems: []domain.ProblemRef{{ID: problemID, ChallengeID: challengeID, Title: "Alpha"}},
		subs: []domain.SubmRecord{{
			ParticipantID: alice,
			ProblemID:     problemID,
			PassedTests:   8,
			TotalTests:    10,
		}},
		profiles: map[uuid.UUID]participant.Profile{
			alice: {ID: alice, Name: "Alice"},
		},
		eligible: []domain.EligibleParticipant{{ID: alice, Name: "Alice"}},
	}

	rec := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "success", env.Status)

	var body scoreboardhttp.IndividualLeaderboardResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, alice.String(), body.Data[0].ID)
	assert.Equal(t, "Alice", body.Data[0].Name)
	assert.Equal(t, 1, body.Data[0].Rank)
	assert.InDelta(t, 8.0, body.Data[0].Score, 1e-9)
	assert.Nil(t, body.Data[0].ProblemScores)
	assert.Equal(t, "Alice", body.BasicInfo.ArchiverName)
	assert.Equal(t, 1, body.BasicInfo.TotalParticipants)
}

func TestGetLeaderboardScopedIncludesProblemDetail(t *testing.T) {
	challengeID := uuid.New()
	problemID := uuid.New()
	alice := uuid.New()

	s := &stubSource{
		visible:  []challenge.Challenge{{ID: challengeID, Public: true}},
		problems: []domain.ProblemRef{{ID: problemID, ChallengeID: challengeID, Title: "Alpha"}},
		subs: []domain.SubmRecord{{
			ParticipantID: alice,
			ProblemID:     problemID,
			PassedTests:   10,
			TotalTests:    10,
		}},
		profiles: map[uuid.UUID]participant.Profile{alice: {ID: alice, Name: "Alice"}},
		eligible: []domain.EligibleParticipant{{ID: alice, Name: "Alice"}},
	}

	rec := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(rec, httptest.NewRequest(
		http.MethodGet, "/leaderboard?challenge="+challengeID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var body scoreboardhttp.IndividualLeaderboardResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	require.Len(t, body.Data, 1)
	require.Contains(t, body.Data[0].ProblemScores, challengeID.String())
	detail := body.Data[0].ProblemScores[challengeID.String()]
	require.Len(t, detail, 1)
	assert.Equal(t, "Alpha", detail[0].Title)
	assert.InDelta(t, 10.0, detail[0].Score, 1e-9)
}

func TestGetLeaderboardMalformedScopeRedirects(t *testing.T) {
	s := &stubSource{}

	rec := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(rec, httptest.NewRequest(
		http.MethodGet, "/leaderboard?challenge=not-a-uuid", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/leaderboard", rec.Header().Get("Location"))
}

func TestGetLeaderboardInvisibleScopeRedirects(t *testing.T) {
	s := &stubSource{
		visible: []challenge.Challenge{{ID: uuid.New(), Public: true}},
	}

	rec := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(rec, httptest.NewRequest(
		http.MethodGet, "/leaderboard?challenge="+uuid.NewString(), nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/leaderboard", rec.Header().Get("Location"))
}

func TestGetLeaderboardUnavailable(t *testing.T) {
	s := &stubSource{failWith: errors.New("db down")}

	rec := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, scoreboard.ErrCodeLeaderboardUnavailable, env.Code)
	assert.NotContains(t, env.Message, "db down", "debug detail stays out of the response")
}

func TestGetTeamLeaderboard(t *testing.T) {
	challengeID := uuid.New()
	problemID := uuid.New()
	alice := uuid.New()
	teamID := uuid.New()

	s := &stubSource{
		problems: []domain.ProblemRef{{ID: problemID, ChallengeID: challengeID, Title: "Alpha"}},
		subs: []domain.SubmRecord{{
			ParticipantID: alice,
			ProblemID:     problemID,
			PassedTests:   6,
			TotalTests:    10,
		}},
		members: []domain.TeamMember{
			{TeamID: teamID, TeamName: "Bears", UserID: alice, Name: "Alice"},
		},
	}

	rec := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaderboard/teams", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "success", env.Status)

	var body scoreboardhttp.TeamLeaderboardResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Bears", body.Data[0].Name)
	assert.Equal(t, 1, body.Data[0].Rank)
	assert.InDelta(t, 6.0, body.Data[0].Score, 1e-9)
	require.Len(t, body.Data[0].Members, 1)
	assert.Equal(t, alice.String(), body.Data[0].Members[0].ID)
	assert.False(t, body.HasMore)
}
