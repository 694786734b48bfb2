package scoreboard

import (
	"net/http"

	"github.com/skillarena/backend/srvcerror"
)

const ErrCodeScopeNotVisible = "challenge_not_visible"

func newErrScopeNotVisible() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeScopeNotVisible,
		"requested challenge is not available",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeLeaderboardUnavailable = "leaderboard_unavailable"

func newErrLeaderboardUnavailable(cause error) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeLeaderboardUnavailable,
		"leaderboard temporarily unavailable",
	).SetHttpStatusCode(http.StatusServiceUnavailable).SetDebug(cause)
}
