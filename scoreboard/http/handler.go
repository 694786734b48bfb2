package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/skillarena/backend/auth"
	"github.com/skillarena/backend/challenge"
	"github.com/skillarena/backend/scoreboard"
)

type ScoreboardHttpHandler struct {
	scoreboardSrvc *scoreboard.ScoreboardSrvc
}

func NewScoreboardHttpHandler(scoreboardSrvc *scoreboard.ScoreboardSrvc) *ScoreboardHttpHandler {
	return &ScoreboardHttpHandler{
		scoreboardSrvc: scoreboardSrvc,
	}
}

func (h *ScoreboardHttpHandler) RegisterRoutes(r chi.Router) {
	r.Get("/leaderboard", h.GetLeaderboard)
	r.Get("/leaderboard/teams", h.GetTeamLeaderboard)
}

func viewerFromRequest(r *http.Request) challenge.Viewer {
	claims, ok := r.Context().Value(auth.CtxJwtClaimsKey).(*auth.JwtClaims)
	if !ok || claims == nil {
		return challenge.Viewer{}
	}
	id, err := uuid.Parse(claims.UUID)
	if err != nil {
		return challenge.Viewer{}
	}
	return challenge.Viewer{ID: id, Admin: claims.IsAdmin()}
}

func localeFromRequest(r *http.Request) string {
	if locale := r.URL.Query().Get("locale"); locale != "" {
		return locale
	}
	claims, ok := r.Context().Value(auth.CtxJwtClaimsKey).(*auth.JwtClaims)
	if ok && claims != nil && claims.Locale != "" {
		return claims.Locale
	}
	return "en"
}
