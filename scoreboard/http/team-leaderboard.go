package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/skillarena/backend/httpjson"
)

func (h *ScoreboardHttpHandler) GetTeamLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	page, limit := pageParams(r)
	locale := localeFromRequest(r)

	lb, err := h.scoreboardSrvc.ComputeTeamLeaderboard(r.Context(), page, limit, locale)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapTeamLeaderboard(lb))
}
