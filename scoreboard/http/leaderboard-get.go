package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"
	"github.com/skillarena/backend/httpjson"
	"github.com/skillarena/backend/scoreboard"
	"github.com/skillarena/backend/srvcerror"
)

const defaultPageLimit = 10

func (h *ScoreboardHttpHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	var scope *uuid.UUID
	if param := r.URL.Query().Get("challenge"); param != "" {
		id, err := uuid.Parse(param)
		if err != nil {
			// malformed scope behaves like an invisible one: back to default
			http.Redirect(w, r, r.URL.Path, http.StatusFound)
			return
		}
		scope = &id
	}

	page, limit := pageParams(r)
	viewer := viewerFromRequest(r)
	locale := localeFromRequest(r)

	lb, err := h.scoreboardSrvc.ComputeIndividualLeaderboard(
		r.Context(), viewer, scope, page, limit, locale)
	if err != nil {
		srvcErr := &srvcerror.Error{}
		if errors.As(err, &srvcErr) && srvcErr.ErrorCode() == scoreboard.ErrCodeScopeNotVisible {
			http.Redirect(w, r, r.URL.Path, http.StatusFound)
			return
		}
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapIndividualLeaderboard(lb))
}

func pageParams(r *http.Request) (page int, limit int) {
	page = 1
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	limit = defaultPageLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}
