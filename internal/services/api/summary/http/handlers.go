// Package http provides http transport for daily summaries
package http

import (
	stdhttp "net/http"
	"time"

	"inkwell/internal/core/localday"
	"inkwell/internal/modkit/httpkit"
	perr "inkwell/internal/platform/errors"
	"inkwell/internal/services/api/summary/domain"
	svc "inkwell/internal/services/api/summary/service"

	"github.com/go-chi/chi/v5"
)

// Register mounts summary endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// generate or return the cached summary for a day
	httpkit.PostJSON[domain.GenerateInput](r, "/generate", h.generate)

	// cached summaries newest first
	httpkit.Get(r, "/", h.list)

	// one summary by local date
	httpkit.Get(r, "/{date}", h.byDate)
}

type handlers struct{ svc svc.Service }

// @Summary Generate the daily summary
// @Tags Summary
// @Accept json
// @Produce json
// @Param payload body domain.GenerateInput true "Day to summarize, defaults to today"
// @Success 200 {object} domain.Summary "ok"
// @Router /summary/generate [post]
func (h *handlers) generate(r *stdhttp.Request, in domain.GenerateInput) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	day := localday.FromTime(time.Now())
	if in.Date != "" {
		if day, err = parseDate(in.Date); err != nil {
			return nil, err
		}
	}
	return h.svc.GetOrCreate(r.Context(), uid, day)
}

// @Summary List daily summaries
// @Tags Summary
// @Produce json
// @Success 200 {array} domain.Summary "ok"
// @Router /summary [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	limit, err := httpkit.QueryInt(r, "limit", 0)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), uid, limit)
}

// @Summary Get the summary for a date
// @Tags Summary
// @Produce json
// @Param date path string true "Local date YYYY-MM-DD"
// @Success 200 {object} domain.Summary "ok"
// @Router /summary/{date} [get]
func (h *handlers) byDate(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	day, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		return nil, err
	}
	return h.svc.ByDay(r.Context(), uid, day)
}

func parseDate(s string) (localday.Day, error) {
	day, err := localday.Parse(s)
	if err != nil {
		return localday.Day{}, perr.WithField(perr.InvalidArgf("invalid date, want YYYY-MM-DD"), "date")
	}
	return day, nil
}
