// Package http provides http transport for insights
package http

import (
	stdhttp "net/http"

	"inkwell/internal/modkit/httpkit"
	svc "inkwell/internal/services/api/insights/service"

	"github.com/google/uuid"
)

// Register mounts insight endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.insights)
	httpkit.Get(r, "/stats", h.stats)
	httpkit.Get(r, "/sentiment", h.sentiment)
}

type handlers struct{ svc svc.Service }

// @Summary Writing statistics over a window
// @Tags Insights
// @Produce json
// @Param days query int false "Window in days, 1 to 365"
// @Success 200 {object} analytics.StatsResult "ok"
// @Router /insights/stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	uid, days, err := scoped(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Stats(r.Context(), uid, days)
}

// @Summary Sentiment aggregates over a window
// @Tags Insights
// @Produce json
// @Param days query int false "Window in days, 1 to 365"
// @Success 200 {object} analytics.SentimentResult "ok"
// @Router /insights/sentiment [get]
func (h *handlers) sentiment(r *stdhttp.Request) (any, error) {
	uid, days, err := scoped(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Sentiment(r.Context(), uid, days)
}

// @Summary Full synthesized insight view
// @Tags Insights
// @Produce json
// @Param days query int false "Window in days, 1 to 365"
// @Success 200 {object} analytics.InsightResult "ok"
// @Router /insights [get]
func (h *handlers) insights(r *stdhttp.Request) (any, error) {
	uid, days, err := scoped(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Insights(r.Context(), uid, days)
}

func scoped(r *stdhttp.Request) (uuid.UUID, int, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return uuid.Nil, 0, err
	}
	days, err := httpkit.QueryInt(r, "days", 0)
	return uid, days, err
}
