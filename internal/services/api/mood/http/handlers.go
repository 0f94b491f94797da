// Package http provides http transport for moods
package http

import (
	stdhttp "net/http"

	"inkwell/internal/modkit/httpkit"
	perr "inkwell/internal/platform/errors"
	"inkwell/internal/services/api/mood/domain"
	svc "inkwell/internal/services/api/mood/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Register mounts mood endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/stats", h.stats)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

// @Summary Record a mood rating
// @Tags Mood
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Rating"
// @Success 201 {object} domain.Mood "created"
// @Router /mood [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	m, err := h.svc.Create(r.Context(), uid, in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(m), nil
}

// @Summary List mood ratings
// @Tags Mood
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size"
// @Success 200 {array} domain.Mood "ok"
// @Router /mood [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	skip, err := httpkit.QueryInt(r, "skip", 0)
	if err != nil {
		return nil, err
	}
	limit, err := httpkit.QueryInt(r, "limit", 0)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), uid, domain.ListQuery{Skip: skip, Limit: limit})
}

// @Summary Mood statistics over a window
// @Tags Mood
// @Produce json
// @Param days query int false "Window in days, 1 to 365"
// @Success 200 {object} analytics.MoodResult "ok"
// @Router /mood/stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	days, err := httpkit.QueryInt(r, "days", 0)
	if err != nil {
		return nil, err
	}
	return h.svc.Stats(r.Context(), uid, days)
}

// @Summary Delete a mood rating
// @Tags Mood
// @Param id path string true "Mood id"
// @Success 204 "deleted"
// @Router /mood/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return nil, perr.WithField(perr.InvalidArgf("invalid mood id"), "id")
	}
	if err := h.svc.Delete(r.Context(), uid, id); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
