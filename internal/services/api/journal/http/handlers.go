// Package http provides http transport for journal entries
package http

import (
	stdhttp "net/http"

	"inkwell/internal/modkit/httpkit"
	perr "inkwell/internal/platform/errors"
	"inkwell/internal/services/api/journal/domain"
	svc "inkwell/internal/services/api/journal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Register mounts journal endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Get(r, "/", h.list)

	// assistant reply, does not persist anything
	httpkit.PostJSON[domain.ReplyInput](r, "/reply", h.reply)

	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.UpdateInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

// @Summary Create a journal entry
// @Tags Journal
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Entry"
// @Success 201 {object} domain.Entry "created"
// @Router /journal [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	e, err := h.svc.Create(r.Context(), uid, in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(e), nil
}

// @Summary List journal entries
// @Tags Journal
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size"
// @Success 200 {array} domain.Entry "ok"
// @Router /journal [get]
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

// @Summary Get a journal entry
// @Tags Journal
// @Produce json
// @Param id path string true "Entry id"
// @Success 200 {object} domain.Entry "ok"
// @Router /journal/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	uid, id, err := scoped(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), uid, id)
}

// @Summary Update a journal entry
// @Tags Journal
// @Accept json
// @Produce json
// @Param id path string true "Entry id"
// @Param payload body domain.UpdateInput true "Fields to change"
// @Success 200 {object} domain.Entry "ok"
// @Router /journal/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	uid, id, err := scoped(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), uid, id, in)
}

// @Summary Delete a journal entry
// @Tags Journal
// @Param id path string true "Entry id"
// @Success 204 "deleted"
// @Router /journal/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	uid, id, err := scoped(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), uid, id); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// @Summary Assistant reply to a draft entry
// @Tags Journal
// @Accept json
// @Produce json
// @Param payload body domain.ReplyInput true "Draft"
// @Success 200 {object} domain.ReplyOutput "ok"
// @Router /journal/reply [post]
func (h *handlers) reply(r *stdhttp.Request, in domain.ReplyInput) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Reply(r.Context(), uid, in)
}

func scoped(r *stdhttp.Request) (userID, id uuid.UUID, err error) {
	if userID, err = httpkit.UserUUID(r); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err = uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, perr.WithField(perr.InvalidArgf("invalid entry id"), "id")
	}
	return userID, id, nil
}
