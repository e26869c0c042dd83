package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/real-time-ressys/services/resource-service/internal/application/resource"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/transport/http/dto"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/transport/http/response"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/transport/http/validate"
)

// Service is the CRUD surface a resource handler drives.
type Service[R, C, U any] interface {
	List(ctx context.Context, offset, limit int) ([]R, error)
	Get(ctx context.Context, id int64) (R, error)
	Create(ctx context.Context, in C) (R, error)
	Update(ctx context.Context, id int64, in U) (R, error)
	Delete(ctx context.Context, id int64) (resource.Deleted, error)
}

// ResourceHandler serves the five CRUD routes of one resource.
type ResourceHandler[R, C, U any] struct {
	svc     Service[R, C, U]
	idParam string

	decodeCreate func(*http.Request) (C, error)
	decodeUpdate func(*http.Request) (U, error)
}

func (h *ResourceHandler[R, C, U]) IDParam() string { return h.idParam }

func (h *ResourceHandler[R, C, U]) List(w http.ResponseWriter, r *http.Request) {
	offset, err := validate.QueryInt(r, resource.DefaultOffset, "skip", "offset")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	limit, err := validate.QueryInt(r, resource.DefaultLimit, "limit")
	if err != nil {
		response.Err(w, r, err)
		return
	}

	items, err := h.svc.List(r.Context(), offset, limit)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ResourceHandler[R, C, U]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, rec)
}

func (h *ResourceHandler[R, C, U]) Create(w http.ResponseWriter, r *http.Request) {
	in, err := h.decodeCreate(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	rec, err := h.svc.Create(r.Context(), in)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, rec)
}

func (h *ResourceHandler[R, C, U]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	in, err := h.decodeUpdate(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	rec, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, rec)
}

func (h *ResourceHandler[R, C, U]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	res, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.DeletedMessage(res.Message))
}

func (h *ResourceHandler[R, C, U]) pathID(r *http.Request) (int64, error) {
	return validate.ParseID(h.idParam, chi.URLParam(r, h.idParam))
}

// decodeValidated decodes the body into Req, runs its validate tags and maps it
// to the service input.
func decodeValidated[Req interface{ ToDomain() In }, In any](r *http.Request) (In, error) {
	var req Req
	var zero In
	if err := validate.DecodeJSON(r, &req); err != nil {
		return zero, err
	}
	if err := validate.Struct(req); err != nil {
		return zero, err
	}
	return req.ToDomain(), nil
}
