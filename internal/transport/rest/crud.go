package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/company-directory/internal/domain"
	"github.com/heartmarshall/company-directory/internal/transport/validate"
)

// crudService is the capability every directory entity exposes to the
// generic handlers. T is the entity, C and U its create and update inputs.
type crudService[T, C, U any] interface {
	Get(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context, page domain.Page) ([]T, error)
	Create(ctx context.Context, input C) (*T, error)
	Update(ctx context.Context, input U) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// crud produces the five CRUD handlers for one entity. R is the response DTO.
type crud[T, C, U, R any] struct {
	svc   crudService[T, C, U]
	log   *slog.Logger
	pager pager

	// decodeCreate and decodeUpdate turn a request body into service input.
	decodeCreate func(w http.ResponseWriter, r *http.Request) (C, error)
	decodeUpdate func(w http.ResponseWriter, r *http.Request, id int64) (U, error)
	present      func(ctx context.Context, items []T) ([]R, error)
}

func (c *crud[T, C, U, R]) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, c.log, err)
		return
	}

	item, err := c.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, c.log, err)
		return
	}
	c.writeOne(w, r, http.StatusOK, item)
}

func (c *crud[T, C, U, R]) list(w http.ResponseWriter, r *http.Request) {
	page, err := c.pager.page(r)
	if err != nil {
		handleError(w, r, c.log, err)
		return
	}

	items, err := c.svc.List(r.Context(), page)
	if err != nil {
		handleError(w, r, c.log, err)
		return
	}
	c.writeMany(w, r, items)
}

func (c *crud[T, C, U, R]) create(w http.ResponseWriter, r *http.Request) {
	input, err := c.decodeCreate(w, r)
	if err != nil {
		handleError(w, r, c.log, err)
		return
	}

	item, err := c.svc.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, c.log, err)
		return
	}
	c.writeOne(w, r, http.StatusCreated, item)
}

func (c *crud[T, C, U, R]) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, c.log, err)
		return
	}

	input, err := c.decodeUpdate(w, r, id)
	if err != nil {
		handleError(w, r, c.log, err)
		return
	}

	item, err := c.svc.Update(r.Context(), input)
	if err != nil {
		handleError(w, r, c.log, err)
		return
	}
	c.writeOne(w, r, http.StatusOK, item)
}

func (c *crud[T, C, U, R]) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, c.log, err)
		return
	}

	if err := c.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, c.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *crud[T, C, U, R]) writeOne(w http.ResponseWriter, r *http.Request, status int, item *T) {
	out, err := c.present(r.Context(), []T{*item})
	if err != nil {
		handleError(w, r, c.log, err)
		return
	}
	writeJSON(w, status, out[0])
}

func (c *crud[T, C, U, R]) writeMany(w http.ResponseWriter, r *http.Request, items []T) {
	out, err := c.present(r.Context(), items)
	if err != nil {
		handleError(w, r, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// decodeValid decodes the body into a fresh D and runs schema validation on it.
func decodeValid[D any](w http.ResponseWriter, r *http.Request, v *validate.Validator) (D, error) {
	var dst D
	if err := decodeBody(w, r, &dst); err != nil {
		return dst, err
	}
	if err := v.Struct(dst); err != nil {
		return dst, err
	}
	return dst, nil
}

// mapSlice presents items with a pure conversion function.
func mapSlice[T, R any](fn func(T) R) func(context.Context, []T) ([]R, error) {
	return func(_ context.Context, items []T) ([]R, error) {
		out := make([]R, len(items))
		for i, item := range items {
			out[i] = fn(item)
		}
		return out, nil
	}
}
