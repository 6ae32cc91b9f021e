package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/company-directory/internal/config"
	"github.com/heartmarshall/company-directory/internal/domain"
)

const maxBodyBytes = 1 << 20

var errBadBody = errors.New("invalid request body")

// pathID reads a positive int64 route variable.
func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// pager turns skip/limit query parameters into a domain.Page.
type pager struct {
	defaultLimit int
	maxLimit     int
}

func newPager(cfg config.SearchConfig) pager {
	return pager{defaultLimit: cfg.DefaultLimit, maxLimit: cfg.MaxLimit}
}

func (p pager) page(r *http.Request) (domain.Page, error) {
	q := r.URL.Query()
	page := domain.Page{Skip: 0, Limit: p.defaultLimit}
	var errs []domain.FieldError

	if raw := q.Get("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "skip", Message: "must be an integer"})
		}
		page.Skip = v
	}
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		case v > p.maxLimit:
			errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be <= %d", p.maxLimit)})
		}
		page.Limit = v
	}

	if len(errs) > 0 {
		return domain.Page{}, &domain.ValidationError{Errors: errs}
	}
	return page, nil
}

// queryString returns a required, trimmed query parameter.
func queryString(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return "", domain.NewValidationError(name, "required")
	}
	return v, nil
}

// queryFloats parses the named required float parameters. All failures are collected.
func queryFloats(r *http.Request, names ...string) ([]float64, error) {
	q := r.URL.Query()
	out := make([]float64, len(names))
	var errs []domain.FieldError

	for i, name := range names {
		raw := q.Get(name)
		if raw == "" {
			errs = append(errs, domain.FieldError{Field: name, Message: "required"})
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: name, Message: "must be a number"})
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, domain.FieldError{Field: name, Message: "must be a finite number"})
			continue
		}
		out[i] = v
	}

	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}
	return out, nil
}

// decodeBody decodes a JSON request body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", errBadBody)
		}
		return fmt.Errorf("%w: %v", errBadBody, err)
	}
	return nil
}
