package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/company-directory/internal/domain"
)

// errorResponse is the JSON body of every non-2xx answer.
type errorResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields,omitempty"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps a service error to an HTTP status and writes it.
// Unexpected errors are logged and hidden behind a generic message.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	if errors.Is(err, errBadBody) {
		writeError(w, http.StatusBadRequest, errBadBody.Error())
		return
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		fields := make([]fieldErrorResponse, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			fields = append(fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "validation failed",
			Fields: fields,
		})
		return
	}

	var derr *domain.DependencyError
	if errors.As(err, &derr) {
		writeError(w, http.StatusNotFound, capitalize(derr.Error()))
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrDependencyMissing):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
