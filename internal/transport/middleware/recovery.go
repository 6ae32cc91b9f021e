package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/company-directory/pkg/ctxutil"
)

// Recovery turns a panic in a handler into a JSON 500 and logs it with a
// stack trace. http.ErrAbortHandler is re-raised so net/http can abort the
// connection quietly.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)
				// Headers already on the wire cannot be replaced.
				if sw.wroteHeader {
					return
				}
				writeError(w, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(sw, r)
		})
	}
}
