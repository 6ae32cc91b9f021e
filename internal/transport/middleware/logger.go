package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/company-directory/pkg/ctxutil"
)

// Logger logs each request as "http.request" with method, path, status,
// response size, duration and the request id and client ip from context.
// Requests to quiet paths (health checks, metrics scrapes) are logged at Debug.
// 5xx responses are logged at Error.
func Logger(logger *slog.Logger, quiet ...string) Middleware {
	quietPaths := make(map[string]struct{}, len(quiet))
	for _, p := range quiet {
		quietPaths[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			level := slog.LevelInfo
			if _, ok := quietPaths[r.URL.Path]; ok {
				level = slog.LevelDebug
			}
			if sw.status >= 500 {
				level = slog.LevelError
			}
			if !logger.Enabled(r.Context(), level) {
				return
			}

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if r.URL.RawQuery != "" {
				attrs = append(attrs, slog.String("query", r.URL.RawQuery))
			}
			if ip, ok := ctxutil.ClientIPFromCtx(r.Context()); ok {
				attrs = append(attrs, slog.String("client_ip", ip.String()))
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}
