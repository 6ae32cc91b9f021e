package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

// APIKeyHeader is the header that carries the shared API key.
const APIKeyHeader = "X-API-Key"

// APIKey returns middleware that rejects requests whose X-API-Key header
// does not match key. Paths listed in public are served without a key.
func APIKey(logger *slog.Logger, key string, public ...string) Middleware {
	expected := []byte(key)
	open := make(map[string]struct{}, len(public))
	for _, p := range public {
		open[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := open[r.URL.Path]; ok || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			presented := r.Header.Get(APIKeyHeader)
			if presented == "" || subtle.ConstantTimeCompare([]byte(presented), expected) != 1 {
				logger.WarnContext(r.Context(), "api key rejected",
					slog.String("path", r.URL.Path),
					slog.Bool("present", presented != ""),
				)
				writeError(w, http.StatusUnauthorized, "invalid or missing API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
