package middleware

import (
	"net/http"
	"strconv"

	"github.com/heartmarshall/company-directory/internal/config"
)

// exposedHeaders are response headers browsers may read cross-origin.
const exposedHeaders = RequestIDHeader + ", Retry-After"

// CORS answers preflight requests and stamps allowed origins on the rest.
// A plain OPTIONS without Access-Control-Request-Method falls through to next.
func CORS(cfg config.CORSConfig) Middleware {
	anyOrigin := false
	origins := make(map[string]struct{})
	for _, o := range cfg.Origins() {
		if o == "*" {
			anyOrigin = true
			continue
		}
		origins[o] = struct{}{}
	}
	allowed := func(origin string) bool {
		if anyOrigin {
			return true
		}
		_, ok := origins[origin]
		return ok
	}
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			if origin := r.Header.Get("Origin"); origin != "" && allowed(origin) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
