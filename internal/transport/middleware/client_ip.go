package middleware

import (
	"net"
	"net/http"
	"net/netip"

	"github.com/heartmarshall/company-directory/pkg/ctxutil"
)

// ClientIP stores the peer address of the request in the context.
// Forwarding headers are not trusted.
func ClientIP() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ip, ok := remoteIP(r); ok {
				r = r.WithContext(ctxutil.WithClientIP(r.Context(), ip))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func remoteIP(r *http.Request) (netip.Addr, bool) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	ip, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false
	}
	return ip.Unmap(), true
}

// clientAddr identifies the caller for per-client limits. Requests without a
// parseable peer address share the zero Addr.
func clientAddr(r *http.Request) netip.Addr {
	if ip, ok := ctxutil.ClientIPFromCtx(r.Context()); ok {
		return ip
	}
	ip, _ := remoteIP(r)
	return ip
}
