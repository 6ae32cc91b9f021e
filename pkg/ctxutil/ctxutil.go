// Package ctxutil carries request-scoped identifiers through context.
package ctxutil

import (
	"context"
	"net/netip"
)

type ctxKey string

const (
	clientIPKey  ctxKey = "client_ip"
	requestIDKey ctxKey = "request_id"
)

// WithClientIP stores the caller address in the context.
func WithClientIP(ctx context.Context, ip netip.Addr) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// ClientIPFromCtx extracts the caller address from the context.
// Returns the zero Addr and false if the value is missing, invalid, or wrong type.
func ClientIPFromCtx(ctx context.Context) (netip.Addr, bool) {
	ip, ok := ctx.Value(clientIPKey).(netip.Addr)
	if !ok || !ip.IsValid() {
		return netip.Addr{}, false
	}
	return ip, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
