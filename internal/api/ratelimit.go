package api

import (
	"net"
	"net/http"
	"strings"

	"github.com/recordcandy/recordcandy-server/internal/ratelimit"
)

// searchRateLimit rejects search requests from clients that exceed their
// per-address budget. Other routes pass through untouched.
func searchRateLimit(limiter *ratelimit.KeyedLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/api/v1/search") && !limiter.Allow(clientKey(r)) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"code":"RATE_LIMITED","message":"Too many search requests"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientKey strips the port so every connection from an address shares one
// bucket. RealIP runs first and may already have replaced RemoteAddr with a
// bare IP from the proxy headers.
func clientKey(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
