package server

import (
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/kasuboski/vfp/pkg/cache"
	"github.com/kasuboski/vfp/pkg/logger"
	"golang.org/x/time/rate"
)

// maxClients bounds how many per client limiters are kept
const maxClients = 4096

type clientLimiter struct {
	limit    rate.Limit
	burst    int
	limiters *cache.Cache[string, *rate.Limiter]
}

func newClientLimiter(rps float64, burst int) *clientLimiter {
	return &clientLimiter{
		limit:    rate.Limit(rps),
		burst:    max(burst, 1),
		limiters: cache.NewBounded[string, *rate.Limiter](maxClients),
	}
}

func (c *clientLimiter) allow(key string) bool {
	l := c.limiters.GetOrSet(key, func() *rate.Limiter {
		return rate.NewLimiter(c.limit, c.burst)
	})
	return l.Allow()
}

// WithRateLimit limits each client address to rps requests per second with the given burst.
// A rate of zero disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		if rps <= 0 {
			s.limiter = nil
			return
		}
		s.limiter = newClientLimiter(rps, burst)
	}
}

// RateLimitMiddleware answers 429 when a client is over its limit
func (s Server) RateLimitMiddleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s.limiter == nil || s.limiter.allow(clientKey(r)) {
				h.ServeHTTP(w, r)
				return
			}

			logger.FromCtx(r.Context()).Debugw("rate limited", "remote_addr", r.RemoteAddr)
			w.Header().Set("Retry-After", strconv.Itoa(1))
			writeErrorResponse(w, http.StatusTooManyRequests, errRateLimited)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
