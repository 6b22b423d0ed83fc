package middleware

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/memoboard/internal/pkg/message"
	"github.com/ferdiebergado/memoboard/internal/pkg/web"
	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("rate limit exceeded")

// RateLimit answers 429 once more than rps requests per second (with bursts
// of up to burst) reach the server. A non-positive rps disables it.
func RateLimit(rps float64, burst int) func(next http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	if burst <= 0 {
		burst = 1
	}

	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				web.RespondTooManyRequests(w, errRateLimited, message.TooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
