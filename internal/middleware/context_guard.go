package middleware

import (
	"net/http"

	"github.com/ferdiebergado/memoboard/internal/pkg/message"
	"github.com/ferdiebergado/memoboard/internal/pkg/web"
)

// ContextGuard answers 408 instead of running the handler when the request
// context is already canceled or past its deadline.
func ContextGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.Context().Err(); err != nil {
			web.RespondRequestTimeout(w, err, message.RequestCanceled, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
