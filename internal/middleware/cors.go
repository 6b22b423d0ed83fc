package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

var (
	AllowedMethods = []string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
	}
	AllowedHeaders = []string{"Content-Type", HeaderRequestID}
)

// CORS allows cross-origin calls from the given origins. An empty list or
// "*" allows every origin. Preflight requests are answered with 204.
func CORS(allowedOrigins ...string) func(next http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:       allowedOrigins,
		AllowedMethods:       AllowedMethods,
		AllowedHeaders:       AllowedHeaders,
		ExposedHeaders:       []string{HeaderRequestID},
		OptionsSuccessStatus: http.StatusNoContent,
	})

	return c.Handler
}
