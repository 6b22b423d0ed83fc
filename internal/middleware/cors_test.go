package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/memoboard/internal/middleware"
)

func TestMiddleware_CORS(t *testing.T) {
	t.Parallel()

	const (
		allowedOrigin = "http://localhost:5173"

		headerAllowOrigin   = "Access-Control-Allow-Origin"
		headerAllowMethods  = "Access-Control-Allow-Methods"
		headerRequestMethod = "Access-Control-Request-Method"
	)

	tests := []struct {
		name, method, origin, preflight string
		allowed                         []string
		code                            int
		headers                         map[string]string
		handlerCalled                   bool
	}{
		{
			name:          "GET from any origin",
			method:        http.MethodGet,
			origin:        "http://example.com",
			code:          http.StatusOK,
			headers:       map[string]string{headerAllowOrigin: "*"},
			handlerCalled: true,
		},
		{
			name:          "GET from allowed origin",
			method:        http.MethodGet,
			origin:        allowedOrigin,
			allowed:       []string{allowedOrigin},
			code:          http.StatusOK,
			headers:       map[string]string{headerAllowOrigin: allowedOrigin},
			handlerCalled: true,
		},
		{
			name:          "GET from unknown origin",
			method:        http.MethodGet,
			origin:        "http://example.com",
			allowed:       []string{allowedOrigin},
			code:          http.StatusOK,
			headers:       map[string]string{headerAllowOrigin: ""},
			handlerCalled: true,
		},
		{
			name:      "Preflight for PUT",
			method:    http.MethodOptions,
			origin:    allowedOrigin,
			preflight: http.MethodPut,
			code:      http.StatusNoContent,
			headers: map[string]string{
				headerAllowOrigin:  "*",
				headerAllowMethods: http.MethodPut,
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			called := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tc.method, "/api/memos", http.NoBody)
			req.Header.Set("Origin", tc.origin)
			if tc.preflight != "" {
				req.Header.Set(headerRequestMethod, tc.preflight)
			}
			rec := httptest.NewRecorder()
			middleware.CORS(tc.allowed...)(handler).ServeHTTP(rec, req)

			gotCode, wantCode := rec.Code, tc.code
			if gotCode != wantCode {
				t.Errorf("rec.Code = %d, want: %d", gotCode, wantCode)
			}

			if called != tc.handlerCalled {
				t.Errorf("handler called = %t, want: %t", called, tc.handlerCalled)
			}

			for header, want := range tc.headers {
				if got := rec.Header().Get(header); got != want {
					t.Errorf("rec.Header().Get(%q) = %q, want: %q", header, got, want)
				}
			}
		})
	}
}
