package app_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/memoboard/internal/app"
	"github.com/ferdiebergado/memoboard/internal/config"
	"github.com/ferdiebergado/memoboard/internal/memo"
	"github.com/ferdiebergado/memoboard/internal/middleware"
	"github.com/ferdiebergado/memoboard/internal/platform/router"
	"github.com/ferdiebergado/memoboard/internal/platform/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestServer(t *testing.T) (*httptest.Server, *testClock) {
	t.Helper()

	clock := &testClock{now: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)}
	cfg := &config.Config{
		Server:    &config.Server{Port: 3333, MaxBodyBytes: 1 << 20, ShutdownTimeout: time.Second},
		CORS:      &config.CORS{AllowedOrigins: []string{"*"}},
		RateLimit: &config.RateLimit{},
		Memo:      &config.Memo{Timezone: "UTC"},
	}
	provider := &app.Provider{
		Validator: validation.NewGoPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
		Location:  time.UTC,
		Clock:     clock.Now,
	}

	api := app.New(cfg, provider, app.Middlewares(cfg))
	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)

	return srv, clock
}

func do(t *testing.T, method, url, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(t.Context(), method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res.StatusCode, bytes.TrimSpace(data)
}

func decodeMemo(t *testing.T, data []byte) memo.Memo {
	t.Helper()

	var m memo.Memo
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestMemoLifecycle(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)
	memosURL := srv.URL + "/api/memos"

	code, body := do(t, http.MethodPost, memosURL, `{"title":"Aprender Testes"}`)
	require.Equal(t, http.StatusCreated, code)
	created := decodeMemo(t, body)
	assert.Equal(t, memo.Memo{
		ID:        1,
		Title:     "Aprender Testes",
		Status:    memo.StatusPending,
		CreatedAt: "15/10/2026",
		UpdatedAt: "15/10/2026",
	}, created)

	code, body = do(t, http.MethodGet, memosURL, "")
	require.Equal(t, http.StatusOK, code)
	var memos []memo.Memo
	require.NoError(t, json.Unmarshal(body, &memos))
	assert.Equal(t, []memo.Memo{created}, memos)

	code, body = do(t, http.MethodGet, memosURL+"/1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, created, decodeMemo(t, body))

	code, body = do(t, http.MethodPut, memosURL+"/1", `{"title":"Atualizado","status":"feito"}`)
	require.Equal(t, http.StatusOK, code)
	updated := decodeMemo(t, body)
	assert.Equal(t, "Atualizado", updated.Title)
	assert.Equal(t, "feito", updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	code, body = do(t, http.MethodDelete, memosURL+"/1", "")
	assert.Equal(t, http.StatusNoContent, code)
	assert.Empty(t, body)

	code, body = do(t, http.MethodGet, memosURL, "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(body))

	code, body = do(t, http.MethodDelete, memosURL+"/1", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.JSONEq(t, `{"message":"Memo not found"}`, string(body))
}

func TestUpdate_StampsUpdatedAt(t *testing.T) {
	t.Parallel()

	srv, clock := newTestServer(t)
	memosURL := srv.URL + "/api/memos"

	code, body := do(t, http.MethodPost, memosURL, `{"title":"Pagar boleto"}`)
	require.Equal(t, http.StatusCreated, code)
	created := decodeMemo(t, body)

	clock.Advance(48 * time.Hour)

	code, body = do(t, http.MethodPut, memosURL+"/1", `{"title":"Pagar boleto","status":"completado"}`)
	require.Equal(t, http.StatusOK, code)
	updated := decodeMemo(t, body)
	assert.Equal(t, "17/10/2026", updated.UpdatedAt)
	assert.NotEqual(t, created.UpdatedAt, updated.UpdatedAt)
}

func TestValidationFailures(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)
	memosURL := srv.URL + "/api/memos"

	_, body := do(t, http.MethodPost, memosURL, `{"title":"Existing"}`)
	require.NotEmpty(t, body)

	tests := []struct {
		name, method, path, body string
		wantCode                 int
		wantBody                 string
	}{
		{"Create without title", http.MethodPost, "", `{}`, http.StatusBadRequest,
			`{"message":"The field \"title\" cannot be empty."}`},
		{"Create without body", http.MethodPost, "", "", http.StatusBadRequest,
			`{"message":"The field \"title\" cannot be empty."}`},
		{"Create with empty title", http.MethodPost, "", `{"title":""}`, http.StatusBadRequest,
			`{"message":"The field \"title\" cannot be empty."}`},
		{"Create with malformed json", http.MethodPost, "", `{"title":`, http.StatusBadRequest,
			`{"message":"Invalid input."}`},
		{"Create with bad date", http.MethodPost, "", `{"title":"x","created_at":"31/02/2026"}`, http.StatusBadRequest,
			`{"message":"Invalid input.","errors":{"created_at":"created_at must be a date in dd/mm/yyyy format"}}`},
		{"Update without title", http.MethodPut, "/1", `{"status":"feito"}`, http.StatusBadRequest,
			`{"message":"The field \"title\" cannot be empty."}`},
		{"Update without status", http.MethodPut, "/1", `{"title":"x"}`, http.StatusBadRequest,
			`{"message":"The field \"status\" is mandatory."}`},
		{"Update with empty status", http.MethodPut, "/1", `{"title":"x","status":""}`, http.StatusBadRequest,
			`{"message":"The field \"status\" cannot be empty."}`},
		{"Update unknown memo", http.MethodPut, "/999", `{"title":"x","status":"y"}`, http.StatusBadRequest,
			`{"message":"Memo not found"}`},
		{"Get unknown memo", http.MethodGet, "/999", "", http.StatusNotFound,
			`{"message":"Memo not found"}`},
		{"Delete unknown memo", http.MethodDelete, "/999", "", http.StatusNotFound,
			`{"message":"Memo not found"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, tt.method, memosURL+tt.path, tt.body)
			assert.Equal(t, tt.wantCode, code)
			assert.JSONEq(t, tt.wantBody, string(body))
		})
	}
}

func TestCreate_SuppliedDates(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)

	code, body := do(t, http.MethodPost, srv.URL+"/api/memos",
		`{"title":"Consulta","created_at":"20/12/2026","status":"completado","extra":true}`)
	require.Equal(t, http.StatusCreated, code)

	m := decodeMemo(t, body)
	assert.Equal(t, "20/12/2026", m.CreatedAt)
	assert.Equal(t, "20/12/2026", m.UpdatedAt)
	assert.Equal(t, memo.StatusPending, m.Status)
}

func TestCreate_EmptyDateMeansToday(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)

	code, body := do(t, http.MethodPost, srv.URL+"/api/memos", `{"title":"Aprender Testes","created_at":""}`)
	require.Equal(t, http.StatusCreated, code, string(body))

	m := decodeMemo(t, body)
	assert.Equal(t, "15/10/2026", m.CreatedAt)
	assert.Equal(t, "15/10/2026", m.UpdatedAt)
}

func TestMiddlewares_LogRequestWrapsRecovery(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{RateLimit: &config.RateLimit{}}
	chain := app.Middlewares(cfg)

	indexOf := func(target func(http.Handler) http.Handler) int {
		want := reflect.ValueOf(target).Pointer()
		for i, mw := range chain {
			if reflect.ValueOf(mw).Pointer() == want {
				return i
			}
		}
		return -1
	}

	logIdx := indexOf(middleware.LogRequest)
	recoverIdx := indexOf(goexpress.RecoverFromPanic)
	require.NotEqual(t, -1, logIdx)
	require.NotEqual(t, -1, recoverIdx)
	assert.Less(t, logIdx, recoverIdx)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)

	code, body := do(t, http.MethodGet, srv.URL+"/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodOptions, srv.URL+"/api/memos/1", http.NoBody)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}
