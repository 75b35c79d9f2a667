package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-id-card-generation/pkg/log"
	"student-id-card-generation/pkg/metrics"
	"student-id-card-generation/pkg/session"
	"student-id-card-generation/pkg/storage"
	"student-id-card-generation/pkg/workflow"
)

type stubWorkflow struct{}

func (stubWorkflow) Send(ctx context.Context, kind workflow.Kind, message string) (json.RawMessage, error) {
	return json.RawMessage(`{"message":"ok"}`), nil
}

func newTestServer(t *testing.T) (*HTTPServer, sqlmock.Sqlmock, *miniredis.Miniredis) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	staticDir := t.TempDir()
	srv, err := New(log.NewNop(), Config{
		Port:       8080,
		Mode:       "test",
		PostgresDB: db,
		Redis:      rdb,
		Metrics:    metrics.New(),
		Sessions:   session.NewRedisStore(rdb, time.Hour),
		Signer:     session.NewSigner("secret"),
		Storage:    storage.NewLocal(staticDir, "/static"),
		StaticDir:  staticDir,
		Workflow:   stubWorkflow{},
	})
	require.NoError(t, err)
	require.NoError(t, srv.mapHandlers())
	return srv, mock, mr
}

func serve(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestNewValidation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: "test"})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{Mode: "test", Port: 8080})
	assert.EqualError(t, err, "postgres db is required")
}

func TestSystemRoutes(t *testing.T) {
	srv, mock, mr := newTestServer(t)

	for _, path := range []string{"/health", "/live"} {
		w := serve(srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName)
	}

	mock.ExpectPing()
	w := serve(srv, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, w.Code)

	mock.ExpectPing().WillReturnError(errors.New("down"))
	w = serve(srv, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"postgres":"unavailable"`)

	mock.ExpectPing()
	mr.Close()
	w = serve(srv, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":"unavailable"`)

	w = serve(srv, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "student_id_http_requests_total")
}

func TestSecurityHeadersAndRequestID(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w := serve(srv, http.MethodGet, "/health", "")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestDomainRoutesAreWired(t *testing.T) {
	srv, _, _ := newTestServer(t)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/admin", http.StatusUnauthorized},
		{http.MethodGet, "/admin/batches", http.StatusUnauthorized},
		{http.MethodGet, "/admin/departments", http.StatusUnauthorized},
		{http.MethodGet, "/admin/students", http.StatusUnauthorized},
		{http.MethodPost, "/admin/generate", http.StatusUnauthorized},
		{http.MethodGet, "/admin/id_preview/1", http.StatusUnauthorized},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(srv, tt.method, tt.path, "").Code)
		})
	}

	w := serve(srv, http.MethodPost, "/ai/message", `{"message":"logout"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"action":"logout"`)

	w = serve(srv, http.MethodPost, "/ai/message", `{"message":"show page"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"ok"`)
}
