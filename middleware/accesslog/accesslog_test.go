package accesslog

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_LogsStatusBytesAndRoute(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	clock := []time.Time{
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, int(15*time.Millisecond), time.UTC),
	}
	h := Middleware(Options{
		Logger:  logger,
		RouteFn: func(*http.Request) string { return "GET /api/v1/applications/{id}" },
		Now: func() time.Time {
			now := clock[0]
			clock = clock[1:]
			return now
		},
	})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hello"))
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/applications/a", nil))

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, http.StatusOK, entry.Data["status"])
	assert.Equal(t, 5, entry.Data["bytes"])
	assert.Equal(t, "/api/v1/applications/a", entry.Data["path"])
	assert.Equal(t, "GET /api/v1/applications/{id}", entry.Data["route"])
	assert.Equal(t, 15*time.Millisecond, entry.Data["duration"])

	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err, "generated request id is a uuid")
	assert.Equal(t, w.Header().Get(RequestIDHeader), entry.Data["request_id"])
}

func TestMiddleware_KeepsIncomingRequestID(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	h := Middleware(Options{Logger: logger})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", hook.LastEntry().Data["request_id"])
	assert.Equal(t, http.StatusNotFound, hook.LastEntry().Data["status"])
	assert.NotContains(t, hook.LastEntry().Data, "route")
}

func TestMiddleware_ServerErrorsLogAtErrorLevel(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	h := Middleware(Options{Logger: logger})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.WriteHeader(http.StatusOK)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, http.StatusInternalServerError, hook.LastEntry().Data["status"])
}

func TestMiddleware_EmptyHandlerIsOK(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	h := Middleware(Options{Logger: logger})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, hook.LastEntry().Data["status"])
	assert.Equal(t, 0, hook.LastEntry().Data["bytes"])
}
