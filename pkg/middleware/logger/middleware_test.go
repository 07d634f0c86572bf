package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddlewareLogsRoutePatternWithoutQuery(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := New(zap.New(core))

	r := chi.NewRouter()
	r.Use(m.Middleware())
	r.Post("/activities/{activity}/signup", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup?email=a@b.c", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/activities/{activity}/signup", fields["route"])
	assert.Equal(t, "/activities/Chess Club/signup", fields["uri"])
	assert.Equal(t, int64(http.StatusBadRequest), fields["status"])
	assert.Equal(t, "POST", fields["httpMethod"])
}

func TestNewLogWritesUnderDir(t *testing.T) {
	dir := t.TempDir()
	l := NewLog(dir, "system.log")
	l.Info("hello")
	_ = l.Sync()
	assert.FileExists(t, dir+"/system.log")
}
