package core

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	manifest "github.com/joeydtaylor/steeze-activities/pkg/manifest"
	httpx "github.com/joeydtaylor/steeze-activities/pkg/transport/httpx"
)

func build(t *testing.T, doc string, hs Handlers) http.Handler {
	t.Helper()
	cfg, err := manifest.Parse([]byte(doc))
	require.NoError(t, err)
	h, err := BuildRouter(cfg, BuildDeps{Router: httpx.NewChi(), Handlers: hs})
	require.NoError(t, err)
	return h
}

func TestInprocHandlerStatusAndBody(t *testing.T) {
	hs := Handlers{}
	hs.Register("ok", func(*http.Request) (any, int, error) {
		return map[string]string{"message": "hi"}, 0, nil
	})
	hs.Register("fail", func(*http.Request) (any, int, error) {
		return nil, http.StatusBadRequest, errors.New("nope")
	})
	hs.Register("boom", func(*http.Request) (any, int, error) {
		return nil, 0, errors.New("internal")
	})
	h := build(t, `
[[route]]
path = "/ok"
handler = { type = "inproc", name = "ok" }
[[route]]
path = "/fail"
handler = { type = "inproc", name = "fail" }
[[route]]
path = "/boom"
handler = { type = "inproc", name = "boom" }
`, hs)

	cases := []struct {
		path   string
		status int
		body   string
	}{
		{"/ok", http.StatusOK, `{"message":"hi"}`},
		{"/fail", http.StatusBadRequest, `{"detail":"nope"}`},
		{"/boom", http.StatusInternalServerError, `{"detail":"internal"}`},
	}
	for _, c := range cases {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, c.path, nil))
		assert.Equal(t, c.status, rr.Code, c.path)
		assert.JSONEq(t, c.body, rr.Body.String(), c.path)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"), c.path)
	}
}

func TestTimeoutPolicySetsDeadline(t *testing.T) {
	hs := Handlers{}
	hs.Register("deadline", func(r *http.Request) (any, int, error) {
		_, ok := r.Context().Deadline()
		return map[string]bool{"deadline": ok}, 0, nil
	})
	h := build(t, `
[[route]]
path = "/d"
handler = { type = "inproc", name = "deadline" }
policy = { timeout_ms = 50 }
`, hs)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/d", nil))
	assert.JSONEq(t, `{"deadline":true}`, rr.Body.String())
}

func TestBuildRouterRejectsUnregisteredHandler(t *testing.T) {
	cfg, err := manifest.Parse([]byte(`
[[route]]
path = "/x"
handler = { type = "inproc", name = "missing" }
`))
	require.NoError(t, err)

	_, err = BuildRouter(cfg, BuildDeps{Router: httpx.NewChi(), Handlers: Handlers{}})
	require.Error(t, err)
}

func TestLoadConfigDefaultsToBuiltIn(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Activities)

	_, err = LoadConfig("/does/not/exist.toml")
	assert.Error(t, err)
}
