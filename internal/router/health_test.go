package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/availability"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/loader"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/query"
)

type memorySource map[string]string

func (m memorySource) Fetch(ctx context.Context, name string) ([]byte, error) {
	return []byte(m[name]), nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *loader.Loader) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := loader.New(memorySource{
		"current-view-menu.json": `{"W": {"Dinner": {"Saturday": {"Entree": ["Steak"]}}}}`,
	}, nil, zap.NewNop())

	r := NewRouter(zap.NewNop(), []string{"http://localhost:5173"}, Handlers{
		Availability: availability.NewHandler(),
		Menus:        query.NewHandler(l, query.NewCache()),
		Loader:       loader.NewHandler(l),
	})
	return r, l
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestMenusBeforeAndAfterLoad(t *testing.T) {
	r, l := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menus?hall=view&day=saturday", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	_, err := l.Load(context.Background())
	require.NoError(t, err)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menus?hall=view&day=saturday", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Sections []struct {
			Status string `json:"status"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Sections, 1)
	assert.Equal(t, "ok", body.Sections[0].Status)
}

func TestReloadRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/menus/reload", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/menus", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
