package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/EgorLis/obs-mcp/internal/tools"
)

func init() { gin.SetMode(gin.TestMode) }

type fakeStatus struct{ connected bool }

func (f fakeStatus) URL() string { return "ws://localhost:4455" }
func (f fakeStatus) Authenticated() bool { return f.connected }

type nopOBS struct{}

func (nopOBS) SendRequest(context.Context, string, map[string]any) (map[string]any, error) {
	return map[string]any{"obsVersion": "31.0.0"}, nil
}

func TestHealthz(t *testing.T) {
	r := NewRouter(Options{OBS: fakeStatus{connected: true}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"status": "ok", "obs_connected": true, "obs_url": "ws://localhost:4455"}, body)
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := NewRouter(Options{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "obsmcp_test_total", Help: "test"})
	reg.MustRegister(c)
	c.Inc()

	r := NewRouter(Options{Gatherer: reg})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "obsmcp_test_total 1")
}

func TestMetricsNotMountedWithoutGatherer(t *testing.T) {
	r := NewRouter(Options{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStreamableMCP(t *testing.T) {
	srv := tools.NewServer(nopOBS{}, "test", zap.NewNop())
	ts := httptest.NewServer(NewRouter(Options{Server: srv}))
	defer ts.Close()

	ctx := context.Background()
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: ts.URL + "/mcp"}, nil)
	require.NoError(t, err)
	defer cs.Close()

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{Name: "obs-get-version", Arguments: map[string]any{}})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, tc.Text, "31.0.0")
}

func TestUnknownRoute(t *testing.T) {
	r := NewRouter(Options{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
