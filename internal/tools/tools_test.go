package tools

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/EgorLis/obs-mcp/internal/obsclient"
)

type sentRequest struct {
	requestType string
	data        map[string]any
}

type stubOBS struct {
	mu    sync.Mutex
	sent  []sentRequest
	reply map[string]any
	err   error
}

func (s *stubOBS) SendRequest(_ context.Context, requestType string, data map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentRequest{requestType: requestType, data: data})
	if s.err != nil {
		return nil, s.err
	}
	if s.reply == nil {
		return map[string]any{}, nil
	}
	return s.reply, nil
}

func (s *stubOBS) last(t *testing.T) sentRequest {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.sent, "no request sent")
	return s.sent[len(s.sent)-1]
}

func (s *stubOBS) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func connect(t *testing.T, r obsclient.Requester) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	srv := NewServer(r, "test", zap.NewNop())
	st, ct := mcp.NewInMemoryTransports()
	ss, err := srv.Connect(ctx, st, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, ct, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func call(t *testing.T, cs *mcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()
	if args == nil {
		args = map[string]any{}
	}
	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text, res.IsError
}

func TestCatalog(t *testing.T) {
	cat := Catalog()
	require.NotEmpty(t, cat)

	seen := map[string]bool{}
	for _, tl := range cat {
		assert.True(t, strings.HasPrefix(tl.Name, "obs-"), tl.Name)
		assert.NotEmpty(t, tl.Description, tl.Name)
		assert.NotEmpty(t, tl.RequestType, tl.Name)
		assert.False(t, seen[tl.Name], "duplicate tool %s", tl.Name)
		seen[tl.Name] = true
	}
	for _, name := range []string{
		"obs-get-version", "obs-set-current-scene", "obs-set-scene-item-transform",
		"obs-trigger-media-input-action", "obs-open-video-mix-projector", "obs-send-request",
	} {
		assert.True(t, seen[name], "missing %s", name)
	}
}

func TestListTools(t *testing.T) {
	cs := connect(t, &stubOBS{})

	res, err := cs.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	assert.Len(t, res.Tools, len(Catalog()))
}

func TestToolReturnsResponseJSON(t *testing.T) {
	stub := &stubOBS{reply: map[string]any{"currentProgramSceneName": "Game"}}
	cs := connect(t, stub)

	out, isErr := call(t, cs, "obs-get-current-scene", nil)
	require.False(t, isErr)
	assert.JSONEq(t, `{"currentProgramSceneName":"Game"}`, out)
	assert.Contains(t, out, "\n  ", "indented")

	sent := stub.last(t)
	assert.Equal(t, "GetCurrentProgramScene", sent.requestType)
	assert.Empty(t, sent.data)
}

func TestToolEmptyResponse(t *testing.T) {
	stub := &stubOBS{}
	cs := connect(t, stub)

	out, isErr := call(t, cs, "obs-start-record", nil)
	require.False(t, isErr)
	assert.Equal(t, "StartRecord succeeded", out)
}

func TestToolForwardsArguments(t *testing.T) {
	stub := &stubOBS{}
	cs := connect(t, stub)

	_, isErr := call(t, cs, "obs-set-current-scene", map[string]any{"sceneName": "Game"})
	require.False(t, isErr)

	sent := stub.last(t)
	assert.Equal(t, "SetCurrentProgramScene", sent.requestType)
	assert.Equal(t, map[string]any{"sceneName": "Game"}, sent.data)
}

func TestToolSurfacesRequestError(t *testing.T) {
	stub := &stubOBS{err: &obsclient.RequestError{RequestType: "SetCurrentProgramScene", Code: 600, Comment: "bad scene"}}
	cs := connect(t, stub)

	out, isErr := call(t, cs, "obs-set-current-scene", map[string]any{"sceneName": "nope"})
	assert.True(t, isErr)
	assert.Equal(t, "SetCurrentProgramScene failed: obs: request SetCurrentProgramScene failed (code 600): bad scene", out)
	assert.Equal(t, 1, stub.count(), "no retries")
}

func TestToolSurfacesConnectionError(t *testing.T) {
	stub := &stubOBS{err: &obsclient.ConnectionError{Op: "dial", URL: "ws://localhost:4455", Err: obsclient.ErrClosed}}
	cs := connect(t, stub)

	out, isErr := call(t, cs, "obs-get-stats", nil)
	assert.True(t, isErr)
	assert.True(t, strings.HasPrefix(out, "GetStats failed: "), out)
	assert.Equal(t, 1, stub.count())
}

func TestCreateSceneItemRenamesEnabled(t *testing.T) {
	stub := &stubOBS{reply: map[string]any{"sceneItemId": 7.0}}
	cs := connect(t, stub)

	_, isErr := call(t, cs, "obs-create-scene-item", map[string]any{
		"sceneName": "Game", "sourceName": "Camera", "enabled": false,
	})
	require.False(t, isErr)

	sent := stub.last(t)
	assert.Equal(t, "CreateSceneItem", sent.requestType)
	assert.Equal(t, false, sent.data["sceneItemEnabled"])
	assert.NotContains(t, sent.data, "enabled")
}

func TestSetTransitionDurationRenames(t *testing.T) {
	stub := &stubOBS{}
	cs := connect(t, stub)

	_, isErr := call(t, cs, "obs-set-transition-duration", map[string]any{"duration": 500})
	require.False(t, isErr)
	assert.EqualValues(t, 500, stub.last(t).data["transitionDuration"])
}

func TestSetSceneItemTransformNests(t *testing.T) {
	stub := &stubOBS{}
	cs := connect(t, stub)

	_, isErr := call(t, cs, "obs-set-scene-item-transform", map[string]any{
		"sceneName": "Game", "sceneItemId": 3, "positionX": 100, "scaleY": 0.5,
	})
	require.False(t, isErr)

	sent := stub.last(t)
	assert.Equal(t, "SetSceneItemTransform", sent.requestType)
	assert.EqualValues(t, 3, sent.data["sceneItemId"])
	transform, ok := sent.data["sceneItemTransform"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"positionX": 100.0, "scaleY": 0.5}, transform)
}

func TestEnumValidation(t *testing.T) {
	stub := &stubOBS{}
	cs := connect(t, stub)

	out, isErr := call(t, cs, "obs-trigger-media-input-action", map[string]any{
		"inputName": "Clip", "mediaAction": "PLAY",
	})
	assert.True(t, isErr)
	assert.Contains(t, out, "mediaAction must be one of")
	assert.Zero(t, stub.count())

	_, isErr = call(t, cs, "obs-trigger-media-input-action", map[string]any{
		"inputName": "Clip", "mediaAction": "OBS_WEBSOCKET_MEDIA_INPUT_ACTION_PLAY",
	})
	assert.False(t, isErr)
	assert.Equal(t, 1, stub.count())
}

func TestRangeValidation(t *testing.T) {
	stub := &stubOBS{}
	cs := connect(t, stub)

	out, isErr := call(t, cs, "obs-set-input-volume", map[string]any{"inputName": "Mic"})
	assert.True(t, isErr)
	assert.Contains(t, out, "either inputVolumeMul or inputVolumeDb")

	_, isErr = call(t, cs, "obs-set-input-volume", map[string]any{"inputName": "Mic", "inputVolumeDb": 40})
	assert.True(t, isErr)

	_, isErr = call(t, cs, "obs-set-input-audio-balance", map[string]any{"inputName": "Mic", "inputAudioBalance": 1.5})
	assert.True(t, isErr)
	assert.Zero(t, stub.count())

	_, isErr = call(t, cs, "obs-set-input-volume", map[string]any{"inputName": "Mic", "inputVolumeDb": -6})
	assert.False(t, isErr)
	assert.EqualValues(t, -6, stub.last(t).data["inputVolumeDb"])
}

func TestSendRequestPassthrough(t *testing.T) {
	stub := &stubOBS{reply: map[string]any{"inputs": []any{}}}
	cs := connect(t, stub)

	out, isErr := call(t, cs, "obs-send-request", map[string]any{
		"requestType": "GetInputList",
		"requestData": map[string]any{"inputKind": "wasapi_input_capture"},
	})
	require.False(t, isErr)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Contains(t, got, "inputs")

	sent := stub.last(t)
	assert.Equal(t, "GetInputList", sent.requestType)
	assert.Equal(t, map[string]any{"inputKind": "wasapi_input_capture"}, sent.data)
}

func TestBuildSceneItemTransformRequiresField(t *testing.T) {
	_, err := buildSceneItemTransform(sceneItemTransformArgs{SceneName: "Game", SceneItemID: 1})
	require.Error(t, err)
}

func TestCheckVideoSettings(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	assert.NoError(t, checkVideoSettings(videoSettingsArgs{BaseWidth: f(1920), BaseHeight: f(1080)}))
	assert.NoError(t, checkVideoSettings(videoSettingsArgs{FpsNumerator: f(60), FpsDenominator: f(1)}))
	assert.Error(t, checkVideoSettings(videoSettingsArgs{BaseWidth: f(8192)}))
	assert.Error(t, checkVideoSettings(videoSettingsArgs{FpsNumerator: f(30)}))
	assert.Error(t, checkVideoSettings(videoSettingsArgs{FpsNumerator: f(0), FpsDenominator: f(1)}))
}
