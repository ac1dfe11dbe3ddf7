package obsclient

import (
	"context"
	"encoding/json"
	"fmt"
)

// ========================= high-level API =========================

// Call — SendRequest с разбором ответа в T.
func Call[T any](ctx context.Context, r Requester, requestType string, requestData map[string]any) (*T, error) {
	data, err := r.SendRequest(ctx, requestType, requestData)
	if err != nil {
		return nil, err
	}
	return decodeInto[T](requestType, data)
}

func decodeInto[T any](requestType string, data map[string]any) (*T, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("obs: %s response: %w", requestType, err)
	}
	out := new(T)
	if err := json.Unmarshal(b, out); err != nil {
		return nil, fmt.Errorf("obs: %s response: %w", requestType, err)
	}
	return out, nil
}

type Version struct {
	ObsVersion            string   `json:"obsVersion"`
	ObsWebSocketVersion   string   `json:"obsWebSocketVersion"`
	RPCVersion            int      `json:"rpcVersion"`
	AvailableRequests     []string `json:"availableRequests"`
	SupportedImageFormats []string `json:"supportedImageFormats"`
	Platform              string   `json:"platform"`
	PlatformDescription   string   `json:"platformDescription"`
}

type Stats struct {
	CPUUsage                         float64 `json:"cpuUsage"`
	MemoryUsage                      float64 `json:"memoryUsage"`
	AvailableDiskSpace               float64 `json:"availableDiskSpace"`
	ActiveFps                        float64 `json:"activeFps"`
	AverageFrameRenderTime           float64 `json:"averageFrameRenderTime"`
	RenderSkippedFrames              int64   `json:"renderSkippedFrames"`
	RenderTotalFrames                int64   `json:"renderTotalFrames"`
	OutputSkippedFrames              int64   `json:"outputSkippedFrames"`
	OutputTotalFrames                int64   `json:"outputTotalFrames"`
	WebSocketSessionIncomingMessages int64   `json:"webSocketSessionIncomingMessages"`
	WebSocketSessionOutgoingMessages int64   `json:"webSocketSessionOutgoingMessages"`
}

// OutputStatus — общие поля Get{Stream,Record,VirtualCam,ReplayBuffer}Status.
type OutputStatus struct {
	OutputActive        bool    `json:"outputActive"`
	OutputPaused        bool    `json:"outputPaused,omitempty"`
	OutputReconnecting  bool    `json:"outputReconnecting,omitempty"`
	OutputTimecode      string  `json:"outputTimecode,omitempty"`
	OutputDuration      float64 `json:"outputDuration,omitempty"`
	OutputBytes         float64 `json:"outputBytes,omitempty"`
	OutputSkippedFrames int64   `json:"outputSkippedFrames,omitempty"`
	OutputTotalFrames   int64   `json:"outputTotalFrames,omitempty"`
}

type Scene struct {
	SceneName  string `json:"sceneName"`
	SceneUUID  string `json:"sceneUuid,omitempty"`
	SceneIndex int    `json:"sceneIndex"`
}

type SceneList struct {
	CurrentProgramSceneName string  `json:"currentProgramSceneName"`
	CurrentPreviewSceneName string  `json:"currentPreviewSceneName"`
	Scenes                  []Scene `json:"scenes"`
}

func (c *Client) GetVersion(ctx context.Context) (*Version, error) {
	return Call[Version](ctx, c, "GetVersion", nil)
}

func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	return Call[Stats](ctx, c, "GetStats", nil)
}

func (c *Client) GetStreamStatus(ctx context.Context) (*OutputStatus, error) {
	return Call[OutputStatus](ctx, c, "GetStreamStatus", nil)
}

func (c *Client) GetRecordStatus(ctx context.Context) (*OutputStatus, error) {
	return Call[OutputStatus](ctx, c, "GetRecordStatus", nil)
}

func (c *Client) GetVirtualCamStatus(ctx context.Context) (*OutputStatus, error) {
	return Call[OutputStatus](ctx, c, "GetVirtualCamStatus", nil)
}

func (c *Client) GetReplayBufferStatus(ctx context.Context) (*OutputStatus, error) {
	return Call[OutputStatus](ctx, c, "GetReplayBufferStatus", nil)
}

func (c *Client) GetSceneList(ctx context.Context) (*SceneList, error) {
	return Call[SceneList](ctx, c, "GetSceneList", nil)
}

func (c *Client) SetCurrentProgramScene(ctx context.Context, sceneName string) error {
	_, err := c.SendRequest(ctx, "SetCurrentProgramScene", map[string]any{"sceneName": sceneName})
	return err
}
