package tools

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/EgorLis/obs-mcp/internal/obsclient"
)

type sendRequestArgs struct {
	RequestType string         `json:"requestType" jsonschema:"obs-websocket request type, e.g. GetSceneList"`
	RequestData map[string]any `json:"requestData,omitempty" jsonschema:"Request fields as described by the obs-websocket protocol"`
}

// passthroughTool — запрос с типом из аргументов, для всего, на что нет
// отдельного инструмента.
type passthroughTool struct{}

func (passthroughTool) Info() Tool {
	return Tool{
		Name:        "obs-send-request",
		Description: "Sends an arbitrary obs-websocket request and returns its response data",
		RequestType: "*",
	}
}

func (p passthroughTool) add(s *mcp.Server, r obsclient.Requester, log *zap.Logger) {
	info := p.Info()
	log = log.With(zap.String("tool", info.Name))
	mcp.AddTool(s, &mcp.Tool{Name: info.Name, Description: info.Description},
		func(ctx context.Context, _ *mcp.CallToolRequest, in sendRequestArgs) (*mcp.CallToolResult, any, error) {
			if in.RequestType == "" {
				return failure("request", errors.New("requestType is required")), nil, nil
			}
			resp, err := r.SendRequest(ctx, in.RequestType, in.RequestData)
			if err != nil {
				log.Warn("tool call failed", zap.String("request_type", in.RequestType), zap.Error(err))
				return failure(in.RequestType, err), nil, nil
			}
			return success(in.RequestType, resp), nil, nil
		})
}

func rawTools() []tool {
	return []tool{passthroughTool{}}
}
