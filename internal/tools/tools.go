package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/EgorLis/obs-mcp/internal/obsclient"
)

const ServerName = "obs-mcp"

// Tool — строка каталога: имя инструмента и запрос OBS за ним.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	RequestType string `json:"requestType"`
}

type tool interface {
	Info() Tool
	add(s *mcp.Server, r obsclient.Requester, log *zap.Logger)
}

// noArgs — вход инструментов без параметров.
type noArgs struct{}

// requestTool — один инструмент = один запрос obs-websocket.
// build переводит вход в requestData; nil — вход уходит как есть.
type requestTool[In any] struct {
	name        string
	description string
	requestType string
	build       func(In) (map[string]any, error)
}

func (t requestTool[In]) Info() Tool {
	return Tool{Name: t.name, Description: t.description, RequestType: t.requestType}
}

func (t requestTool[In]) add(s *mcp.Server, r obsclient.Requester, log *zap.Logger) {
	log = log.With(zap.String("tool", t.name), zap.String("request_type", t.requestType))
	mcp.AddTool(s, &mcp.Tool{Name: t.name, Description: t.description},
		func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
			return t.call(ctx, r, log, in), nil, nil
		})
}

func (t requestTool[In]) call(ctx context.Context, r obsclient.Requester, log *zap.Logger, in In) *mcp.CallToolResult {
	data, err := t.payload(in)
	if err != nil {
		log.Debug("invalid tool arguments", zap.Error(err))
		return failure(t.requestType, err)
	}
	resp, err := r.SendRequest(ctx, t.requestType, data)
	if err != nil {
		log.Warn("tool call failed", zap.Error(err))
		return failure(t.requestType, err)
	}
	log.Debug("tool call done")
	return success(t.requestType, resp)
}

func (t requestTool[In]) payload(in In) (map[string]any, error) {
	if t.build != nil {
		return t.build(in)
	}
	return toMap(in)
}

// ========================= constructors =========================

func simple(name, description, requestType string) tool {
	return requestTool[noArgs]{name: name, description: description, requestType: requestType}
}

func direct[In any](name, description, requestType string) tool {
	return requestTool[In]{name: name, description: description, requestType: requestType}
}

func custom[In any](name, description, requestType string, build func(In) (map[string]any, error)) tool {
	return requestTool[In]{name: name, description: description, requestType: requestType, build: build}
}

// ========================= registry =========================

func all() []tool {
	var out []tool
	for _, group := range [][]tool{
		generalTools(),
		configTools(),
		sceneTools(),
		sceneItemTools(),
		sourceTools(),
		inputTools(),
		mediaInputTools(),
		filterTools(),
		transitionTools(),
		outputTools(),
		recordTools(),
		streamingTools(),
		uiTools(),
		rawTools(),
	} {
		out = append(out, group...)
	}
	return out
}

// Register добавляет все инструменты на сервер. Ошибки OBS возвращаются
// как isError-результат, ретраев нет.
func Register(s *mcp.Server, r obsclient.Requester, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	for _, t := range all() {
		t.add(s, r, log)
	}
}

// NewServer — MCP-сервер со всеми инструментами.
func NewServer(r obsclient.Requester, version string, log *zap.Logger) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: version}, nil)
	Register(s, r, log)
	return s
}

// Catalog — список инструментов в порядке регистрации.
func Catalog() []Tool {
	ts := all()
	out := make([]Tool, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Info())
	}
	return out
}

// ========================= results =========================

func success(requestType string, data map[string]any) *mcp.CallToolResult {
	if len(data) == 0 {
		return text(requestType + " succeeded")
	}
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return failure(requestType, err)
	}
	return text(string(b))
}

func failure(requestType string, err error) *mcp.CallToolResult {
	res := text(fmt.Sprintf("%s failed: %v", requestType, err))
	res.IsError = true
	return res
}

func text(s string) *mcp.CallToolResult {
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: s}}}
}

// ========================= helpers =========================

// toMap — вход в requestData через JSON: теги структур совпадают с полями OBS.
func toMap(in any) (map[string]any, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func inRange(field string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return fmt.Errorf("%s must be between %v and %v, got %v", field, lo, hi, v)
	}
	return nil
}

func atLeast(field string, v, lo float64) error {
	if math.IsNaN(v) || v < lo {
		return fmt.Errorf("%s must be at least %v, got %v", field, lo, v)
	}
	return nil
}

func oneOf(field, v string, allowed ...string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s, got %q", field, strings.Join(allowed, ", "), v)
}

// nameOrUUID — OBS адресует источник либо по имени, либо по UUID.
func nameOrUUID(kind, name, uuid string) error {
	if name == "" && uuid == "" {
		return errors.New("either " + kind + "Name or " + kind + "Uuid is required")
	}
	return nil
}

// validated — build, который только проверяет вход и отдаёт его как есть.
func validated[In any](check func(In) error) func(In) (map[string]any, error) {
	return func(in In) (map[string]any, error) {
		if err := check(in); err != nil {
			return nil, err
		}
		return toMap(in)
	}
}
