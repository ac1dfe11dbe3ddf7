package obsclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeOBS — минимальный obs-websocket сервер поверх httptest.
type fakeOBS struct {
	t   *testing.T
	srv *httptest.Server

	hello         Hello
	helloOp       OpCode
	identifyReply OpCode
	rejectAuth    bool             // закрыть сокет кодом 4009 вместо Identified
	stall         bool             // не отвечать на Identify
	ignorePings   func(n int) bool // n — номер соединения с 1
	handler       func(c *fakeConn, req *Request)

	connections atomic.Int32
	identified  atomic.Int32
	identifies  chan Identify
}

type fakeConn struct {
	n    int
	conn *websocket.Conn
	mu   sync.Mutex
}

func newFakeOBS(t *testing.T, opts ...func(*fakeOBS)) *fakeOBS {
	t.Helper()
	f := &fakeOBS{
		t:             t,
		hello:         Hello{ObsWebSocketVersion: "5.5.0", RPCVersion: rpcVersion},
		helloOp:       OpHello,
		identifyReply: OpIdentified,
		identifies:    make(chan Identify, 16),
		handler: func(c *fakeConn, req *Request) {
			c.ok(req, map[string]any{"requestType": req.RequestType})
		},
	}
	for _, o := range opts {
		o(f)
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeOBS) url() string {
	return "ws" + strings.TrimPrefix(f.srv.URL, "http")
}

func (f *fakeOBS) client(cfg Config) *Client {
	cfg.URL = f.url()
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	c := New(cfg)
	f.t.Cleanup(func() { _ = c.Close() })
	return c
}

func (f *fakeOBS) serve(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	fc := &fakeConn{n: int(f.connections.Add(1)), conn: conn}
	if f.ignorePings != nil && f.ignorePings(fc.n) {
		conn.SetPingHandler(func(string) error { return nil })
	}

	if err := fc.send(f.helloOp, f.hello); err != nil {
		return
	}
	if f.helloOp != OpHello {
		drain(conn)
		return
	}

	_, data, err := conn.ReadMessage()
	if err != nil {
		return
	}
	msg, err := Decode(data)
	if err != nil || msg.Op != OpIdentify {
		return
	}
	var id Identify
	_ = json.Unmarshal(msg.D, &id)
	select {
	case f.identifies <- id:
	default:
	}

	if f.stall {
		drain(conn)
		return
	}
	if f.rejectAuth {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(4009, "Authentication failed."), time.Now().Add(time.Second))
		return
	}
	if err := fc.send(f.identifyReply, Identified{NegotiatedRPCVersion: rpcVersion}); err != nil {
		return
	}
	if f.identifyReply != OpIdentified {
		drain(conn)
		return
	}
	f.identified.Add(1)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		msg, err := Decode(data)
		if err != nil {
			continue
		}
		req, err := DecodeRequest(msg)
		if err != nil {
			continue
		}
		f.handler(fc, req)
	}
}

func drain(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *fakeConn) send(op OpCode, d any) error {
	frame, err := Encode(op, d)
	if err != nil {
		return err
	}
	return c.raw(frame)
}

func (c *fakeConn) raw(frame []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, frame)
}

func (c *fakeConn) ok(req *Request, data map[string]any) {
	resp := RequestResponse{
		RequestType:   req.RequestType,
		RequestID:     req.RequestID,
		RequestStatus: &RequestStatus{Result: true, Code: 100},
	}
	if len(data) > 0 {
		raw, _ := json.Marshal(data)
		resp.ResponseData = raw
	}
	_ = c.send(OpRequestResponse, resp)
}

func (c *fakeConn) fail(req *Request, code int, comment string) {
	_ = c.send(OpRequestResponse, RequestResponse{
		RequestType:   req.RequestType,
		RequestID:     req.RequestID,
		RequestStatus: &RequestStatus{Result: false, Code: code, Comment: comment},
	})
}

func (c *fakeConn) kill() {
	_ = c.conn.Close()
}

func recvIdentify(t *testing.T, f *fakeOBS) Identify {
	t.Helper()
	select {
	case id := <-f.identifies:
		return id
	case <-time.After(2 * time.Second):
		require.FailNow(t, "no Identify received")
	}
	return Identify{}
}
