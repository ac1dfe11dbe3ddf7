package obsclient

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ========================= low-level =========================

const (
	rpcVersion    = 1
	writeDeadline = 5 * time.Second
	closeDeadline = 500 * time.Millisecond
	readLimit     = 64 << 20
)

var errProbeTimeout = errors.New("no pong within probe timeout")

// session — одно сокет-соединение и его handshake. Клиент держит не больше одной.
type session struct {
	id   string
	conn *websocket.Conn

	wmu          sync.Mutex    // сериализует запись в websocket
	pongs        chan string   // payload'ы pong, кладёт pong-handler из readLoop
	done         chan struct{} // закрывается, когда readLoop вышел
	closeOnce    sync.Once
	lastActivity atomic.Int64 // unix nanos последнего принятого кадра
}

func newSession(conn *websocket.Conn) *session {
	s := &session{
		id:    uuid.NewString(),
		conn:  conn,
		pongs: make(chan string, 1),
		done:  make(chan struct{}),
	}
	conn.SetReadLimit(readLimit)
	conn.SetPongHandler(func(appData string) error {
		s.touchActivity()
		select {
		case s.pongs <- appData:
		default:
		}
		return nil
	})
	s.touchActivity()
	return s
}

func (s *session) touchActivity() {
	s.lastActivity.Store(time.Now().UnixNano())
}

func (s *session) sinceLastActivity() time.Duration {
	n := s.lastActivity.Load()
	if n == 0 {
		return time.Hour
	}
	return time.Since(time.Unix(0, n))
}

// запись строго через один мьютекс + write-deadline
func (s *session) write(frame []byte) error {
	s.wmu.Lock()
	defer s.wmu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return s.conn.WriteMessage(websocket.TextMessage, frame)
}

func (s *session) writeJSON(op OpCode, d any) error {
	frame, err := Encode(op, d)
	if err != nil {
		return err
	}
	return s.write(frame)
}

// безопасно закрыть соединение; повторные вызовы игнорируются
func (s *session) close() {
	s.closeOnce.Do(func() {
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "closing"),
			time.Now().Add(closeDeadline))
		_ = s.conn.Close()
	})
}

func (s *session) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// probe — ping и ожидание pong с тем же payload. Pong доставляет readLoop.
func (s *session) probe(timeout time.Duration) error {
	if s.closed() {
		return ErrClosed
	}
	// выкинуть старый pong от прошлой проверки
	select {
	case <-s.pongs:
	default:
	}

	payload := strconv.FormatInt(time.Now().UnixNano(), 10)
	if err := s.conn.WriteControl(websocket.PingMessage, []byte(payload), time.Now().Add(timeout)); err != nil {
		return err
	}

	t := time.NewTimer(timeout)
	defer t.Stop()
	for {
		select {
		case got := <-s.pongs:
			if got == payload {
				return nil
			}
		case <-s.done:
			return ErrClosed
		case <-t.C:
			return errProbeTimeout
		}
	}
}

func (c *Client) checkAlive(s *session) error {
	if s.closed() {
		return ErrClosed
	}
	if c.idleProbeAfter > 0 && s.sinceLastActivity() < c.idleProbeAfter {
		return nil
	}
	return s.probe(c.probeTimeout)
}

// open — dial + handshake. Любая ошибка закрывает сокет, частичного состояния нет.
func (c *Client) open(ctx context.Context) (*session, error) {
	// deadline ctx, если задан, иначе HandshakeTimeout
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.handshakeTimeout)
		defer cancel()
	}

	conn, resp, err := c.dialer.DialContext(ctx, c.url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, &ConnectionError{Op: "dial", URL: c.url, Err: err}
	}

	s := newSession(conn)
	log := c.log.With(zap.String("conn_id", s.id))
	if dl, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(dl)
	}

	// разбудить ReadMessage, если ctx отменили посреди handshake
	stop := context.AfterFunc(ctx, func() { _ = conn.SetReadDeadline(time.Now()) })
	err = c.handshake(s, log)
	stop()
	if err != nil {
		s.close()
		log.Warn("handshake failed", zap.Error(err))
		return nil, err
	}
	_ = conn.SetReadDeadline(time.Time{})
	return s, nil
}

// handshake: Hello → Identify → Identified, строго по порядку, без ретраев.
func (c *Client) handshake(s *session, log *zap.Logger) error {
	msg, err := c.readHandshakeFrame(s)
	if err != nil {
		return err
	}
	if msg.Op != OpHello {
		return &ProtocolError{Reason: "expected Hello, got " + msg.Op.String()}
	}
	var hello Hello
	if err := json.Unmarshal(msg.D, &hello); err != nil {
		return &ProtocolError{Reason: "bad Hello payload", Err: err}
	}
	log.Debug("hello received",
		zap.String("obs_websocket_version", hello.ObsWebSocketVersion),
		zap.Int("rpc_version", hello.RPCVersion),
		zap.Bool("auth_required", hello.Authentication != nil))

	identify := Identify{
		RPCVersion:         rpcVersion,
		Authentication:     c.password,
		EventSubscriptions: 0, // события не нужны
	}
	if c.challengeAuth && hello.Authentication != nil {
		identify.Authentication = authResponse(c.password, hello.Authentication.Salt, hello.Authentication.Challenge)
	}
	if err := s.writeJSON(OpIdentify, identify); err != nil {
		return &ConnectionError{Op: "handshake", URL: c.url, Err: err}
	}

	_, data, err := s.conn.ReadMessage()
	if err != nil {
		var ce *websocket.CloseError
		if errors.As(err, &ce) {
			// obs-websocket закрывает сокет кодом 4009 при неверном пароле
			return &AuthenticationError{Reason: "server closed connection: " + strconv.Itoa(ce.Code) + " " + ce.Text}
		}
		return &ConnectionError{Op: "handshake", URL: c.url, Err: err}
	}
	msg, err = Decode(data)
	if err != nil {
		return &AuthenticationError{Reason: err.Error()}
	}
	if msg.Op != OpIdentified {
		return &AuthenticationError{Reason: "expected Identified, got " + msg.Op.String()}
	}
	s.touchActivity()
	return nil
}

func (c *Client) readHandshakeFrame(s *session) (Message, error) {
	_, data, err := s.conn.ReadMessage()
	if err != nil {
		return Message{}, &ConnectionError{Op: "handshake", URL: c.url, Err: err}
	}
	s.touchActivity()
	return Decode(data)
}

// authResponse — base64(sha256(base64(sha256(password+salt)) + challenge))
func authResponse(password, salt, challenge string) string {
	secret := sha256.Sum256([]byte(password + salt))
	secretB64 := base64.StdEncoding.EncodeToString(secret[:])
	auth := sha256.Sum256([]byte(secretB64 + challenge))
	return base64.StdEncoding.EncodeToString(auth[:])
}
