package obsclient

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	DefaultURL              = "ws://localhost:4455"
	DefaultRequestTimeout   = 5 * time.Second
	DefaultProbeTimeout     = 2 * time.Second
	DefaultHandshakeTimeout = 10 * time.Second
	DefaultIdleProbeAfter   = time.Second
)

type Config struct {
	URL      string `json:"url"`
	Password string `json:"password"`
	// ChallengeAuth — хешировать пароль по challenge/salt из Hello,
	// если сервер их прислал. По умолчанию пароль уходит как есть.
	ChallengeAuth bool `json:"challenge_auth"`

	RequestTimeout   time.Duration `json:"request_timeout"`
	ProbeTimeout     time.Duration `json:"probe_timeout"`
	HandshakeTimeout time.Duration `json:"handshake_timeout"`
	// IdleProbeAfter — Connect пингует только если входящих кадров не было
	// дольше этого интервала. 0 — пинг на каждый вызов.
	IdleProbeAfter time.Duration `json:"idle_probe_after"`

	Logger  *zap.Logger       `json:"-"`
	Metrics *Metrics          `json:"-"`
	Dialer  *websocket.Dialer `json:"-"`
}

// Requester — единственная точка входа для внешних вызывающих (tools, monitor).
type Requester interface {
	SendRequest(ctx context.Context, requestType string, requestData map[string]any) (map[string]any, error)
}

type outcome struct {
	data map[string]any
	err  error
}

type pendingRequest struct {
	requestType string
	sess        *session
	started     time.Time
	ch          chan outcome // буфер 1: доставка никогда не блокирует pump
}

type Client struct {
	url           string
	password      string
	challengeAuth bool

	requestTimeout   time.Duration
	probeTimeout     time.Duration
	handshakeTimeout time.Duration
	idleProbeAfter   time.Duration

	dialer  *websocket.Dialer
	log     *zap.Logger
	metrics *Metrics

	connMu sync.Mutex // сериализует Connect/Close

	mu            sync.Mutex // sess, authenticated, seq, pending
	sess          *session
	authenticated bool
	seq           uint64
	pending       map[string]*pendingRequest
}

var _ Requester = (*Client)(nil)

func New(cfg Config) *Client {
	c := &Client{
		url:              cfg.URL,
		password:         cfg.Password,
		challengeAuth:    cfg.ChallengeAuth,
		requestTimeout:   cfg.RequestTimeout,
		probeTimeout:     cfg.ProbeTimeout,
		handshakeTimeout: cfg.HandshakeTimeout,
		idleProbeAfter:   cfg.IdleProbeAfter,
		dialer:           cfg.Dialer,
		log:              cfg.Logger,
		metrics:          cfg.Metrics,
		pending:          make(map[string]*pendingRequest),
	}
	if c.url == "" {
		c.url = DefaultURL
	}
	if c.requestTimeout <= 0 {
		c.requestTimeout = DefaultRequestTimeout
	}
	if c.probeTimeout <= 0 {
		c.probeTimeout = DefaultProbeTimeout
	}
	if c.handshakeTimeout <= 0 {
		c.handshakeTimeout = DefaultHandshakeTimeout
	}
	if c.idleProbeAfter < 0 {
		c.idleProbeAfter = 0
	}
	if c.dialer == nil {
		d := *websocket.DefaultDialer
		d.HandshakeTimeout = c.handshakeTimeout
		c.dialer = &d
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	c.log = c.log.With(zap.String("url", c.url))
	return c
}

func (c *Client) URL() string { return c.url }

// Authenticated — true только после полного Hello → Identify → Identified.
func (c *Client) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticated && c.sess != nil
}

// Connect — идемпотентен: живое соединение только проверяется пингом,
// иначе заново dial + handshake + запуск readLoop.
func (c *Client) Connect(ctx context.Context) error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if s := c.current(); s != nil {
		err := c.checkAlive(s)
		if err == nil {
			return nil
		}
		c.log.Warn("connection is stale, reconnecting",
			zap.String("conn_id", s.id), zap.Error(err))
		c.detach(s, &ConnectionError{Op: "probe", URL: c.url, Err: err})
		s.close()
	}

	s, err := c.open(ctx)
	if err != nil {
		c.metrics.connectResult("failed")
		return err
	}

	c.mu.Lock()
	c.sess = s
	c.authenticated = true
	c.mu.Unlock()
	c.metrics.connectResult("ok")
	c.log.Info("connected to OBS WebSocket server", zap.String("conn_id", s.id))

	go c.readLoop(s)
	return nil
}

// Close — мягко закрывает сокет; повторный вызов ничего не делает.
func (c *Client) Close() error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	s := c.current()
	if s == nil {
		return nil
	}
	c.detach(s, &ConnectionError{Op: "receive", URL: c.url, Err: ErrClosed})
	s.close()
	c.log.Info("disconnected from OBS WebSocket server", zap.String("conn_id", s.id))
	return nil
}

// SendRequest — отправляет Request и ждёт RequestResponse с тем же requestId.
// Параллельные вызовы мультиплексируются на одном сокете.
func (c *Client) SendRequest(ctx context.Context, requestType string, requestData map[string]any) (map[string]any, error) {
	if requestType == "" {
		return nil, errors.New("obs: empty request type")
	}
	raw, err := encodeData(requestData)
	if err != nil {
		var pe *ProtocolError
		if errors.As(err, &pe) {
			return nil, &ProtocolError{Reason: "encode " + requestType + " data: " + pe.Reason, Err: pe.Err}
		}
		return nil, &ProtocolError{Reason: "encode " + requestType + " data", Err: err}
	}
	if err := c.Connect(ctx); err != nil {
		return nil, err
	}

	id, p, err := c.register(requestType)
	if err != nil {
		return nil, err
	}
	c.metrics.requestStarted()
	log := c.log.With(zap.String("request_type", requestType), zap.String("request_id", id))

	frame, err := encodeRequestFrame(requestType, id, raw)
	if err != nil {
		c.unregister(id)
		c.metrics.requestDone(requestType, "protocol_error", time.Since(p.started))
		return nil, &ProtocolError{Reason: "encode " + requestType, Err: err}
	}
	if err := p.sess.write(frame); err != nil {
		c.unregister(id)
		c.metrics.requestDone(requestType, "connection_error", time.Since(p.started))
		// соединение упало между подготовкой и записью
		cerr := &ConnectionError{Op: "send", URL: c.url, Err: err}
		c.detach(p.sess, cerr)
		p.sess.close()
		return nil, cerr
	}
	log.Debug("request sent")

	timer := time.NewTimer(c.requestTimeout)
	defer timer.Stop()

	select {
	case out := <-p.ch:
		took := time.Since(p.started)
		if out.err != nil {
			c.metrics.requestDone(requestType, outcomeLabel(out.err), took)
			log.Debug("request failed", zap.Duration("took", took), zap.Error(out.err))
			return nil, out.err
		}
		c.metrics.requestDone(requestType, "ok", took)
		return out.data, nil
	case <-timer.C:
		c.unregister(id)
		c.metrics.requestDone(requestType, "timeout", c.requestTimeout)
		log.Warn("request timed out", zap.Duration("timeout", c.requestTimeout))
		return nil, &TimeoutError{RequestType: requestType, After: c.requestTimeout}
	case <-ctx.Done():
		c.unregister(id)
		c.metrics.requestDone(requestType, "canceled", time.Since(p.started))
		return nil, ctx.Err()
	}
}

// ========================= pending table =========================

func (c *Client) current() *session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.authenticated {
		return nil
	}
	return c.sess
}

// register — запись в таблицу ДО отправки, чтобы быстрый ответ не потерялся.
func (c *Client) register(requestType string) (string, *pendingRequest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess == nil || !c.authenticated {
		return "", nil, &ConnectionError{Op: "send", URL: c.url, Err: ErrNotConnected}
	}
	id := strconv.FormatUint(c.seq, 10)
	c.seq++
	p := &pendingRequest{
		requestType: requestType,
		sess:        c.sess,
		started:     time.Now(),
		ch:          make(chan outcome, 1),
	}
	c.pending[id] = p
	return id, p, nil
}

func (c *Client) unregister(id string) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

// take забирает запись из таблицы; nil — id неизвестен или уже истёк.
func (c *Client) take(id string) *pendingRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.pending[id]
	if !ok {
		return nil
	}
	delete(c.pending, id)
	return p
}

// detach снимает сессию с клиента и проваливает её ожидающие запросы.
func (c *Client) detach(s *session, cause error) {
	c.mu.Lock()
	if c.sess == s {
		c.sess = nil
		c.authenticated = false
	}
	var failed []*pendingRequest
	for id, p := range c.pending {
		if p.sess == s {
			failed = append(failed, p)
			delete(c.pending, id)
		}
	}
	c.mu.Unlock()

	for _, p := range failed {
		p.ch <- outcome{err: cause}
	}
	if len(failed) > 0 {
		c.log.Warn("failed in-flight requests of a closed connection",
			zap.String("conn_id", s.id), zap.Int("count", len(failed)))
	}
}

func (c *Client) pendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// InFlight — число запросов, ожидающих ответа.
func (c *Client) InFlight() int { return c.pendingCount() }

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, ErrRequest):
		return "request_error"
	case errors.Is(err, ErrProtocol):
		return "protocol_error"
	case errors.Is(err, ErrConnection):
		return "connection_error"
	}
	return "error"
}
