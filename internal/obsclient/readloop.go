package obsclient

import (
	"errors"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// readLoop — единственный читатель сокета сессии. Реконнекта здесь нет:
// следующий SendRequest сам переподключится через Connect.
func (c *Client) readLoop(s *session) {
	log := c.log.With(zap.String("conn_id", s.id))
	var cause error
	defer func() {
		close(s.done)
		s.close()
		c.detach(s, &ConnectionError{Op: "receive", URL: c.url, Err: cause})
	}()

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			cause = err
			switch {
			case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
				log.Info("connection closed by peer", zap.Error(err))
			case errors.Is(err, websocket.ErrCloseSent), !c.owns(s):
				// сами закрыли
				log.Debug("read loop stopped", zap.Error(err))
			default:
				log.Warn("read failed, connection dropped", zap.Error(err))
			}
			return
		}
		s.touchActivity()

		msg, err := Decode(data)
		if err != nil {
			c.metrics.frameDropped("malformed")
			log.Warn("skipping malformed frame", zap.Error(err))
			continue
		}

		switch msg.Op {
		case OpRequestResponse:
			c.handleRequestResponse(msg, log)
		default:
			// события не подписаны (eventSubscriptions: 0), остальное игнорируем
			log.Debug("ignoring frame", zap.Stringer("op", msg.Op))
		}
	}
}

func (c *Client) handleRequestResponse(msg Message, log *zap.Logger) {
	resp, err := DecodeRequestResponse(msg)
	if err != nil {
		if resp != nil {
			if p := c.take(resp.RequestID); p != nil {
				log.Warn("request failed with malformed response",
					zap.String("request_id", resp.RequestID), zap.Error(err))
				p.ch <- outcome{err: err}
				return
			}
		}
		c.metrics.frameDropped("malformed")
		log.Warn("skipping malformed response", zap.Error(err))
		return
	}

	p := c.take(resp.RequestID)
	if p == nil {
		// запрос уже истёк по таймауту
		c.metrics.frameDropped("unknown_id")
		log.Debug("dropping response for unknown request", zap.String("request_id", resp.RequestID))
		return
	}

	var out outcome
	if resp.RequestStatus.Result {
		out.data, out.err = resp.Data()
	} else {
		comment := resp.RequestStatus.Comment
		if comment == "" {
			comment = "Unknown error"
		}
		out.err = &RequestError{
			RequestType: p.requestType,
			Code:        resp.RequestStatus.Code,
			Comment:     comment,
		}
	}
	p.ch <- out
}

func (c *Client) owns(s *session) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess == s
}
