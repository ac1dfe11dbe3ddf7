package obsclient

import (
	"errors"
	"fmt"
	"time"
)

// Сентинелы для errors.Is; конкретные типы ниже матчятся на них через Is().
var (
	ErrConnection     = errors.New("obs: connection error")
	ErrProtocol       = errors.New("obs: protocol error")
	ErrAuthentication = errors.New("obs: authentication failed")
	ErrTimeout        = errors.New("obs: request timed out")
	ErrRequest        = errors.New("obs: request failed")

	// ErrNotConnected — сессия исчезла между Connect и отправкой.
	ErrNotConnected = errors.New("not connected")
	// ErrClosed — клиент закрыт через Close.
	ErrClosed = errors.New("connection closed")
)

// ConnectionError — сбой транспорта: dial, запись, потеря соединения.
type ConnectionError struct {
	Op  string // dial | handshake | send | receive | probe
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("obs: %s %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("obs: %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error        { return e.Err }
func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }

// ProtocolError — кадр не разобрался или пришёл не тот op.
type ProtocolError struct {
	Reason string
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("obs: protocol: %s: %v", e.Reason, e.Err)
	}
	return "obs: protocol: " + e.Reason
}

func (e *ProtocolError) Unwrap() error        { return e.Err }
func (e *ProtocolError) Is(target error) bool { return target == ErrProtocol }

// AuthenticationError — сервер не ответил Identified на Identify.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return "obs: authentication failed: " + e.Reason
}

func (e *AuthenticationError) Is(target error) bool { return target == ErrAuthentication }

// TimeoutError — ответ на запрос не пришёл за отведённое время.
type TimeoutError struct {
	RequestType string
	After       time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("obs: request %s timed out after %v", e.RequestType, e.After)
}

func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

// RequestError — OBS явно вернул requestStatus.result=false.
type RequestError struct {
	RequestType string
	Code        int
	Comment     string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("obs: request %s failed (code %d): %s", e.RequestType, e.Code, e.Comment)
}

func (e *RequestError) Is(target error) bool { return target == ErrRequest }
