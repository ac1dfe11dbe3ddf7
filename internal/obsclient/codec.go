package obsclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ========================= wire codec =========================

type OpCode int

const (
	OpHello                OpCode = 0
	OpIdentify             OpCode = 1
	OpIdentified           OpCode = 2
	OpReidentify           OpCode = 3
	OpEvent                OpCode = 5
	OpRequest              OpCode = 6
	OpRequestResponse      OpCode = 7
	OpRequestBatch         OpCode = 8
	OpRequestBatchResponse OpCode = 9
)

func (o OpCode) String() string {
	switch o {
	case OpHello:
		return "Hello"
	case OpIdentify:
		return "Identify"
	case OpIdentified:
		return "Identified"
	case OpReidentify:
		return "Reidentify"
	case OpEvent:
		return "Event"
	case OpRequest:
		return "Request"
	case OpRequestResponse:
		return "RequestResponse"
	case OpRequestBatch:
		return "RequestBatch"
	case OpRequestBatchResponse:
		return "RequestBatchResponse"
	}
	return fmt.Sprintf("OpCode(%d)", int(o))
}

// Message — конверт {"op": int, "d": object}.
type Message struct {
	Op OpCode          `json:"op"`
	D  json.RawMessage `json:"d"`
}

type HelloAuth struct {
	Challenge string `json:"challenge"`
	Salt      string `json:"salt"`
}

type Hello struct {
	ObsWebSocketVersion string     `json:"obsWebSocketVersion"`
	RPCVersion          int        `json:"rpcVersion"`
	Authentication      *HelloAuth `json:"authentication,omitempty"`
}

type Identify struct {
	RPCVersion         int    `json:"rpcVersion"`
	Authentication     string `json:"authentication"`
	EventSubscriptions int    `json:"eventSubscriptions"`
}

type Identified struct {
	NegotiatedRPCVersion int `json:"negotiatedRpcVersion"`
}

type Request struct {
	RequestType string          `json:"requestType"`
	RequestID   string          `json:"requestId"`
	RequestData json.RawMessage `json:"requestData,omitempty"`
}

type RequestStatus struct {
	Result  bool   `json:"result"`
	Code    int    `json:"code"`
	Comment string `json:"comment,omitempty"`
}

type RequestResponse struct {
	RequestType   string          `json:"requestType,omitempty"`
	RequestID     string          `json:"requestId"`
	RequestStatus *RequestStatus  `json:"requestStatus"`
	ResponseData  json.RawMessage `json:"responseData,omitempty"`
}

// Encode упаковывает payload в кадр с заданным op.
func Encode(op OpCode, d any) ([]byte, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", op, err)
	}
	return json.Marshal(Message{Op: op, D: raw})
}

// Decode разбирает любой входящий кадр. Неизвестные op не считаются ошибкой.
func Decode(frame []byte) (Message, error) {
	var env struct {
		Op *OpCode          `json:"op"`
		D  *json.RawMessage `json:"d"`
	}
	if err := json.Unmarshal(frame, &env); err != nil {
		return Message{}, &ProtocolError{Reason: "malformed frame", Err: err}
	}
	if env.Op == nil {
		return Message{}, &ProtocolError{Reason: "frame without op"}
	}
	if env.D == nil || !isObject(*env.D) {
		return Message{}, &ProtocolError{Reason: fmt.Sprintf("frame %s without d object", *env.Op)}
	}
	return Message{Op: *env.Op, D: *env.D}, nil
}

// EncodeRequest собирает кадр op 6; пустой data не попадает в кадр.
func EncodeRequest(requestType, requestID string, data map[string]any) ([]byte, error) {
	raw, err := encodeData(data)
	if err != nil {
		return nil, fmt.Errorf("encode %s data: %w", requestType, err)
	}
	return encodeRequestFrame(requestType, requestID, raw)
}

func encodeRequestFrame(requestType, requestID string, raw json.RawMessage) ([]byte, error) {
	return Encode(OpRequest, Request{
		RequestType: requestType,
		RequestID:   requestID,
		RequestData: raw,
	})
}

func DecodeRequest(m Message) (*Request, error) {
	if m.Op != OpRequest {
		return nil, &ProtocolError{Reason: "expected Request, got " + m.Op.String()}
	}
	var r Request
	if err := json.Unmarshal(m.D, &r); err != nil {
		return nil, &ProtocolError{Reason: "bad Request payload", Err: err}
	}
	if r.RequestType == "" || r.RequestID == "" {
		return nil, &ProtocolError{Reason: "Request without requestType or requestId"}
	}
	return &r, nil
}

// DecodeRequestResponse проверяет обязательные поля op 7.
// Если requestId разобрался, он возвращается и вместе с ошибкой,
// чтобы ожидающий запрос можно было провалить сразу.
func DecodeRequestResponse(m Message) (*RequestResponse, error) {
	if m.Op != OpRequestResponse {
		return nil, &ProtocolError{Reason: "expected RequestResponse, got " + m.Op.String()}
	}
	var r RequestResponse
	if err := json.Unmarshal(m.D, &r); err != nil {
		return nil, &ProtocolError{Reason: "bad RequestResponse payload", Err: err}
	}
	if r.RequestID == "" {
		return nil, &ProtocolError{Reason: "RequestResponse without requestId"}
	}
	if r.RequestStatus == nil {
		return &r, &ProtocolError{Reason: "RequestResponse " + r.RequestID + " without requestStatus"}
	}
	return &r, nil
}

// Data разбирает responseData; отсутствие данных — пустой объект.
func (r *RequestResponse) Data() (map[string]any, error) {
	return decodeData(r.ResponseData)
}

func (r *Request) Data() (map[string]any, error) {
	return decodeData(r.RequestData)
}

// payload запросов и ответов — JSON-объект, через google.protobuf.Struct.
// Данные идут через JSON round trip с UseNumber; целые, которые float64
// не хранит точно, дают ProtocolError.
func encodeData(data map[string]any) (json.RawMessage, error) {
	if len(data) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return nil, &ProtocolError{Reason: "data is not JSON-encodable", Err: err}
	}
	s, err := toStruct(b)
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(s)
}

func decodeData(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return map[string]any{}, nil
	}
	s, err := toStruct(raw)
	if err != nil {
		return nil, err
	}
	return s.AsMap(), nil
}

func toStruct(raw []byte) (*structpb.Struct, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, &ProtocolError{Reason: "data is not a JSON object", Err: err}
	}
	if m == nil {
		return nil, &ProtocolError{Reason: "data is not a JSON object"}
	}
	norm, err := normalize(m)
	if err != nil {
		return nil, err
	}
	s, err := structpb.NewStruct(norm.(map[string]any))
	if err != nil {
		return nil, &ProtocolError{Reason: "data is not a JSON object", Err: err}
	}
	return s, nil
}

// normalize заменяет json.Number на float64.
func normalize(v any) (any, error) {
	switch v := v.(type) {
	case map[string]any:
		for k, e := range v {
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			v[k] = n
		}
		return v, nil
	case []any:
		for i, e := range v {
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			v[i] = n
		}
		return v, nil
	case json.Number:
		return numberValue(v)
	default:
		return v, nil
	}
}

func numberValue(n json.Number) (float64, error) {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, &ProtocolError{Reason: "number " + s + " out of range", Err: err}
		}
		return f, nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		if f := float64(i); f < 1<<63 && int64(f) == i {
			return f, nil
		}
	} else if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		if f := float64(u); f < 1<<64 && uint64(f) == u {
			return f, nil
		}
	}
	return 0, &ProtocolError{Reason: "integer " + s + " is not exactly representable as float64"}
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}
