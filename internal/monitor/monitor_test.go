package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubOBS struct {
	mu     sync.Mutex
	active map[string]bool
	fail   map[string]bool
	calls  int
}

func (s *stubOBS) SendRequest(_ context.Context, requestType string, _ map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.fail[requestType] {
		return nil, errors.New("boom")
	}
	return map[string]any{"outputActive": s.active[requestType]}, nil
}

func (s *stubOBS) set(requestType string, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[requestType] = active
}

func (s *stubOBS) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestFirstScanSeedsSnapshot(t *testing.T) {
	stub := &stubOBS{active: map[string]bool{"GetStreamStatus": true}}
	core, logs := observer.New(zap.InfoLevel)
	m := New(stub, time.Hour, zap.New(core), nil)

	m.scan(context.Background(), false)

	assert.Equal(t, map[string]bool{
		"stream": true, "record": false, "virtualcam": false, "replay_buffer": false,
	}, m.Snapshot())
	assert.Zero(t, logs.Len(), "seed scan must not log transitions")
}

func TestScanLogsTransitions(t *testing.T) {
	stub := &stubOBS{active: map[string]bool{}}
	core, logs := observer.New(zap.InfoLevel)
	reg := prometheus.NewRegistry()
	m := New(stub, time.Hour, zap.New(core), reg)

	m.scan(context.Background(), false)
	stub.set("GetRecordStatus", true)
	m.scan(context.Background(), true)

	started := logs.FilterMessage("output started").All()
	require.Len(t, started, 1)
	assert.Equal(t, "record", started[0].ContextMap()["output"])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.active.WithLabelValues("record")))

	stub.set("GetRecordStatus", false)
	m.scan(context.Background(), true)
	assert.Equal(t, 1, logs.FilterMessage("output stopped").Len())
	assert.Equal(t, 0.0, testutil.ToFloat64(m.active.WithLabelValues("record")))
}

func TestFailedOutputKeepsPreviousState(t *testing.T) {
	stub := &stubOBS{
		active: map[string]bool{"GetVirtualCamStatus": true},
		fail:   map[string]bool{},
	}
	m := New(stub, time.Hour, zap.NewNop(), nil)
	m.scan(context.Background(), false)

	stub.mu.Lock()
	stub.fail["GetVirtualCamStatus"] = true
	stub.mu.Unlock()
	m.scan(context.Background(), true)

	assert.True(t, m.Snapshot()["virtualcam"])
}

func TestStartStop(t *testing.T) {
	stub := &stubOBS{active: map[string]bool{}}
	m := New(stub, 5*time.Millisecond, zap.NewNop(), nil)

	m.Start(context.Background())
	m.Start(context.Background())
	require.Eventually(t, func() bool { return stub.callCount() >= 3*len(outputs) }, time.Second, 5*time.Millisecond)

	m.Stop()
	m.Stop()
	after := stub.callCount()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, stub.callCount(), "no scans after Stop")
	assert.Len(t, m.Snapshot(), len(outputs))
}

func TestContextCancelStopsLoop(t *testing.T) {
	stub := &stubOBS{active: map[string]bool{}}
	m := New(stub, 5*time.Millisecond, zap.NewNop(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	m.Start(ctx)
	cancel()

	select {
	case <-m.done:
	case <-time.After(time.Second):
		t.Fatal("loop did not exit on cancel")
	}
	m.Stop()
}
