// Package monitor периодически опрашивает состояние выходов OBS
// (стрим, запись, виртуальная камера, replay buffer) и пишет переходы в лог.
package monitor

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/EgorLis/obs-mcp/internal/obsclient"
)

// выход → requestType статуса
var outputs = map[string]string{
	"stream":        "GetStreamStatus",
	"record":        "GetRecordStatus",
	"virtualcam":    "GetVirtualCamStatus",
	"replay_buffer": "GetReplayBufferStatus",
}

type Monitor struct {
	r        obsclient.Requester
	interval time.Duration
	log      *zap.Logger
	active   *prometheus.GaugeVec

	mu      sync.RWMutex
	last    map[string]bool // последний снимок: output → outputActive
	running bool
	stopCh  chan struct{}
	done    chan struct{}
}

// New — reg nil: метрика не регистрируется.
func New(r obsclient.Requester, interval time.Duration, log *zap.Logger, reg prometheus.Registerer) *Monitor {
	if log == nil {
		log = zap.NewNop()
	}
	opts := prometheus.GaugeOpts{
		Namespace: "obsmcp",
		Subsystem: "output",
		Name:      "active",
		Help:      "1 if the OBS output is active at the last scan",
	}
	var active *prometheus.GaugeVec
	if reg != nil {
		active = promauto.With(reg).NewGaugeVec(opts, []string{"output"})
	} else {
		active = prometheus.NewGaugeVec(opts, []string{"output"})
	}
	return &Monitor{
		r:        r,
		interval: interval,
		log:      log.Named("monitor"),
		active:   active,
		last:     map[string]bool{},
	}
}

// Start запускает фоновый опрос. Повторный вызов ничего не делает.
// Первый опрос только заполняет снимок, без записей о переходах.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	m.running = true
	m.stopCh = make(chan struct{})
	m.done = make(chan struct{})
	stopCh, done := m.stopCh, m.done
	m.mu.Unlock()

	go func() {
		defer close(done)

		m.scan(ctx, false)

		t := time.NewTicker(m.interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				m.scan(ctx, true)
			case <-stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop останавливает опрос и ждёт выхода горутины.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	close(m.stopCh)
	m.running = false
	done := m.done
	m.mu.Unlock()
	<-done
}

// Snapshot возвращает копию последнего снимка.
func (m *Monitor) Snapshot() map[string]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]bool, len(m.last))
	for k, v := range m.last {
		out[k] = v
	}
	return out
}

func (m *Monitor) scan(ctx context.Context, notify bool) {
	cur := m.fetch(ctx)
	if len(cur) == 0 {
		return
	}

	m.mu.Lock()
	prev := m.last
	next := make(map[string]bool, len(prev)+len(cur))
	for k, v := range prev {
		next[k] = v
	}
	for _, name := range sortedKeys(cur) {
		active := cur[name]
		was, known := prev[name]
		if notify && known && was != active {
			if active {
				m.log.Info("output started", zap.String("output", name))
			} else {
				m.log.Info("output stopped", zap.String("output", name))
			}
		}
		next[name] = active
	}
	m.last = next
	m.mu.Unlock()
}

// fetch опрашивает все выходы; неудачные пропускаются.
func (m *Monitor) fetch(ctx context.Context) map[string]bool {
	cur := make(map[string]bool, len(outputs))
	for _, name := range sortedKeys(outputs) {
		st, err := obsclient.Call[obsclient.OutputStatus](ctx, m.r, outputs[name], nil)
		if err != nil {
			m.log.Debug("output status failed", zap.String("output", name), zap.Error(err))
			continue
		}
		cur[name] = st.OutputActive
		if st.OutputActive {
			m.active.WithLabelValues(name).Set(1)
		} else {
			m.active.WithLabelValues(name).Set(0)
		}
	}
	return cur
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
