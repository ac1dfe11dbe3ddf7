package obsclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics — счётчики клиента. nil *Metrics допустим и ничего не пишет.
type Metrics struct {
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	inFlight      prometheus.Gauge
	connects      *prometheus.CounterVec
	framesDropped *prometheus.CounterVec
}

// NewMetrics регистрирует метрики в reg (nil — глобальный регистратор).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "obsmcp",
			Subsystem: "obs",
			Name:      "requests_total",
			Help:      "obs-websocket requests by type and outcome",
		}, []string{"request_type", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "obsmcp",
			Subsystem: "obs",
			Name:      "request_duration_seconds",
			Help:      "Round-trip time of obs-websocket requests",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		}, []string{"request_type"}),
		inFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "obsmcp",
			Subsystem: "obs",
			Name:      "requests_in_flight",
			Help:      "Requests waiting for a response",
		}),
		connects: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "obsmcp",
			Subsystem: "obs",
			Name:      "connects_total",
			Help:      "Connection attempts by result",
		}, []string{"result"}),
		framesDropped: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "obsmcp",
			Subsystem: "obs",
			Name:      "frames_dropped_total",
			Help:      "Inbound frames the pump could not route",
		}, []string{"reason"}),
	}
}

func (m *Metrics) requestStarted() {
	if m == nil {
		return
	}
	m.inFlight.Inc()
}

func (m *Metrics) requestDone(requestType, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.inFlight.Dec()
	m.requests.WithLabelValues(requestType, outcome).Inc()
	m.duration.WithLabelValues(requestType).Observe(took.Seconds())
}

func (m *Metrics) connectResult(result string) {
	if m == nil {
		return
	}
	m.connects.WithLabelValues(result).Inc()
}

func (m *Metrics) frameDropped(reason string) {
	if m == nil {
		return
	}
	m.framesDropped.WithLabelValues(reason).Inc()
}
