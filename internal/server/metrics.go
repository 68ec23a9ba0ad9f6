package server

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/a079777/internal/progress"
	"github.com/agbru/a079777/internal/sequence"
)

const namespace = "a079777"

// Metrics holds the Prometheus collectors of one process. Each instance owns
// its registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestsTotal  *prometheus.CounterVec
	activeRequests prometheus.Gauge

	indicesProcessed   *prometheus.CounterVec
	zerosFound         *prometheus.CounterVec
	chunksCompleted    *prometheus.CounterVec
	checkpointsEmitted *prometheus.CounterVec
	runsTotal          *prometheus.CounterVec
	currentIndex       *prometheus.GaugeVec
	activeRuns         prometheus.Gauge

	mu        sync.Mutex
	engines   map[int]string
	processed map[int]uint64
}

var (
	_ progress.ProgressObserver = (*Metrics)(nil)
	_ progress.RunLifecycle     = (*Metrics)(nil)
)

// NewMetrics creates and registers the collectors, including the Go runtime
// and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	engine := []string{"engine"}

	m := &Metrics{
		registry: reg,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "HTTP requests served by the metrics endpoint.",
		}, []string{"path", "code"}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_requests",
			Help:      "HTTP requests currently being served.",
		}),
		indicesProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "indices_processed_total",
			Help:      "Indices of the recurrence computed so far.",
		}, engine),
		zerosFound: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "zeros_found_total",
			Help:      "Indices n with a(n) = 0 found so far, seeds included.",
		}, engine),
		chunksCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_completed_total",
			Help:      "Chunks handed to the engine and completed.",
		}, engine),
		checkpointsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkpoints_emitted_total",
			Help:      "Checkpoint blocks written to the sequence log.",
		}, engine),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished runs by engine and outcome.",
		}, []string{"engine", "status"}),
		currentIndex: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_index",
			Help:      "Upper bound of the last completed chunk.",
		}, engine),
		activeRuns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_runs",
			Help:      "Engines currently scanning.",
		}),
		engines:   make(map[int]string),
		processed: make(map[int]uint64),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestsTotal,
		m.activeRequests,
		m.indicesProcessed,
		m.zerosFound,
		m.chunksCompleted,
		m.checkpointsEmitted,
		m.runsTotal,
		m.currentIndex,
		m.activeRuns,
	)
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	return m
}

// IncrementActiveRequests increments the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests decrements the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// RecordRequest counts a served request.
func (m *Metrics) RecordRequest(path string, code int) {
	m.requestsTotal.WithLabelValues(path, strconv.Itoa(code)).Inc()
}

// WritePrometheus writes the current metrics in the Prometheus text format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// RunStarted implements progress.RunLifecycle.
func (m *Metrics) RunStarted(runIndex int, engine string) {
	m.mu.Lock()
	m.engines[runIndex] = engine
	m.processed[runIndex] = 0
	m.mu.Unlock()
	m.activeRuns.Inc()
}

// RunFinished implements progress.RunLifecycle.
func (m *Metrics) RunFinished(_ int, engine string, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.runsTotal.WithLabelValues(engine, status).Inc()
	m.activeRuns.Dec()
}

// Update implements progress.ProgressObserver. Counters advance by the
// work done since the previous chunk of the same run.
func (m *Metrics) Update(runIndex int, stats sequence.ChunkStats) {
	m.mu.Lock()
	engine, ok := m.engines[runIndex]
	if !ok {
		engine = strconv.Itoa(runIndex)
	}
	delta := stats.Processed - m.processed[runIndex]
	m.processed[runIndex] = stats.Processed
	m.mu.Unlock()

	m.indicesProcessed.WithLabelValues(engine).Add(float64(delta))
	if stats.NewZeros > 0 {
		m.zerosFound.WithLabelValues(engine).Add(float64(stats.NewZeros))
	}
	m.chunksCompleted.WithLabelValues(engine).Inc()
	if stats.Checkpointed {
		m.checkpointsEmitted.WithLabelValues(engine).Inc()
	}
	m.currentIndex.WithLabelValues(engine).Set(float64(stats.To))
}
