package main

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matrix-profile-foundation/go-batchpartition"
)

// metricsCollector holds the gauges a run updates once per recursion
// level, promoted (like go-kit/log) from an indirect dependency of the
// example corpus to a direct one here; see DESIGN.md.
type metricsCollector struct {
	level         prometheus.Gauge
	batchCount    prometheus.Gauge
	cutTotal      prometheus.Gauge
	minBatchSize  prometheus.Gauge
	maxBatchSize  prometheus.Gauge
	meanBatchSize prometheus.Gauge
}

func newMetricsCollector(reg prometheus.Registerer) *metricsCollector {
	f := promauto.With(reg)
	return &metricsCollector{
		level:         f.NewGauge(prometheus.GaugeOpts{Name: "batchpartition_level", Help: "Current recursion level."}),
		batchCount:    f.NewGauge(prometheus.GaugeOpts{Name: "batchpartition_batch_count", Help: "Batch count at the current level."}),
		cutTotal:      f.NewGauge(prometheus.GaugeOpts{Name: "batchpartition_cut_total", Help: "Total cross-batch edges at the current level."}),
		minBatchSize:  f.NewGauge(prometheus.GaugeOpts{Name: "batchpartition_min_batch_size", Help: "Smallest non-empty batch at the current level."}),
		maxBatchSize:  f.NewGauge(prometheus.GaugeOpts{Name: "batchpartition_max_batch_size", Help: "Largest batch at the current level."}),
		meanBatchSize: f.NewGauge(prometheus.GaugeOpts{Name: "batchpartition_mean_batch_size", Help: "Mean non-empty batch size at the current level."}),
	}
}

// observe updates all gauges from one LevelStat.
func (m *metricsCollector) observe(s batchpartition.LevelStat) {
	m.level.Set(float64(s.Level))
	m.batchCount.Set(float64(s.BatchCount))
	m.cutTotal.Set(float64(s.CutTotal))
	m.minBatchSize.Set(float64(s.MinBatchSize))
	m.maxBatchSize.Set(float64(s.MaxBatchSize))
	m.meanBatchSize.Set(float64(s.MeanBatchSize))
}

// serveMetrics starts a best-effort /metrics HTTP server on addr. Serving
// runs until ctx is canceled; shutdown errors are swallowed since the
// process is exiting anyway at that point.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		_ = srv.ListenAndServe()
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	return srv
}
