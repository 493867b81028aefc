package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/UnAfraid/pressload/pkg/batchloader"
)

type loaderMetrics struct {
	batches   *prometheus.CounterVec
	batchSize *prometheus.HistogramVec
	duration  *prometheus.HistogramVec
}

// NewLoaderMetrics returns nil when metrics are not enabled.
func NewLoaderMetrics() batchloader.Metrics {
	if !IsEnabled() {
		return nil
	}
	return newLoaderMetrics(GetRegistry())
}

func newLoaderMetrics(reg prometheus.Registerer) *loaderMetrics {
	return &loaderMetrics{
		batches: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "pressload_loader_batches_total",
				Help: "Total number of fetch adapter calls by loader type and status",
			},
			[]string{"loader_type", "status"}, // status: "ok", "error"
		),
		batchSize: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pressload_loader_batch_size",
				Help:    "Distribution of ids per fetch adapter call",
				Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 1000},
			},
			[]string{"loader_type"},
		),
		duration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "pressload_loader_batch_duration_milliseconds",
				Help: "Duration of fetch adapter calls in milliseconds",
				Buckets: []float64{
					0.1, // cached
					0.5,
					1,
					5,
					10,
					50,
					100,
					500,
					1000,
				},
			},
			[]string{"loader_type"},
		),
	}
}

func (m *loaderMetrics) ObserveBatch(loaderType batchloader.Type, size int, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.batches.WithLabelValues(string(loaderType), status).Inc()
	m.batchSize.WithLabelValues(string(loaderType)).Observe(float64(size))
	m.duration.WithLabelValues(string(loaderType)).Observe(float64(duration.Microseconds()) / 1000)
}
