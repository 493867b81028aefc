package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLoaderMetricsObserveBatch(t *testing.T) {
	m := newLoaderMetrics(prometheus.NewRegistry())

	m.ObserveBatch("users", 3, 2*time.Millisecond, nil)
	m.ObserveBatch("users", 1, time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.batches.WithLabelValues("users", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.batches.WithLabelValues("users", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.batchSize))
}

func TestNewLoaderMetricsDisabled(t *testing.T) {
	if IsEnabled() {
		t.Skip("registry already initialized")
	}
	assert.Nil(t, NewLoaderMetrics())
}
