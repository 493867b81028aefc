package batchloader

import (
	"time"
)

// Metrics receives one observation per FetchFunction call. A nil Metrics disables
// collection.
type Metrics interface {
	ObserveBatch(loaderType Type, size int, duration time.Duration, err error)
}

func observeBatch(metrics Metrics, loaderType Type, size int) func(err error) {
	if metrics == nil {
		return func(error) {}
	}
	start := time.Now()
	return func(err error) {
		metrics.ObserveBatch(loaderType, size, time.Since(start), err)
	}
}
