// Package metrics provides opt-in Prometheus metrics for the codec.
//
// Metrics are disabled until InitRegistry is called; constructors return
// nil when disabled and every recording method is nil-safe, so
// instrumented code pays nothing when metrics are off:
//
//	metrics.InitRegistry()
//	m := metrics.NewCodecMetrics()
//	d := &frame.Dispatcher{Metrics: m, ...}
//
// The codec core itself holds no counters: recording sits at the
// dispatch boundary, where messages are classified.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	mu       sync.Mutex
	registry *prometheus.Registry
)

// InitRegistry enables metrics with a fresh Prometheus registry.
// Calling it again replaces the registry (test isolation).
func InitRegistry() {
	mu.Lock()
	defer mu.Unlock()
	registry = prometheus.NewRegistry()
}

// IsEnabled reports whether InitRegistry has been called.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return registry != nil
}

// GetRegistry returns the active registry, or nil when disabled.
// Callers expose it via promhttp in whatever process embeds the codec.
func GetRegistry() *prometheus.Registry {
	mu.Lock()
	defer mu.Unlock()
	return registry
}
