package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CodecMetrics records what the dispatcher sees on a connection's
// incoming byte stream. All methods are safe on a nil receiver.
type CodecMetrics struct {
	decoded      *prometheus.CounterVec
	unrecognized *prometheus.CounterVec
	decodeErrors *prometheus.CounterVec
	bytesDecoded prometheus.Counter
	truncations  prometheus.Counter
}

// NewCodecMetrics creates a Prometheus-backed CodecMetrics instance.
//
// Returns nil if metrics are not enabled (InitRegistry not called),
// which instrumented code passes through at zero overhead.
func NewCodecMetrics() *CodecMetrics {
	if !IsEnabled() {
		return nil
	}

	reg := GetRegistry()

	return &CodecMetrics{
		decoded: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "xwire_messages_decoded_total",
				Help: "Messages decoded from the stream by message kind",
			},
			[]string{"kind"}, // "reply", "event", "error"
		),
		unrecognized: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "xwire_messages_unrecognized_total",
				Help: "Well-framed messages with no registered schema, by message kind",
			},
			[]string{"kind"},
		),
		decodeErrors: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "xwire_decode_errors_total",
				Help: "Messages whose payload failed to decode, by message kind",
			},
			[]string{"kind"},
		),
		bytesDecoded: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "xwire_bytes_decoded_total",
				Help: "Total bytes consumed by successful decodes",
			},
		),
		truncations: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "xwire_truncated_reads_total",
				Help: "Decode attempts that needed more buffered bytes",
			},
		),
	}
}

// ObserveDecoded records a successfully decoded message of the given
// kind and its wire size.
func (m *CodecMetrics) ObserveDecoded(kind string, bytes int) {
	if m == nil {
		return
	}
	m.decoded.WithLabelValues(kind).Inc()
	m.bytesDecoded.Add(float64(bytes))
}

// ObserveUnrecognized records a consumed message that had no schema.
func (m *CodecMetrics) ObserveUnrecognized(kind string) {
	if m == nil {
		return
	}
	m.unrecognized.WithLabelValues(kind).Inc()
}

// ObserveDecodeError records a payload decode failure.
func (m *CodecMetrics) ObserveDecodeError(kind string) {
	if m == nil {
		return
	}
	m.decodeErrors.WithLabelValues(kind).Inc()
}

// ObserveTruncated records a decode attempt that returned the
// need-more-bytes outcome.
func (m *CodecMetrics) ObserveTruncated() {
	if m == nil {
		return
	}
	m.truncations.Inc()
}
