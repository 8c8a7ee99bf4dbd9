// Package metrics exposes Prometheus collectors for frame throughput and
// decode latency, for embedding in a service that sits on top of this
// module's decoders rather than for the decoders themselves (the core
// parser has no observability hooks of its own; see SPEC_FULL.md's
// ambient-stack notes).
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/unkn0wn-root/respcodec"
)

// Collector groups the counters and histograms this module's consumers
// typically want. Register it with a prometheus.Registerer of the caller's
// choosing; the zero value is not usable, construct with New.
type Collector struct {
	FramesDecoded  *prometheus.CounterVec
	DecodeErrors   *prometheus.CounterVec
	DecodeDuration *prometheus.HistogramVec
	BytesDecoded   prometheus.Counter
}

// New builds a Collector with the given namespace (e.g. "respcodec") and
// registers it with reg. An empty namespace defaults to "respcodec".
func New(reg prometheus.Registerer, namespace string) *Collector {
	namespace = respcodec.Coalesce(namespace, "respcodec")
	c := &Collector{
		FramesDecoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_decoded_total",
			Help:      "Frames successfully decoded, by revision and kind.",
		}, []string{"revision", "kind"}),
		DecodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_errors_total",
			Help:      "Decode failures, by revision and error kind.",
		}, []string{"revision", "error"}),
		DecodeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "decode_duration_seconds",
			Help:      "Wall-clock time spent in a single decode call.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"revision"}),
		BytesDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_decoded_total",
			Help:      "Total input bytes consumed across all decode calls.",
		}),
	}
	reg.MustRegister(c.FramesDecoded, c.DecodeErrors, c.DecodeDuration, c.BytesDecoded)
	return c
}

// ObserveDecode records one decode attempt's outcome and duration.
func (c *Collector) ObserveDecode(revision, kind string, consumed int, dur time.Duration, err error) {
	c.DecodeDuration.WithLabelValues(revision).Observe(dur.Seconds())
	if err != nil {
		c.DecodeErrors.WithLabelValues(revision, errorLabel(err)).Inc()
		return
	}
	c.FramesDecoded.WithLabelValues(revision, kind).Inc()
	c.BytesDecoded.Add(float64(consumed))
}

// errorLabel maps err onto the fixed taxonomy of sentinel errors so the
// error label stays low-cardinality regardless of DecodeError.Offset.
func errorLabel(err error) string {
	switch {
	case errors.Is(err, respcodec.ErrNotComplete):
		return "not_complete"
	case errors.Is(err, respcodec.ErrUnknown):
		return "unknown"
	case errors.Is(err, respcodec.ErrSyntaxLen):
		return "syntax_len"
	case errors.Is(err, respcodec.ErrInvalidBulkString):
		return "invalid_bulk_string"
	case errors.Is(err, respcodec.ErrInvalidError):
		return "invalid_error"
	case errors.Is(err, respcodec.ErrInvalidArray):
		return "invalid_array"
	case errors.Is(err, respcodec.ErrInvalidBoolean):
		return "invalid_boolean"
	case errors.Is(err, respcodec.ErrInvalidMap):
		return "invalid_map"
	case errors.Is(err, respcodec.ErrInvalidSet):
		return "invalid_set"
	default:
		return "other"
	}
}
