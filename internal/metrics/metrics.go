// Package metrics tracks per-invocation counters for a single dog run and,
// on request, dumps them using the same Prometheus text exposition format
// a long-running dnsscienced server would expose on /metrics. dog never
// serves these over HTTP (it has no listener at all); Dump just writes
// the exposition text to an io.Writer once, right before the process exits.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Collector owns one invocation's worth of counters. Callers create one
// per run (never a package-level global) so that concurrent tests, and a
// future multi-query-in-one-process caller, don't share state.
type Collector struct {
	registry *prometheus.Registry

	QueriesIssued *prometheus.CounterVec
	BytesSent     prometheus.Counter
	BytesReceived prometheus.Counter
	Errors        *prometheus.CounterVec
	ExchangeTime  *prometheus.HistogramVec
}

// New builds a Collector with all series registered against a private
// registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		QueriesIssued: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "dog_queries_issued_total", Help: "DNS queries sent, by transport."},
			[]string{"transport"},
		),
		BytesSent: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "dog_bytes_sent_total", Help: "Wire bytes written to servers."},
		),
		BytesReceived: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "dog_bytes_received_total", Help: "Wire bytes read from servers."},
		),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "dog_errors_total", Help: "Query failures, by kind."},
			[]string{"kind"},
		),
		ExchangeTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dog_exchange_duration_seconds",
				Help:    "Wall-clock time from first write to last read of one query/response exchange.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"transport"},
		),
	}
	c.registry.MustRegister(c.QueriesIssued, c.BytesSent, c.BytesReceived, c.Errors, c.ExchangeTime)
	return c
}

// Dump writes every collected series as Prometheus text exposition format
// to w. Intended for dog's -v / DOG_DEBUG=trace diagnostic output, never
// for serving over a network.
func (c *Collector) Dump(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
