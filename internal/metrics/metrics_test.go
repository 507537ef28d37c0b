package metrics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpIncludesRecordedSeries(t *testing.T) {
	c := New()
	c.QueriesIssued.WithLabelValues("UDP").Inc()
	c.BytesSent.Add(32)
	c.BytesReceived.Add(512)
	c.Errors.WithLabelValues("timeout").Inc()
	c.ExchangeTime.WithLabelValues("UDP").Observe(0.012)

	var buf bytes.Buffer
	require.NoError(t, c.Dump(&buf))

	out := buf.String()
	require.Contains(t, out, "dog_queries_issued_total")
	require.Contains(t, out, `transport="UDP"`)
	require.Contains(t, out, "dog_bytes_sent_total 32")
	require.Contains(t, out, "dog_bytes_received_total 512")
	require.Contains(t, out, "dog_errors_total")
	require.Contains(t, out, "dog_exchange_duration_seconds")
}

func TestNewCollectorsAreIndependent(t *testing.T) {
	a := New()
	b := New()
	a.BytesSent.Add(10)

	var bufA, bufB bytes.Buffer
	require.NoError(t, a.Dump(&bufA))
	require.NoError(t, b.Dump(&bufB))

	require.True(t, strings.Contains(bufA.String(), "dog_bytes_sent_total 10"))
	require.False(t, strings.Contains(bufB.String(), "dog_bytes_sent_total 10"))
}
