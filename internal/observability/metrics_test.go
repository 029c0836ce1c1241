package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMetricsCountsPerRouteAndStatus(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/api/tickets", "POST", 201, 10*time.Millisecond)
	m.RecordRequest("/api/tickets", "POST", 201, 20*time.Millisecond)
	m.RecordRequest("/api/tickets", "POST", 409, 5*time.Millisecond)
	m.RecordRequest("/api/tickets", "GET", 200, time.Millisecond)

	require.Equal(t, int64(2), m.RequestCount("/api/tickets", "POST", 201))
	require.Equal(t, int64(1), m.RequestCount("/api/tickets", "POST", 409))
	require.Equal(t, int64(0), m.RequestCount("/api/tickets", "DELETE", 204))
	require.Equal(t, 30*time.Millisecond, m.TotalLatency("/api/tickets", "POST", 201))
}

func TestMetricsCountsErrorsPerCode(t *testing.T) {
	m := NewMetrics()

	m.RecordError("/api/tickets", "POST", "SLOT_TAKEN")
	m.RecordError("/api/tickets", "POST", "SLOT_TAKEN")
	m.RecordError("/api/tickets", "POST", "OUT_OF_HOURS")

	require.Equal(t, int64(2), m.ErrorCount("/api/tickets", "POST", "SLOT_TAKEN"))
	require.Equal(t, int64(1), m.ErrorCount("/api/tickets", "POST", "OUT_OF_HOURS"))
	require.Equal(t, int64(0), m.ErrorCount("/api/tickets", "GET", "SLOT_TAKEN"))
}

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/x", "GET", 200, time.Millisecond)
	m.RecordError("/x", "GET", "INTERNAL_ERROR")
	require.Equal(t, int64(0), m.RequestCount("/x", "GET", 200))
}
