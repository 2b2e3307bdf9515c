package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestUpstreamMetricsCountsErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewUpstreamMetrics(reg)

	m.IncError("/api/products", "GET")
	m.IncError("/api/products", "GET")
	m.ObserveDuration("/api/products", "GET", 25*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) != 2 {
		t.Fatalf("expected 2 metric families, got %d", len(families))
	}

	count := testutil.ToFloat64(m.errors.WithLabelValues("/api/products", "GET"))
	if count != 2 {
		t.Fatalf("expected 2 errors, got %v", count)
	}
}

func TestUpstreamMetricsNilSafe(t *testing.T) {
	var m *UpstreamMetrics
	m.IncError("/api/orders", "POST")
	m.ObserveDuration("/api/orders", "POST", time.Second)

	empty := NewUpstreamMetrics(nil)
	empty.IncError("", "")
	empty.ObserveDuration("", "", 0)
}
