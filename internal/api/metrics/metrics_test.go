package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func value(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var out dto.Metric
	if err := m.Write(&out); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	switch {
	case out.Gauge != nil:
		return out.Gauge.GetValue()
	case out.Counter != nil:
		return out.Counter.GetValue()
	}
	t.Fatalf("unsupported metric type")
	return 0
}

func TestAuditObserver(t *testing.T) {
	obs := AuditObserver{}

	obs.QueueDepth(3, 7)
	if got := value(t, AuditQueueDepth.WithLabelValues("3")); got != 7 {
		t.Fatalf("queue depth = %v, want 7", got)
	}

	before := value(t, AuditErrorsTotal)
	obs.ProcessFailed()
	if got := value(t, AuditErrorsTotal); got != before+1 {
		t.Fatalf("errors total = %v, want %v", got, before+1)
	}
}
