package observability

import (
	"testing"
	"time"
)

func TestMetrics_RecordRequest(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.RecordRequest("/api/reports", "GET", 200, 5*time.Millisecond)
	m.RecordRequest("/api/reports", "GET", 200, 7*time.Millisecond)
	m.RecordRequest("/api/reports", "GET", 403, time.Millisecond)

	if got := m.RequestTotal("/api/reports", "GET", 200); got != 2 {
		t.Errorf("RequestTotal = %d, want 2", got)
	}
	if got := m.RequestTotal("/api/reports", "GET", 403); got != 1 {
		t.Errorf("RequestTotal = %d, want 1", got)
	}
	if got := m.RequestTotal("/api/reports", "POST", 200); got != 0 {
		t.Errorf("RequestTotal for unseen key = %d, want 0", got)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.RecordRequest("/", "GET", 200, 0)
	m.RecordError("/", "GET", "INTERNAL_ERROR")
	if got := m.RequestTotal("/", "GET", 200); got != 0 {
		t.Errorf("nil metrics RequestTotal = %d, want 0", got)
	}
}
