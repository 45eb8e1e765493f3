package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestExpvarRecorderAggregates(t *testing.T) {
	rec := NewExpvarMetricsRecorder("")
	rec.RecordDuration("generate_person", 120*time.Millisecond)
	rec.RecordDuration("generate_person", 80*time.Millisecond)
	rec.RecordResult("generate_person", "ok")
	rec.RecordResult("generate_person", "ok")
	rec.RecordResult("push", "error")

	snap := rec.Snapshot()
	if got := snap.DurationsMS["generate_person"]; got != 200 {
		t.Errorf("durations = %v ms, want 200", got)
	}
	if got := snap.Results["generate_person"]["ok"]; got != 2 {
		t.Errorf("ok count = %d, want 2", got)
	}
	if got := snap.Results["push"]["error"]; got != 1 {
		t.Errorf("error count = %d, want 1", got)
	}
	if rec.Name() == "" {
		t.Error("empty name not replaced with generated identifier")
	}
}

func TestExpvarRecorderSnapshotIsACopy(t *testing.T) {
	rec := NewExpvarMetricsRecorder("")
	rec.RecordResult("op", "ok")
	snap := rec.Snapshot()
	snap.Results["op"]["ok"] = 99
	if got := rec.Snapshot().Results["op"]["ok"]; got != 1 {
		t.Fatalf("snapshot mutation leaked into recorder: %d", got)
	}
}

func TestExpvarRecorderReusedNameStaysPublishable(t *testing.T) {
	first := NewExpvarMetricsRecorder("reused_name_test")
	second := NewExpvarMetricsRecorder("reused_name_test")

	if first.Name() != "reused_name_test" {
		t.Errorf("first recorder name = %q, want reused_name_test", first.Name())
	}
	if second.Name() == first.Name() {
		t.Errorf("second recorder reuses name %q", second.Name())
	}
	second.RecordResult("op", "ok")
	if got := second.Snapshot().Results["op"]["ok"]; got != 1 {
		t.Fatalf("second recorder count = %d, want 1", got)
	}
	if got := len(first.Snapshot().Results); got != 0 {
		t.Fatalf("first recorder picked up %d results, want 0", got)
	}
}

func TestPrometheusRecorderRegistersAndCollects(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	rec, err := NewPrometheusMetricsRecorder(reg)
	if err != nil {
		t.Fatalf("NewPrometheusMetricsRecorder: %v", err)
	}
	rec.RecordDuration("generate_person", 50*time.Millisecond)
	rec.RecordResult("generate_person", "ok")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{"datagen_operation_duration_seconds", "datagen_operation_results_total"} {
		if !names[want] {
			t.Errorf("metric family %q not collected; got %v", want, names)
		}
	}
}

func TestPrometheusRecorderDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPrometheusMetricsRecorder(reg); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := NewPrometheusMetricsRecorder(reg); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}
