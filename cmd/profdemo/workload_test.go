package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Lolitron-0/profiler"
)

func TestRunWorkloadProducesTrace(t *testing.T) {
	p := profiler.New()
	var buf bytes.Buffer

	if err := p.BeginSessionWriter("workload-test", &buf); err != nil {
		t.Fatalf("BeginSessionWriter failed: %v", err)
	}

	cfg := workloadConfig{
		Workers: 3,
		Tasks:   9,
		MinTask: duration{50 * time.Microsecond},
		MaxTask: duration{100 * time.Microsecond},
	}
	if err := runWorkload(context.Background(), p, cfg); err != nil {
		t.Fatalf("runWorkload failed: %v", err)
	}

	if err := p.EndSession(); err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}

	var tf struct {
		TraceEvents []map[string]any `json:"traceEvents"`
	}
	if err := json.Unmarshal(buf.Bytes(), &tf); err != nil {
		t.Fatalf("Trace output is not valid JSON: %v", err)
	}

	// Placeholder + plan + one per task + workload wrapper.
	want := 1 + 1 + cfg.Tasks + 1
	if len(tf.TraceEvents) != want {
		t.Errorf("Expected %d traceEvents, got %d", want, len(tf.TraceEvents))
	}

	out := buf.String()
	for _, name := range []string{`"name":"plan"`, `"name":"task-000"`, `"name":"workload"`} {
		if !strings.Contains(out, name) {
			t.Errorf("Expected output to contain %s", name)
		}
	}
}

func TestRunWorkloadCancelled(t *testing.T) {
	p := profiler.New()
	var buf bytes.Buffer

	if err := p.BeginSessionWriter("cancelled", &buf); err != nil {
		t.Fatalf("BeginSessionWriter failed: %v", err)
	}
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := workloadConfig{
		Workers: 2,
		Tasks:   1000,
		MinTask: duration{time.Millisecond},
		MaxTask: duration{time.Millisecond},
	}
	err := runWorkload(ctx, p, cfg)
	if err == nil {
		t.Error("Expected context cancellation to surface from runWorkload")
	}
}
