package telemetry

import (
	"context"
	"testing"
)

func TestNewRecorderDisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	rec, err := NewRecorder(context.Background())
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil recorder when endpoint unset")
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder

	rec.Action("navigate", Str("path", "/team/cowboys"), Int("week", 2))
	if err := rec.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown on nil recorder: %v", err)
	}
}

func TestAttributeNamespace(t *testing.T) {
	if got := string(Str("path", "/").Key); got != "pickem.path" {
		t.Errorf("Str key = %q, want pickem.path", got)
	}
	if got := string(Int("week", 1).Key); got != "pickem.week" {
		t.Errorf("Int key = %q, want pickem.week", got)
	}
}
