package telemetry

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestSessionID(t *testing.T) {
	if _, err := uuid.Parse(SessionID()); err != nil {
		t.Errorf("SessionID() = %q is not a UUID: %v", SessionID(), err)
	}
	if SessionID() != SessionID() {
		t.Error("SessionID() should be stable for the process")
	}
}

func TestTracerWithoutSetup(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "test.span")
	defer span.End()

	if span == nil {
		t.Fatal("Tracer returned a nil span")
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "noop.span")
	defer span.End()

	if span.IsRecording() {
		t.Error("noop span should not record")
	}
}
