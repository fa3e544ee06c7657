package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestWithInvocationIDStampsRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := WithInvocationID(slog.New(slog.NewJSONHandler(&buf, nil)), "run-1")

	logger.With(slog.String("component", "api")).Info("request sent")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record[FieldInvocationID] != "run-1" {
		t.Fatalf("expected invocation id, got %v", record)
	}
	if record["component"] != "api" {
		t.Fatalf("expected attrs to survive wrapping, got %v", record)
	}
}

func TestWithInvocationIDEmpty(t *testing.T) {
	base := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	if got := WithInvocationID(base, ""); got != base {
		t.Fatal("expected logger to be returned unchanged")
	}
	if WithInvocationID(nil, "x") == nil {
		t.Fatal("expected a logger for nil input")
	}
}
