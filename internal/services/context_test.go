package services_test

import (
	"context"
	"testing"

	"github.com/moyn-dev/moyn-cli/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithCommand(ctx, "moyn publish")
	ctx = services.WithRequestID(ctx, "req-123")

	if cmd, ok := services.CommandFromContext(ctx); !ok || cmd != "moyn publish" {
		t.Fatalf("unexpected command: %v %v", cmd, ok)
	}
	if rid, ok := services.RequestIDFromContext(ctx); !ok || rid != "req-123" {
		t.Fatalf("unexpected request id: %v %v", rid, ok)
	}
}

func TestCommandBlankPreservesContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithCommand(ctx, "")
	if _, ok := services.CommandFromContext(ctx); ok {
		t.Fatal("expected no command value")
	}
}
