package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestClientID_RoundTrip(t *testing.T) {
	id := uuid.New()
	ctx := WithClientID(context.Background(), id)

	got, ok := ClientIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected client ID to be present")
	}
	if got != id {
		t.Errorf("expected %s, got %s", id, got)
	}
}

func TestClientIDFromCtx_Missing(t *testing.T) {
	_, ok := ClientIDFromCtx(context.Background())
	if ok {
		t.Error("expected missing client ID")
	}
}

func TestClientIDFromCtx_NilUUID(t *testing.T) {
	ctx := WithClientID(context.Background(), uuid.Nil)
	_, ok := ClientIDFromCtx(ctx)
	if ok {
		t.Error("expected nil UUID to be treated as absent")
	}
}

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Errorf("expected req-123, got %q", got)
	}
}

func TestRequestIDFromCtx_Missing(t *testing.T) {
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("expected empty request ID, got %q", got)
	}
}
