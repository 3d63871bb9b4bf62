package net_test

import (
	"context"
	"testing"

	pnet "hashsleuth/internal/platform/net"
)

func TestWithRequest_And_RequestID(t *testing.T) {
	base := context.Background()

	t.Run("sets request id", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "req-123")
		if got := pnet.RequestID(ctx); got != "req-123" {
			t.Fatalf("RequestID got %q want %q", got, "req-123")
		}
	})

	t.Run("empty id leaves context untouched", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "")
		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
	})

	t.Run("missing id reads empty", func(t *testing.T) {
		if got := pnet.RequestID(base); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
	})
}
