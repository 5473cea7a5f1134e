package httpserver

import (
	"net/http"
	"testing"
	"time"
)

func TestNewLeavesRoomForUpstreamCalls(t *testing.T) {
	srv := New(8123, http.NewServeMux(), 4*time.Second)

	if srv.Addr() != ":8123" {
		t.Fatalf("unexpected addr %q", srv.Addr())
	}
	if srv.inner.WriteTimeout < 8*time.Second {
		t.Fatalf("write timeout %v shorter than two upstream calls", srv.inner.WriteTimeout)
	}
}

func TestNewDefaultsUpstreamTimeout(t *testing.T) {
	srv := New(8000, http.NewServeMux(), 0)

	if srv.inner.WriteTimeout != 25*time.Second {
		t.Fatalf("expected 25s write timeout got %v", srv.inner.WriteTimeout)
	}
}
