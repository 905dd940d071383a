// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package rendezvous_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/turtlefleet/controller/internal/protocol"
	"github.com/turtlefleet/controller/internal/rendezvous"
)

func TestTryNextEmptyReturnsFalse(t *testing.T) {
	c := rendezvous.New(1)
	if _, ok := c.TryNext(); ok {
		t.Fatalf("expected empty queue")
	}
}

func TestSendThenTryNext(t *testing.T) {
	c := rendezvous.New(1)
	c.Send("turtle.forward()")
	cmd, ok := c.TryNext()
	if !ok || cmd != "turtle.forward()" {
		t.Fatalf("got (%q, %v)", cmd, ok)
	}
	if _, ok := c.TryNext(); ok {
		t.Fatalf("expected queue to be drained")
	}
}

func TestDisconnectSendsExitSentinel(t *testing.T) {
	c := rendezvous.New(1)
	c.Disconnect()
	cmd, ok := c.TryNext()
	if !ok || cmd != rendezvous.Exit {
		t.Fatalf("got (%q, %v), want (%q, true)", cmd, ok, rendezvous.Exit)
	}
}

func TestRecvBlocksUntilPushComplete(t *testing.T) {
	c := rendezvous.New(1)
	done := make(chan protocol.Response, 1)
	go func() {
		resp, err := c.Recv(context.Background())
		if err != nil {
			t.Errorf("Recv: %v", err)
		}
		done <- resp
	}()

	select {
	case <-done:
		t.Fatalf("Recv returned before PushComplete")
	case <-time.After(20 * time.Millisecond):
	}

	c.PushComplete(protocol.Response{Code: protocol.CodeOk, Out: json.RawMessage(`[true]`)})

	select {
	case resp := <-done:
		if resp.Code != protocol.CodeOk {
			t.Fatalf("Code = %d, want 0", resp.Code)
		}
	case <-time.After(time.Second):
		t.Fatalf("Recv did not return after PushComplete")
	}
}

func TestRecvRespectsContextCancellation(t *testing.T) {
	c := rendezvous.New(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Recv(ctx); err == nil {
		t.Fatalf("expected error from cancelled context")
	}
}
