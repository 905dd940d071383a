// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package rendezvous

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/turtlefleet/controller/internal/protocol"
)

// Wait is the literal string GET /next returns when no command is pending.
const Wait = "WAIT"

// Exit is the sentinel the planner sends to signal disconnect.
const Exit = "EXIT"

// Channel is the rendezvous pair for one turtle: a single-producer
// single-consumer queue of outgoing commands, and one of incoming replies.
// Buffered to depth 1 — the one-command-in-flight invariant means a
// second Send before the matching Recv would be a planner bug, not a
// condition to block on.
type Channel struct {
	id       uint64
	next     chan string
	complete chan protocol.Response
}

// New creates a Channel for turtleID.
func New(turtleID uint64) *Channel {
	return &Channel{
		id:       turtleID,
		next:     make(chan string, 1),
		complete: make(chan protocol.Response, 1),
	}
}

// Send enqueues cmd for the turtle to pick up and returns immediately.
func (c *Channel) Send(cmd string) {
	corr := uuid.NewString()
	log.Printf("[rendezvous] turtle %d: send %q (%s)\n", c.id, cmd, corr)
	c.next <- cmd
}

// TryNext is GET /next/{id}: a non-blocking pop. It never blocks — an
// empty queue reports ok=false and the transport replies with Wait.
func (c *Channel) TryNext() (cmd string, ok bool) {
	select {
	case cmd = <-c.next:
		return cmd, true
	default:
		return "", false
	}
}

// PushComplete is POST /cmdcomplete/{id}: the transport hands the turtle's
// reply to the waiting planner.
func (c *Channel) PushComplete(resp protocol.Response) {
	c.complete <- resp
}

// Recv blocks until a reply is available or ctx is done, in which case it
// returns ctx.Err(). It sets no timeout of its own: with a context that is
// never cancelled, a turtle that disconnects mid-flight leaves the planner
// blocked forever, which spec.md §5 accepts as a known limitation.
func (c *Channel) Recv(ctx context.Context) (protocol.Response, error) {
	select {
	case resp := <-c.complete:
		return resp, nil
	case <-ctx.Done():
		return protocol.Response{}, ctx.Err()
	}
}

// Disconnect enqueues the Exit sentinel. It is a one-way signal; the
// planner does not wait for acknowledgement.
func (c *Channel) Disconnect() {
	log.Printf("[rendezvous] turtle %d: disconnect\n", c.id)
	c.next <- Exit
}
