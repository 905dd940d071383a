// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package registry

import (
	"log"
	"sync"

	"github.com/turtlefleet/controller/internal/rendezvous"
)

// Registry is the live turtle-id -> rendezvous.Channel map. The zero value
// is not usable; construct with New.
type Registry struct {
	sync.RWMutex
	channels map[uint64]*rendezvous.Channel
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{channels: make(map[uint64]*rendezvous.Channel)}
}

// Register creates a fresh rendezvous.Channel for id and stores it,
// replacing any channel already registered for that id. A turtle that
// reconnects after a crash re-registers; spec.md §5 accepts that a
// planner still holding the old channel is left blocked forever on that
// turtle — nothing here notifies it of the replacement.
func (r *Registry) Register(id uint64) *rendezvous.Channel {
	c := rendezvous.New(id)
	r.Lock()
	defer r.Unlock()
	if _, exists := r.channels[id]; exists {
		log.Printf("[registry] turtle %d: re-registering, previous channel orphaned\n", id)
	}
	r.channels[id] = c
	return c
}

// Lookup returns the channel registered for id, if any.
func (r *Registry) Lookup(id uint64) (*rendezvous.Channel, bool) {
	r.RLock()
	defer r.RUnlock()
	c, ok := r.channels[id]
	return c, ok
}

// Unregister removes id's channel, e.g. once a planner run completes and
// disconnects its turtle.
func (r *Registry) Unregister(id uint64) {
	r.Lock()
	defer r.Unlock()
	delete(r.channels, id)
}

// Len reports how many turtles are currently registered.
func (r *Registry) Len() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.channels)
}
