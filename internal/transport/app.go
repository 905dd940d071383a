// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package transport

import (
	"context"
	"log"

	"github.com/turtlefleet/controller/internal/registry"
	"github.com/turtlefleet/controller/internal/rendezvous"
	"github.com/turtlefleet/controller/internal/turtleapi"
)

// Planner is the per-turtle work function register spawns as a goroutine.
// It receives a primitive driver bound to the turtle's freshly registered
// rendezvous channel and runs until the turtle disconnects or the planner
// decides it is done; the planner is responsible for calling driver.
// Disconnect() itself if it wants the turtle to stop polling.
type Planner func(id uint64, driver *turtleapi.Driver)

// App wires a registry and a Planner factory into the net/http.ServeMux
// spec.md §6's three endpoints are served from. It is the transport
// equivalent of the teacher's apps/rest.App: Routes() returns a mux ready
// to be handed to an internal/server.Server via WithApp.
type App struct {
	reg     *registry.Registry
	planner Planner
}

// New returns an App that spawns planner for every /register/{id} call.
func New(reg *registry.Registry, planner Planner) *App {
	return &App{reg: reg, planner: planner}
}

func (a *App) spawn(id uint64) *rendezvous.Channel {
	ch := a.reg.Register(id)
	go func() {
		defer a.reg.Unregister(id)
		log.Printf("[transport] turtle %d: planner starting\n", id)
		a.planner(id, turtleapi.New(context.Background(), ch))
		log.Printf("[transport] turtle %d: planner finished\n", id)
	}()
	return ch
}
