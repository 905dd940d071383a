// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package transport

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/turtlefleet/controller/internal/protocol"
	"github.com/turtlefleet/controller/internal/rendezvous"
)

// Routes builds the mux exposing spec.md §6's three endpoints. It
// satisfies the same shape the teacher's apps/rest.App.Routes does, so
// internal/server.WithApp can take it directly.
func (a *App) Routes() (*http.ServeMux, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /register/{id}", a.handleRegister)
	mux.HandleFunc("GET /next/{id}", a.handleNext)
	mux.HandleFunc("POST /cmdcomplete/{id}", a.handleCmdComplete)
	return mux, nil
}

func parseTurtleID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(r.PathValue("id"), 10, 64)
}

// handleRegister is POST /register/{id}: body is empty. Creates (or
// replaces) the rendezvous for id and spawns a planner. Returns 200 on
// accept regardless of whether id was already registered.
func (a *App) handleRegister(w http.ResponseWriter, r *http.Request) {
	id, err := parseTurtleID(r)
	if err != nil {
		http.Error(w, "bad turtle id", http.StatusBadRequest)
		return
	}
	a.spawn(id)
	w.WriteHeader(http.StatusOK)
}

// handleNext is GET /next/{id}: never blocks. An empty queue answers with
// the literal string rendezvous.Wait.
func (a *App) handleNext(w http.ResponseWriter, r *http.Request) {
	id, err := parseTurtleID(r)
	if err != nil {
		http.Error(w, "bad turtle id", http.StatusBadRequest)
		return
	}
	ch, ok := a.reg.Lookup(id)
	if !ok {
		http.Error(w, "turtle not registered", http.StatusNotFound)
		return
	}
	cmd, ok := ch.TryNext()
	if !ok {
		cmd = rendezvous.Wait
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = io.WriteString(w, cmd)
}

// handleCmdComplete is POST /cmdcomplete/{id}: body {"code": int, "out":
// any}. The reply is pushed to the waiting planner; the HTTP response
// itself is ignored by the turtle.
func (a *App) handleCmdComplete(w http.ResponseWriter, r *http.Request) {
	id, err := parseTurtleID(r)
	if err != nil {
		http.Error(w, "bad turtle id", http.StatusBadRequest)
		return
	}
	ch, ok := a.reg.Lookup(id)
	if !ok {
		http.Error(w, "turtle not registered", http.StatusNotFound)
		return
	}
	var resp protocol.Response
	if err := json.NewDecoder(r.Body).Decode(&resp); err != nil {
		log.Printf("[transport] turtle %d: malformed cmdcomplete body: %v\n", id, err)
		http.Error(w, "malformed body", http.StatusBadRequest)
		return
	}
	ch.PushComplete(resp)
	w.WriteHeader(http.StatusOK)
}
