// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package server

import (
	"fmt"
	"net/http"
	"time"
)

// Server wraps http.Server with the host/port/scheme bookkeeping the
// controller's serve command needs.
type Server struct {
	http.Server
	scheme string
	host   string
	port   string
	mux    *http.ServeMux
}

// New builds a Server with the controller's defaults, then applies
// options in order. Without host/port options the address is
// localhost:8080.
func New(options ...Option) (*Server, error) {
	s := &Server{
		scheme: "http",
		host:   "localhost",
		port:   "8080",
		mux:    http.NewServeMux(),
	}
	s.Addr = s.host + ":" + s.port
	s.IdleTimeout = 30 * time.Second
	s.ReadTimeout = 5 * time.Second
	s.WriteTimeout = 10 * time.Second
	s.MaxHeaderBytes = 1 << 20

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	s.Handler = s.mux

	return s, nil
}

// BaseURL is the fully qualified root the turtles' controller address
// should be derived from.
func (s *Server) BaseURL() string {
	return fmt.Sprintf("%s://%s", s.scheme, s.Addr)
}

// Router returns the mux wired in by WithApp, for callers that want it
// directly rather than going through http.Server.ListenAndServe.
func (s *Server) Router() http.Handler {
	return s.mux
}
