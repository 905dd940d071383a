// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package server

import (
	"net"
	"net/http"
)

// Options is a convenience alias for building an option slice inline.
type Options []Option

// Option mutates a Server during New.
type Option func(*Server) error

// WithApp wires in any type exposing Routes(), the shape both the
// teacher's apps/rest.App and this controller's internal/transport.App
// share.
func WithApp(app interface {
	Routes() (*http.ServeMux, error)
}) Option {
	return func(s *Server) (err error) {
		s.mux, err = app.Routes()
		return err
	}
}

// WithHost sets the listen host, recomputing Addr.
func WithHost(host string) Option {
	return func(s *Server) error {
		s.host = host
		s.Addr = net.JoinHostPort(s.host, s.port)
		return nil
	}
}

// WithPort sets the listen port, recomputing Addr.
func WithPort(port string) Option {
	return func(s *Server) error {
		s.port = port
		s.Addr = net.JoinHostPort(s.host, s.port)
		return nil
	}
}
