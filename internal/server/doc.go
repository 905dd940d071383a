// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package server is a generic http.Server wrapper configured through
// functional options, in the style of the teacher's internal/server
// package: a host/port/app get folded into net/http's Server via
// Option values, and the caller retrieves the resulting mux/router to
// serve.
package server
