// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package registry_test

import (
	"sync"
	"testing"

	"github.com/turtlefleet/controller/internal/registry"
)

func TestRegisterThenLookup(t *testing.T) {
	r := registry.New()
	c := r.Register(7)
	got, ok := r.Lookup(7)
	if !ok || got != c {
		t.Fatalf("Lookup(7) = (%v, %v), want (%v, true)", got, ok, c)
	}
}

func TestLookupMissingReturnsFalse(t *testing.T) {
	r := registry.New()
	if _, ok := r.Lookup(99); ok {
		t.Fatalf("expected no channel for unregistered id")
	}
}

func TestReRegisterReplacesChannel(t *testing.T) {
	r := registry.New()
	first := r.Register(3)
	second := r.Register(3)
	if first == second {
		t.Fatalf("expected re-registration to produce a distinct channel")
	}
	got, ok := r.Lookup(3)
	if !ok || got != second {
		t.Fatalf("Lookup(3) = (%v, %v), want (%v, true)", got, ok, second)
	}
}

func TestUnregisterRemovesChannel(t *testing.T) {
	r := registry.New()
	r.Register(1)
	r.Unregister(1)
	if _, ok := r.Lookup(1); ok {
		t.Fatalf("expected channel to be gone after Unregister")
	}
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", r.Len())
	}
}

func TestConcurrentRegisterAndLookup(t *testing.T) {
	r := registry.New()
	var wg sync.WaitGroup
	for i := uint64(0); i < 50; i++ {
		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			r.Register(id)
			r.Lookup(id)
		}(i)
	}
	wg.Wait()
	if r.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", r.Len())
	}
}
