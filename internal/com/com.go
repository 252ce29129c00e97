// Package com manages the process's COM apartment.
//
// Plugins expect COM to be initialized on the UI thread in a
// single-threaded apartment. Initialization must be balanced by exactly
// one uninitialization on the way out; Scope enforces that.
package com

// Initializer exposes COM apartment setup for the calling thread.
type Initializer interface {
	Initialize() error
	Uninitialize()
}

// Scope is an entered apartment. Close uninitializes it exactly once.
type Scope struct {
	init   Initializer
	active bool
}

// Enter initializes COM through init. On failure the returned Scope is
// inactive and Close does nothing, since a failed initialization must not
// be balanced.
func Enter(init Initializer) (*Scope, error) {
	if err := init.Initialize(); err != nil {
		return &Scope{init: init}, err
	}
	return &Scope{init: init, active: true}, nil
}

// Active reports whether the apartment still needs to be uninitialized.
func (s *Scope) Active() bool {
	return s != nil && s.active
}

// Close uninitializes the apartment. Later calls are no-ops.
func (s *Scope) Close() {
	if !s.Active() {
		return
	}
	s.active = false
	s.init.Uninitialize()
}
