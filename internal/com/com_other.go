//go:build !windows

package com

// nopInitializer is used where there is no COM.
type nopInitializer struct{}

// NewInitializer returns an initializer that does nothing.
func NewInitializer() Initializer {
	return nopInitializer{}
}

func (nopInitializer) Initialize() error { return nil }
func (nopInitializer) Uninitialize() {}
