//go:build windows

package com

import (
	"errors"

	ole "github.com/go-ole/go-ole"
)

// sFalse is returned when the thread already has a compatible apartment.
// It still has to be balanced by CoUninitialize.
const sFalse = 0x00000001

type oleInitializer struct{}

// NewInitializer returns an initializer entering a single-threaded
// apartment. The caller must hold its OS thread (runtime.LockOSThread).
func NewInitializer() Initializer {
	return oleInitializer{}
}

func (oleInitializer) Initialize() error {
	err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED)
	if err == nil {
		return nil
	}
	var oleErr *ole.OleError
	if errors.As(err, &oleErr) && oleErr.Code() == sFalse {
		return nil
	}
	return err
}

func (oleInitializer) Uninitialize() {
	ole.CoUninitialize()
}
