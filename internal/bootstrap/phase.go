package bootstrap

import (
	"fmt"
)

// Phase is the process lifecycle state. Phases only move forward.
type Phase int

const (
	PhaseArbitrating Phase = iota
	PhaseActivatingPeer
	PhaseRunningPrimary
	PhaseExited
)

func (p Phase) String() string {
	switch p {
	case PhaseArbitrating:
		return "arbitrating"
	case PhaseActivatingPeer:
		return "activating-peer"
	case PhaseRunningPrimary:
		return "running-as-primary"
	case PhaseExited:
		return "exited"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// canAdvance reports whether from → to is a legal transition.
func canAdvance(from, to Phase) bool {
	switch from {
	case PhaseArbitrating:
		return to == PhaseActivatingPeer || to == PhaseRunningPrimary || to == PhaseExited
	case PhaseActivatingPeer, PhaseRunningPrimary:
		return to == PhaseExited
	default:
		return false
	}
}
