// Package render selects the rendering backend through process
// environment switches.
//
// The engine reads its switches once, when it initializes, so they have
// to be in the environment before the primary window is constructed.
// Setting them afterwards has no effect.
package render

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cyrenemusic/cyrene-runner/internal/config"
)

// Engine switch environment keys. FLUTTER_ENGINE_SWITCHES holds the count
// and FLUTTER_ENGINE_SWITCH_<n> (1-based) holds each switch.
const (
	SwitchCountKey  = "FLUTTER_ENGINE_SWITCHES"
	SwitchKeyPrefix = "FLUTTER_ENGINE_SWITCH_"
)

// ImpellerSwitch selects Impeller, whose Direct3D backend presents at the
// display's refresh rate (120Hz, 144Hz, ...).
const ImpellerSwitch = "enable-impeller=true"

// Var is one environment assignment.
type Var struct {
	Key   string
	Value string
}

// Setter writes process environment variables.
type Setter interface {
	Setenv(key, value string) error
}

type osEnv struct{}

// NewSetter returns a Setter over the process environment.
func NewSetter() Setter {
	return osEnv{}
}

func (osEnv) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// EngineSwitches encodes flags as the numbered switch variables.
func EngineSwitches(flags ...string) []Var {
	if len(flags) == 0 {
		return nil
	}
	vars := make([]Var, 0, len(flags)+1)
	vars = append(vars, Var{Key: SwitchCountKey, Value: strconv.Itoa(len(flags))})
	for i, flag := range flags {
		vars = append(vars, Var{Key: SwitchKeyPrefix + strconv.Itoa(i+1), Value: flag})
	}
	return vars
}

// Switches returns the variables selected by cfg.
func Switches(cfg config.RenderConfig) []Var {
	if !cfg.Impeller {
		return nil
	}
	return EngineSwitches(ImpellerSwitch)
}

// Apply sets every variable in order and stops at the first failure.
func Apply(s Setter, vars []Var) error {
	for _, v := range vars {
		if err := s.Setenv(v.Key, v.Value); err != nil {
			return fmt.Errorf("set %s: %w", v.Key, err)
		}
	}
	return nil
}
