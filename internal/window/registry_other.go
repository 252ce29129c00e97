//go:build !windows

package window

// noRegistry is used where there is no cross-process window registry to
// query by class. Every lookup misses, so peer activation degrades to a
// clean exit.
type noRegistry struct{}

// NewRegistry returns a registry whose lookups always miss.
func NewRegistry() Registry {
	return noRegistry{}
}

func (noRegistry) Find(string) Handle { return 0 }
func (noRegistry) IsWindow(Handle) bool { return false }
func (noRegistry) IsVisible(Handle) bool { return false }
func (noRegistry) IsIconic(Handle) bool { return false }
func (noRegistry) Show(Handle, ShowCommand) {}
func (noRegistry) SetForeground(Handle) bool { return false }
