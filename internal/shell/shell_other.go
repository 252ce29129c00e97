//go:build !windows

package shell

type nopRegistrar struct{}

// NewRegistrar returns a registrar that only validates the identity.
// Desktop environments here group windows by the toolkit's app ID instead.
func NewRegistrar() Registrar {
	return nopRegistrar{}
}

func (nopRegistrar) SetAppUserModelID(id string) error {
	return ValidateAppUserModelID(id)
}
