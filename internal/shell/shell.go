// Package shell registers the process's identity with the OS shell so
// taskbar grouping and the system media transport controls associate
// windows and media sessions with this application.
package shell

import (
	"fmt"
	"strings"
	"unicode"
)

// maxAppUserModelIDLen is the shell's limit on identity length.
const maxAppUserModelIDLen = 128

// Registrar sets the explicit application identity of the process.
type Registrar interface {
	SetAppUserModelID(id string) error
}

// ValidateAppUserModelID checks id against the shell's rules: at most 128
// characters, no spaces, and one to four dot-separated non-empty parts
// (Company.Product.SubProduct.Version).
func ValidateAppUserModelID(id string) error {
	if id == "" {
		return fmt.Errorf("app user model ID is empty")
	}
	if len(id) > maxAppUserModelIDLen {
		return fmt.Errorf("app user model ID %q exceeds %d characters", id, maxAppUserModelIDLen)
	}
	if strings.IndexFunc(id, unicode.IsSpace) >= 0 {
		return fmt.Errorf("app user model ID %q contains whitespace", id)
	}

	parts := strings.Split(id, ".")
	if len(parts) > 4 {
		return fmt.Errorf("app user model ID %q has %d parts, max 4", id, len(parts))
	}
	for _, p := range parts {
		if p == "" {
			return fmt.Errorf("app user model ID %q has an empty part", id)
		}
	}
	return nil
}
