package instance

import (
	"strings"
)

// LockFileName maps a lock name to a file name for file-backed backends.
// The Win32 namespace prefix is dropped (a per-session directory provides
// the scoping) and anything outside [A-Za-z0-9._-] becomes '_'.
func LockFileName(name string) string {
	name = strings.TrimSpace(name)
	for _, prefix := range []string{`Local\`, `Global\`, `Session\`} {
		if len(name) >= len(prefix) && strings.EqualFold(name[:len(prefix)], prefix) {
			name = name[len(prefix):]
			break
		}
	}

	var b strings.Builder
	b.Grow(len(name) + len(".lock"))
	for _, r := range name {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	normalized := strings.Trim(b.String(), "_-.")
	if normalized == "" {
		normalized = "instance"
	}
	return normalized + ".lock"
}
