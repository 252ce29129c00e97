package shell

import (
	"strings"
	"testing"

	"github.com/cyrenemusic/cyrene-runner/internal/constants"
)

func TestValidateAppUserModelID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{constants.AppUserModelID, false},
		{"Company.Product", false},
		{"Single", false},
		{"", true},
		{"Has Space.Product", true},
		{"A.B.C.D.E", true},
		{"A..B", true},
		{strings.Repeat("x", 129), true},
	}

	for _, tt := range tests {
		err := ValidateAppUserModelID(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateAppUserModelID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
	}
}
