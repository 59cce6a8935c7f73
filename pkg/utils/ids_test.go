package utils

import (
	"strings"
	"testing"
)

func TestValidateResultID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"simple", "venue-1", false},
		{"uuid", "0b7c9c2e-5f7e-4a57-9d4c-2b0e8f6f3d11", false},
		{"max length", strings.Repeat("a", MaxResultIDBytes), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxResultIDBytes+1), true},
		{"multibyte over limit", strings.Repeat("é", 33), true},
		{"invalid utf8", "\xff", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResultID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateResultID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
