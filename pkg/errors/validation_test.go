package errors

import (
	"testing"
)

func TestValidateScopes(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantErr bool
	}{
		{"nil", nil, false},
		{"compile", []string{"compile"}, false},
		{"all known", []string{"compile", "runtime", "test-compile", "test-runtime"}, false},

		{"gradle configuration name", []string{"compileClasspath"}, true},
		{"typo", []string{"runtme"}, true},
		{"mixed", []string{"compile", "bogus"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScopes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScopes(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidScope) {
				t.Errorf("ValidateScopes(%v) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidScope)
			}
		})
	}
}

func TestValidateInputPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{"valid", "deps.json", ""},
		{"valid nested", "build/reports/deps.json", ""},
		{"empty", "", ErrCodeUsage},
		{"null byte", "deps\x00.json", ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInputPath(tt.input)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateInputPath(%q) code = %q, want %q", tt.input, got, tt.wantCode)
			}
		})
	}
}
