package errors

import (
	"slices"
	"strings"
)

// KnownScopes lists the scope names a dependency can be classified into.
var KnownScopes = []string{"compile", "runtime", "test-compile", "test-runtime"}

// ValidateScopes reports scope names that no dependency can ever carry.
// Unknown names are not fatal for rendering (they simply never match), so
// callers usually log the returned error as a warning.
func ValidateScopes(names []string) error {
	var unknown []string
	for _, n := range names {
		if !slices.Contains(KnownScopes, n) {
			unknown = append(unknown, n)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	return New(ErrCodeInvalidScope, "unknown scope(s) %s (known: %s)",
		strings.Join(unknown, ", "), strings.Join(KnownScopes, ", "))
}

// ValidateInputPath checks that an input path was supplied and contains no
// NUL bytes. It does not touch the filesystem.
func ValidateInputPath(path string) error {
	if path == "" {
		return New(ErrCodeUsage, "no input file given")
	}
	if strings.ContainsRune(path, 0) {
		return New(ErrCodeInvalidInput, "input path contains invalid characters")
	}
	return nil
}
