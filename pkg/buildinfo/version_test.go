package buildinfo

import (
	"strings"
	"testing"
)

func TestResolvedPrefersLdflags(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "v1.2.3"
	if got := Resolved(); got != "v1.2.3" {
		t.Errorf("Resolved() = %q, want v1.2.3", got)
	}
	if !strings.HasPrefix(String(), "version: v1.2.3\n") {
		t.Errorf("String() = %q", String())
	}
	if !strings.Contains(Template(), "{{.Name}} version v1.2.3") {
		t.Errorf("Template() = %q", Template())
	}
}
