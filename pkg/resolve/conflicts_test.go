package resolve

import (
	"testing"

	"github.com/matzehuels/deptree/pkg/graph"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.9.0", "1.10.0", -1},
		{"2.0", "2.0.0", -1}, // numerically equal, lexical tie-break
		{"2.0-SNAPSHOT", "2.0", -1},
		{"31.1-jre", "30.0-jre", 1},
		{"1.0", "1.0", 0},
		{"1.0", "not.a.version!", -1},
		{"alpha!", "beta!", -1},
	}

	for _, tt := range tests {
		if got := CompareVersions(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestConflicts(t *testing.T) {
	g := build("app:app:1",
		map[graph.Coordinate][]graph.Coordinate{
			"app:app:1": {"p:p:1", "lib:x:1.10.0", "solo:s:1"},
			"p:p:1":     {"lib:x:1.9.0"},
			"solo:s:1":  {"lib:x:1.2.0"},
		},
		nil,
	)
	idx := Resolve(g)

	conflicts := idx.Conflicts()
	if len(conflicts) != 1 {
		t.Fatalf("Conflicts() = %d entries, want 1", len(conflicts))
	}
	c := conflicts[0]
	if c.GA != "lib:x" {
		t.Errorf("GA = %q, want lib:x", c.GA)
	}
	if c.Resolved != "1.9.0" {
		t.Errorf("Resolved = %q, want 1.9.0", c.Resolved)
	}
	if c.Highest != "1.10.0" {
		t.Errorf("Highest = %q, want 1.10.0", c.Highest)
	}
	if !c.Downgraded() {
		t.Error("Downgraded() = false, want true")
	}
	want := []string{"1.2.0", "1.9.0", "1.10.0"}
	for i, v := range c.Versions {
		if v.Version != want[i] {
			t.Errorf("Versions[%d] = %q, want %q", i, v.Version, want[i])
		}
	}
}

func TestConflictsNone(t *testing.T) {
	g := build("app:app:1", map[graph.Coordinate][]graph.Coordinate{"app:app:1": {"a:a:1"}}, nil)
	if got := Resolve(g).Conflicts(); len(got) != 0 {
		t.Errorf("Conflicts() = %v, want none", got)
	}
}
