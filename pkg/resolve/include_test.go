package resolve

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/deptree/pkg/graph"
	"github.com/matzehuels/deptree/pkg/scope"
)

func diamond() *graph.Graph {
	// app -> a -> c -> d
	// app -> c
	// app -> t (test only) -> u
	return build("app:app:1",
		map[graph.Coordinate][]graph.Coordinate{
			"app:app:1": {"a:a:1", "c:c:1", "t:t:1"},
			"a:a:1":     {"c:c:1"},
			"c:c:1":     {"d:d:1"},
			"t:t:1":     {"u:u:1"},
		},
		map[graph.Coordinate][]string{
			"app:app:1": impl,
			"a:a:1":     impl,
			"c:c:1":     runtime,
			"d:d:1":     runtime,
			"t:t:1":     {"testCompileClasspath"},
			"u:u:1":     compile,
		},
	)
}

func TestMinDepths(t *testing.T) {
	idx := Resolve(diamond())

	got := idx.MinDepths(Predicate{})
	want := map[graph.Coordinate]int{
		"app:app:1": 0,
		"a:a:1":     1,
		"c:c:1":     1,
		"t:t:1":     1,
		"d:d:1":     2,
		"u:u:1":     2,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MinDepths() mismatch (-want +got):\n%s", diff)
	}
}

func TestMinDepthsFilterPrunesSubtree(t *testing.T) {
	idx := Resolve(diamond())

	// t carries only test-compile, so u disappears with it even though u
	// itself is compile scoped.
	got := idx.MinDepths(Predicate{Filter: scope.ParseFilter("compile")})
	want := map[graph.Coordinate]int{
		"app:app:1": 0,
		"a:a:1":     1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MinDepths(compile) mismatch (-want +got):\n%s", diff)
	}
}

func TestMinDepthsExclusions(t *testing.T) {
	idx := Resolve(diamond())
	ex, err := CompileExclusions([]string{"c:*"})
	if err != nil {
		t.Fatal(err)
	}

	got := idx.MinDepths(Predicate{Exclude: ex})
	for _, c := range []graph.Coordinate{"c:c:1", "d:d:1"} {
		if _, ok := got[c]; ok {
			t.Errorf("%s should be pruned by exclusion", c)
		}
	}
	if _, ok := got["u:u:1"]; !ok {
		t.Error("u:u:1 should survive an unrelated exclusion")
	}
}

func TestMinDepthsRootAlwaysIncluded(t *testing.T) {
	g := build("project",
		map[graph.Coordinate][]graph.Coordinate{"project": {"a:a:1"}},
		map[graph.Coordinate][]string{"a:a:1": runtime},
	)
	idx := Resolve(g)

	got := idx.MinDepths(Predicate{Filter: scope.ParseFilter("runtime")})
	want := map[graph.Coordinate]int{"project": 0, "a:a:1": 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MinDepths() mismatch (-want +got):\n%s", diff)
	}
}

func TestMinDepthsSkipsUnresolvedVersions(t *testing.T) {
	g := build("app:app:1",
		map[graph.Coordinate][]graph.Coordinate{
			"app:app:1": {"p:p:1", "lib:x:2"},
			"p:p:1":     {"lib:x:1"},
			"lib:x:2":   {"only:via-2:1"},
		},
		map[graph.Coordinate][]string{
			"p:p:1":        impl,
			"lib:x:1":      impl,
			"lib:x:2":      impl,
			"only:via-2:1": impl,
		},
	)
	idx := Resolve(g)

	got := idx.MinDepths(Predicate{})
	if _, ok := got["lib:x:2"]; ok {
		t.Error("losing version lib:x:2 must not get a depth")
	}
	if _, ok := got["only:via-2:1"]; ok {
		t.Error("subtree of a losing version must be pruned")
	}
	if got["lib:x:1"] != 2 {
		t.Errorf("lib:x:1 depth = %d, want 2", got["lib:x:1"])
	}
}

// Every node that receives a depth must satisfy Include with the same
// predicate, and no included node reachable through included parents may
// be missing. Both pruned passes rely on this agreement.
func TestMinDepthsAgreesWithInclude(t *testing.T) {
	idx := Resolve(diamond())
	predicates := map[string]Predicate{
		"none":    {},
		"compile": {Filter: scope.ParseFilter("compile")},
		"runtime": {Filter: scope.ParseFilter("runtime")},
		"test":    {Filter: scope.ParseFilter("test-compile")},
	}

	for name, p := range predicates {
		t.Run(name, func(t *testing.T) {
			depths := idx.MinDepths(p)
			for c := range depths {
				if c != idx.Root() && !idx.Include(c, p) {
					t.Errorf("%s has a depth but fails Include", c)
				}
			}
			for c := range depths {
				for _, child := range idx.Graph().Children(c) {
					if _, ok := depths[child]; idx.Include(child, p) && !ok {
						t.Errorf("%s passes Include under included parent %s but has no depth", child, c)
					}
				}
			}
		})
	}
}

func TestCompileExclusions(t *testing.T) {
	ex, err := CompileExclusions([]string{"org.jetbrains*", "", "*:*-bom:*"})
	if err != nil {
		t.Fatalf("CompileExclusions() error = %v", err)
	}
	if len(ex) != 2 {
		t.Fatalf("len = %d, want 2 (empty pattern skipped)", len(ex))
	}

	tests := []struct {
		coord graph.Coordinate
		want  bool
	}{
		{"org.jetbrains.kotlin:kotlin-stdlib:1.9.0", true},
		{"com.fasterxml.jackson:jackson-bom:2.15.0", true},
		{"org.slf4j:slf4j-api:2.0.9", false},
	}
	for _, tt := range tests {
		if got := ex.Match(tt.coord); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.coord, got, tt.want)
		}
	}

	var none Exclusions
	if none.Match("anything:at:all") {
		t.Error("nil Exclusions should match nothing")
	}
}

func TestCompileExclusionsInvalid(t *testing.T) {
	if _, err := CompileExclusions([]string{"org.example:["}); err == nil {
		t.Error("expected error for unterminated range")
	}
}
