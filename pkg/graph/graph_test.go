package graph

import "testing"

func TestCoordinateSplit(t *testing.T) {
	tests := []struct {
		name    string
		coord   Coordinate
		ga      string
		version string
		ok      bool
	}{
		{"GAV", "org.slf4j:slf4j-api:2.0.9", "org.slf4j:slf4j-api", "2.0.9", true},
		{"two segments", "a:b", "a", "b", true},
		{"classifier keeps prefix", "g:a:jar:1.0", "g:a:jar", "1.0", true},
		{"no colon", "project", "", "", false},
		{"empty", "", "", "", false},
		{"trailing colon", "g:a:", "", "", false},
		{"leading colon", ":1.0", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ga, v, ok := tt.coord.Split()
			if ga != tt.ga || v != tt.version || ok != tt.ok {
				t.Errorf("Split(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.coord, ga, v, ok, tt.ga, tt.version, tt.ok)
			}
			if got := tt.coord.GA(); got != tt.ga {
				t.Errorf("GA() = %q, want %q", got, tt.ga)
			}
			if got := tt.coord.Version(); got != tt.version {
				t.Errorf("Version() = %q, want %q", got, tt.version)
			}
		})
	}
}

func TestCoordinates(t *testing.T) {
	if got := Coordinates(nil); got != nil {
		t.Errorf("Coordinates(nil) = %v, want nil", got)
	}
	got := Coordinates([]string{"a:b:1", "c:d:2"})
	if len(got) != 2 || got[0] != "a:b:1" || got[1] != "c:d:2" {
		t.Errorf("Coordinates() = %v", got)
	}
}

func TestGraphLookups(t *testing.T) {
	g := New("a:b:1", map[Coordinate]Node{
		"a:b:1": {Children: []Coordinate{"c:d:2", "missing:x:1"}, Configurations: []string{"implementation"}},
		"c:d:2": {Configurations: []string{"compileClasspath"}},
		"e:f:3": {Children: []Coordinate{"a:b:1"}},
	})

	if g.Root() != "a:b:1" {
		t.Errorf("Root() = %q", g.Root())
	}
	if g.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", g.NodeCount())
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", g.EdgeCount())
	}
	if !g.Has("c:d:2") {
		t.Error("Has(c:d:2) = false, want true")
	}
	if g.Has("missing:x:1") {
		t.Error("Has(missing:x:1) = true, want false")
	}

	missing := g.Node("missing:x:1")
	if len(missing.Children) != 0 || len(missing.Configurations) != 0 {
		t.Errorf("missing node should be empty, got %+v", missing)
	}
	if got := g.Children("a:b:1"); len(got) != 2 || got[0] != "c:d:2" {
		t.Errorf("Children(a:b:1) = %v", got)
	}
	if got := g.Configurations("c:d:2"); len(got) != 1 || got[0] != "compileClasspath" {
		t.Errorf("Configurations(c:d:2) = %v", got)
	}
}

func TestNewNilNodes(t *testing.T) {
	g := New("root", nil)
	if g.NodeCount() != 0 {
		t.Errorf("NodeCount() = %d, want 0", g.NodeCount())
	}
	if g.Has("root") {
		t.Error("empty graph should not contain root")
	}
}
