package resolve

import (
	"slices"

	"github.com/matzehuels/deptree/pkg/graph"
	"github.com/matzehuels/deptree/pkg/scope"
)

// Version is one version of a GA encountered during traversal.
type Version struct {
	Coordinate graph.Coordinate
	Version    string
	// Active is true when the coordinate's configurations yield a scope.
	Active bool
}

// Index holds the result of the reachability and resolution pass.
// It is read-only after [Resolve] returns.
type Index struct {
	g         *graph.Graph
	order     []graph.Coordinate
	reachable map[graph.Coordinate]struct{}
	resolved  map[string]string
	versions  map[string][]Version
	gaOrder   []string
	classes   map[graph.Coordinate]scope.Classification
}

// Resolve walks g depth-first from its root and builds the index.
// Malformed coordinates are reachable but take no part in GA resolution.
func Resolve(g *graph.Graph) *Index {
	idx := &Index{
		g:         g,
		reachable: make(map[graph.Coordinate]struct{}),
		resolved:  make(map[string]string),
		versions:  make(map[string][]Version),
		classes:   make(map[graph.Coordinate]scope.Classification),
	}
	idx.visit(g.Root())
	return idx
}

func (idx *Index) visit(c graph.Coordinate) {
	if _, seen := idx.reachable[c]; seen {
		return
	}
	idx.reachable[c] = struct{}{}
	idx.order = append(idx.order, c)

	class := scope.Classify(idx.g.Configurations(c))
	idx.classes[c] = class

	if ga, version, ok := c.Split(); ok {
		if _, done := idx.resolved[ga]; !done {
			idx.resolved[ga] = version
			idx.gaOrder = append(idx.gaOrder, ga)
		}
		idx.versions[ga] = append(idx.versions[ga], Version{
			Coordinate: c,
			Version:    version,
			Active:     class.Active(),
		})
	}

	for _, child := range idx.g.Children(c) {
		idx.visit(child)
	}
}

// Graph returns the graph the index was built from.
func (idx *Index) Graph() *graph.Graph { return idx.g }

// Root returns the graph's root coordinate.
func (idx *Index) Root() graph.Coordinate { return idx.g.Root() }

// Reachable reports whether c can be reached from the root.
func (idx *Index) Reachable(c graph.Coordinate) bool {
	_, ok := idx.reachable[c]
	return ok
}

// ReachableCount returns the number of distinct reachable coordinates.
func (idx *Index) ReachableCount() int { return len(idx.reachable) }

// Order returns reachable coordinates in first-visit order.
func (idx *Index) Order() []graph.Coordinate { return slices.Clone(idx.order) }

// Resolved returns the version selected for ga, the first one visited.
func (idx *Index) Resolved(ga string) (string, bool) {
	v, ok := idx.resolved[ga]
	return v, ok
}

// IsResolved reports whether c is the selected version of its GA.
// Malformed coordinates have no GA and always count as resolved.
func (idx *Index) IsResolved(c graph.Coordinate) bool {
	ga, version, ok := c.Split()
	if !ok {
		return true
	}
	v, known := idx.resolved[ga]
	return !known || v == version
}

// Versions returns every version of ga encountered, in visit order.
func (idx *Index) Versions(ga string) []Version { return slices.Clone(idx.versions[ga]) }

// GAs returns all resolved GAs in the order they were first visited.
func (idx *Index) GAs() []string { return slices.Clone(idx.gaOrder) }

// Classification returns the scope classification of c.
func (idx *Index) Classification(c graph.Coordinate) scope.Classification {
	if class, ok := idx.classes[c]; ok {
		return class
	}
	return scope.Classify(idx.g.Configurations(c))
}

// Active reports whether c is reachable and carries at least one scope.
func (idx *Index) Active(c graph.Coordinate) bool {
	return idx.Reachable(c) && idx.classes[c].Active()
}

// ActiveCoordinates returns every reachable, active coordinate sorted
// lexicographically. Several versions of one GA may appear.
func (idx *Index) ActiveCoordinates() []graph.Coordinate {
	var out []graph.Coordinate
	for _, c := range idx.order {
		if idx.classes[c].Active() {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out
}
