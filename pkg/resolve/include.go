package resolve

import (
	"github.com/matzehuels/deptree/pkg/graph"
	"github.com/matzehuels/deptree/pkg/scope"
)

// Predicate carries the caller-controlled part of node inclusion.
// The zero value filters nothing.
type Predicate struct {
	Filter  scope.Filter
	Exclude Exclusions
}

// Matches applies the filter and exclusions to c alone, without looking at
// reachability, resolution or activity.
func (p Predicate) Matches(c graph.Coordinate, class scope.Classification) bool {
	return p.Filter.Match(class) && !p.Exclude.Match(c)
}

// Include reports whether c survives the pruned-tree predicate: reachable,
// the resolved version of its GA, active, and matched by p.
func (idx *Index) Include(c graph.Coordinate, p Predicate) bool {
	if !idx.Reachable(c) || !idx.IsResolved(c) {
		return false
	}
	class := idx.classes[c]
	return class.Active() && p.Matches(c, class)
}

// MinDepths records, for every node passing [Index.Include], the shallowest
// breadth-first depth at which it appears. The root always gets depth 0.
// Children of a node that fails the predicate are never enqueued, so a
// filtered node hides its whole subtree.
func (idx *Index) MinDepths(p Predicate) map[graph.Coordinate]int {
	type item struct {
		c     graph.Coordinate
		depth int
	}

	root := idx.Root()
	depths := make(map[graph.Coordinate]int)
	visited := make(map[graph.Coordinate]struct{})
	queue := []item{{root, 0}}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		if it.c != root && !idx.Include(it.c, p) {
			continue
		}
		if _, ok := depths[it.c]; !ok {
			depths[it.c] = it.depth
		}
		if _, ok := visited[it.c]; ok {
			continue
		}
		visited[it.c] = struct{}{}
		for _, child := range idx.g.Children(it.c) {
			queue = append(queue, item{child, it.depth + 1})
		}
	}
	return depths
}
