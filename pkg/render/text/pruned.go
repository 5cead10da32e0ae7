package text

import (
	"io"

	"github.com/matzehuels/deptree/pkg/graph"
	"github.com/matzehuels/deptree/pkg/resolve"
)

// Pruned renders a tree in which every coordinate appears exactly once, at
// the shallowest depth it is reachable from.
//
// The first pass ([resolve.Index.MinDepths]) computes those depths
// breadth-first. The second walks depth-first and prints a node only where
// the current depth equals its recorded depth, descending from that single
// occurrence. Both passes use [resolve.Index.Include] with the same
// predicate, so a node pruned in one is pruned in the other.
//
// The root is always printed at depth 0, even when it has no active scope,
// so a dump whose root carries no configurations still yields its tree.
//
// Scope annotations are shown only when a filter is set or AllScopes is on.
// With AllScopes the header carries the all-scopes note, whether or not a
// filter is also set.
func Pruned(w io.Writer, idx *resolve.Index, opts Options) error {
	p := newPrinter(w, opts)
	root := idx.Root()

	note := filterNote(opts.Filter)
	if opts.AllScopes {
		note = allScopesNote
	}
	p.header("Pruned Dependency Tree for "+string(root), note)

	pred := opts.predicate()
	depths := idx.MinDepths(pred)
	annotate := opts.AllScopes || opts.Filter.IsSet()
	printed := make(map[graph.Coordinate]struct{})

	var walk func(c graph.Coordinate, depth int)
	walk = func(c graph.Coordinate, depth int) {
		if (depth > 0 || c != root) && !idx.Include(c, pred) {
			return
		}
		if d, ok := depths[c]; !ok || d != depth {
			return
		}
		if _, ok := printed[c]; ok {
			return
		}
		printed[c] = struct{}{}

		label := ""
		if annotate {
			label = idx.Classification(c).Label()
		}
		p.node(depth, string(c), label)

		for _, child := range idx.Graph().Children(c) {
			walk(child, depth+1)
		}
	}
	walk(root, 0)

	return p.err
}
