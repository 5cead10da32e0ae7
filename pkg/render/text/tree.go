package text

import (
	"io"

	"github.com/matzehuels/deptree/pkg/graph"
	"github.com/matzehuels/deptree/pkg/resolve"
)

// repeatMarker follows coordinates whose subtree was already printed.
const repeatMarker = " (*)"

// Tree renders the full dependency tree, depth-first from the root.
//
// A coordinate is skipped together with its subtree when it is unreachable,
// lost GA resolution to another version, fails the scope filter or matches
// an exclusion. The root itself is always printed. The first occurrence of
// a coordinate is expanded; later occurrences print once with "(*)" and are
// not descended into.
func Tree(w io.Writer, idx *resolve.Index, opts Options) error {
	p := newPrinter(w, opts)
	root := idx.Root()
	p.header("Dependency Tree for "+string(root), filterNote(opts.Filter))

	pred := opts.predicate()
	seen := make(map[graph.Coordinate]struct{})

	var walk func(c graph.Coordinate, depth int)
	walk = func(c graph.Coordinate, depth int) {
		class := idx.Classification(c)
		if depth > 0 || c != root {
			if !idx.Reachable(c) || !idx.IsResolved(c) || !pred.Matches(c, class) {
				return
			}
		}

		if _, ok := seen[c]; ok {
			p.node(depth, string(c)+repeatMarker, class.Label())
			return
		}
		seen[c] = struct{}{}
		p.node(depth, string(c), class.Label())

		for _, child := range idx.Graph().Children(c) {
			walk(child, depth+1)
		}
	}
	walk(root, 0)

	return p.err
}
