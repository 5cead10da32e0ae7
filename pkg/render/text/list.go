package text

import (
	"io"

	"github.com/matzehuels/deptree/pkg/resolve"
)

// List renders every reachable, active coordinate once, sorted by
// coordinate, with its scope annotation.
//
// Unlike the nested views, List does not collapse a GA to its resolved
// version: every active version encountered during traversal is listed.
func List(w io.Writer, idx *resolve.Index, opts Options) error {
	p := newPrinter(w, opts)
	p.header("Dependencies for "+string(idx.Root()), filterNote(opts.Filter))

	pred := opts.predicate()
	for _, c := range idx.ActiveCoordinates() {
		class := idx.Classification(c)
		if !pred.Matches(c, class) {
			continue
		}
		p.node(0, string(c), class.Label())
	}
	return p.err
}
