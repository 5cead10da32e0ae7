package nodelink

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/deptree/pkg/graph"
	"github.com/matzehuels/deptree/pkg/resolve"
	"github.com/matzehuels/deptree/pkg/scope"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Filter and Exclude select nodes exactly as in the pruned text view.
	Filter  scope.Filter
	Exclude resolve.Exclusions
	// Detailed adds the declaration and scope list under each coordinate.
	Detailed bool
}

// ToDOT converts the pruned view of idx to Graphviz DOT.
//
// The root is drawn with a bold outline. Inactive or unconfigured
// coordinates never appear, except the root.
func ToDOT(idx *resolve.Index, opts Options) string {
	pred := resolve.Predicate{Filter: opts.Filter, Exclude: opts.Exclude}
	depths := idx.MinDepths(pred)
	root := idx.Root()

	nodes := slices.SortedFunc(maps.Keys(depths), func(a, b graph.Coordinate) int {
		if c := depths[a] - depths[b]; c != 0 {
			return c
		}
		return strings.Compare(string(a), string(b))
	})

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, c := range nodes {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(c, idx.Classification(c), opts.Detailed))}
		if c == root {
			attrs = append(attrs, "penwidth=2")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", string(c), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, d := range rankGroups(nodes, depths) {
		quoted := make([]string, len(d))
		for i, c := range d {
			quoted[i] = fmt.Sprintf("%q", string(c))
		}
		fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(quoted, "; "))
	}

	buf.WriteString("\n")
	for _, from := range nodes {
		seen := make(map[graph.Coordinate]struct{})
		for _, to := range idx.Graph().Children(from) {
			if _, ok := depths[to]; !ok {
				continue
			}
			if _, dup := seen[to]; dup {
				continue
			}
			seen[to] = struct{}{}
			fmt.Fprintf(&buf, "  %q -> %q;\n", string(from), string(to))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// rankGroups splits depth-sorted nodes into runs sharing a depth.
// Single-node ranks are omitted.
func rankGroups(nodes []graph.Coordinate, depths map[graph.Coordinate]int) [][]graph.Coordinate {
	var groups [][]graph.Coordinate
	for i := 0; i < len(nodes); {
		j := i + 1
		for j < len(nodes) && depths[nodes[j]] == depths[nodes[i]] {
			j++
		}
		if j-i > 1 {
			groups = append(groups, nodes[i:j])
		}
		i = j
	}
	return groups
}

func fmtLabel(c graph.Coordinate, class scope.Classification, detailed bool) string {
	if !detailed || !class.Active() {
		return string(c)
	}
	return string(c) + "\n" + strings.Join(class.Parts(), ", ")
}
