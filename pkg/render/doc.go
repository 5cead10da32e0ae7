// Package render turns a resolved dependency dump into human-readable output.
//
// # Text Views
//
// The [text] subpackage renders the three plain-text views:
//
//   - tree: the full nested tree, repeated subtrees collapsed to "(*)"
//   - list: a flat, sorted, deduplicated listing of active versions
//   - pruned: a nested tree where every coordinate appears once, at the
//     shallowest depth it is reachable from
//
// plus a report of GAs reached in more than one version.
//
//	idx := resolve.Resolve(g)
//	err := text.Tree(os.Stdout, idx, text.Options{Filter: scope.ParseFilter("runtime")})
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the pruned view as a Graphviz diagram.
//
//	dot := nodelink.ToDOT(idx, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [text]: github.com/matzehuels/deptree/pkg/render/text
// [nodelink]: github.com/matzehuels/deptree/pkg/render/nodelink
package render
