// Package nodelink renders the pruned dependency view as a Graphviz
// node-link diagram.
//
// [ToDOT] emits DOT text with one box per included coordinate and an edge
// for every parent/child pair where both ends are included. Nodes are
// grouped into ranks by their shallowest depth, so the diagram reads
// top-down the same way the pruned text tree does.
//
// [Render] lays the DOT out with the embedded (WebAssembly) Graphviz from
// github.com/goccy/go-graphviz and encodes it as SVG or PNG. No system
// Graphviz install is needed.
package nodelink
