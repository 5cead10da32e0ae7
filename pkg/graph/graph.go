package graph

// Node is one entry of the dump's node mapping.
type Node struct {
	// Children lists the node's direct dependencies in declaration order.
	// Entries may reference coordinates absent from the graph.
	Children []Coordinate
	// Configurations names the Gradle configurations (classpaths and
	// declaration buckets) this node was resolved into.
	Configurations []string
}

// Graph is a decoded dependency dump: a root plus the node mapping.
//
// The zero value is an empty graph with no root. Use [New] to build one
// programmatically or pkg/io.ReadJSON to decode a dump.
type Graph struct {
	root  Coordinate
	nodes map[Coordinate]Node
}

// New creates a graph rooted at root with the given node mapping.
// A nil mapping is replaced with an empty one.
func New(root Coordinate, nodes map[Coordinate]Node) *Graph {
	if nodes == nil {
		nodes = make(map[Coordinate]Node)
	}
	return &Graph{root: root, nodes: nodes}
}

// Root returns the coordinate traversal starts from.
func (g *Graph) Root() Coordinate { return g.root }

// Node returns the node stored under c. Unknown coordinates yield the zero
// Node, which has no children and no configurations.
func (g *Graph) Node(c Coordinate) Node { return g.nodes[c] }

// Has reports whether c has an entry in the node mapping.
func (g *Graph) Has(c Coordinate) bool {
	_, ok := g.nodes[c]
	return ok
}

// Children returns the children of c in declaration order.
// The returned slice must not be modified.
func (g *Graph) Children(c Coordinate) []Coordinate { return g.nodes[c].Children }

// Configurations returns the configuration labels of c.
// The returned slice must not be modified.
func (g *Graph) Configurations(c Coordinate) []string { return g.nodes[c].Configurations }

// NodeCount returns the number of entries in the node mapping, including
// nodes unreachable from the root.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the total number of child references in the mapping.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, node := range g.nodes {
		n += len(node.Children)
	}
	return n
}
