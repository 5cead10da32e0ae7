// Package graph defines the in-memory model of a Gradle dependency dump.
//
// A dump is produced by an external graph-dumping plugin and read once by
// [pkg/io]. It consists of a root [Coordinate] and a mapping from
// coordinates to [Node] values. Each node lists its children in declaration
// order and the Gradle configurations it was resolved into:
//
//	{
//	  "root": "com.example:app:1.0",
//	  "nodes": {
//	    "com.example:app:1.0": {
//	      "children": ["org.slf4j:slf4j-api:2.0.9"],
//	      "configurations": ["implementation"]
//	    },
//	    "org.slf4j:slf4j-api:2.0.9": {
//	      "children": [],
//	      "configurations": ["compileClasspath", "runtimeClasspath"]
//	    }
//	  }
//	}
//
// # Coordinates
//
// Coordinates are opaque strings except for one split: everything up to
// the last colon is the GA (group:artifact) and the remainder is the
// version. A coordinate without any colon is malformed; it still takes part
// in reachability but has no GA.
//
// # Missing Nodes
//
// Children may reference coordinates that have no entry in the mapping.
// [Graph.Node] returns the zero [Node] for such references, so callers treat
// them as leaves without configurations.
//
// The graph is never mutated after decoding. A [Graph] is safe for
// concurrent readers.
//
// [pkg/io]: github.com/matzehuels/deptree/pkg/io
package graph
