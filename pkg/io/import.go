package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/deptree/pkg/errors"
	"github.com/matzehuels/deptree/pkg/graph"
)

type dump struct {
	Root  *string             `json:"root"`
	Nodes map[string]dumpNode `json:"nodes"`
}

type dumpNode struct {
	Children       []string `json:"children"`
	Configurations []string `json:"configurations"`
}

// ReadJSON decodes a dependency dump from r.
//
// ReadJSON returns an INVALID_INPUT error if the JSON is malformed, if
// "root" is missing, null or empty, or if "nodes" is missing or null.
// It does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read input")
	}
	return decode(data, "input")
}

// ImportJSON reads the dump at path and returns the decoded graph.
//
// A path that does not exist yields a FILE_NOT_FOUND error whose user
// message is "File not found: <path>". Decoding errors are the same as for
// [ReadJSON], with the path added for context.
func ImportJSON(path string) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.NotFound(path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return decode(data, path)
}

// decode parses data; source names the input in error messages.
func decode(data []byte, source string) (*graph.Graph, error) {
	var d dump
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.Malformed(source, err, "parse %s", source)
	}
	if d.Root == nil || *d.Root == "" {
		return nil, errors.Malformed(source, nil, "malformed input %s: missing \"root\"", source)
	}
	if d.Nodes == nil {
		return nil, errors.Malformed(source, nil, "malformed input %s: missing \"nodes\"", source)
	}

	nodes := make(map[graph.Coordinate]graph.Node, len(d.Nodes))
	for key, n := range d.Nodes {
		nodes[graph.Coordinate(key)] = graph.Node{
			Children:       graph.Coordinates(n.Children),
			Configurations: n.Configurations,
		}
	}
	return graph.New(graph.Coordinate(*d.Root), nodes), nil
}
