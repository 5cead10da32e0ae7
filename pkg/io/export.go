package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/deptree/pkg/errors"
	"github.com/matzehuels/deptree/pkg/resolve"
)

// Report formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Report is the machine-readable form of the list view.
type Report struct {
	Root         string       `json:"root" yaml:"root"`
	Filter       []string     `json:"filter,omitempty" yaml:"filter,omitempty"`
	Dependencies []Dependency `json:"dependencies" yaml:"dependencies"`
	Conflicts    []Conflict   `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
}

// Dependency is one reachable, active coordinate.
type Dependency struct {
	Coordinate  string   `json:"coordinate" yaml:"coordinate"`
	GA          string   `json:"ga,omitempty" yaml:"ga,omitempty"`
	Version     string   `json:"version,omitempty" yaml:"version,omitempty"`
	Declaration string   `json:"declaration,omitempty" yaml:"declaration,omitempty"`
	Scopes      []string `json:"scopes" yaml:"scopes"`
	// Resolved is false for versions that lost first-visit resolution.
	// The tree views hide those; the list view keeps them.
	Resolved bool `json:"resolved" yaml:"resolved"`
	// Depth is the shallowest depth in the pruned tree, absent when the
	// coordinate does not appear there.
	Depth    *int     `json:"depth,omitempty" yaml:"depth,omitempty"`
	Children []string `json:"children,omitempty" yaml:"children,omitempty"`
}

// Conflict records a GA reached in several versions.
type Conflict struct {
	GA       string   `json:"ga" yaml:"ga"`
	Resolved string   `json:"resolved" yaml:"resolved"`
	Highest  string   `json:"highest" yaml:"highest"`
	Versions []string `json:"versions" yaml:"versions"`
}

// NewReport flattens idx into a report. Dependencies are the list view's
// entries (reachable, active, matched by p) in coordinate order.
func NewReport(idx *resolve.Index, p resolve.Predicate) Report {
	r := Report{
		Root:         string(idx.Root()),
		Filter:       p.Filter.Names(),
		Dependencies: []Dependency{},
	}
	if len(r.Filter) == 0 {
		r.Filter = nil
	}

	depths := idx.MinDepths(p)
	for _, c := range idx.ActiveCoordinates() {
		class := idx.Classification(c)
		if !p.Matches(c, class) {
			continue
		}
		ga, version, _ := c.Split()
		d := Dependency{
			Coordinate:  string(c),
			GA:          ga,
			Version:     version,
			Declaration: class.Declaration,
			Scopes:      class.Scopes,
			Resolved:    idx.IsResolved(c),
		}
		if depth, ok := depths[c]; ok {
			d.Depth = &depth
		}
		for _, child := range idx.Graph().Children(c) {
			d.Children = append(d.Children, string(child))
		}
		r.Dependencies = append(r.Dependencies, d)
	}

	for _, c := range idx.Conflicts() {
		versions := make([]string, len(c.Versions))
		for i, v := range c.Versions {
			versions[i] = v.Version
		}
		r.Conflicts = append(r.Conflicts, Conflict{
			GA:       c.GA,
			Resolved: c.Resolved,
			Highest:  c.Highest,
			Versions: versions,
		})
	}
	return r
}

// ValidateFormat checks that format is "json" or "yaml".
func ValidateFormat(format string) error {
	if format != FormatJSON && format != FormatYAML {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'json' or 'yaml')", format)
	}
	return nil
}

// WriteReport encodes r to w in the given format.
func WriteReport(w io.Writer, r Report, format string) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// ExportReport writes r to a file at path.
// This is a convenience wrapper around [WriteReport] for file-based output.
func ExportReport(r Report, path, format string) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return writeAndClose(f, r, format)
}

// writeAndClose writes r to wc and closes it. A failed Close is reported
// when the write itself succeeded, since the file may be truncated.
func writeAndClose(wc io.WriteCloser, r Report, format string) (err error) {
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()
	return WriteReport(wc, r, format)
}
