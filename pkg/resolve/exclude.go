package resolve

import (
	"github.com/gobwas/glob"

	"github.com/matzehuels/deptree/pkg/errors"
	"github.com/matzehuels/deptree/pkg/graph"
)

// Exclusions is a compiled list of coordinate glob patterns such as
// "org.jetbrains.kotlin:*" or "*:*-bom:*". The nil value excludes nothing.
type Exclusions []glob.Glob

// CompileExclusions compiles patterns with github.com/gobwas/glob syntax.
// Empty patterns are skipped.
func CompileExclusions(patterns []string) (Exclusions, error) {
	var out Exclusions
	for _, p := range patterns {
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPattern, err, "invalid exclude pattern %q", p)
		}
		out = append(out, g)
	}
	return out, nil
}

// Match reports whether any pattern matches c.
func (e Exclusions) Match(c graph.Coordinate) bool {
	for _, g := range e {
		if g.Match(string(c)) {
			return true
		}
	}
	return false
}
