package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/deptree/pkg/resolve"
)

// Conflicts lists every GA reached in more than one version, its resolved
// version and all versions seen in ascending order. Resolution here is
// first-visit, not highest-wins, so "highest" marks GAs where traversal
// order picked an older release.
func Conflicts(w io.Writer, idx *resolve.Index, opts Options) error {
	p := newPrinter(w, opts)
	p.header("Version Conflicts for "+string(idx.Root()), "")

	conflicts := idx.Conflicts()
	if len(conflicts) == 0 {
		p.println("No version conflicts.")
		return p.err
	}

	for _, c := range conflicts {
		label := fmt.Sprintf("-> %s", c.Resolved)
		if c.Downgraded() {
			label += fmt.Sprintf(" (highest: %s)", c.Highest)
		}
		p.node(0, c.GA, label)

		for _, v := range c.Versions {
			var marks []string
			if v.Version == c.Resolved {
				marks = append(marks, "resolved")
			}
			if !v.Active {
				marks = append(marks, "inactive")
			}
			tag := ""
			if len(marks) > 0 {
				tag = "[" + strings.Join(marks, ", ") + "]"
			}
			p.node(1, v.Version, tag)
		}
	}
	return p.err
}
