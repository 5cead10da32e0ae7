package resolve

import (
	"slices"
	"strings"

	mm "github.com/Masterminds/semver/v3"
)

// Conflict describes a GA reached in more than one version.
type Conflict struct {
	GA string
	// Resolved is the version that won first-visit resolution.
	Resolved string
	// Versions lists every distinct version encountered, lowest first.
	Versions []Version
	// Highest is the greatest version encountered. It differs from
	// Resolved when traversal order picked an older release.
	Highest string
}

// Downgraded reports whether the resolved version is older than the
// highest version seen.
func (c Conflict) Downgraded() bool { return c.Resolved != c.Highest }

// Conflicts returns every GA with more than one reachable version, in the
// order their GA was first visited.
func (idx *Index) Conflicts() []Conflict {
	var out []Conflict
	for _, ga := range idx.gaOrder {
		versions := idx.versions[ga]
		if len(versions) < 2 {
			continue
		}
		sorted := slices.Clone(versions)
		slices.SortStableFunc(sorted, func(a, b Version) int {
			return CompareVersions(a.Version, b.Version)
		})
		out = append(out, Conflict{
			GA:       ga,
			Resolved: idx.resolved[ga],
			Versions: sorted,
			Highest:  sorted[len(sorted)-1].Version,
		})
	}
	return out
}

// CompareVersions orders two version strings. Versions that parse as
// semantic versions (leniently, so "2.0" and "31.1-jre" are accepted) are
// compared numerically and sort before unparseable ones, which are
// compared lexically.
func CompareVersions(a, b string) int {
	va, errA := mm.NewVersion(a)
	vb, errB := mm.NewVersion(b)
	switch {
	case errA == nil && errB == nil:
		if c := va.Compare(vb); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
