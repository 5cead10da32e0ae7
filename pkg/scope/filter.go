package scope

import (
	"slices"
	"strings"
)

// Filter is a set of scope names. The nil Filter is unfiltered and matches
// every classification.
type Filter map[string]struct{}

// NewFilter builds a filter from scope names, skipping empty ones.
// It returns nil when no names remain.
func NewFilter(names ...string) Filter {
	var f Filter
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if f == nil {
			f = make(Filter)
		}
		f[n] = struct{}{}
	}
	return f
}

// ParseFilter parses a comma-separated list such as "compile,runtime".
func ParseFilter(s string) Filter {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return NewFilter(strings.Split(s, ",")...)
}

// IsSet reports whether the filter restricts anything.
func (f Filter) IsSet() bool { return f != nil }

// Match reports whether c carries at least one of the filter's scopes.
// An unset filter always matches.
func (f Filter) Match(c Classification) bool {
	if f == nil {
		return true
	}
	for _, s := range c.Scopes {
		if _, ok := f[s]; ok {
			return true
		}
	}
	return false
}

// Names returns the filter's scope names in sorted order.
func (f Filter) Names() []string {
	names := make([]string, 0, len(f))
	for n := range f {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// String joins the sorted names with ", ".
func (f Filter) String() string { return strings.Join(f.Names(), ", ") }
