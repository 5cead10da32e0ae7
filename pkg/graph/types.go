package graph

import "strings"

// Coordinate identifies one resolved library build, conventionally
// "group:artifact:version".
type Coordinate string

// Split separates c into its GA and version at the last colon.
// ok is false for malformed coordinates that contain no colon, or whose GA
// or version part would be empty.
func (c Coordinate) Split() (ga, version string, ok bool) {
	s := string(c)
	i := strings.LastIndexByte(s, ':')
	if i <= 0 || i == len(s)-1 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

// GA returns the group:artifact prefix of c, or "" if c is malformed.
func (c Coordinate) GA() string {
	ga, _, _ := c.Split()
	return ga
}

// Version returns the version suffix of c, or "" if c is malformed.
func (c Coordinate) Version() string {
	_, v, _ := c.Split()
	return v
}

// String implements fmt.Stringer.
func (c Coordinate) String() string { return string(c) }

// Coordinates converts a slice of strings into coordinates.
func Coordinates(ss []string) []Coordinate {
	if len(ss) == 0 {
		return nil
	}
	out := make([]Coordinate, len(ss))
	for i, s := range ss {
		out[i] = Coordinate(s)
	}
	return out
}
