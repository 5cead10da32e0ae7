package scope

import (
	"slices"
	"strings"
)

// Recognized Gradle configuration names.
const (
	CompileClasspath     = "compileClasspath"
	RuntimeClasspath     = "runtimeClasspath"
	TestCompileClasspath = "testCompileClasspath"
	TestRuntimeClasspath = "testRuntimeClasspath"
	API                  = "api"
	Implementation       = "implementation"
	CompileOnly          = "compileOnly"
	RuntimeOnly          = "runtimeOnly"
	TestImplementation   = "testImplementation"
	TestCompileOnly      = "testCompileOnly"
	TestRuntimeOnly      = "testRuntimeOnly"
)

// Scope names produced by Classify.
const (
	Compile     = "compile"
	Runtime     = "runtime"
	TestCompile = "test-compile"
	TestRuntime = "test-runtime"
)

// Declaration labels produced by Classify.
const (
	DeclAPI         = "api"
	DeclImpl        = "impl"
	DeclCompileOnly = "compile-only"
	DeclRuntimeOnly = "runtime-only"
)

// metadataSuffix marks resolution-metadata variants that never carry scope.
const metadataSuffix = "DependenciesMetadata"

// Vocabulary is the set of configuration names Classify looks at.
var Vocabulary = []string{
	CompileClasspath, RuntimeClasspath,
	TestCompileClasspath, TestRuntimeClasspath,
	API, Implementation,
	CompileOnly, RuntimeOnly,
	TestImplementation, TestCompileOnly,
	TestRuntimeOnly,
}

// All lists every scope name in display order.
var All = []string{Compile, Runtime, TestCompile, TestRuntime}

// Recognized returns the configurations of configs that belong to the
// vocabulary, in their original order.
func Recognized(configs []string) []string {
	var out []string
	for _, c := range configs {
		if strings.HasSuffix(c, metadataSuffix) {
			continue
		}
		if slices.Contains(Vocabulary, c) {
			out = append(out, c)
		}
	}
	return out
}

// Classification is the scope information derived from one node's
// configurations.
type Classification struct {
	// Declaration is one of the Decl* labels, or "" when the node was not
	// declared through api, implementation, compileOnly or runtimeOnly.
	Declaration string
	// Scopes holds at most one compile-side and one runtime-side scope,
	// in that order.
	Scopes []string
}

// Classify derives the declaration label and scopes of a node from its
// configuration labels. Unrecognized labels are ignored; a node without any
// recognized label yields the zero Classification.
func Classify(configs []string) Classification {
	has := make(map[string]bool)
	for _, c := range Recognized(configs) {
		has[c] = true
	}
	if len(has) == 0 {
		return Classification{}
	}

	var c Classification
	switch {
	case has[API]:
		c.Declaration = DeclAPI
	case has[Implementation]:
		c.Declaration = DeclImpl
	case has[CompileOnly]:
		c.Declaration = DeclCompileOnly
	case has[RuntimeOnly]:
		c.Declaration = DeclRuntimeOnly
	}

	compile := has[CompileClasspath]
	runtime := has[RuntimeClasspath]
	switch {
	case has[API] || has[Implementation]:
		compile, runtime = true, true
	case has[CompileOnly]:
		compile = true
	case has[RuntimeOnly]:
		runtime = true
	}

	switch {
	case compile:
		c.Scopes = append(c.Scopes, Compile)
	case has[TestCompileClasspath]:
		c.Scopes = append(c.Scopes, TestCompile)
	}
	switch {
	case runtime:
		c.Scopes = append(c.Scopes, Runtime)
	case has[TestRuntimeClasspath]:
		c.Scopes = append(c.Scopes, TestRuntime)
	}
	return c
}

// Active reports whether the classification carries at least one scope.
// Inactive nodes (metadata-only, documentation, test declarations without a
// resolved classpath) are excluded from list and pruned-tree output.
func (c Classification) Active() bool { return len(c.Scopes) > 0 }

// Parts returns the declaration (if any) followed by the scopes.
func (c Classification) Parts() []string {
	parts := make([]string, 0, len(c.Scopes)+1)
	if c.Declaration != "" {
		parts = append(parts, c.Declaration)
	}
	return append(parts, c.Scopes...)
}

// Label formats the classification as "[impl, compile, runtime]".
// It returns "" when there is nothing to show.
func (c Classification) Label() string {
	parts := c.Parts()
	if len(parts) == 0 {
		return ""
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Has reports whether s is one of the classification's scopes.
func (c Classification) Has(s string) bool { return slices.Contains(c.Scopes, s) }
