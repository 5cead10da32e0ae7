// Package scope classifies Gradle configurations into dependency scopes.
//
// A node in a dependency dump lists the configurations it was resolved into.
// Only a fixed vocabulary is meaningful here: the four resolvable classpaths
// (compileClasspath, runtimeClasspath, testCompileClasspath,
// testRuntimeClasspath) and the declaration buckets (api, implementation,
// compileOnly, runtimeOnly and their test counterparts). Everything else,
// notably the "...DependenciesMetadata" variants and documentation or
// annotation-processor configurations, is ignored.
//
// [Classify] turns that set into a [Classification]: at most one
// declaration label plus the scopes the dependency is visible in. Test
// scopes are supersets of their main counterparts, so "test-compile" is
// only reported when "compile" is not, and likewise for runtime.
//
// A [Filter] restricts output to dependencies carrying at least one of the
// named scopes. The nil Filter matches everything.
package scope
