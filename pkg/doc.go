// Package pkg provides the core libraries for deptree, a reader and renderer
// for Gradle dependency dumps.
//
// # Overview
//
// A dump is a JSON object naming a root coordinate and, for every
// "group:artifact:version" coordinate, its direct children and the Gradle
// configurations it appears in. deptree turns that into three text views
// (tree, list and pruned tree), a Graphviz diagram and a JSON/YAML report.
//
// # Architecture
//
// The data flow:
//
//	dependency dump (JSON)
//	         ↓
//	    [io] package (decode into a graph)
//	         ↓
//	    [resolve] package (reachability, first-visit version resolution,
//	         ↓             scope classification via [scope])
//	    [render] packages (text views, node-link diagram)
//	         ↓
//	    text / DOT / SVG / PNG / JSON / YAML
//
// # Quick Start
//
//	import (
//	    "os"
//	    "github.com/matzehuels/deptree/pkg/io"
//	    "github.com/matzehuels/deptree/pkg/render/text"
//	    "github.com/matzehuels/deptree/pkg/resolve"
//	    "github.com/matzehuels/deptree/pkg/scope"
//	)
//
//	g, _ := io.ImportJSON("deps.json")
//	idx := resolve.Resolve(g)
//	_ = text.Pruned(os.Stdout, idx, text.Options{Filter: scope.ParseFilter("runtime")})
//
// # Main Packages
//
// [graph] - The immutable dependency graph and coordinate helpers.
//
// [scope] - Maps configuration names to a declaration label and the scopes
// compile, runtime, test-compile and test-runtime; scope filters.
//
// [resolve] - Depth-first reachability, one resolved version per
// group:artifact, the shared inclusion predicate, exclusion globs and version
// conflict detection.
//
// [render/text] - The tree, list, pruned and conflicts text views.
//
// [render/nodelink] - The pruned view as a Graphviz diagram.
//
// [io] - Dump decoding and report export.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Hooks reporting load, resolve and render events.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/resolve/...  # Specific package
//	go test -run Example       # Examples only
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/deptree/pkg/graph
// [scope]: https://pkg.go.dev/github.com/matzehuels/deptree/pkg/scope
// [resolve]: https://pkg.go.dev/github.com/matzehuels/deptree/pkg/resolve
// [render]: https://pkg.go.dev/github.com/matzehuels/deptree/pkg/render
// [render/text]: https://pkg.go.dev/github.com/matzehuels/deptree/pkg/render/text
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/deptree/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matzehuels/deptree/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/deptree/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/deptree/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/deptree/pkg/buildinfo
package pkg
