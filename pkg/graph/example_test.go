package graph_test

import (
	"fmt"

	"github.com/matzehuels/deptree/pkg/graph"
)

func ExampleCoordinate_Split() {
	ga, version, ok := graph.Coordinate("org.slf4j:slf4j-api:2.0.9").Split()
	fmt.Println(ga, version, ok)

	_, _, ok = graph.Coordinate("project").Split()
	fmt.Println(ok)
	// Output:
	// org.slf4j:slf4j-api 2.0.9 true
	// false
}
