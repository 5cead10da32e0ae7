// Package resolve computes the derived indices every renderer works from.
//
// [Resolve] walks a [graph.Graph] once, depth-first from the root with
// children in declaration order, and records:
//
//   - the reachable set (each coordinate visited at most once, so cycles
//     and diamonds are harmless)
//   - the resolved version of every GA: the first version encountered wins
//   - every version encountered per GA, with its activity
//   - the scope [scope.Classification] of each reachable node
//
// Version resolution and activity are independent. The tree renderers hide
// versions that lost resolution; the list renderer deliberately does not,
// and shows every active version it encountered.
//
// # Inclusion
//
// [Index.Include] is the single predicate the pruned renderer applies in
// both of its passes (depth computation and printing): reachable, resolved,
// active, matching the scope filter, and not excluded by pattern.
// [Index.MinDepths] performs the breadth-first depth pass with it.
package resolve
