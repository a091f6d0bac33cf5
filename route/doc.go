// Package route provides breadth-first shortest-path queries over a
// core.Network: hop distances and first-visit station paths.
//
// The network is unweighted, so the first BFS visit of a station is
// already a shortest route to it; ties between equally short routes are
// resolved by adjacency insertion order. Paths are reconstructed from
// parent pointers rather than by copying the growing path at every
// expansion, which keeps memory linear in the number of stations.
//
// Errors:
//
//	ErrNetworkNil      — a nil network pointer was passed.
//	ErrStationNotFound — start or end station is unknown to the network.
//	ErrNoPath          — the search exhausted the queue without reaching end.
package route
