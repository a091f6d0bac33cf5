// Package metro models the Redackistan city metro as an undirected graph
// of stations and turns raw shortest paths into human-readable itineraries.
//
// The module is organized as small focused packages:
//
//	core/      — station graph, Line enumeration, line-membership and code tables
//	route/     — breadth-first shortest paths (hop distance + path reconstruction)
//	fare/      — fare computation and the all-pairs fare matrix
//	itinerary/ — the path→itinerary compiler and its line-resolution pass
//	builder/   — declarative network specs (YAML) and the embedded city dataset
//	render/    — ANSI-colored terminal rendering of itineraries and fares
//	cmd/metro  — the command-line planner built on top of all of the above
//
// A typical query flows bottom-up: build a core.Network from a builder.Spec,
// ask route for the shortest station path, compile it with itinerary, and
// hand the resulting actions to render.
package metro
