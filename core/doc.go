// Package core provides the in-memory model of a metro network:
// the station graph, the closed Line enumeration, and the static
// line-membership and station-code tables.
//
// A Network is built once (usually by the builder package) and is then
// treated as read-only. Mutations acquire a write lock and queries a
// read lock, so a fully built Network may be shared freely between
// concurrent queries without further synchronization.
//
// Station identifiers are normalized names: lower-case, surrounding
// whitespace trimmed. Every mutating and querying method normalizes its
// arguments, so callers may pass raw user input.
//
// Errors:
//
//	ErrStationNotFound — a query referenced a station absent from the network.
package core
