// Package builder constructs core.Networks from declarative specs.
//
// A Spec describes a metro network as data: each line's ordered station
// sequence, the station→lines membership table, and the display codes.
// Specs can be loaded from YAML (Load, LoadFile) and are validated
// structurally before use. Build assembles the spec into a ready
// core.Network by connecting every consecutive station pair of every
// line and attaching the static tables.
//
// Redackistan returns the embedded default city dataset: five lines and
// twenty-eight stations.
//
// Errors:
//
//	ErrInvalidSpec — the spec failed structural validation.
//	ErrUnknownLine — a line name outside the closed five-line set.
package builder
