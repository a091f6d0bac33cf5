// This file declares the Line enumeration, the Memberships table,
// sentinel errors, and the Network type with its constructor.

package core

import (
	"errors"
	"strings"
	"sync"
)

// Sentinel errors for core network operations.
var (
	// ErrStationNotFound indicates an operation referenced an unknown station.
	ErrStationNotFound = errors.New("core: station not found")
)

// Line is one of the five metro lines of the network.
// The set is closed; Line values are labels only and carry no behavior.
type Line string

// The five lines of the Redackistan metro.
const (
	CentralLine          Line = "Central Line"
	CoastalLine          Line = "Coastal Line"
	AirportLine          Line = "Airport Line"
	HattakeshLine        Line = "Hattakesh Line"
	RedackistanLightRail Line = "Redackistan Light Rail"
)

// AllLines lists every known Line in display order.
var AllLines = []Line{
	CentralLine,
	CoastalLine,
	AirportLine,
	HattakeshLine,
	RedackistanLightRail,
}

// KnownLine reports whether l is one of the five metro lines.
func KnownLine(l Line) bool {
	for _, known := range AllLines {
		if l == known {
			return true
		}
	}

	return false
}

// NormalizeID canonicalizes a station identifier: lower-case, trimmed.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Memberships maps a station identifier to the ordered list of lines
// serving it. The order is significant: the first element acts as the
// deterministic tie-break wherever a single provisional line is needed.
// A station served by two or more lines is an interchange.
type Memberships map[string][]Line

// Lines returns the ordered line list for id, or nil if unknown.
func (m Memberships) Lines(id string) []Line {
	return m[NormalizeID(id)]
}

// First returns the first registered line of id.
// The second return is false when id is unknown or serves no line.
func (m Memberships) First(id string) (Line, bool) {
	lines := m[NormalizeID(id)]
	if len(lines) == 0 {
		return "", false
	}

	return lines[0], true
}

// Shared reports whether stations a and b are served by at least one
// common line.
func (m Memberships) Shared(a, b string) bool {
	linesB := m[NormalizeID(b)]
	for _, l := range m[NormalizeID(a)] {
		for _, other := range linesB {
			if l == other {
				return true
			}
		}
	}

	return false
}

// Interchange reports whether id is served by two or more lines.
// Only interchange stations may host a line change.
func (m Memberships) Interchange(id string) bool {
	return len(m[NormalizeID(id)]) > 1
}

// Clone returns a deep copy of the table.
func (m Memberships) Clone() Memberships {
	out := make(Memberships, len(m))
	for id, lines := range m {
		cp := make([]Line, len(lines))
		copy(cp, lines)
		out[id] = cp
	}

	return out
}

// Network is an undirected, unweighted station graph together with the
// static line-membership and display-code tables.
//
// Adjacency lists preserve insertion order, which makes BFS expansion
// deterministic for a given build sequence. Parallel edges are kept as-is;
// the source data never repeats an edge, so no de-duplication is done.
type Network struct {
	mu        sync.RWMutex
	adjacency map[string][]string
	lines     Memberships
	codes     map[string][]string
}

// NewNetwork returns an empty Network.
func NewNetwork() *Network {
	return &Network{
		adjacency: make(map[string][]string),
		lines:     make(Memberships),
		codes:     make(map[string][]string),
	}
}
