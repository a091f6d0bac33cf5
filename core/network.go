// This file implements the mutating and querying methods of Network.
//
// All mutations acquire the write lock; queries acquire the read lock.

package core

import "sort"

// AddStation registers a station with an empty adjacency list if absent.
// Idempotent: adding an existing station is a no-op.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1)
func (n *Network) AddStation(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.addStationLocked(NormalizeID(id))
}

func (n *Network) addStationLocked(id string) {
	if _, exists := n.adjacency[id]; exists {
		return
	}
	n.adjacency[id] = nil
}

// AddConnection registers both stations if absent, then adds a
// bidirectional edge between them. Parallel edges are not de-duplicated.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1) amortized.
func (n *Network) AddConnection(a, b string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	a, b = NormalizeID(a), NormalizeID(b)
	n.addStationLocked(a)
	n.addStationLocked(b)
	n.adjacency[a] = append(n.adjacency[a], b)
	n.adjacency[b] = append(n.adjacency[b], a)
}

// AddConnections adds a connection between every consecutive pair in seq.
// A sequence shorter than two stations adds nothing.
func (n *Network) AddConnections(seq []string) {
	for i := 0; i+1 < len(seq); i++ {
		n.AddConnection(seq[i], seq[i+1])
	}
}

// HasStation reports whether the network contains the given station.
// Thread-safe: acquires a read lock.
func (n *Network) HasStation(id string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	_, ok := n.adjacency[NormalizeID(id)]

	return ok
}

// Neighbors returns the stations adjacent to id, in insertion order.
// Returns nil if id is unknown. The returned slice is a copy.
// Thread-safe: acquires a read lock.
//
// Complexity: O(d) where d is the degree of id.
func (n *Network) Neighbors(id string) []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	nbrs, ok := n.adjacency[NormalizeID(id)]
	if !ok {
		return nil
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out
}

// Stations returns every registered station in sorted order.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V log V)
func (n *Network) Stations() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]string, 0, len(n.adjacency))
	for id := range n.adjacency {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// StationCount returns the number of registered stations.
func (n *Network) StationCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.adjacency)
}

// SetLines records the ordered line list serving a station.
// The station need not be part of the graph; the light rail stations of
// the city dataset, for example, appear in the membership table only.
func (n *Network) SetLines(id string, lines []Line) {
	n.mu.Lock()
	defer n.mu.Unlock()

	cp := make([]Line, len(lines))
	copy(cp, lines)
	n.lines[NormalizeID(id)] = cp
}

// Lines returns the ordered line list serving id, or nil if unknown.
func (n *Network) Lines(id string) []Line {
	n.mu.RLock()
	defer n.mu.RUnlock()

	lines, ok := n.lines[NormalizeID(id)]
	if !ok {
		return nil
	}
	out := make([]Line, len(lines))
	copy(out, lines)

	return out
}

// Memberships returns a copy of the full line-membership table,
// suitable for handing to the itinerary compiler.
func (n *Network) Memberships() Memberships {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.lines.Clone()
}

// SetCodes records the display codes of a station (one per serving line).
func (n *Network) SetCodes(id string, codes []string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	cp := make([]string, len(codes))
	copy(cp, codes)
	n.codes[NormalizeID(id)] = cp
}

// Codes returns the display codes of id, or nil if none are registered.
func (n *Network) Codes(id string) []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	codes, ok := n.codes[NormalizeID(id)]
	if !ok {
		return nil
	}
	out := make([]string, len(codes))
	copy(out, codes)

	return out
}
