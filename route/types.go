// This file declares the Result type and the sentinel errors of the
// breadth-first search queries.

package route

import (
	"errors"
	"fmt"
)

// Sentinel errors for route queries.
var (
	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("route: network is nil")

	// ErrStationNotFound is returned when the start or end station is unknown.
	ErrStationNotFound = errors.New("route: station not found")

	// ErrNoPath is returned when no walk connects the two stations.
	ErrNoPath = errors.New("route: no path between stations")
)

// Result holds the outcome of a BFS traversal:
//   - Order: stations visited, in visit sequence.
//   - Depth: map from station to its hop distance from the start.
//   - Parent: map from station to its predecessor in the BFS tree.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the start→dest station sequence from the parent
// pointers. Returns ErrNoPath if dest was never reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %q not reached", ErrNoPath, dest)
	}
	// walk backwards, then reverse
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
