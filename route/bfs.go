// This file implements the BFS walker and the Distance and Path queries.

package route

import (
	"fmt"

	"github.com/redackistan/metro/core"
)

// queueItem pairs a station with its hop depth from the start.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state for a single query.
type walker struct {
	network *core.Network
	target  string // stop as soon as this station is dequeued; "" = full sweep
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Traverse runs breadth-first search on n starting from start and returns
// the full Result (visit order, depths, parents). If target is non-empty
// the search stops as soon as target is dequeued; the Result then covers
// only the explored prefix.
func Traverse(n *core.Network, start, target string) (*Result, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	start = core.NormalizeID(start)
	if !n.HasStation(start) {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, start)
	}

	w := &walker{
		network: n,
		target:  core.NormalizeID(target),
		visited: make(map[string]bool),
		res: &Result{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
	w.enqueue(start, 0, "")
	w.loop()

	return w.res, nil
}

// enqueue marks id visited at depth d, records its parent, and queues it.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or the target is dequeued.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if w.target != "" && item.id == w.target {
			return
		}
		for _, nbr := range w.network.Neighbors(item.id) {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.depth+1, item.id)
			}
		}
	}
}

// Distance returns the hop count of the shortest route from start to end.
// A station's distance to itself is zero. Returns ErrStationNotFound when
// either station is unknown and ErrNoPath when the stations are not
// connected.
func Distance(n *core.Network, start, end string) (int, error) {
	res, err := endpoints(n, start, end)
	if err != nil {
		return 0, err
	}
	d, ok := res.Depth[core.NormalizeID(end)]
	if !ok {
		return 0, fmt.Errorf("%w: %q → %q", ErrNoPath, core.NormalizeID(start), core.NormalizeID(end))
	}

	return d, nil
}

// Path returns the first shortest station sequence from start to end,
// endpoints included. Errors mirror Distance.
func Path(n *core.Network, start, end string) ([]string, error) {
	res, err := endpoints(n, start, end)
	if err != nil {
		return nil, err
	}

	return res.PathTo(core.NormalizeID(end))
}

// endpoints validates both stations and runs the targeted traversal.
func endpoints(n *core.Network, start, end string) (*Result, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	if !n.HasStation(end) {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, core.NormalizeID(end))
	}

	return Traverse(n, start, end)
}
