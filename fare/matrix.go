// This file implements the all-pairs fare table and its CSV export.

package fare

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/redackistan/metro/core"
)

// Matrix is an all-pairs fare table: Matrix[from][to] = fare in Siyyats.
// The diagonal is absent; a station has no fare to itself.
type Matrix map[string]map[string]int

// Table computes the fare between every ordered pair of distinct stations
// in the network. Pairs with no connecting path are skipped; stations in
// disconnected pockets simply have no row entries for unreachable peers.
func Table(n *core.Network) (Matrix, error) {
	stations := n.Stations()
	m := make(Matrix, len(stations))
	for _, from := range stations {
		m[from] = make(map[string]int, len(stations)-1)
		for _, to := range stations {
			if from == to {
				continue
			}
			cost, err := Cost(n, from, to)
			if err != nil {
				continue
			}
			m[from][to] = cost
		}
	}

	return m, nil
}

// WriteCSV writes the matrix as CSV: a header row of destination
// stations, then one row per origin. Unreachable pairs and the diagonal
// are left blank. Stations appear in sorted order on both axes.
func (m Matrix) WriteCSV(w io.Writer) error {
	stations := m.stations()

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{""}, stations...)); err != nil {
		return err
	}
	row := make([]string, len(stations)+1)
	for _, from := range stations {
		row[0] = from
		for i, to := range stations {
			row[i+1] = ""
			if cost, ok := m[from][to]; ok {
				row[i+1] = strconv.Itoa(cost)
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// stations returns the sorted union of origins in the matrix.
func (m Matrix) stations() []string {
	out := make([]string, 0, len(m))
	for from := range m {
		out = append(out, from)
	}
	sort.Strings(out)

	return out
}
