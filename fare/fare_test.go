package fare_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"
	"testing"

	"github.com/redackistan/metro/builder"
	"github.com/redackistan/metro/core"
	"github.com/redackistan/metro/fare"
	"github.com/redackistan/metro/route"
)

func cityNetwork(t *testing.T) *core.Network {
	t.Helper()
	n, err := builder.Redackistan().Build()
	if err != nil {
		t.Fatalf("building city network: %v", err)
	}

	return n
}

// TestCost_OneHop: a direct one-hop journey prices at the base fare.
func TestCost_OneHop(t *testing.T) {
	n := cityNetwork(t)
	cost, err := fare.Cost(n, "hasiph", "korihasiph")
	if err != nil {
		t.Fatal(err)
	}
	if cost != fare.Base {
		t.Errorf("one-hop fare = %d; want %d", cost, fare.Base)
	}
}

// TestCost_PerHop: each additional hop adds exactly one Siyyat.
func TestCost_PerHop(t *testing.T) {
	n := cityNetwork(t)
	// hasiph → korihasiph → southbridge: two hops
	cost, err := fare.Cost(n, "hasiph", "southbridge")
	if err != nil {
		t.Fatal(err)
	}
	if want := fare.Base + fare.PerHop; cost != want {
		t.Errorf("two-hop fare = %d; want %d", cost, want)
	}
}

// TestCost_TracksDistance: fare equals Base + PerHop·(distance−1) for
// every connected pair in the network.
func TestCost_TracksDistance(t *testing.T) {
	n := cityNetwork(t)
	stations := n.Stations()
	for _, a := range stations {
		for _, b := range stations {
			if a == b {
				continue
			}
			d, err := route.Distance(n, a, b)
			if err != nil {
				continue
			}
			cost, err := fare.Cost(n, a, b)
			if err != nil {
				t.Fatalf("Cost(%q,%q): %v", a, b, err)
			}
			if want := fare.Base + fare.PerHop*(d-1); cost != want {
				t.Errorf("Cost(%q,%q) = %d; want %d for distance %d", a, b, cost, want, d)
			}
		}
	}
}

// TestCost_SameStation: the floor keeps a degenerate zero-distance
// journey at the base fare.
func TestCost_SameStation(t *testing.T) {
	n := cityNetwork(t)
	cost, err := fare.Cost(n, "hasiph", "hasiph")
	if err != nil {
		t.Fatal(err)
	}
	if cost != fare.Base {
		t.Errorf("same-station fare = %d; want %d", cost, fare.Base)
	}
}

// TestCost_InvalidRoute: unknown or unreachable stations are rejected
// with ErrInvalidRoute, distinguishable from any priced journey.
func TestCost_InvalidRoute(t *testing.T) {
	n := cityNetwork(t)
	if _, err := fare.Cost(n, "hasiph", "unknownstation"); !errors.Is(err, fare.ErrInvalidRoute) {
		t.Errorf("unknown station: want ErrInvalidRoute, got %v", err)
	}

	split := core.NewNetwork()
	split.AddConnection("x", "y")
	split.AddConnection("p", "q")
	if _, err := fare.Cost(split, "x", "q"); !errors.Is(err, fare.ErrInvalidRoute) {
		t.Errorf("unreachable station: want ErrInvalidRoute, got %v", err)
	}
}

// TestTable builds the all-pairs matrix and spot-checks its shape.
func TestTable(t *testing.T) {
	n := cityNetwork(t)
	m, err := fare.Table(n)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := m["hasiph"]["hasiph"]; ok {
		t.Error("matrix must not contain the diagonal")
	}
	if got := m["hasiph"]["korihasiph"]; got != fare.Base {
		t.Errorf("matrix[hasiph][korihasiph] = %d; want %d", got, fare.Base)
	}
	for from, row := range m {
		for to, cost := range row {
			if rev := m[to][from]; rev != cost {
				t.Errorf("asymmetric fares %q↔%q: %d vs %d", from, to, cost, rev)
			}
		}
	}
}

// TestMatrix_WriteCSV parses the export back and checks a known cell.
func TestMatrix_WriteCSV(t *testing.T) {
	n := cityNetwork(t)
	m, err := fare.Table(n)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err = m.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	header := records[0]
	if header[0] != "" {
		t.Errorf("header corner = %q; want empty", header[0])
	}

	col := -1
	for i, name := range header {
		if name == "korihasiph" {
			col = i
		}
	}
	if col < 0 {
		t.Fatal("korihasiph column missing from header")
	}
	for _, row := range records[1:] {
		if row[0] != "hasiph" {
			continue
		}
		got, convErr := strconv.Atoi(row[col])
		if convErr != nil {
			t.Fatalf("cell not numeric: %v", convErr)
		}
		if got != fare.Base {
			t.Errorf("csv cell hasiph→korihasiph = %d; want %d", got, fare.Base)
		}
		return
	}
	t.Fatal("hasiph row missing from export")
}
