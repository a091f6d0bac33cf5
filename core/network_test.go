package core_test

import (
	"reflect"
	"testing"

	"github.com/redackistan/metro/core"
)

// TestAddStation_Idempotent verifies repeated registration is a no-op.
func TestAddStation_Idempotent(t *testing.T) {
	n := core.NewNetwork()
	n.AddStation("hasiph")
	n.AddStation("hasiph")
	if got := n.StationCount(); got != 1 {
		t.Errorf("StationCount = %d; want 1", got)
	}
	if !n.HasStation("hasiph") {
		t.Error("HasStation(hasiph) = false; want true")
	}
}

// TestAddConnection_Bidirectional checks both endpoints are registered
// and both adjacency lists gain the edge.
func TestAddConnection_Bidirectional(t *testing.T) {
	n := core.NewNetwork()
	n.AddConnection("a", "b")
	if !n.HasStation("a") || !n.HasStation("b") {
		t.Fatal("endpoints not registered")
	}
	if got := n.Neighbors("a"); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("Neighbors(a) = %v; want [b]", got)
	}
	if got := n.Neighbors("b"); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("Neighbors(b) = %v; want [a]", got)
	}
}

// TestAddConnections links consecutive pairs only.
func TestAddConnections(t *testing.T) {
	n := core.NewNetwork()
	n.AddConnections([]string{"a", "b", "c"})
	if got := n.Neighbors("b"); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("Neighbors(b) = %v; want [a c]", got)
	}
	if n.HasStation("a") && len(n.Neighbors("a")) != 1 {
		t.Errorf("Neighbors(a) = %v; want exactly [b]", n.Neighbors("a"))
	}

	// sequences shorter than two stations add nothing
	short := core.NewNetwork()
	short.AddConnections([]string{"solo"})
	if got := short.StationCount(); got != 0 {
		t.Errorf("short sequence: StationCount = %d; want 0", got)
	}
}

// TestNormalization checks station identifiers are lower-cased and trimmed
// at every boundary.
func TestNormalization(t *testing.T) {
	n := core.NewNetwork()
	n.AddConnection("  Hasiph ", "KORIHASIPH")
	if !n.HasStation("hasiph") || !n.HasStation("korihasiph") {
		t.Fatal("normalized stations missing")
	}
	if !n.HasStation(" hasiph\t") {
		t.Error("lookup should normalize its argument")
	}
	n.SetLines("Hasiph", []core.Line{core.CentralLine})
	if got := n.Lines("hasiph"); !reflect.DeepEqual(got, []core.Line{core.CentralLine}) {
		t.Errorf("Lines(hasiph) = %v; want [Central Line]", got)
	}
}

// TestStations_Sorted verifies deterministic listing.
func TestStations_Sorted(t *testing.T) {
	n := core.NewNetwork()
	n.AddConnections([]string{"c", "a", "b"})
	if got := n.Stations(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Stations = %v; want [a b c]", got)
	}
}

// TestParallelEdges verifies parallel edges are kept as-is.
func TestParallelEdges(t *testing.T) {
	n := core.NewNetwork()
	n.AddConnection("a", "b")
	n.AddConnection("a", "b")
	if got := n.Neighbors("a"); !reflect.DeepEqual(got, []string{"b", "b"}) {
		t.Errorf("Neighbors(a) = %v; want [b b]", got)
	}
}

// TestNeighborsCopy ensures mutating a returned slice cannot corrupt the
// network.
func TestNeighborsCopy(t *testing.T) {
	n := core.NewNetwork()
	n.AddConnection("a", "b")
	nbrs := n.Neighbors("a")
	nbrs[0] = "corrupted"
	if got := n.Neighbors("a"); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("Neighbors(a) = %v after external mutation; want [b]", got)
	}
}

func TestMemberships(t *testing.T) {
	m := core.Memberships{
		"hasiph":      {core.CentralLine, core.CoastalLine, core.HattakeshLine},
		"southbridge": {core.CentralLine},
		"airport":     {core.AirportLine},
	}

	if !m.Shared("hasiph", "southbridge") {
		t.Error("Shared(hasiph, southbridge) = false; want true")
	}
	if m.Shared("hasiph", "airport") {
		t.Error("Shared(hasiph, airport) = true; want false")
	}
	if !m.Interchange("hasiph") || m.Interchange("southbridge") {
		t.Error("Interchange misclassified stations")
	}
	first, ok := m.First("hasiph")
	if !ok || first != core.CentralLine {
		t.Errorf("First(hasiph) = %v, %v; want Central Line, true", first, ok)
	}
	if _, ok = m.First("nowhere"); ok {
		t.Error("First(nowhere) should report absence")
	}

	clone := m.Clone()
	clone["hasiph"][0] = core.AirportLine
	if m["hasiph"][0] != core.CentralLine {
		t.Error("Clone shares backing storage with the original")
	}
}

func TestKnownLine(t *testing.T) {
	for _, l := range core.AllLines {
		if !core.KnownLine(l) {
			t.Errorf("KnownLine(%v) = false", l)
		}
	}
	if core.KnownLine("Ring Line") {
		t.Error(`KnownLine("Ring Line") = true; want false`)
	}
}
