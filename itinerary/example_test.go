package itinerary_test

import (
	"fmt"

	"github.com/redackistan/metro/core"
	"github.com/redackistan/metro/itinerary"
)

// ExampleFromPath compiles a path that changes lines at an interchange.
func ExampleFromPath() {
	lines := core.Memberships{
		"kandami":    {core.CentralLine},
		"parliament": {core.CentralLine, core.AirportLine},
		"university": {core.AirportLine},
		"hayalese":   {core.AirportLine},
	}

	path := []string{"kandami", "parliament", "university", "hayalese"}
	actions, err := itinerary.FromPath(path, lines)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, a := range actions {
		switch act := a.(type) {
		case *itinerary.BeginAt:
			fmt.Println("begin at", act.Station)
		case *itinerary.GoTo:
			fmt.Printf("ride the %s from %s to %s (%d stops)\n",
				act.Line, act.From, act.To, len(act.Stops)-1)
		case *itinerary.Transfer:
			fmt.Printf("change at %s: %s -> %s\n", act.At, act.FromLine, act.ToLine)
		case *itinerary.ArriveAt:
			fmt.Println("arrive at", act.Station)
		}
	}

	// Output:
	// begin at kandami
	// ride the Central Line from kandami to parliament (1 stops)
	// change at parliament: Central Line -> Airport Line
	// ride the Airport Line from parliament to hayalese (2 stops)
	// arrive at hayalese
}
