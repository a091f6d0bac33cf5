// This file implements text rendering of lines, stations, and itineraries.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/redackistan/metro/core"
	"github.com/redackistan/metro/itinerary"
)

// lineColors assigns each metro line its display color.
var lineColors = map[core.Line]*color.Color{
	core.CentralLine:          color.New(color.FgGreen, color.Bold),
	core.CoastalLine:          color.New(color.FgRed, color.Bold),
	core.AirportLine:          color.New(color.FgBlue, color.Bold),
	core.HattakeshLine:        color.New(color.FgMagenta, color.Bold),
	core.RedackistanLightRail: color.New(color.FgCyan, color.Bold),
}

var bold = color.New(color.Bold)

// Line renders a line name in its display color.
func Line(l core.Line) string {
	if c, ok := lineColors[l]; ok {
		return c.Sprint(string(l))
	}

	return string(l)
}

// CodeLine maps a station code to the line its prefix names.
func CodeLine(code string) (core.Line, bool) {
	if len(code) < 2 {
		return "", false
	}
	switch code[:2] {
	case "CT":
		return core.CentralLine, true
	case "CS":
		return core.CoastalLine, true
	case "AP":
		return core.AirportLine, true
	case "HT":
		return core.HattakeshLine, true
	case "RL":
		return core.RedackistanLightRail, true
	}

	return "", false
}

// Codes renders a station's display codes as "(CT1|CS5|HT1)", each code
// colored by its line.
func Codes(codes []string) string {
	parts := make([]string, len(codes))
	for i, code := range codes {
		if l, ok := CodeLine(code); ok {
			parts[i] = lineColors[l].Sprint(code)
		} else {
			parts[i] = code
		}
	}

	return "(" + strings.Join(parts, "|") + ")"
}

// Station renders a station with its codes and title-cased name,
// e.g. "(CT1|CS5|HT1) Hasiph".
func Station(n *core.Network, id string) string {
	id = core.NormalizeID(id)
	title := cases.Title(language.Und).String(id)

	return Codes(n.Codes(id)) + " " + bold.Sprint(title)
}

// Route writes one line of text per itinerary action.
func Route(w io.Writer, n *core.Network, actions []itinerary.Action) error {
	for _, a := range actions {
		var line string
		switch act := a.(type) {
		case *itinerary.BeginAt:
			line = fmt.Sprintf("%s at %s", bold.Sprint("Begin"), Station(n, act.Station))
		case *itinerary.GoTo:
			line = fmt.Sprintf("%s %s from %s on the %s (%d stops)",
				bold.Sprint("Go to"), Station(n, act.To), Station(n, act.From),
				Line(act.Line), len(act.Stops)-1)
		case *itinerary.Transfer:
			line = fmt.Sprintf("%s at %s from the %s to the %s",
				bold.Sprint("Transfer"), Station(n, act.At),
				Line(act.FromLine), Line(act.ToLine))
		case *itinerary.ArriveAt:
			line = fmt.Sprintf("%s at %s", bold.Sprint("Arrive"), Station(n, act.Station))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// Fare renders the closing fare sentence.
func Fare(cost int) string {
	return fmt.Sprintf("It will cost %s.", bold.Sprintf("%d Siyyats", cost))
}
