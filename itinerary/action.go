// This file declares the Action sum type: the four shapes an itinerary
// step can take. The variants share no behavior beyond being steps, so
// the interface is sealed with an unexported marker method.

package itinerary

import "github.com/redackistan/metro/core"

// Action is one step of a compiled itinerary. Exactly four types satisfy
// it: *BeginAt, *GoTo, *Transfer and *ArriveAt.
type Action interface {
	isAction()
}

// BeginAt opens an itinerary. It appears exactly once, always first.
type BeginAt struct {
	// Station is the boarding station.
	Station string
}

// GoTo is a ride segment on a single line between two stations.
type GoTo struct {
	// To and From are the segment's end and start stations.
	To   string
	From string

	// Line is the line ridden across the whole segment.
	Line core.Line

	// ToLine is the line the rider changes onto at To, when the segment
	// is followed by a Transfer. Zero otherwise.
	ToLine core.Line

	// Stops lists every station of the segment in ride order,
	// endpoints included.
	Stops []string
}

// Transfer is an instantaneous line change at an interchange station.
// It only ever occurs at stations served by two or more lines.
type Transfer struct {
	// At is the interchange station.
	At string

	// FromLine and ToLine are the lines changed from and onto.
	FromLine core.Line
	ToLine   core.Line
}

// ArriveAt closes an itinerary. It appears exactly once, always last.
type ArriveAt struct {
	// Station is the alighting station.
	Station string
}

func (*BeginAt) isAction()  {}
func (*GoTo) isAction()     {}
func (*Transfer) isAction() {}
func (*ArriveAt) isAction() {}
