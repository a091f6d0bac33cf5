// Package itinerary compiles a raw station path into an ordered sequence
// of travel actions: where to board, which line to ride, where to change
// lines, and where to get off.
//
// Compilation is a two-pass process. Compile performs a single forward
// scan with one station of lookahead, grouping the path into ride
// segments and emitting Transfer markers at interchange stations. The
// line ridden on a segment is only fully determined once all of its
// stations are known, so Transfer markers are emitted with provisional
// line labels. Resolve is the second pass: it recomputes every segment's
// line as the common line across its stations and backfills the transfer
// labels from the neighboring segments. FromPath runs both passes.
//
// A valid itinerary always alternates
//
//	BeginAt, (GoTo, Transfer)*, GoTo, ArriveAt
//
// so a Transfer is always sandwiched between two rides and the sequence
// never starts or ends with one.
//
// Invariant violations (an empty path, a segment whose stations share no
// line, a line change demanded at a single-line station) indicate a
// broken walk or a corrupted membership table. They surface as errors
// rather than malformed itineraries.
package itinerary
