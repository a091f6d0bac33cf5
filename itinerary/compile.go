// This file implements the first pass: the forward scan that groups a
// station path into ride segments and transfer markers.

package itinerary

import (
	"errors"
	"fmt"

	"github.com/redackistan/metro/core"
)

// Sentinel errors for itinerary compilation.
var (
	// ErrEmptyPath is returned when Compile receives a zero-length path.
	ErrEmptyPath = errors.New("itinerary: empty path")

	// ErrUnknownStation is returned when a path station is missing from
	// the line-membership table or serves no line at all.
	ErrUnknownStation = errors.New("itinerary: station missing from line table")

	// ErrNoCommonLine is returned when a segment's stations share no line,
	// or when a common line is requested for an empty buffer. Either case
	// means the walk cannot be ridden as compiled and the query must fail
	// rather than guess a line.
	ErrNoCommonLine = errors.New("itinerary: no common line between stations")

	// ErrDeadEnd is returned when the scan demands a line change at a
	// station served by a single line. Only interchange stations may host
	// a Transfer; hitting this means the path is not a valid metro walk.
	ErrDeadEnd = errors.New("itinerary: line change required at single-line station")
)

// FromPath compiles a station path and resolves all line labels.
// This is the usual entry point: Compile followed by Resolve.
func FromPath(path []string, lines core.Memberships) ([]Action, error) {
	actions, err := Compile(path, lines)
	if err != nil {
		return nil, err
	}
	if err = Resolve(actions, lines); err != nil {
		return nil, err
	}

	return actions, nil
}

// Compile scans path once, left to right, and emits the draft action
// sequence. Line labels on Transfer markers are provisional; run Resolve
// on the result before presenting it.
//
// The scan keeps a buffer of stations ridden on the current segment and a
// current line guess. It extends the segment while the next station
// shares a line with the current one and the guess remains plausible for
// the pair. When the lookahead fails, the previous station hosts the
// line change; when the path ends, the final segment is closed out with
// the common line of its buffer.
func Compile(path []string, lines core.Memberships) ([]Action, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	walk := make([]string, len(path))
	for i, id := range path {
		walk[i] = core.NormalizeID(id)
		if len(lines.Lines(walk[i])) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStation, walk[i])
		}
	}

	actions := []Action{&BeginAt{Station: walk[0]}}
	segStart := walk[0]
	cur, _ := lines.First(walk[0])
	buf := []string{}
	lastTransfer := "" // guards against re-transferring at the same station
	i := 0

	for {
		// ride forward while the lookahead lets us stay on cur
		atEnd := false
		for {
			if i+1 >= len(walk) {
				atEnd = true
				break
			}
			if !stayOn(lines, walk[i], walk[i+1], cur) {
				break
			}
			buf = append(buf, walk[i])
			i++
		}

		if atEnd {
			return closeOut(actions, lines, buf, segStart, walk[i])
		}

		// The lookahead failed at walk[i]: walk[i] is already off the
		// current line, so the change happens one station back.
		if i == 0 {
			return nil, fmt.Errorf("%w: %q", ErrDeadEnd, walk[0])
		}
		i--
		at := walk[i]
		if !lines.Interchange(at) || at == lastTransfer {
			return nil, fmt.Errorf("%w: %q", ErrDeadEnd, at)
		}

		// close the segment with the interchange's first line as the
		// provisional label; Resolve recomputes it from the buffer
		cur, _ = lines.First(at)
		actions = append(actions, &GoTo{To: at, From: segStart, Line: cur, Stops: buf})

		next := walk[i+1]
		nextLine, _ := lines.First(next)
		atLine, _ := lines.First(at)
		// placeholder labels; Resolve rewrites both from the resolved
		// lines of the surrounding segments
		actions = append(actions, &Transfer{At: at, FromLine: nextLine, ToLine: atLine})

		segStart = at
		buf = []string{at}
		cur = nextLine
		lastTransfer = at
		i++
	}
}

// closeOut finishes the final segment: determines the line common to the
// buffered stations, appends the terminal station, patches a trailing
// Transfer marker, and emits the final GoTo and ArriveAt.
func closeOut(actions []Action, lines core.Memberships, buf []string, segStart, last string) ([]Action, error) {
	common, err := CommonLine(lines, buf)
	if err != nil {
		return nil, err
	}
	line := common[0]
	buf = append(buf, last)

	// a transfer recorded before the destination line was known
	if tr, ok := actions[len(actions)-1].(*Transfer); ok {
		tr.ToLine = line
	}

	actions = append(actions,
		&GoTo{To: last, From: segStart, Line: line, Stops: buf},
		&ArriveAt{Station: last},
	)

	return actions, nil
}

// stayOn reports whether the rider can advance from curr to next without
// a line change: the two stations must share a line, and the current line
// must appear in the union of their line sets.
func stayOn(lines core.Memberships, curr, next string, cur core.Line) bool {
	if !lines.Shared(curr, next) {
		return false
	}

	return hasLine(lines.Lines(curr), cur) || hasLine(lines.Lines(next), cur)
}

func hasLine(lines []core.Line, l core.Line) bool {
	for _, candidate := range lines {
		if candidate == l {
			return true
		}
	}

	return false
}

// CommonLine returns the lines shared by every station in stations,
// ordered by the first station's registered line order (the first element
// is the deterministic tie-break). Returns ErrNoCommonLine when stations
// is empty or when the intersection is empty.
func CommonLine(lines core.Memberships, stations []string) ([]core.Line, error) {
	if len(stations) == 0 {
		return nil, fmt.Errorf("%w: empty station buffer", ErrNoCommonLine)
	}

	common := append([]core.Line(nil), lines.Lines(stations[0])...)
	for _, id := range stations[1:] {
		serving := lines.Lines(id)
		kept := common[:0]
		for _, l := range common {
			if hasLine(serving, l) {
				kept = append(kept, l)
			}
		}
		common = kept
		if len(common) == 0 {
			return nil, fmt.Errorf("%w: %v", ErrNoCommonLine, stations)
		}
	}

	return common, nil
}
