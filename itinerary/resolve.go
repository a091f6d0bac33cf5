// This file implements the second pass: the line-resolution sweep that
// backfills labels the forward scan could not determine locally.

package itinerary

import "github.com/redackistan/metro/core"

// Resolve performs the cleanup pass over a compiled action sequence,
// in place:
//
//   - every GoTo's Line is recomputed as the common line across its full
//     Stops buffer, overriding the provisional label from compilation;
//   - every Transfer takes its FromLine from the resolved Line of the
//     preceding GoTo and its ToLine from the resolved Line of the
//     following GoTo;
//   - a GoTo followed by a Transfer takes that Transfer's ToLine as its
//     own handoff label.
//
// The pass exists because a segment's line identity is only known once
// all of its stations are, while Transfer markers are emitted mid-scan.
// Returns ErrNoCommonLine if any segment's stations share no line.
func Resolve(actions []Action, lines core.Memberships) error {
	for _, a := range actions {
		gt, ok := a.(*GoTo)
		if !ok {
			continue
		}
		common, err := CommonLine(lines, gt.Stops)
		if err != nil {
			return err
		}
		gt.Line = common[0]
	}

	// every transfer sits between two segments; relabel it from both sides
	for i, a := range actions {
		tr, ok := a.(*Transfer)
		if !ok {
			continue
		}
		if i+1 < len(actions) {
			if gt, ok := actions[i+1].(*GoTo); ok {
				tr.ToLine = gt.Line
			}
		}
		if i > 0 {
			if gt, ok := actions[i-1].(*GoTo); ok {
				tr.FromLine = gt.Line
				gt.ToLine = tr.ToLine
			}
		}
	}

	return nil
}
