// This file implements the per-journey fare formula.

package fare

import (
	"errors"
	"fmt"

	"github.com/redackistan/metro/core"
	"github.com/redackistan/metro/route"
)

// Base is the minimum price of any journey, in Siyyats.
const Base = 5

// PerHop is the surcharge for each hop beyond the first, in Siyyats.
const PerHop = 1

// ErrInvalidRoute is returned when a fare is requested for a pair of
// stations with no connecting path. It is distinct from a legitimate
// base-fare route.
var ErrInvalidRoute = errors.New("fare: invalid route")

// Cost returns the fare from start to end: Base plus PerHop for every
// hop beyond the first, floored at Base. Returns ErrInvalidRoute when
// either station is unknown or no path connects them.
func Cost(n *core.Network, start, end string) (int, error) {
	distance, err := route.Distance(n, start, end)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRoute, err)
	}

	total := Base + PerHop*(distance-1)
	if total < Base {
		// only reachable for distance 0 (start == end); kept as a floor
		// rather than an error so same-station queries price at Base
		total = Base
	}

	return total, nil
}
