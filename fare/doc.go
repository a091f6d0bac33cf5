// Package fare computes ticket prices for metro journeys.
//
// A journey costs a base fare of 5 Siyyats plus 1 Siyyat for every hop
// beyond the first. The fare never drops below the base fare; for any
// real route (distance ≥ 1) the floor is non-binding and exists purely
// as a defensive guard against degenerate distances.
//
// Matrix produces the all-pairs fare table used by the city's published
// fare charts, with CSV export.
package fare
