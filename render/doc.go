// Package render turns compiled itineraries, stations, and fares into
// colored terminal text.
//
// Each line has a fixed bright color (Central green, Coastal red,
// Airport blue, Hattakesh magenta, light rail cyan). Station codes are
// colored by the line their prefix names. Color output honors the
// fatih/color global switches, so setting color.NoColor yields plain
// text.
package render
