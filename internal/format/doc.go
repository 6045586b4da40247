// Package format renders workout days as plain text.
//
// The Set Compressor (CompressSets) collapses runs of regular sets into
// single lines, preferring a shared weight over shared repetitions:
//
//	100x5, 100x5, 100x3  →  "100 x 5, 5, 3"
//	 80x5,  90x5, 100x5  →  "80, 90, 100 x 5"
//
// Sets of a special kind (timed, distance, ...) are always printed on
// their own line. The Workout Formatter (FormatDay) combines the
// compressed lines with exercise names, the day's log text and the
// bodyweight.
//
// Nothing here returns an error: missing fields render as zero values.
// Presentation choices (color, marker, bodyweight unit) come in through
// Options and are never read from the environment.
package format
