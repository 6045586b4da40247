package format

import (
	"strings"

	"github.com/gookit/color"

	"github.com/shinji-kodama/wxlog/internal/model"
)

// DefaultMarker is the placeholder in a day's log text where the rendered
// exercise blocks are spliced in.
const DefaultMarker = "EBLOCK:"

// Options carries the presentation settings of FormatDay. They are
// resolved by the caller from configuration and flags.
type Options struct {
	// Color highlights the date label and exercise headers with ANSI codes.
	// gookit/color still drops the codes when the terminal does not
	// support them.
	Color bool

	// Marker is the literal substring of the log text replaced by the
	// exercise blocks. Empty means DefaultMarker.
	Marker string

	// BodyweightInPounds converts the stored kilogram bodyweight for display.
	BodyweightInPounds bool
}

// DefaultOptions returns plain-text output with pound bodyweights.
func DefaultOptions() Options {
	return Options{
		Marker:             DefaultMarker,
		BodyweightInPounds: true,
	}
}

var (
	dateStyle   = color.New(color.FgYellow, color.OpBold)
	headerStyle = color.New(color.FgCyan, color.OpBold)
)

func (o Options) marker() string {
	if o.Marker == "" {
		return DefaultMarker
	}
	return o.Marker
}

func (o Options) paint(style color.Style, s string) string {
	if !o.Color {
		return s
	}
	return style.Sprint(s)
}

// FormatBlocks renders every exercise block of the day as a "#name"
// header followed by its compressed set lines. Blocks referencing an
// exercise id missing from the day's exercise list are skipped.
func FormatBlocks(day *model.DayLog, opts Options) []string {
	if day == nil {
		return nil
	}
	names := day.ExerciseNames()

	var lines []string
	for _, block := range day.Blocks {
		name, ok := names[block.ExerciseID]
		if !ok {
			continue
		}
		lines = append(lines, opts.paint(headerStyle, "#"+name))
		lines = append(lines, CompressSets(block.Sets)...)
	}
	return lines
}

// FormatDay renders one day:
//
//	{date}
//	@ {bodyweight} bw        (only when a bodyweight was logged)
//	{log text, with the exercise blocks spliced in at the marker}
//
// The blocks replace the first occurrence of the marker, wrapped in
// surrounding blank lines. Without a marker they are appended after the
// log text, separated by a blank line. A marker left with no blocks to
// show is removed.
func FormatDay(day *model.DayLog, date string, opts Options) string {
	lines := []string{opts.paint(dateStyle, date)}
	if day == nil {
		return lines[0]
	}

	if day.Bodyweight != nil {
		lines = append(lines, "@ "+FormatWeight(*day.Bodyweight, opts.BodyweightInPounds)+" bw")
	}

	blocks := strings.Join(FormatBlocks(day, opts), "\n")
	body := spliceBlocks(day.Log, blocks, opts.marker())
	if body != "" {
		lines = append(lines, body)
	}

	return strings.Join(lines, "\n")
}

// spliceBlocks inserts the rendered blocks into the log text.
func spliceBlocks(log, blocks, marker string) string {
	if blocks == "" {
		return strings.Replace(log, marker, "", 1)
	}
	if strings.Contains(log, marker) {
		return strings.Replace(log, marker, "\n"+blocks+"\n", 1)
	}
	if log == "" {
		return blocks
	}
	return log + "\n\n" + blocks
}
