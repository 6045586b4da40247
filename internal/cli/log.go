// Package cli, log.go implements the "wxlog log" command.
//
// The log command expands the requested date ranges, fetches every day
// from the server through the journal fetcher and prints the days that
// have an entry, formatted as compact text or as JSON.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/wxlog/internal/format"
	"github.com/shinji-kodama/wxlog/internal/journal"
)

// logFlags holds the flag values for the log command.
type logFlags struct {
	// reverse prints the newest day first.
	reverse bool
}

// NewLogCommand creates the "log" cobra command.
func NewLogCommand() *cobra.Command {
	flags := &logFlags{}

	cmd := &cobra.Command{
		Use:   "log [RANGE...]",
		Short: "Print your workouts for one or more date ranges",
		Long: `Print the journal of every day covered by the given ranges. Days without
a workout are skipped. Without arguments, today's workout is printed.

A range is a single date (2025-05-27, 2025/05/27, 20250527), a month
(2025-05, 202505), a year (2025), or two of these joined by "..".

Examples:
  wxlog log
  wxlog log 2025-05
  wxlog log 2025-05-01..2025-05-14 --reverse
  wxlog log 2024 --json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(cmd.Context(), cmd.OutOrStdout(), flags, args)
		},
	}

	cmd.Flags().BoolVar(&flags.reverse, "reverse", false, "Newest day first")

	return cmd
}

// runLog is the main logic function for the log command.
func runLog(ctx context.Context, out io.Writer, flags *logFlags, args []string) error {
	// Step 1: Validate every range before touching the network.
	days, err := resolveDays(args, flags.reverse)
	if err != nil {
		return err
	}
	logrus.Debugf("fetching %d day(s)", len(days))

	// Step 2: Fetch the days in parallel, keeping their order.
	session, client := newSession(appConfig)
	defer func() { _ = client.Close() }()

	logger := logrus.StandardLogger()
	fetcher := journal.NewFetcher(session,
		journal.NewDayCache(journal.DefaultCacheSizeMegabytes, logger),
		appConfig.Workers, logger)

	found, err := fetcher.Fetch(ctx, days)
	if err != nil {
		return apiFailure("failed to fetch workouts", err)
	}

	// Step 3: Output results in the appropriate format.
	opts := formatOptions(appConfig)
	if IsJSONOutput() {
		return writeLogJSON(out, found, opts)
	}
	writeLogText(out, found, opts)
	return nil
}

// writeLogText prints every day separated by a blank line.
func writeLogText(out io.Writer, days []journal.Day, opts format.Options) {
	if len(days) == 0 {
		fmt.Fprintln(out, "No workouts found.")
		return
	}

	rendered := make([]string, 0, len(days))
	for _, d := range days {
		rendered = append(rendered, format.FormatDay(d.Log, d.Date.String(), opts))
	}
	fmt.Fprintln(out, strings.Join(rendered, "\n\n"))
}

// logDayJSON is the JSON output structure for a single day.
type logDayJSON struct {
	Date string `json:"date"`

	// Text is the same rendering the text output shows, without color.
	Text string `json:"text"`

	// Bodyweight is the logged bodyweight in kilograms, as stored.
	Bodyweight *float64 `json:"bodyweight"`

	Exercises []logExerciseJSON `json:"exercises"`
}

// logExerciseJSON is one exercise block of a day with its compressed
// set lines.
type logExerciseJSON struct {
	Name string   `json:"name"`
	Sets []string `json:"sets"`
}

func writeLogJSON(out io.Writer, days []journal.Day, opts format.Options) error {
	type resultJSON struct {
		Days []logDayJSON `json:"days"`
	}

	opts.Color = false
	result := resultJSON{Days: make([]logDayJSON, 0, len(days))}

	for _, d := range days {
		entry := logDayJSON{
			Date:       d.Date.String(),
			Text:       format.FormatDay(d.Log, d.Date.String(), opts),
			Bodyweight: d.Log.Bodyweight,
			Exercises:  make([]logExerciseJSON, 0, len(d.Log.Blocks)),
		}

		names := d.Log.ExerciseNames()
		for _, block := range d.Log.Blocks {
			name, ok := names[block.ExerciseID]
			if !ok {
				continue
			}
			entry.Exercises = append(entry.Exercises, logExerciseJSON{
				Name: name,
				Sets: format.CompressSets(block.Sets),
			})
		}

		result.Days = append(result.Days, entry)
	}

	return writeJSON(out, result)
}
