// Package cli, dates.go implements the "wxlog dates" command.
//
// The dates command expands date ranges exactly like the log command does
// and prints the resulting days without contacting the server. It is a
// quick way to check how a range expression is understood.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/wxlog/internal/dates"
	"github.com/shinji-kodama/wxlog/internal/model"
)

// datesFlags holds the flag values for the dates command.
type datesFlags struct {
	// reverse prints the newest day first.
	reverse bool
}

// NewDatesCommand creates the "dates" cobra command.
func NewDatesCommand() *cobra.Command {
	flags := &datesFlags{}

	cmd := &cobra.Command{
		Use:   "dates [RANGE...]",
		Short: "Print the days a range expression covers",
		Long: `Print every day covered by the given ranges, one per line, sorted and
without duplicates. Without arguments, today is printed.

Examples:
  wxlog dates 2025-05
  wxlog dates 2025-05-30..2025-06-02 20250610
  wxlog dates --reverse 2025-01-01..2025-01-07`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDates(cmd.Context(), cmd.OutOrStdout(), flags, args)
		},
	}

	cmd.Flags().BoolVar(&flags.reverse, "reverse", false, "Newest day first")

	return cmd
}

func runDates(_ context.Context, out io.Writer, flags *datesFlags, args []string) error {
	days, err := resolveDays(args, flags.reverse)
	if err != nil {
		return err
	}

	if IsJSONOutput() {
		return writeDatesJSON(out, days)
	}
	writeDatesText(out, days)
	return nil
}

// resolveDays expands the range arguments, defaulting to today.
func resolveDays(args []string, reverse bool) ([]dates.Date, error) {
	if len(args) == 0 {
		return []dates.Date{dates.FromTime(now())}, nil
	}

	days, err := dates.Expand(args, dates.ExpandOptions{Reverse: reverse})
	if err != nil {
		return nil, model.WrapCLIError(model.ExitInvalidDate, "invalid date range", err)
	}
	return days, nil
}

func writeDatesText(out io.Writer, days []dates.Date) {
	for _, d := range days {
		fmt.Fprintln(out, d.String())
	}
}

func writeDatesJSON(out io.Writer, days []dates.Date) error {
	type resultJSON struct {
		Dates []dates.Date `json:"dates"`
	}

	// An empty slice keeps the output "[]" rather than "null".
	result := resultJSON{Dates: make([]dates.Date, 0, len(days))}
	result.Dates = append(result.Dates, days...)

	return writeJSON(out, result)
}
