package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	chrono "github.com/ploteq/timex"
)

// canonicalLayouts is tried, in order, against a bare value with no known
// source layout so "format" can round-trip it into the requested target
// layout. The first one whose Read succeeds wins; this mirrors how a
// terminal command line has no way to carry an already-parsed TimeRep
// between invocations, so the value always arrives as text.
var canonicalLayouts = []string{
	chrono.ISO8601DateTimeExtended,
	chrono.ISO8601DateTimeSimple,
	chrono.ISO8601DateExtended,
	chrono.ISO8601DateSimple,
	chrono.ISO8601WeekDayExtended,
	chrono.ISO8601WeekDaySimple,
	chrono.ISO8601OrdinalDateExtended,
	chrono.ISO8601OrdinalDateSimple,
	chrono.ISO8601TimeExtended,
	chrono.ISO8601TimeTruncatedMins,
	chrono.ISO8601TimeTruncatedHours,
}

func readCanonical(value string) (chrono.TimeRep, error) {
	if tr, err := chrono.ParseInterval(value); err == nil {
		return tr, nil
	}
	if tr, err := chrono.ParseDuration(value); err == nil {
		return tr, nil
	}
	var lastErr error
	for _, layout := range canonicalLayouts {
		tr, err := chrono.FormatOf(layout).Read(value) // ISO8601* constants, known valid
		if err == nil {
			return tr, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("timexctl: %q does not match any known ISO 8601 shape: %w", value, lastErr)
}

var formatCmd = &cobra.Command{
	Use:   "format <layout> <value>",
	Short: "Reformat an ISO 8601 value to <layout>",
	Long: `format reads <value> against the narrowest ISO 8601 shape it
matches (date, time, date-time, week-date, ordinal date, duration or
interval) and re-renders it using <layout>, a format representation
written in ISO 8601's own alphabet, e.g.:

  timexctl format 'YYYY-MM-DD' 19850412
  timexctl format 'YYYY-Www-D' 1985-04-12`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, value := args[0], args[1]

		tr, err := readCanonical(value)
		if err != nil {
			return err
		}

		f, err := chrono.NewFormat(layout)
		if err != nil {
			return fmt.Errorf("timexctl: invalid layout %q: %w", layout, err)
		}

		out, err := f.Format(tr)
		if err != nil {
			return fmt.Errorf("timexctl: formatting %q as %q: %w", value, layout, err)
		}

		logger.Debug().Str("layout", layout).Str("value", value).Str("result", out).Msg("timexctl: formatted")
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}
