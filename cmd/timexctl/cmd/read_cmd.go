package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	chrono "github.com/ploteq/timex"
)

var readCmd = &cobra.Command{
	Use:   "read <layout> <string>",
	Short: "Parse <string> against <layout> and print the resulting fields",
	Long: `read compiles <layout> (an ISO 8601 format representation such as
"YYYY-MM-DD" or "YYYY-Www-D") and runs it against <string>, printing the
chrono.TimeRep variant that results, e.g.:

  timexctl read 'YYYY-MM-DDThh:mm:ss' 1985-04-12T10:15:30`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, value := args[0], args[1]

		f, err := chrono.NewFormat(layout)
		if err != nil {
			return fmt.Errorf("timexctl: invalid layout %q: %w", layout, err)
		}

		tr, err := f.Read(value)
		if err != nil {
			return fmt.Errorf("timexctl: reading %q with layout %q: %w", value, layout, err)
		}

		logger.Debug().Str("layout", layout).Str("value", value).Msg("timexctl: read")
		fmt.Printf("%T %+v\n", tr, tr)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
}
