// Command timexctl exercises the timex module's ISO 8601 format machine and
// English grammar from the command line.
package main

import (
	"os"

	"github.com/ploteq/timex/cmd/timexctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
