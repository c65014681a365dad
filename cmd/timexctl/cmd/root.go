package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// logger is configured once in PersistentPreRunE from the resolved
// log-level; library code (cfg, earley, grammarspec, chrono, timex) defaults
// to zerolog.Nop() and only speaks when a subcommand passes this logger in
// (SPEC_FULL.md §4.7 - "library code never logs by default").
var logger zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "timexctl",
	Short: "Read, write and parse ISO 8601 temporal expressions",
	Long: `timexctl drives the timex module's ISO 8601 format machine and
Earley-based English grammar from the command line:

  timexctl format <layout> <value>   reformat an ISO 8601 value
  timexctl read   <layout> <string>  parse an ISO 8601 string to its fields
  timexctl parse  <grammar-file> <text>  run a timex grammar over text`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(viper.GetString("log-level"))
		if err != nil {
			return err
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			Level(level).With().Timestamp().Logger()
		return nil
	},
}

// Execute runs the root command; cmd/timexctl/main.go is the only caller.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error, disabled)")
	rootCmd.PersistentFlags().String("config", "", "config file (default: $HOME/.timexctl.yaml)")

	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")); err != nil {
		panic(err)
	}

	cobra.OnInitialize(initConfig)
}

// initConfig wires viper's layered resolution: flags (already bound above)
// take precedence over environment variables, which take precedence over an
// optional config file, matching SPEC_FULL.md §4.7's flags/env/file order.
func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".timexctl")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("TIMEXCTL")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig() // absence of a config file is not an error
}
