package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ploteq/timex/cfg"
	"github.com/ploteq/timex/grammarspec"
	"github.com/ploteq/timex/timex"
)

var parseCmd = &cobra.Command{
	Use:   "parse <grammar-file> <text>",
	Short: "Run a timex grammar over text and print the resulting terms",
	Long: `parse compiles the grammar-spec DSL file at <grammar-file> against
timex.EnglishBindings() (the same action and terminal vocabulary
timex.NewEnglishGrammar embeds), tokenizes <text>, and drives the grammar's
Earley parser over it with timex.Parse, printing one term per line.

Use "-" for <grammar-file> to run the embedded English grammar instead of
reading a file.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		grammarFile, text := args[0], args[1]

		grammar, err := loadGrammar(grammarFile)
		if err != nil {
			return err
		}

		tokens := timex.Tokenize(text)
		logger.Debug().Int("tokens", len(tokens)).Str("text", text).Msg("timexctl: tokenized")

		for _, term := range timex.Parse(tokens, grammar, logger) {
			fmt.Printf("%T %+v\n", term, term)
		}
		return nil
	},
}

func loadGrammar(grammarFile string) (*cfg.AttributeGrammar, error) {
	if grammarFile == "-" {
		return timex.NewEnglishGrammar(logger)
	}

	src, err := os.ReadFile(grammarFile)
	if err != nil {
		return nil, fmt.Errorf("timexctl: reading grammar file %q: %w", grammarFile, err)
	}

	grammar, err := grammarspec.Load(string(src), "timex", timex.EnglishBindings(), logger)
	if err != nil {
		return nil, fmt.Errorf("timexctl: compiling grammar %q: %w", grammarFile, err)
	}
	return grammar, nil
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
