package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/goliatone/go-blocks/pkg/schema"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <stream.json>",
	Short: "Check an authored stream payload against the block schemas",
	Long: `Validate reads a JSON stream payload (an array of {type, value} entries)
and reports every schema problem: unknown block types, missing required
fields, bad choice values, and cardinality violations.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		entries, err := readStream(args[0])
		if err != nil {
			return err
		}

		palette := schema.DefaultCatalog().Build(cfg.CatalogOptions())
		problems := schema.ValidateStream(palette, entries)

		out := cmd.OutOrStdout()
		if len(problems) == 0 {
			fmt.Fprintln(out, color.GreenString("stream is valid"), fmt.Sprintf("(%d entries)", len(entries)))
			return nil
		}
		for _, problem := range problems {
			fmt.Fprintln(out, color.RedString(problem.String()))
		}
		return fmt.Errorf("stream has %d problem(s)", len(problems))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
