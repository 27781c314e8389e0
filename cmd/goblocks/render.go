package main

import (
	"fmt"

	"github.com/goliatone/go-blocks/pkg/content"
	"github.com/spf13/cobra"
)

var (
	renderLocale string
	renderText   bool
)

var renderCmd = &cobra.Command{
	Use:   "render <stream.json>",
	Short: "Render a stream payload to HTML",
	Long: `Render decodes a JSON stream payload, seeds an in-memory module with the
bundled DSFR templates, and writes the rendered blocks to stdout in authored
order. Use --text for the plain-text rendition instead of markup.`,
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
		stream, err := content.DecodeStream(entries)
		if err != nil {
			return fmt.Errorf("decode stream: %w", err)
		}

		module, err := newModule(cfg)
		if err != nil {
			return err
		}
		if _, err := module.Seed(cmd.Context()); err != nil {
			return err
		}

		locale := renderLocale
		if locale == "" {
			locale = cfg.Localization.DefaultLocale
		}
		rendered, err := module.RenderStream(cmd.Context(), locale, stream)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, block := range rendered {
			if i > 0 {
				fmt.Fprintln(out)
			}
			if renderText {
				fmt.Fprintln(out, block.Text)
			} else {
				fmt.Fprintln(out, block.HTML)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderLocale, "locale", "l", "", "render locale (defaults to the configured locale)")
	renderCmd.Flags().BoolVar(&renderText, "text", false, "print the plain-text rendition instead of HTML")
}
