package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/goliatone/go-blocks/pkg/schema"
	i18n "github.com/goliatone/go-i18n"
	"github.com/spf13/cobra"
)

var catalogLocale string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the block palette with the configured gating applied",
	Long: `Catalog prints every block the palette would offer an editor under the
loaded configuration: raw HTML only appears when blocks.allow_raw_html is set,
and obsolete fields are stripped when blocks.hide_obsolete_fields is.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		locale := catalogLocale
		if locale == "" {
			locale = cfg.Localization.DefaultLocale
		}
		labels, err := i18n.NewSimpleTranslator(
			i18n.NewStaticStore(schema.Translations()),
			i18n.WithTranslatorDefaultLocale("en"),
		)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		palette := schema.DefaultCatalog().Build(cfg.CatalogOptions())
		for _, child := range palette {
			label := child.Label
			if translated, err := labels.Translate(locale, child.Label); err == nil {
				label = translated
			}
			line := color.CyanString("%-22s", child.Name) + color.HiWhiteString("%-26s", label)
			if required := requiredFields(child.Block); len(required) > 0 {
				line += color.YellowString("requires: %s", strings.Join(required, ", "))
			}
			fmt.Fprintln(out, line)
		}
		fmt.Fprintf(out, "\n%d blocks available\n", len(palette))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVarP(&catalogLocale, "locale", "l", "", "label locale (defaults to the configured locale)")
}

func requiredFields(spec schema.BlockSpec) []string {
	var out []string
	for _, field := range spec.Fields {
		if field.Required {
			out = append(out, field.Name)
		}
	}
	return out
}
