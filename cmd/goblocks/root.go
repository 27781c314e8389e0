package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goliatone/go-blocks/pkg/blocks"
	"github.com/goliatone/go-blocks/pkg/config"
	"github.com/goliatone/go-blocks/pkg/schema"
	"github.com/goliatone/go-blocks/pkg/storage"
	i18n "github.com/goliatone/go-i18n"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "goblocks",
	Short: "Inspect, validate, and render structured content blocks",
	Long: `goblocks works with page-builder block streams: it lists the block
palette a site exposes, checks authored stream payloads against the block
schemas, and renders streams to HTML using the bundled DSFR templates.

Pass --config to load site settings from a TOML, YAML, or JSON file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML, YAML, or JSON config file")
}

func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Defaults(), nil
	}
	return config.LoadFile(configPath)
}

// newModule wires an in-memory module seeded with the builtin label
// catalog, enough for one-shot CLI runs.
func newModule(cfg config.Config) (*blocks.Module, error) {
	store := i18n.NewStaticStore(schema.Translations())
	translator, err := i18n.NewSimpleTranslator(store, i18n.WithTranslatorDefaultLocale(cfg.Localization.DefaultLocale))
	if err != nil {
		return nil, err
	}
	return blocks.NewModule(blocks.ModuleOptions{
		Config:     cfg,
		Storage:    storage.NewMemoryProviders(),
		Translator: translator,
		Fallbacks:  i18n.NewStaticFallbackResolver(),
	})
}

func readStream(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stream: %w", err)
	}
	var entries []map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse stream %s: %w", path, err)
	}
	return entries, nil
}
