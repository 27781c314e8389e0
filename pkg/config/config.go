package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/goliatone/go-blocks/pkg/dsfr"
	"github.com/goliatone/go-blocks/pkg/schema"
	"github.com/goliatone/go-config/cfgx"
	"gopkg.in/yaml.v3"
)

// Config captures module-level configuration knobs. Feature packages (registry,
// render, settings) pull from these nested structs.
type Config struct {
	Localization LocalizationConfig `mapstructure:"localization" json:"localization"`
	Blocks       BlocksConfig       `mapstructure:"blocks" json:"blocks"`
	Render       RenderConfig       `mapstructure:"render" json:"render"`
	Settings     SettingsConfig     `mapstructure:"settings" json:"settings"`
}

// LocalizationConfig controls default locale + fallback chains.
type LocalizationConfig struct {
	DefaultLocale string `mapstructure:"default_locale" json:"default_locale"`
}

// BlocksConfig gates what the block catalog exposes to editors.
type BlocksConfig struct {
	AllowRawHTML       bool   `mapstructure:"allow_raw_html" json:"allow_raw_html"`
	DefaultHeadingTag  string `mapstructure:"default_heading_tag" json:"default_heading_tag"`
	HideObsoleteFields bool   `mapstructure:"hide_obsolete_fields" json:"hide_obsolete_fields"`
}

// RenderConfig scopes cache + rendering behaviors.
type RenderConfig struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl" json:"cache_ttl"`
}

// SettingsConfig governs go-options specific behaviors.
type SettingsConfig struct {
	EnableScopeSchema bool `mapstructure:"enable_scope_schema" json:"enable_scope_schema"`
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		Localization: LocalizationConfig{DefaultLocale: "en"},
		Blocks: BlocksConfig{
			AllowRawHTML:       false,
			DefaultHeadingTag:  dsfr.DefaultHeadingTag,
			HideObsoleteFields: true,
		},
		Render: RenderConfig{
			CacheTTL: time.Minute,
		},
		Settings: SettingsConfig{
			EnableScopeSchema: false,
		},
	}
}

// CatalogOptions maps the block gating knobs onto catalog build options.
func (c Config) CatalogOptions() schema.BuildOptions {
	return schema.BuildOptions{
		AllowRawHTML: c.Blocks.AllowRawHTML,
		HideObsolete: c.Blocks.HideObsoleteFields,
	}
}

// Validate ensures required fields are present and sane.
func (c *Config) Validate() error {
	if c.Localization.DefaultLocale == "" {
		return errors.New("localization.default_locale is required")
	}
	if c.Blocks.DefaultHeadingTag != "" && !dsfr.ValidHeadingTag(c.Blocks.DefaultHeadingTag) {
		return fmt.Errorf("blocks.default_heading_tag %q is not a heading tag", c.Blocks.DefaultHeadingTag)
	}
	if c.Render.CacheTTL < 0 {
		return fmt.Errorf("render.cache_ttl must be >= 0")
	}
	return nil
}

// Load decodes arbitrary input (struct, map, cfg struct) using cfgx helpers.
// While cfgx.Build still returns zero values, we fallback to a lightweight
// decoder to keep smoke tests meaningful. Once cfgx is fully implemented we
// can drop the fallback.
func Load(input any, opts ...LoadOption) (Config, error) {
	settings := loadOptions{}
	for _, opt := range opts {
		opt(&settings)
	}

	cfg, err := cfgx.Build(input, settings.buildOpts...)
	if err != nil {
		return Config{}, err
	}

	if isZero(cfg) {
		if err := decodeFallback(input, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile reads TOML, YAML, or JSON configuration based on the extension.
func LoadFile(path string, opts ...LoadOption) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("config: parse toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("config: parse json: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("config: unsupported config format %q", filepath.Ext(path))
	}

	if err := normalizeDurations(raw); err != nil {
		return Config{}, err
	}
	return Load(raw, opts...)
}

// LoadOption lets callers amend cfgx build options.
type LoadOption func(*loadOptions)

type loadOptions struct {
	buildOpts []cfgx.Option[Config]
}

// WithBuildOptions forwards cfgx options (duration hooks, preprocessors, etc.).
func WithBuildOptions(opts ...cfgx.Option[Config]) LoadOption {
	return func(lo *loadOptions) {
		lo.buildOpts = append(lo.buildOpts, opts...)
	}
}

func (c Config) withDefaults() Config {
	defaults := Defaults()

	if c.Localization.DefaultLocale == "" {
		c.Localization.DefaultLocale = defaults.Localization.DefaultLocale
	}
	if c.Blocks.DefaultHeadingTag == "" {
		c.Blocks.DefaultHeadingTag = defaults.Blocks.DefaultHeadingTag
	}
	if c.Render.CacheTTL == 0 {
		c.Render.CacheTTL = defaults.Render.CacheTTL
	}
	if !c.Blocks.HideObsoleteFields {
		c.Blocks.HideObsoleteFields = defaults.Blocks.HideObsoleteFields
	}
	return c
}

func isZero(cfg Config) bool {
	return reflect.DeepEqual(cfg, Config{})
}

func decodeFallback(input any, cfg *Config) error {
	switch v := input.(type) {
	case nil:
		return nil
	case Config:
		*cfg = v
		return nil
	case *Config:
		if v != nil {
			*cfg = *v
		}
		return nil
	case map[string]any:
		return decodeMap(v, cfg)
	default:
		return fmt.Errorf("unsupported config input type: %T", input)
	}
}

func decodeMap(input map[string]any, cfg *Config) error {
	if input == nil {
		return nil
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, cfg)
}

// normalizeDurations rewrites duration strings (e.g. "5m") into nanosecond
// counts so the JSON round-trip in decodeMap can populate time.Duration.
func normalizeDurations(raw map[string]any) error {
	render, ok := raw["render"].(map[string]any)
	if !ok {
		return nil
	}
	value, ok := render["cache_ttl"].(string)
	if !ok {
		return nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("config: render.cache_ttl: %w", err)
	}
	render["cache_ttl"] = int64(parsed)
	return nil
}
