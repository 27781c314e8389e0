package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromMap(t *testing.T) {
	input := map[string]any{
		"localization": map[string]any{
			"default_locale": "es",
		},
		"blocks": map[string]any{
			"allow_raw_html":      true,
			"default_heading_tag": "h2",
		},
	}

	cfg, err := Load(input)
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.Localization.DefaultLocale != "es" {
		t.Fatalf("expected locale es, got %s", cfg.Localization.DefaultLocale)
	}
	if !cfg.Blocks.AllowRawHTML {
		t.Fatalf("expected raw html blocks enabled")
	}
	if cfg.Blocks.DefaultHeadingTag != "h2" {
		t.Fatalf("expected heading tag h2, got %s", cfg.Blocks.DefaultHeadingTag)
	}
	if cfg.Render.CacheTTL != time.Minute {
		t.Fatalf("expected default cache ttl, got %s", cfg.Render.CacheTTL)
	}
}

func TestLoadFromStruct(t *testing.T) {
	input := Config{
		Localization: LocalizationConfig{DefaultLocale: "fr"},
		Render:       RenderConfig{CacheTTL: 5 * time.Minute},
	}

	cfg, err := Load(input)
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.Localization.DefaultLocale != "fr" {
		t.Fatalf("expected locale fr, got %s", cfg.Localization.DefaultLocale)
	}
	if cfg.Render.CacheTTL != 5*time.Minute {
		t.Fatalf("expected cache ttl 5m, got %s", cfg.Render.CacheTTL)
	}
	if !cfg.Blocks.HideObsoleteFields {
		t.Fatalf("expected obsolete fields hidden by default")
	}
	if cfg.Blocks.DefaultHeadingTag != "h3" {
		t.Fatalf("expected default heading tag h3, got %s", cfg.Blocks.DefaultHeadingTag)
	}
}

func TestLoadRejectsBadHeadingTag(t *testing.T) {
	input := map[string]any{
		"blocks": map[string]any{
			"default_heading_tag": "h9",
		},
	}

	if _, err := Load(input); err == nil {
		t.Fatalf("expected heading tag validation error")
	}
}

func TestLoadFileTOML(t *testing.T) {
	path := writeConfigFile(t, "config.toml", `
[localization]
default_locale = "fr"

[blocks]
allow_raw_html = true

[render]
cache_ttl = "90s"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file returned error: %v", err)
	}
	if cfg.Localization.DefaultLocale != "fr" {
		t.Fatalf("expected locale fr, got %s", cfg.Localization.DefaultLocale)
	}
	if !cfg.Blocks.AllowRawHTML {
		t.Fatalf("expected raw html blocks enabled")
	}
	if cfg.Render.CacheTTL != 90*time.Second {
		t.Fatalf("expected cache ttl 90s, got %s", cfg.Render.CacheTTL)
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
localization:
  default_locale: en
blocks:
  default_heading_tag: h4
render:
  cache_ttl: 2m
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file returned error: %v", err)
	}
	if cfg.Blocks.DefaultHeadingTag != "h4" {
		t.Fatalf("expected heading tag h4, got %s", cfg.Blocks.DefaultHeadingTag)
	}
	if cfg.Render.CacheTTL != 2*time.Minute {
		t.Fatalf("expected cache ttl 2m, got %s", cfg.Render.CacheTTL)
	}
}

func TestLoadFileJSON(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{
  "localization": {"default_locale": "es"},
  "settings": {"enable_scope_schema": true}
}`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file returned error: %v", err)
	}
	if cfg.Localization.DefaultLocale != "es" {
		t.Fatalf("expected locale es, got %s", cfg.Localization.DefaultLocale)
	}
	if !cfg.Settings.EnableScopeSchema {
		t.Fatalf("expected scope schema enabled")
	}
}

func TestCatalogOptions(t *testing.T) {
	cfg := Defaults()
	opts := cfg.CatalogOptions()
	if opts.AllowRawHTML {
		t.Fatalf("expected raw html disabled by default")
	}
	if !opts.HideObsolete {
		t.Fatalf("expected obsolete fields hidden by default")
	}
}

// Helpers

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}
