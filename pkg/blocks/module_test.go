package blocks

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-blocks/pkg/config"
	"github.com/goliatone/go-blocks/pkg/content"
	"github.com/goliatone/go-blocks/pkg/interfaces/logger"
	"github.com/goliatone/go-blocks/pkg/settings"
	"github.com/goliatone/go-blocks/pkg/storage"
	i18n "github.com/goliatone/go-i18n"
)

func TestModuleConstruction(t *testing.T) {
	module := newTestModule(t, config.Config{})
	if module.Registry() == nil {
		t.Fatalf("expected registry service")
	}
	if module.Templates() == nil {
		t.Fatalf("expected template service")
	}
	if module.Commands() == nil {
		t.Fatalf("expected commands registry")
	}
	if module.Catalog() == nil || module.Settings() == nil {
		t.Fatalf("expected catalog and settings resolver")
	}
	if got := module.Config().Localization.DefaultLocale; got != "en" {
		t.Fatalf("expected defaults applied, got locale %q", got)
	}
}

func TestModuleSeedAndRenderStream(t *testing.T) {
	ctx := context.Background()
	module := newTestModule(t, config.Config{})

	seeded, err := module.Seed(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if seeded.Definitions == 0 || len(seeded.Codes) == 0 {
		t.Fatalf("expected catalog definitions, got %+v", seeded)
	}
	if seeded.Templates != 8 {
		t.Fatalf("expected 8 bundled templates, got %d", seeded.Templates)
	}

	stream, err := content.DecodeStream([]map[string]any{
		{
			"type": "card",
			"id":   "c-1",
			"value": map[string]any{
				"title":       "Understand the reform",
				"url":         "/guides/reform",
				"image":       map[string]any{"url": "/img/reform.jpg", "alt": "Reform"},
				"image_ratio": "fr-ratio-3x2",
			},
		},
		{
			"type":  "separator",
			"value": map[string]any{"top_margin": 2, "bottom_margin": 6},
		},
	})
	if err != nil {
		t.Fatalf("decode stream: %v", err)
	}

	rendered, err := module.RenderStream(ctx, "en", stream)
	if err != nil {
		t.Fatalf("render stream: %v", err)
	}
	if len(rendered) != 2 {
		t.Fatalf("expected 2 rendered blocks, got %d", len(rendered))
	}
	card := rendered[0]
	if card.Type != "card" || card.ID != "c-1" || card.Locale != "en" {
		t.Fatalf("unexpected card identity: %+v", card)
	}
	if !strings.Contains(card.HTML, "fr-enlarge-link") {
		t.Fatalf("expected linked card markup, got %s", card.HTML)
	}
	if !strings.Contains(card.HTML, `class="fr-responsive-img fr-ratio-3x2"`) {
		t.Fatalf("expected ratio image classes, got %s", card.HTML)
	}
	if !strings.Contains(card.Text, "Understand the reform") {
		t.Fatalf("expected text rendition, got %q", card.Text)
	}
	if !strings.Contains(rendered[1].HTML, "fr-mt-2w") || !strings.Contains(rendered[1].HTML, "fr-mb-6w") {
		t.Fatalf("unexpected separator markup: %s", rendered[1].HTML)
	}
}

func TestModuleRenderStreamUnknownTemplate(t *testing.T) {
	ctx := context.Background()
	module := newTestModule(t, config.Config{})

	stream := content.Stream{{Type: "video", Value: content.Video{Title: "Launch", URL: "https://example.com/v"}}}
	if _, err := module.RenderStream(ctx, "en", stream); err == nil {
		t.Fatalf("expected error for unseeded template")
	} else if !strings.Contains(err.Error(), "video") {
		t.Fatalf("expected block type in error, got %v", err)
	}
}

func TestModuleSettingsOverlays(t *testing.T) {
	cfg := config.Defaults()
	cfg.Blocks.DefaultHeadingTag = "h2"
	module := newTestModule(t, cfg)

	resolver, err := module.SettingsFor(settings.Snapshot{
		Scope: settings.PageScope(),
		Data: map[string]any{
			"blocks": map[string]any{"heading_tag": "h5"},
		},
	})
	if err != nil {
		t.Fatalf("settings for: %v", err)
	}
	if got := resolver.Presentation().HeadingTag; got != "h5" {
		t.Fatalf("expected page overlay to win, got %q", got)
	}

	if _, err := module.SettingsSchema(); err != ErrSchemaDisabled {
		t.Fatalf("expected schema disabled, got %v", err)
	}

	cfg.Settings.EnableScopeSchema = true
	enabled := newTestModule(t, cfg)
	if _, err := enabled.SettingsSchema(); err != nil {
		t.Fatalf("settings schema: %v", err)
	}
}

// Helpers

func newTestModule(t *testing.T, cfg config.Config) *Module {
	t.Helper()
	module, err := NewModule(ModuleOptions{
		Config:     cfg,
		Translator: moduleTranslator(t),
		Logger:     &logger.Nop{},
		Storage:    storage.NewMemoryProviders(),
	})
	if err != nil {
		t.Fatalf("module: %v", err)
	}
	return module
}

func moduleTranslator(t *testing.T) i18n.Translator {
	t.Helper()
	translations := i18n.Translations{
		"en": &i18n.TranslationCatalog{Locale: i18n.Locale{Code: "en"}, Messages: map[string]i18n.Message{}},
	}
	store := i18n.NewStaticStore(translations)
	translator, err := i18n.NewSimpleTranslator(store, i18n.WithTranslatorDefaultLocale("en"))
	if err != nil {
		t.Fatalf("translator: %v", err)
	}
	return translator
}
