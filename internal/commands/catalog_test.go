package commands

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-blocks/adapters/gocms"
	"github.com/goliatone/go-blocks/internal/storage/memory"
	"github.com/goliatone/go-blocks/pkg/interfaces/cache"
	"github.com/goliatone/go-blocks/pkg/interfaces/logger"
	"github.com/goliatone/go-blocks/pkg/registry"
	"github.com/goliatone/go-blocks/pkg/render"
	"github.com/goliatone/go-blocks/pkg/schema"
	i18n "github.com/goliatone/go-i18n"
)

func TestCatalogCommands(t *testing.T) {
	ctx := context.Background()
	defRepo := memory.NewDefinitionRepository()
	tplRepo := memory.NewTemplateRepository()
	translator := newTestTranslator(t)
	tplSvc, err := render.New(render.Dependencies{
		Repository: tplRepo,
		Cache:      &cache.Nop{},
		Logger:     &logger.Nop{},
		Translator: translator,
	})
	if err != nil {
		t.Fatalf("render service: %v", err)
	}
	regSvc, err := registry.New(registry.Dependencies{
		Repository: defRepo,
	})
	if err != nil {
		t.Fatalf("registry service: %v", err)
	}

	cat, err := NewCatalog(Dependencies{
		Definitions: regSvc,
		Templates:   tplSvc,
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	if err := cat.DefineBlock.Execute(ctx, DefineBlock{
		DefinitionInput: registry.DefinitionInput{Code: "card", Name: "Card"},
		AllowUpdate:     true,
	}); err != nil {
		t.Fatalf("define block: %v", err)
	}
	if err := cat.DefineBlock.Execute(ctx, DefineBlock{
		DefinitionInput: registry.DefinitionInput{Code: "card", Name: "Card again"},
	}); err == nil {
		t.Fatalf("expected duplicate definition rejection")
	}

	if err := cat.SaveTemplate.Execute(ctx, TemplateUpsert{
		TemplateInput: render.TemplateInput{Code: "card", Locale: "en", Body: "<h3>{{ title }}</h3>"},
		AllowUpdate:   true,
	}); err != nil {
		t.Fatalf("save template: %v", err)
	}
	if err := cat.SaveTemplate.Execute(ctx, TemplateUpsert{
		TemplateInput: render.TemplateInput{Code: "card", Locale: "en", Body: "<h2>{{ title }}</h2>"},
	}); err == nil {
		t.Fatalf("expected duplicate template rejection")
	}

	var result render.RenderResult
	if err := cat.RenderBlock.Execute(ctx, RenderBlock{
		Code:   "card",
		Locale: "en",
		Data:   map[string]any{"title": "Launch"},
		Result: &result,
	}); err != nil {
		t.Fatalf("render block: %v", err)
	}
	if !strings.Contains(result.HTML, "Launch") {
		t.Fatalf("expected rendered title, got %q", result.HTML)
	}
}

func TestValidateStreamCommand(t *testing.T) {
	ctx := context.Background()
	cat := newTestCatalog(t)

	var problems []schema.Problem
	err := cat.ValidateStream.Execute(ctx, ValidateStream{
		Entries: []map[string]any{
			{"type": "card", "value": map[string]any{"url": "/releases/1"}},
		},
		Problems: &problems,
	})
	if err == nil {
		t.Fatalf("expected validation failure for missing title")
	}
	if len(problems) == 0 {
		t.Fatalf("expected problems to be reported")
	}

	if err := cat.ValidateStream.Execute(ctx, ValidateStream{
		Entries: []map[string]any{
			{"type": "card", "value": map[string]any{"title": "Launch"}},
		},
	}); err != nil {
		t.Fatalf("expected valid stream, got %v", err)
	}
}

func TestImportSnapshotCommand(t *testing.T) {
	ctx := context.Background()
	cat := newTestCatalog(t)

	imported := 0
	err := cat.ImportSnapshot.Execute(ctx, ImportSnapshot{
		Spec: gocms.TemplateSpec{Code: "promo"},
		Snapshot: gocms.BlockVersionSnapshot{
			Configuration: map[string]any{"api_key": "sk-123456789"},
			Translations: []gocms.BlockTranslationSnapshot{
				{Locale: "en", Content: map[string]any{"body": "<p>{{ title }}</p>"}},
				{Locale: "fr", Content: map[string]any{"body": "<p>{{ title }} !</p>"}},
			},
		},
		Imported: &imported,
	})
	if err != nil {
		t.Fatalf("import snapshot: %v", err)
	}
	if imported != 2 {
		t.Fatalf("expected 2 imported variants, got %d", imported)
	}
}

// Helpers

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	tplSvc, err := render.New(render.Dependencies{
		Repository: memory.NewTemplateRepository(),
		Cache:      &cache.Nop{},
		Logger:     &logger.Nop{},
		Translator: newTestTranslator(t),
	})
	if err != nil {
		t.Fatalf("render service: %v", err)
	}
	regSvc, err := registry.New(registry.Dependencies{
		Repository: memory.NewDefinitionRepository(),
	})
	if err != nil {
		t.Fatalf("registry service: %v", err)
	}
	cat, err := NewCatalog(Dependencies{
		Definitions: regSvc,
		Templates:   tplSvc,
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat
}

func newTestTranslator(t *testing.T) i18n.Translator {
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
