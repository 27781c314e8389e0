package render

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	internalrender "github.com/goliatone/go-blocks/internal/render"
	memstore "github.com/goliatone/go-blocks/internal/storage/memory"
	"github.com/goliatone/go-blocks/pkg/activity"
	"github.com/goliatone/go-blocks/pkg/domain"
	"github.com/goliatone/go-blocks/pkg/interfaces/cache"
	"github.com/goliatone/go-blocks/pkg/interfaces/logger"
	i18n "github.com/goliatone/go-i18n"
)

func TestServiceRenderUsesFallbackChain(t *testing.T) {
	ctx := context.Background()
	repo := memstore.NewTemplateRepository()
	cache := newMapCache()
	resolver := i18n.NewStaticFallbackResolver()
	resolver.Set("fr-ca", "fr", "en")
	svc := newTestService(t, repo, cache, resolver, nil)

	seedTemplate(t, repo, domain.BlockTemplate{
		Code:   "callout",
		Locale: "en",
		Body:   `<div class="fr-callout"><p>{{ t(locale, "callout.body", text) }}</p></div>`,
		Format: domain.FormatHTML,
		Schema: domain.TemplateSchema{Required: []string{"text"}},
	})
	seedTemplate(t, repo, domain.BlockTemplate{
		Code:   "callout",
		Locale: "fr",
		Body:   `<div class="fr-callout"><p>{{ t(locale, "callout.body", text) }}</p></div>`,
		Format: domain.FormatHTML,
		Schema: domain.TemplateSchema{Required: []string{"text"}},
	})

	result, err := svc.Render(ctx, RenderRequest{
		Code:   "callout",
		Locale: "fr-ca",
		Data: map[string]any{
			"text": "Attention",
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result.Locale != "fr" {
		t.Fatalf("expected locale fr, got %s", result.Locale)
	}
	if !result.UsedFallback {
		t.Fatalf("expected fallback to be used")
	}
	if _, ok := cache.values[cacheKey("callout", "fr")]; !ok {
		t.Fatalf("expected cache to store fr variant")
	}
}

func TestServiceSchemaValidation(t *testing.T) {
	ctx := context.Background()
	repo := memstore.NewTemplateRepository()
	svc := newTestService(t, repo, &cache.Nop{}, i18n.NewStaticFallbackResolver(), nil)

	seedTemplate(t, repo, domain.BlockTemplate{
		Code:   "quote",
		Locale: "en",
		Body:   `<blockquote>{{ quote.text }}</blockquote>`,
		Format: domain.FormatHTML,
		Schema: domain.TemplateSchema{Required: []string{"quote.text"}},
	})

	_, err := svc.Render(ctx, RenderRequest{
		Code:   "quote",
		Locale: "en",
		Data:   map[string]any{},
	})
	var schemaErr internalrender.SchemaError
	if err == nil || !errors.As(err, &schemaErr) {
		t.Fatalf("expected schema error, got %v", err)
	}

	_, err = svc.Render(ctx, RenderRequest{
		Code:   "quote",
		Locale: "en",
		Data: map[string]any{
			"quote": map[string]any{"text": "Being is. Being is in itself."},
		},
	})
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
}

func TestServiceFieldAndAssetHelpers(t *testing.T) {
	ctx := context.Background()
	repo := memstore.NewTemplateRepository()
	svc := newTestService(t, repo, &cache.Nop{}, i18n.NewStaticFallbackResolver(), nil)

	seedTemplate(t, repo, domain.BlockTemplate{
		Code:   "figure",
		Locale: "en",
		Body:   `<img src="{{ asset_url(image.url) }}" alt="{{ field(image, "alt") }}">`,
		Format: domain.FormatHTML,
	})

	result, err := svc.Render(ctx, RenderRequest{
		Code:   "figure",
		Locale: "en",
		Data: map[string]any{
			"image": map[string]any{
				"url": "media/cover.png",
				"alt": "Cover art",
			},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(result.HTML, `src="/media/cover.png"`) {
		t.Fatalf("asset_url did not root relative path: %s", result.HTML)
	}
	if !strings.Contains(result.HTML, `alt="Cover art"`) {
		t.Fatalf("field helper did not resolve alt: %s", result.HTML)
	}
}

func TestServiceSupportsGoCMSPayloads(t *testing.T) {
	ctx := context.Background()
	repo := memstore.NewTemplateRepository()
	svc := newTestService(t, repo, &cache.Nop{}, i18n.NewStaticFallbackResolver(), nil)

	source := domain.TemplateSource{
		Type: "gocms-block",
		Payload: domain.JSONMap{
			"blocks": []any{
				map[string]any{
					"body": `<p>{{ t(locale, "callout.body", Name) }}</p>`,
				},
			},
		},
	}

	seedTemplate(t, repo, domain.BlockTemplate{
		Code:   "cms.block",
		Locale: "en",
		Source: source,
		Format: domain.FormatHTML,
		Schema: domain.TemplateSchema{Required: []string{"Name"}},
	})

	result, err := svc.Render(ctx, RenderRequest{
		Code:   "cms.block",
		Locale: "en",
		Data: map[string]any{
			"Name": "Chris",
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result.HTML == "" {
		t.Fatalf("expected body from go-cms payload")
	}
	if result.Metadata != nil {
		t.Fatalf("metadata should be nil when not set")
	}
	if result.UsedFallback {
		t.Fatalf("did not expect fallback for en locale")
	}
}

func TestServiceCreateAndUpdateBumpRevision(t *testing.T) {
	ctx := context.Background()
	repo := memstore.NewTemplateRepository()
	cache := newMapCache()
	hook := &recordingHook{}
	svc := newTestService(t, repo, cache, i18n.NewStaticFallbackResolver(), activity.Hooks{hook})

	created, err := svc.Create(ctx, TemplateInput{
		Code:   "badge",
		Locale: "en",
		Body:   `<p class="fr-badge">{{ label }}</p>`,
		Schema: domain.TemplateSchema{Required: []string{"label"}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Revision != 1 {
		t.Fatalf("expected revision 1, got %d", created.Revision)
	}

	updated, err := svc.Update(ctx, TemplateInput{
		Code:   "badge",
		Locale: "en",
		Body:   `<p class="fr-badge fr-badge--info">{{ label }}</p>`,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Revision != 2 {
		t.Fatalf("expected revision 2, got %d", updated.Revision)
	}
	if !strings.Contains(updated.Body, "fr-badge--info") {
		t.Fatalf("body not updated: %s", updated.Body)
	}
	if _, ok := cache.values[cacheKey("badge", "en")]; !ok {
		t.Fatalf("expected cache to store badge template")
	}

	if len(hook.events) != 2 {
		t.Fatalf("expected 2 activity events, got %d", len(hook.events))
	}
	for _, evt := range hook.events {
		if evt.Verb != activity.VerbTemplateSave {
			t.Fatalf("unexpected verb %s", evt.Verb)
		}
		if evt.BlockCode != "badge" {
			t.Fatalf("unexpected block code %s", evt.BlockCode)
		}
	}
}

func TestServiceSaveUpserts(t *testing.T) {
	ctx := context.Background()
	repo := memstore.NewTemplateRepository()
	svc := newTestService(t, repo, &cache.Nop{}, i18n.NewStaticFallbackResolver(), nil)

	first, err := svc.Save(ctx, TemplateInput{
		Code:   "tile",
		Locale: "en",
		Body:   `<div class="fr-tile">{{ title }}</div>`,
	})
	if err != nil {
		t.Fatalf("save create: %v", err)
	}
	if first.Revision != 1 {
		t.Fatalf("expected revision 1 on first save, got %d", first.Revision)
	}

	second, err := svc.Save(ctx, TemplateInput{
		Code:   "tile",
		Locale: "en",
		Body:   `<div class="fr-tile fr-tile--sm">{{ title }}</div>`,
	})
	if err != nil {
		t.Fatalf("save update: %v", err)
	}
	if second.Revision != 2 {
		t.Fatalf("expected revision 2 on second save, got %d", second.Revision)
	}
}

func TestServiceRenderDerivesPlainText(t *testing.T) {
	ctx := context.Background()
	repo := memstore.NewTemplateRepository()
	svc := newTestService(t, repo, &cache.Nop{}, i18n.NewStaticFallbackResolver(), nil)

	seedTemplate(t, repo, domain.BlockTemplate{
		Code:   "alert",
		Locale: "en",
		Body:   `<div class="fr-alert"><h3>{{ title }}</h3><p>{{ text }}</p></div>`,
		Format: domain.FormatHTML,
	})

	result, err := svc.Render(ctx, RenderRequest{
		Code:   "alert",
		Locale: "en",
		Data: map[string]any{
			"title": "Maintenance",
			"text":  "Service resumes at noon.",
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(result.Text, "<") {
		t.Fatalf("plain text still contains markup: %s", result.Text)
	}
	if !strings.Contains(result.Text, "Service resumes at noon.") {
		t.Fatalf("plain text missing content: %s", result.Text)
	}
	if !strings.Contains(result.HTML, "<h3>Maintenance</h3>") {
		t.Fatalf("html rendition missing heading: %s", result.HTML)
	}
}

// Helpers

func newTestService(t *testing.T, repo *memstore.TemplateRepository, cache cache.Cache, resolver i18n.FallbackResolver, hooks activity.Hooks) *Service {
	t.Helper()
	translator := newTestTranslator(t)
	svc, err := New(Dependencies{
		Repository:    repo,
		Cache:         cache,
		Logger:        &logger.Nop{},
		Translator:    translator,
		Fallbacks:     resolver,
		Hooks:         hooks,
		DefaultLocale: "en",
		CacheTTL:      time.Minute,
	})
	if err != nil {
		t.Fatalf("New service: %v", err)
	}
	return svc
}

func newTestTranslator(t *testing.T) i18n.Translator {
	t.Helper()
	translations := i18n.Translations{
		"en": newCatalog("en", map[string]string{
			"callout.body": "Notice: %s",
		}),
		"fr": newCatalog("fr", map[string]string{
			"callout.body": "Avis : %s",
		}),
	}
	store := i18n.NewStaticStore(translations)
	translator, err := i18n.NewSimpleTranslator(store, i18n.WithTranslatorDefaultLocale("en"))
	if err != nil {
		t.Fatalf("translator: %v", err)
	}
	return translator
}

func newCatalog(locale string, entries map[string]string) *i18n.TranslationCatalog {
	catalog := &i18n.TranslationCatalog{
		Locale:   i18n.Locale{Code: locale},
		Messages: make(map[string]i18n.Message),
	}
	for key, template := range entries {
		msg := i18n.Message{}
		msg.SetContent(template)
		catalog.Messages[key] = msg
	}
	return catalog
}

func seedTemplate(t *testing.T, repo *memstore.TemplateRepository, tpl domain.BlockTemplate) {
	t.Helper()
	if err := repo.Create(context.Background(), &tpl); err != nil {
		t.Fatalf("seed template: %v", err)
	}
}

type recordingHook struct {
	events []activity.Event
}

func (h *recordingHook) Notify(_ context.Context, evt activity.Event) {
	h.events = append(h.events, evt)
}

type mapCache struct {
	mu     sync.RWMutex
	values map[string]cacheEntry
}

type cacheEntry struct {
	value any
	ttl   time.Duration
}

func newMapCache() *mapCache {
	return &mapCache{
		values: make(map[string]cacheEntry),
	}
}

func (m *mapCache) Get(ctx context.Context, key string) (any, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.values[key]
	return entry.value, ok, nil
}

func (m *mapCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = cacheEntry{value: value, ttl: ttl}
	return nil
}

func (m *mapCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
