package markup

import (
	"context"
	"errors"
	"strings"
	"testing"

	internalrender "github.com/goliatone/go-blocks/internal/render"
	memstore "github.com/goliatone/go-blocks/internal/storage/memory"
	"github.com/goliatone/go-blocks/pkg/content"
	"github.com/goliatone/go-blocks/pkg/domain"
	"github.com/goliatone/go-blocks/pkg/interfaces/cache"
	"github.com/goliatone/go-blocks/pkg/interfaces/logger"
	pkgrender "github.com/goliatone/go-blocks/pkg/render"
	i18n "github.com/goliatone/go-i18n"
)

func TestTemplatesShape(t *testing.T) {
	tpls := Templates()
	if len(tpls) != 8 {
		t.Fatalf("expected 8 templates, got %d", len(tpls))
	}

	expected := map[string]domain.TemplateSchema{
		CardCode:       cardSchema,
		AlertCode:      alertSchema,
		CalloutCode:    calloutSchema,
		QuoteCode:      quoteSchema,
		AccordionsCode: accordionsSchema,
		SeparatorCode:  separatorSchema,
		StepperCode:    stepperSchema,
		ParagraphCode:  paragraphSchema,
	}

	for _, tpl := range tpls {
		schema, ok := expected[tpl.Code]
		if !ok {
			t.Fatalf("unexpected template code: %s", tpl.Code)
		}
		if tpl.Locale != "en" {
			t.Fatalf("expected en locale for %s, got %s", tpl.Code, tpl.Locale)
		}
		if tpl.Format != domain.FormatHTML {
			t.Fatalf("expected html format for %s, got %s", tpl.Code, tpl.Format)
		}
		if !equalStringSets(tpl.Schema.Required, schema.Required) {
			t.Fatalf("template %s required schema mismatch", tpl.Code)
		}
		if !equalStringSets(tpl.Schema.Optional, schema.Optional) {
			t.Fatalf("template %s optional schema mismatch", tpl.Code)
		}
	}
}

func TestTemplatesRender(t *testing.T) {
	ctx := context.Background()
	svc := seededService(t)

	linkedCard := content.Card{
		Title:      "Understand the reform",
		HeadingTag: "h3",
		Image:      &content.ImageRef{URL: "/img/reform.jpg", Alt: "Illustration"},
		ImageRatio: "fr-ratio-3x2",
		URL:        "/articles/reform",
	}
	ctaCard := content.Card{
		Title: "Apply online",
		URL:   "/apply",
		CallToAction: []content.ActionGroup{
			{Kind: content.ActionButtons, Buttons: []content.Button{
				{Link: content.Link{Text: "Start", ExternalURL: "https://example.com/start"}},
			}},
		},
	}

	cases := []struct {
		name    string
		code    string
		data    map[string]any
		want    []string
		notWant []string
	}{
		{
			name: "linked card enlarges and sizes its image",
			code: CardCode,
			data: linkedCard.TemplateContext(),
			want: []string{
				"fr-enlarge-link",
				`class="fr-responsive-img fr-ratio-3x2"`,
				`src="/img/reform.jpg"`,
				"Understand the reform",
			},
		},
		{
			name:    "card with explicit actions keeps its own links",
			code:    CardCode,
			data:    ctaCard.TemplateContext(),
			want:    []string{"Apply online"},
			notWant: []string{"fr-enlarge-link"},
		},
		{
			name: "alert carries its severity class",
			code: AlertCode,
			data: content.Alert{Title: "Heads up", Description: "<p>Scheduled maintenance</p>", Level: "warning"}.TemplateContext(),
			want: []string{"fr-alert--warning", "<p>Scheduled maintenance</p>"},
		},
		{
			name: "callout keeps rich text unescaped",
			code: CalloutCode,
			data: content.Callout{Title: "Reminder", Text: "<strong>Bring ID</strong>"}.TemplateContext(),
			want: []string{"fr-callout", "<strong>Bring ID</strong>"},
		},
		{
			name: "separator renders spacing classes",
			code: SeparatorCode,
			data: content.Separator{TopMargin: 3, BottomMargin: 5}.TemplateContext(),
			want: []string{"fr-mt-3w", "fr-mb-5w"},
		},
		{
			name: "accordions render every item",
			code: AccordionsCode,
			data: content.Accordions{
				Title: "FAQ",
				Items: []content.Accordion{
					{Title: "Opening hours", Content: "<p>9 to 5</p>"},
					{Title: "Fees", Content: "<p>None</p>"},
				},
			}.TemplateContext(),
			want: []string{"fr-accordions-group", "Opening hours", "Fees", "<p>9 to 5</p>"},
		},
		{
			name: "stepper shows progress",
			code: StepperCode,
			data: content.Stepper{Title: "Register", Total: 4, Current: 2}.TemplateContext(),
			want: []string{"fr-stepper", "2/4", `data-fr-current-step="2"`},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rendered, err := svc.Render(ctx, pkgrender.RenderRequest{
				Code:   tc.code,
				Locale: "en",
				Data:   tc.data,
			})
			if err != nil {
				t.Fatalf("render %s: %v", tc.code, err)
			}
			for _, want := range tc.want {
				if !strings.Contains(rendered.HTML, want) {
					t.Fatalf("rendered output missing %q:\n%s", want, rendered.HTML)
				}
			}
			for _, notWant := range tc.notWant {
				if strings.Contains(rendered.HTML, notWant) {
					t.Fatalf("rendered output should not include %q:\n%s", notWant, rendered.HTML)
				}
			}
		})
	}
}

func TestSchemaEnforcesRequiredFields(t *testing.T) {
	ctx := context.Background()
	svc := seededService(t)

	_, err := svc.Render(ctx, pkgrender.RenderRequest{
		Code:   CardCode,
		Locale: "en",
		Data: map[string]any{
			"heading_tag": "h3",
			// title, enlarge_link, image_classes missing
		},
	})
	var schemaErr internalrender.SchemaError
	if err == nil || !errors.As(err, &schemaErr) {
		t.Fatalf("expected schema error for missing fields, got %v", err)
	}
	if len(schemaErr.Missing) == 0 {
		t.Fatalf("expected missing fields to be reported")
	}
}

// Helpers

func seededService(t *testing.T) *pkgrender.Service {
	t.Helper()
	ctx := context.Background()
	repo := memstore.NewTemplateRepository()
	for _, tpl := range Templates() {
		copy := tpl
		if err := repo.Create(ctx, &copy); err != nil {
			t.Fatalf("seed template: %v", err)
		}
	}
	translator, err := i18n.NewSimpleTranslator(
		i18n.NewStaticStore(nil),
		i18n.WithTranslatorDefaultLocale("en"),
	)
	if err != nil {
		t.Fatalf("translator: %v", err)
	}
	svc, err := pkgrender.New(pkgrender.Dependencies{
		Repository:    repo,
		Cache:         &cache.Nop{},
		Logger:        &logger.Nop{},
		Translator:    translator,
		Fallbacks:     i18n.NewStaticFallbackResolver(),
		DefaultLocale: "en",
	})
	if err != nil {
		t.Fatalf("render service: %v", err)
	}
	return svc
}

func equalStringSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]struct{}, len(a))
	for _, val := range a {
		seen[val] = struct{}{}
	}
	for _, val := range b {
		if _, ok := seen[val]; !ok {
			return false
		}
	}
	return true
}
