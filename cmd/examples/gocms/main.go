package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/goliatone/go-blocks/adapters/gocms"
	"github.com/goliatone/go-blocks/pkg/content"
	"github.com/goliatone/go-blocks/pkg/domain"
)

func main() {
	snapshot := gocms.BlockVersionSnapshot{
		Configuration: map[string]any{"layout": "promo", "api_key": "cms-4f9d8e7a61b2"},
		Metadata:      map[string]any{"definition": "landing.card"},
		Translations: []gocms.BlockTranslationSnapshot{
			{
				Locale: "locale-en",
				Content: map[string]any{
					"body": "<p>{{ title }}</p>",
					"blocks": []any{
						map[string]any{
							"type": "card",
							"value": map[string]any{
								"title":       "Understand the reform",
								"url":         "/guides/reform",
								"image":       map[string]any{"url": "/img/reform.jpg", "alt": "Reform"},
								"image_ratio": "fr-ratio-3x2",
							},
						},
					},
				},
			},
			{
				Locale: "es",
				Content: map[string]any{
					"body": "<p>{{ title }}</p>",
				},
				AttributeOverrides: map[string]any{
					"body": "<p>Hola {{ title }}</p>",
				},
			},
		},
	}

	spec := gocms.TemplateSpec{
		Code:        "promo",
		Description: "Sample import via go-cms snapshot",
		Format:      domain.FormatHTML,
		Schema:      domain.TemplateSchema{Required: []string{"title"}},
		Metadata:    domain.JSONMap{"source": "cms"},
		ResolveLocale: func(raw string) (string, error) {
			if raw == "locale-en" {
				return "en", nil
			}
			return raw, nil
		},
	}

	templates, err := gocms.TemplatesFromBlockSnapshot(spec, snapshot)
	if err != nil {
		log.Fatalf("translate snapshot: %v", err)
	}
	for _, tpl := range templates {
		encoded, _ := json.MarshalIndent(tpl.Source.Payload, "", "  ")
		fmt.Printf("Template %s/%s\n%s\n\n", tpl.Code, tpl.Locale, encoded)
	}

	stream, err := gocms.StreamFromTranslation(snapshot.Translations[0], gocms.FieldMapping{})
	if err != nil {
		log.Fatalf("decode stream: %v", err)
	}
	for _, entry := range stream {
		card, ok := entry.Value.(content.Card)
		if !ok {
			continue
		}
		fmt.Printf("Card %q: enlarge_link=%t image_classes=%q\n", card.Title, card.EnlargeLink(), card.ImageClasses())
	}

	masked, _ := json.MarshalIndent(gocms.MaskConfiguration(snapshot.Configuration), "", "  ")
	fmt.Printf("\nConfiguration (masked)\n%s\n", masked)
}
