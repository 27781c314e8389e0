package main

import (
	"fmt"

	"github.com/goliatone/go-blocks/pkg/content"
)

func main() {
	scenarios := []struct {
		name string
		card content.Card
	}{
		{
			name: "linked card",
			card: content.Card{
				Title: "Understand the reform",
				URL:   "/guides/reform",
				Image: &content.ImageRef{URL: "/img/reform.jpg", Alt: "Reform"},
			},
		},
		{
			name: "ratio card",
			card: content.Card{
				Title:      "Apply online",
				URL:        "/apply",
				ImageRatio: "fr-ratio-3x2",
			},
		},
		{
			name: "document card",
			card: content.Card{
				Title:    "Annual report",
				Document: &content.DocumentRef{URL: "/docs/report.pdf", Title: "Report 2025"},
			},
		},
		{
			name: "call to action card",
			card: content.Card{
				Title: "Next steps",
				URL:   "/next",
				CallToAction: []content.ActionGroup{{
					Kind:    content.ActionButtons,
					Buttons: []content.Button{{Link: content.Link{Text: "Start", ExternalURL: "https://example.com/start"}}},
				}},
			},
		},
		{
			name: "linked tags card",
			card: content.Card{
				Title: "Browse topics",
				URL:   "/topics",
				TopDetail: []content.TopDetail{{
					Kind: content.DetailTags,
					Tags: []content.Tag{{Label: "Housing", Link: content.Link{ExternalURL: "https://example.com/housing"}}},
				}},
			},
		},
		{
			name: "plain card",
			card: content.Card{Title: "No destination"},
		},
	}

	for _, sc := range scenarios {
		fmt.Printf("%-22s enlarge_link=%-5t image_classes=%-36q target=%q\n",
			sc.name, sc.card.EnlargeLink(), sc.card.ImageClasses(), sc.card.TargetURL())
	}
}
