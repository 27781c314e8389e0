package content

import (
	"errors"
	"testing"
)

func TestDecodeStreamCardPayload(t *testing.T) {
	stream := mustDecode(t, []map[string]any{{
		"type": "card",
		"id":   "b1",
		"value": map[string]any{
			"title":       "Service opening",
			"heading_tag": "h2",
			"description": "<p>Now open</p>",
			"image":       map[string]any{"url": "/media/door.png", "alt": "door"},
			"image_ratio": "fr-ratio-3x2",
			"url":         "https://example.com/service",
			"top_detail_badges_tags": []any{
				map[string]any{
					"type": "tags",
					"value": []any{
						map[string]any{
							"type": "tag",
							"value": map[string]any{
								"label": "News",
								"link":  map[string]any{"external_url": "https://example.com/news"},
							},
						},
					},
				},
			},
		},
	}})

	if len(stream) != 1 {
		t.Fatalf("expected one entry, got %d", len(stream))
	}
	card, ok := stream[0].Value.(Card)
	if !ok {
		t.Fatalf("expected Card, got %T", stream[0].Value)
	}
	if card.Orientation != OrientationHorizontal {
		t.Fatalf("top level cards should be horizontal, got %s", card.Orientation)
	}
	if card.Title != "Service opening" || card.HeadingTag != "h2" {
		t.Fatalf("card fields not decoded: %+v", card)
	}
	if card.Image == nil || card.Image.URL != "/media/door.png" {
		t.Fatalf("image not decoded: %+v", card.Image)
	}
	if len(card.TopDetail) != 1 || card.TopDetail[0].Kind != DetailTags {
		t.Fatalf("top detail not decoded: %+v", card.TopDetail)
	}
	// The linked tag must flow through to the resolver.
	if card.EnlargeLink() {
		t.Fatalf("expected enlarge link false with linked tag")
	}
}

func TestDecodeStreamScalarBlocks(t *testing.T) {
	stream := mustDecode(t, []map[string]any{
		{"type": "paragraph", "value": "<p>hello</p>"},
		{"type": "markdown", "value": "# heading"},
		{"type": "html", "value": "<div>raw</div>"},
	})

	if p := stream[0].Value.(Paragraph); p.HTML != "<p>hello</p>" {
		t.Fatalf("paragraph not decoded: %+v", p)
	}
	if m := stream[1].Value.(Markdown); m.Source != "# heading" {
		t.Fatalf("markdown not decoded: %+v", m)
	}
	if r := stream[2].Value.(RawHTML); r.HTML != "<div>raw</div>" {
		t.Fatalf("raw html not decoded: %+v", r)
	}
}

func TestDecodeStreamUnknownType(t *testing.T) {
	_, err := DecodeStream([]map[string]any{{"type": "carousel", "value": map[string]any{}}})
	if !errors.Is(err, ErrUnknownBlockType) {
		t.Fatalf("expected ErrUnknownBlockType, got %v", err)
	}

	_, err = DecodeStream([]map[string]any{{"value": map[string]any{}}})
	if !errors.Is(err, ErrMissingBlockType) {
		t.Fatalf("expected ErrMissingBlockType, got %v", err)
	}
}

func TestDecodeMultiColumnsNestedCards(t *testing.T) {
	stream := mustDecode(t, []map[string]any{{
		"type": "multicolumns",
		"value": map[string]any{
			"title": "Highlights",
			"columns": []any{
				map[string]any{
					"type":  "card",
					"value": map[string]any{"title": "Column card", "url": "https://example.com"},
				},
				map[string]any{"type": "text", "value": "<p>aside</p>"},
			},
		},
	}})

	block, ok := stream[0].Value.(MultiColumns)
	if !ok {
		t.Fatalf("expected MultiColumns, got %T", stream[0].Value)
	}
	if len(block.Columns) != 2 {
		t.Fatalf("expected two columns, got %d", len(block.Columns))
	}
	card := block.Columns[0].Value.(Card)
	if card.Orientation != OrientationVertical {
		t.Fatalf("column cards should be vertical, got %s", card.Orientation)
	}
}

func TestDecodeFullWidthBackground(t *testing.T) {
	stream := mustDecode(t, []map[string]any{{
		"type": "fullwidthbackground",
		"value": map[string]any{
			"bg_color_class": "blue-ecume",
			"content": []any{
				map[string]any{
					"type":  "card",
					"value": map[string]any{"title": "Wide card", "url": "https://example.com"},
				},
			},
		},
	}})

	block := stream[0].Value.(FullWidthBackground)
	if block.BgColorClass != "blue-ecume" {
		t.Fatalf("background class not decoded: %+v", block)
	}
	card := block.Content[0].Value.(Card)
	if card.Orientation != OrientationHorizontal {
		t.Fatalf("full width cards should be horizontal, got %s", card.Orientation)
	}
}

func TestDecodeAccordionsFoldsTitle(t *testing.T) {
	stream := mustDecode(t, []map[string]any{{
		"type": "accordions",
		"value": []any{
			map[string]any{"type": "title", "value": "FAQ"},
			map[string]any{"type": "accordion", "value": map[string]any{"title": "One", "content": "<p>1</p>"}},
			map[string]any{"type": "accordion", "value": map[string]any{"title": "Two", "content": "<p>2</p>"}},
		},
	}})

	block := stream[0].Value.(Accordions)
	if block.Title != "FAQ" {
		t.Fatalf("expected folded title, got %q", block.Title)
	}
	if len(block.Items) != 2 || block.Items[1].Title != "Two" {
		t.Fatalf("accordion items not decoded: %+v", block.Items)
	}
}

func TestDecodeSeparatorDefaults(t *testing.T) {
	stream := mustDecode(t, []map[string]any{
		{"type": "separator", "value": map[string]any{}},
		{"type": "separator", "value": map[string]any{"top_margin": float64(0), "bottom_margin": float64(8)}},
	})

	defaulted := stream[0].Value.(Separator)
	if defaulted.TopMargin != 3 || defaulted.BottomMargin != 3 {
		t.Fatalf("expected default margins, got %+v", defaulted)
	}
	explicit := stream[1].Value.(Separator)
	if explicit.TopMargin != 0 || explicit.BottomMargin != 8 {
		t.Fatalf("explicit margins not honored: %+v", explicit)
	}
}

func TestDecodeImageAndTextObsoleteLink(t *testing.T) {
	stream := mustDecode(t, []map[string]any{{
		"type": "imageandtext",
		"value": map[string]any{
			"image":      map[string]any{"url": "/media/side.png"},
			"image_side": "left",
			"text":       "<p>body</p>",
			"link_label": "Legacy read more",
			"link_url":   "https://example.com/legacy",
		},
	}})

	block := stream[0].Value.(ImageAndText)
	link := block.ResolvedLink()
	if link.Text != "Legacy read more" || link.URL() != "https://example.com/legacy" {
		t.Fatalf("obsolete fields not folded: %+v", link)
	}

	// A populated Link field wins over the obsolete spellings.
	block.Link = Link{Text: "Read more", ExternalURL: "https://example.com/new"}
	if got := block.ResolvedLink().URL(); got != "https://example.com/new" {
		t.Fatalf("expected new link to win, got %q", got)
	}
}

func TestDecodeStepper(t *testing.T) {
	stream := mustDecode(t, []map[string]any{{
		"type": "stepper",
		"value": map[string]any{
			"title":   "Apply",
			"total":   float64(3),
			"current": float64(2),
			"steps": []any{
				map[string]any{"type": "step", "value": map[string]any{"title": "Fill", "detail": "the form"}},
				map[string]any{"type": "step", "value": map[string]any{"title": "Send", "detail": "it in"}},
			},
		},
	}})

	block := stream[0].Value.(Stepper)
	if block.Total != 3 || block.Current != 2 || len(block.Steps) != 2 {
		t.Fatalf("stepper not decoded: %+v", block)
	}
}

func TestStreamContexts(t *testing.T) {
	stream := mustDecode(t, []map[string]any{{
		"type": "card",
		"id":   "b9",
		"value": map[string]any{
			"title": "Ctx",
			"url":   "https://example.com",
		},
	}})

	contexts := stream.Contexts()
	if len(contexts) != 1 {
		t.Fatalf("expected one context, got %d", len(contexts))
	}
	if contexts[0]["type"] != "card" || contexts[0]["id"] != "b9" {
		t.Fatalf("entry envelope missing: %+v", contexts[0])
	}
	payload, ok := contexts[0]["context"].(map[string]any)
	if !ok || payload["enlarge_link"] != true {
		t.Fatalf("resolved facts missing from context: %+v", contexts[0]["context"])
	}
}

// Helpers

func mustDecode(t *testing.T, raw []map[string]any) Stream {
	t.Helper()
	stream, err := DecodeStream(raw)
	if err != nil {
		t.Fatalf("decode stream: %v", err)
	}
	return stream
}
