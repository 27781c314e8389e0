package content

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// DecodeCard builds a Card from an authored card payload. Absent or
// mistyped fields decode to their zero values; a card with nothing set
// is still a valid input to the resolvers.
func DecodeCard(value map[string]any, orientation Orientation) Card {
	return Card{
		Title:            stringAt(value, "title"),
		HeadingTag:       stringAt(value, "heading_tag"),
		Description:      stringAt(value, "description"),
		Image:            decodeImageRef(value["image"]),
		ImageRatio:       stringAt(value, "image_ratio"),
		ImageBadges:      decodeBadges(value["image_badge"]),
		URL:              stringAt(value, "url"),
		Document:         decodeDocumentRef(value["document"]),
		TopDetailText:    stringAt(value, "top_detail_text"),
		TopDetailIcon:    stringAt(value, "top_detail_icon"),
		TopDetail:        decodeTopDetails(value["top_detail_badges_tags"]),
		BottomDetailText: stringAt(value, "bottom_detail_text"),
		BottomDetailIcon: stringAt(value, "bottom_detail_icon"),
		CallToAction:     decodeActionGroups(value["call_to_action"]),
		GreyBackground:   boolAt(value, "grey_background"),
		NoBackground:     boolAt(value, "no_background"),
		NoBorder:         boolAt(value, "no_border"),
		Shadow:           boolAt(value, "shadow"),
		Orientation:      orientation,
	}
}

func decodeImage(value map[string]any) Image {
	return Image{
		Title:      stringAt(value, "title"),
		HeadingTag: stringAt(value, "heading_tag"),
		Image:      decodeImageRef(value["image"]),
		Alt:        stringAt(value, "alt"),
		Caption:    stringAt(value, "caption"),
		URL:        stringAt(value, "url"),
	}
}

func decodeImageAndText(value map[string]any) ImageAndText {
	return ImageAndText{
		Image:     decodeImageRef(value["image"]),
		Side:      stringAt(value, "image_side"),
		Ratio:     stringAt(value, "image_ratio"),
		Text:      stringAt(value, "text"),
		Link:      decodeLink(mapAt(value, "link")),
		LinkLabel: stringAt(value, "link_label"),
		Page:      decodePageRef(value["page"]),
		LinkURL:   stringAt(value, "link_url"),
	}
}

func decodeAlert(value map[string]any) Alert {
	return Alert{
		Title:       stringAt(value, "title"),
		Description: stringAt(value, "description"),
		Level:       stringAt(value, "level"),
		HeadingTag:  stringAt(value, "heading_tag"),
	}
}

func decodeCallout(value map[string]any) Callout {
	return Callout{
		Title:      stringAt(value, "title"),
		Text:       stringAt(value, "text"),
		HeadingTag: stringAt(value, "heading_tag"),
	}
}

func decodeQuote(value map[string]any) Quote {
	return Quote{
		Image:       decodeImageRef(value["image"]),
		Quote:       stringAt(value, "quote"),
		AuthorName:  stringAt(value, "author_name"),
		AuthorTitle: stringAt(value, "author_title"),
		Color:       stringAt(value, "color"),
	}
}

func decodeVideo(value map[string]any) Video {
	return Video{
		Title:   stringAt(value, "title"),
		Caption: stringAt(value, "caption"),
		URL:     stringAt(value, "url"),
	}
}

func decodeIframe(value map[string]any) Iframe {
	return Iframe{
		Title:  stringAt(value, "title"),
		URL:    stringAt(value, "url"),
		Height: intAt(value, "height", 0),
	}
}

func decodeTextAndCTA(value map[string]any) TextAndCTA {
	return TextAndCTA{
		Text:     stringAt(value, "text"),
		CTALabel: stringAt(value, "cta_label"),
		CTAURL:   stringAt(value, "cta_url"),
	}
}

// decodeAccordions folds the mixed title/accordion stream into one
// record: the first title entry wins, sections keep their order.
func decodeAccordions(value any) Accordions {
	out := Accordions{}
	for _, entry := range entriesAt(value) {
		switch stringAt(entry, "type") {
		case "title":
			if out.Title == "" {
				out.Title = stringValue(entry["value"])
			}
		case "accordion":
			body := mapAt(entry, "value")
			out.Items = append(out.Items, Accordion{
				Title:   stringAt(body, "title"),
				Content: stringAt(body, "content"),
			})
		}
	}
	return out
}

func decodeStepper(value map[string]any) Stepper {
	out := Stepper{
		Title:   stringAt(value, "title"),
		Total:   intAt(value, "total", 0),
		Current: intAt(value, "current", 0),
	}
	for _, entry := range entriesAt(value["steps"]) {
		if stringAt(entry, "type") != "step" {
			continue
		}
		body := mapAt(entry, "value")
		out.Steps = append(out.Steps, Step{
			Title:  stringAt(body, "title"),
			Detail: stringAt(body, "detail"),
		})
	}
	return out
}

func decodeSeparator(value map[string]any) Separator {
	return Separator{
		TopMargin:    intAt(value, "top_margin", 3),
		BottomMargin: intAt(value, "bottom_margin", 3),
	}
}

func decodeMultiColumns(value map[string]any) (MultiColumns, error) {
	columns, err := decodeStream(entriesAt(value["columns"]), OrientationVertical)
	if err != nil {
		return MultiColumns{}, fmt.Errorf("columns: %w", err)
	}
	return MultiColumns{
		BgImage:      decodeImageRef(value["bg_image"]),
		BgColorClass: stringAt(value, "bg_color_class"),
		BgColorHex:   stringAt(value, "bg_color"),
		Title:        stringAt(value, "title"),
		HeadingTag:   stringAt(value, "heading_tag"),
		Columns:      columns,
	}, nil
}

func decodeFullWidthBackground(value map[string]any) (FullWidthBackground, error) {
	body, err := decodeStream(entriesAt(value["content"]), OrientationHorizontal)
	if err != nil {
		return FullWidthBackground{}, fmt.Errorf("content: %w", err)
	}
	return FullWidthBackground{
		BgImage:      decodeImageRef(value["bg_image"]),
		BgColorClass: stringAt(value, "bg_color_class"),
		Content:      body,
	}, nil
}

func decodeLink(value map[string]any) Link {
	if len(value) == 0 {
		return Link{}
	}
	return Link{
		Text:        stringAt(value, "text"),
		Page:        decodePageRef(value["page"]),
		ExternalURL: stringAt(value, "external_url"),
	}
}

func decodeButton(value map[string]any) Button {
	return Button{
		Link: decodeLink(value),
		Kind: stringAt(value, "button_type"),
	}
}

func decodeBadge(value map[string]any) Badge {
	return Badge{
		Text:     stringAt(value, "text"),
		Color:    stringAt(value, "color"),
		HideIcon: boolAt(value, "hide_icon"),
	}
}

func decodeTag(value map[string]any) Tag {
	return Tag{
		Label: stringAt(value, "label"),
		Small: boolAt(value, "is_small"),
		Color: stringAt(value, "color"),
		Icon:  stringAt(value, "icon_class"),
		Link:  decodeLink(mapAt(value, "link")),
	}
}

func decodeBadges(value any) []Badge {
	var out []Badge
	for _, body := range itemsAt(value, "badge") {
		out = append(out, decodeBadge(body))
	}
	return out
}

func decodeTags(value any) []Tag {
	var out []Tag
	for _, body := range itemsAt(value, "tag") {
		out = append(out, decodeTag(body))
	}
	return out
}

// decodeTopDetails reads the badges-or-tags stream above a card's
// content. Unknown group kinds are skipped; the authoring schema only
// offers the two.
func decodeTopDetails(value any) []TopDetail {
	var out []TopDetail
	for _, entry := range entriesAt(value) {
		switch DetailKind(stringAt(entry, "type")) {
		case DetailBadges:
			out = append(out, TopDetail{Kind: DetailBadges, Badges: decodeBadges(entry["value"])})
		case DetailTags:
			out = append(out, TopDetail{Kind: DetailTags, Tags: decodeTags(entry["value"])})
		}
	}
	return out
}

// decodeActionGroups reads the links-or-buttons call-to-action stream.
func decodeActionGroups(value any) []ActionGroup {
	var out []ActionGroup
	for _, entry := range entriesAt(value) {
		switch ActionKind(stringAt(entry, "type")) {
		case ActionLinks:
			group := ActionGroup{Kind: ActionLinks}
			for _, body := range itemsAt(entry["value"], "link") {
				group.Links = append(group.Links, decodeLink(body))
			}
			out = append(out, group)
		case ActionButtons:
			group := ActionGroup{Kind: ActionButtons}
			for _, body := range itemsAt(entry["value"], "button") {
				group.Buttons = append(group.Buttons, decodeButton(body))
			}
			out = append(out, group)
		}
	}
	return out
}

func decodePageRef(value any) *PageRef {
	switch v := value.(type) {
	case nil:
		return nil
	case map[string]any:
		if len(v) == 0 {
			return nil
		}
		ref := &PageRef{ID: uuidValue(v["id"]), Path: stringAt(v, "path")}
		if ref.Path == "" {
			ref.Path = stringAt(v, "url")
		}
		return ref
	default:
		// A bare identifier still marks the reference as populated.
		if stringValue(value) == "" {
			return nil
		}
		return &PageRef{ID: uuidValue(value)}
	}
}

func decodeDocumentRef(value any) *DocumentRef {
	switch v := value.(type) {
	case nil:
		return nil
	case map[string]any:
		if len(v) == 0 {
			return nil
		}
		return &DocumentRef{
			ID:    uuidValue(v["id"]),
			URL:   stringAt(v, "url"),
			Title: stringAt(v, "title"),
		}
	default:
		if stringValue(value) == "" {
			return nil
		}
		return &DocumentRef{ID: uuidValue(value)}
	}
}

func decodeImageRef(value any) *ImageRef {
	switch v := value.(type) {
	case nil:
		return nil
	case map[string]any:
		if len(v) == 0 {
			return nil
		}
		ref := &ImageRef{ID: uuidValue(v["id"]), URL: stringAt(v, "url"), Alt: stringAt(v, "alt")}
		if ref.Alt == "" {
			ref.Alt = stringAt(v, "title")
		}
		return ref
	default:
		if stringValue(value) == "" {
			return nil
		}
		return &ImageRef{ID: uuidValue(value)}
	}
}

// Helpers

func stringAt(source map[string]any, key string) string {
	if len(source) == 0 {
		return ""
	}
	return stringValue(source[key])
}

func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

func boolAt(source map[string]any, key string) bool {
	switch v := source[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	default:
		return false
	}
}

func intAt(source map[string]any, key string, fallback int) int {
	value, ok := source[key]
	if !ok || value == nil {
		return fallback
	}
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

func mapAt(source map[string]any, key string) map[string]any {
	if len(source) == 0 {
		return nil
	}
	value, _ := source[key].(map[string]any)
	return value
}

// entriesAt normalizes a stream payload into its entry maps.
func entriesAt(value any) []map[string]any {
	switch v := value.(type) {
	case nil:
		return nil
	case []map[string]any:
		return v
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	case map[string]any:
		return []map[string]any{v}
	default:
		return nil
	}
}

// itemsAt extracts the value maps of entries with the given type,
// tolerating already-flattened lists without type wrappers.
func itemsAt(value any, entryType string) []map[string]any {
	var out []map[string]any
	for _, entry := range entriesAt(value) {
		if _, tagged := entry["type"]; !tagged {
			out = append(out, entry)
			continue
		}
		if stringAt(entry, "type") != entryType {
			continue
		}
		if body := mapAt(entry, "value"); body != nil {
			out = append(out, body)
		}
	}
	return out
}

func uuidValue(value any) uuid.UUID {
	text := strings.TrimSpace(stringValue(value))
	if text == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(text)
	if err != nil {
		return uuid.Nil
	}
	return id
}
