package content

import (
	"errors"
	"fmt"
)

// Block type identifiers as they appear in authored stream payloads.
// Nested streams reuse a few older spellings; the decoder accepts both.
const (
	TypeParagraph           = "paragraph"
	TypeBadgeList           = "badges_list"
	TypeTagList             = "tags_list"
	TypeImage               = "image"
	TypeImageAndText        = "imageandtext"
	TypeAlert               = "alert"
	TypeCallout             = "callout"
	TypeQuote               = "quote"
	TypeVideo               = "video"
	TypeCard                = "card"
	TypeAccordions          = "accordions"
	TypeStepper             = "stepper"
	TypeMarkdown            = "markdown"
	TypeSeparator           = "separator"
	TypeIframe              = "iframe"
	TypeTextAndCTA          = "text_cta"
	TypeRawHTML             = "html"
	TypeMultiColumns        = "multicolumns"
	TypeFullWidthBackground = "fullwidthbackground"
)

var (
	// ErrUnknownBlockType reports a stream entry whose type has no
	// registered record.
	ErrUnknownBlockType = errors.New("content: unknown block type")
	// ErrMissingBlockType reports a stream entry without a type key.
	ErrMissingBlockType = errors.New("content: stream entry missing type")
)

// Entry is one decoded stream member: the payload's type and id plus
// the typed record built from its value.
type Entry struct {
	Type  string `json:"type"`
	ID    string `json:"id,omitempty"`
	Value any    `json:"value"`
}

// Context returns the entry's render payload, or nil when the record
// does not provide one.
func (e Entry) Context() map[string]any {
	if provider, ok := e.Value.(ContextProvider); ok {
		return provider.TemplateContext()
	}
	return nil
}

// Stream is an ordered sequence of decoded block entries.
type Stream []Entry

// Contexts flattens every entry into type/id/context triples, the shape
// structure templates iterate.
func (s Stream) Contexts() []map[string]any {
	out := make([]map[string]any, len(s))
	for i, entry := range s {
		out[i] = map[string]any{
			"type":    entry.Type,
			"id":      entry.ID,
			"context": entry.Context(),
		}
	}
	return out
}

// DecodeStream builds typed records from a page-level stream payload,
// one entry per authored block. Decoding is shape-only: choice and
// cardinality constraints stay with the authoring schema. Cards at the
// top level are horizontal, matching the page builder palette.
func DecodeStream(raw []map[string]any) (Stream, error) {
	return decodeStream(raw, OrientationHorizontal)
}

// DecodeEntry builds the typed record for a single stream entry.
func DecodeEntry(raw map[string]any) (Entry, error) {
	return decodeEntry(raw, OrientationHorizontal)
}

func decodeStream(raw []map[string]any, orientation Orientation) (Stream, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	stream := make(Stream, 0, len(raw))
	for i, item := range raw {
		entry, err := decodeEntry(item, orientation)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		stream = append(stream, entry)
	}
	return stream, nil
}

func decodeEntry(raw map[string]any, orientation Orientation) (Entry, error) {
	blockType := stringAt(raw, "type")
	if blockType == "" {
		return Entry{}, ErrMissingBlockType
	}
	entry := Entry{Type: blockType, ID: stringAt(raw, "id")}

	value := raw["value"]
	body, _ := value.(map[string]any)

	switch blockType {
	case TypeParagraph, "text":
		entry.Value = Paragraph{HTML: stringValue(value)}
	case TypeMarkdown:
		entry.Value = Markdown{Source: stringValue(value)}
	case TypeRawHTML:
		entry.Value = RawHTML{HTML: stringValue(value)}
	case TypeBadgeList:
		entry.Value = BadgeList{Badges: decodeBadges(value)}
	case TypeTagList:
		entry.Value = TagList{Tags: decodeTags(value)}
	case TypeImage:
		entry.Value = decodeImage(body)
	case TypeImageAndText, "image_and_text":
		entry.Value = decodeImageAndText(body)
	case TypeAlert:
		entry.Value = decodeAlert(body)
	case TypeCallout:
		entry.Value = decodeCallout(body)
	case TypeQuote:
		entry.Value = decodeQuote(body)
	case TypeVideo:
		entry.Value = decodeVideo(body)
	case TypeIframe:
		entry.Value = decodeIframe(body)
	case TypeTextAndCTA:
		entry.Value = decodeTextAndCTA(body)
	case TypeAccordions:
		entry.Value = decodeAccordions(value)
	case TypeStepper:
		entry.Value = decodeStepper(body)
	case TypeSeparator:
		entry.Value = decodeSeparator(body)
	case TypeCard:
		entry.Value = DecodeCard(body, orientation)
	case TypeMultiColumns:
		block, err := decodeMultiColumns(body)
		if err != nil {
			return Entry{}, fmt.Errorf("%s: %w", blockType, err)
		}
		entry.Value = block
	case TypeFullWidthBackground:
		block, err := decodeFullWidthBackground(body)
		if err != nil {
			return Entry{}, fmt.Errorf("%s: %w", blockType, err)
		}
		entry.Value = block
	default:
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownBlockType, blockType)
	}
	return entry, nil
}
