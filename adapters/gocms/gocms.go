// Package gocms converts go-cms block exports into template inputs and typed
// content streams. The host CMS publishes block versions as snapshot documents
// (configuration + per-locale translations); this adapter flattens them into
// the payload shape the render pipeline understands.
package gocms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-blocks/pkg/domain"
	"github.com/goliatone/go-blocks/pkg/render"
)

// TemplateSourceType marks template variants imported from go-cms snapshots.
const TemplateSourceType = "gocms-block"

var (
	// ErrCodeRequired signals the template spec is missing its block code.
	ErrCodeRequired = errors.New("gocms: template code is required")
	// ErrNoTranslations signals the snapshot carries no locale content.
	ErrNoTranslations = errors.New("gocms: snapshot has no translations")
	// ErrLocaleIdentifierMissing signals a translation without a locale id.
	ErrLocaleIdentifierMissing = errors.New("gocms: translation locale identifier missing")
)

// BlockTranslationSnapshot carries one locale's content for a block version.
type BlockTranslationSnapshot struct {
	Locale             string         `json:"locale"`
	Content            map[string]any `json:"content"`
	AttributeOverrides map[string]any `json:"attribute_overrides"`
}

// BlockVersionSnapshot mirrors the export payload go-cms produces when a
// block version is published.
type BlockVersionSnapshot struct {
	Configuration map[string]any             `json:"configuration"`
	Metadata      map[string]any             `json:"metadata"`
	Translations  []BlockTranslationSnapshot `json:"translations"`
}

// WidgetTranslation is the widget-document analog of a block translation.
type WidgetTranslation struct {
	Locale  string         `json:"locale"`
	Content map[string]any `json:"content"`
}

// WidgetDocument mirrors a go-cms widget export.
type WidgetDocument struct {
	Configuration map[string]any      `json:"configuration"`
	Metadata      map[string]any      `json:"metadata"`
	Translations  []WidgetTranslation `json:"translations"`
}

// FieldMapping renames source content keys when an export uses a custom
// layout (widgets often store their stream under "sections").
type FieldMapping struct {
	Body   string
	Blocks string
}

func (f FieldMapping) bodyKey() string {
	if f.Body != "" {
		return f.Body
	}
	return "body"
}

func (f FieldMapping) blocksKey() string {
	if f.Blocks != "" {
		return f.Blocks
	}
	return "blocks"
}

// TemplateSpec describes the template family the imported variants belong to.
// ResolveLocale maps go-cms locale identifiers onto the module's locale codes.
type TemplateSpec struct {
	Code          string
	Description   string
	Format        string
	Schema        domain.TemplateSchema
	Metadata      domain.JSONMap
	Fields        FieldMapping
	ResolveLocale func(raw string) (string, error)
}

// TemplatesFromBlockSnapshot converts every translation in the snapshot into
// a template input ready for the render service.
func TemplatesFromBlockSnapshot(spec TemplateSpec, snapshot BlockVersionSnapshot) ([]render.TemplateInput, error) {
	if strings.TrimSpace(spec.Code) == "" {
		return nil, ErrCodeRequired
	}
	if len(snapshot.Translations) == 0 {
		return nil, ErrNoTranslations
	}

	inputs := make([]render.TemplateInput, 0, len(snapshot.Translations))
	for _, tr := range snapshot.Translations {
		locale, err := resolveLocale(spec, tr.Locale)
		if err != nil {
			return nil, err
		}
		payload := buildPayload(tr.Content, tr.AttributeOverrides, spec.Fields)
		attachEnvelope(payload, snapshot.Configuration, snapshot.Metadata)
		if len(tr.AttributeOverrides) > 0 {
			payload["attribute_overrides"] = cloneMap(tr.AttributeOverrides)
		}
		inputs = append(inputs, templateInput(spec, locale, tr.Locale, payload))
	}
	return inputs, nil
}

// TemplatesFromWidgetDocument converts widget translations the same way,
// keeping a clone of the raw content so hosts can inspect custom layouts.
func TemplatesFromWidgetDocument(spec TemplateSpec, doc WidgetDocument) ([]render.TemplateInput, error) {
	if strings.TrimSpace(spec.Code) == "" {
		return nil, ErrCodeRequired
	}
	if len(doc.Translations) == 0 {
		return nil, ErrNoTranslations
	}

	inputs := make([]render.TemplateInput, 0, len(doc.Translations))
	for _, tr := range doc.Translations {
		locale, err := resolveLocale(spec, tr.Locale)
		if err != nil {
			return nil, err
		}
		payload := buildPayload(tr.Content, nil, spec.Fields)
		attachEnvelope(payload, doc.Configuration, doc.Metadata)
		if len(tr.Content) > 0 {
			payload["content"] = cloneMap(tr.Content)
		}
		inputs = append(inputs, templateInput(spec, locale, tr.Locale, payload))
	}
	return inputs, nil
}

func resolveLocale(spec TemplateSpec, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrLocaleIdentifierMissing
	}
	if spec.ResolveLocale == nil {
		return raw, nil
	}
	locale, err := spec.ResolveLocale(raw)
	if err != nil {
		return "", fmt.Errorf("gocms: resolve locale %q: %w", raw, err)
	}
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return "", ErrLocaleIdentifierMissing
	}
	return locale, nil
}

func templateInput(spec TemplateSpec, locale, rawLocale string, payload domain.JSONMap) render.TemplateInput {
	return render.TemplateInput{
		Code:        spec.Code,
		Locale:      locale,
		Description: spec.Description,
		Format:      spec.Format,
		Schema:      spec.Schema,
		Metadata:    cloneJSONMap(spec.Metadata),
		Source: domain.TemplateSource{
			Type:      TemplateSourceType,
			Reference: rawLocale,
			Payload:   payload,
		},
	}
}

func buildPayload(content, overrides map[string]any, fields FieldMapping) domain.JSONMap {
	payload := make(domain.JSONMap)

	if body := stringField(overrides, "body"); body != "" {
		payload["body"] = body
	} else if body := stringField(content, fields.bodyKey()); body != "" {
		payload["body"] = body
	}

	if blocks := sliceField(content, fields.blocksKey()); len(blocks) > 0 {
		payload["blocks"] = blocks
	}
	return payload
}

func attachEnvelope(payload domain.JSONMap, configuration, metadata map[string]any) {
	if len(configuration) > 0 {
		payload["configuration"] = cloneMap(configuration)
	}
	if len(metadata) > 0 {
		payload["metadata"] = cloneMap(metadata)
	}
}

func stringField(source map[string]any, key string) string {
	if source == nil {
		return ""
	}
	value, _ := source[key].(string)
	return value
}

func sliceField(source map[string]any, key string) []any {
	if source == nil {
		return nil
	}
	switch v := source[key].(type) {
	case []any:
		return append([]any(nil), v...)
	case []map[string]any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneMap(item)
		}
		return out
	default:
		return nil
	}
}

func cloneMap(src map[string]any) map[string]any {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func cloneJSONMap(src domain.JSONMap) domain.JSONMap {
	if len(src) == 0 {
		return nil
	}
	dst := make(domain.JSONMap, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
