package gocms

import (
	"fmt"

	"github.com/goliatone/go-blocks/pkg/content"
)

// StreamFromTranslation decodes the stream entries stored in a translation's
// content into typed block records. fields.Blocks overrides the content key
// the entries live under.
func StreamFromTranslation(tr BlockTranslationSnapshot, fields FieldMapping) (content.Stream, error) {
	if len(tr.Content) == 0 {
		return nil, nil
	}
	entries, err := entryMaps(tr.Content[fields.blocksKey()])
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return content.DecodeStream(entries)
}

func entryMaps(value any) ([]map[string]any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []map[string]any:
		return v, nil
	case []any:
		out := make([]map[string]any, 0, len(v))
		for i, item := range v {
			entry, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("gocms: stream entry %d is %T, expected object", i, item)
			}
			out = append(out, entry)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("gocms: stream payload is %T, expected list", value)
	}
}
