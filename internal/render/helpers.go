package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-blocks/pkg/domain"
)

// assetBaseURLKey is the payload key consulted when asset_url receives a
// relative path and no explicit base.
const assetBaseURLKey = "asset_base_url"

func defaultHelperFuncs() map[string]any {
	return map[string]any{
		"field":     fieldValue,
		"asset_url": assetURL,
	}
}

// fieldValue resolves a dotted path against the render payload so expert
// templates can address nested stream data, e.g. {{ field(block, "image.url") }}.
func fieldValue(args ...any) string {
	var data map[string]any
	var key string
	for _, arg := range args {
		switch v := arg.(type) {
		case map[string]any:
			data = v
		case domain.JSONMap:
			data = map[string]any(v)
		case string:
			if key == "" {
				key = v
			}
		}
	}
	if data == nil || key == "" {
		return ""
	}
	current := any(data)
	for _, part := range strings.Split(key, ".") {
		typed, ok := current.(map[string]any)
		if !ok {
			return ""
		}
		current, ok = typed[part]
		if !ok {
			return ""
		}
	}
	if current == nil {
		return ""
	}
	return stringFromTemplateValue(current)
}

// assetURL normalizes media references. Absolute URLs pass through untouched;
// relative paths are rooted, or joined onto a base taken from a second string
// argument or the payload's asset_base_url entry.
func assetURL(args ...any) string {
	var data map[string]any
	paths := make([]string, 0, 2)
	for _, arg := range args {
		switch v := arg.(type) {
		case map[string]any:
			data = v
		case domain.JSONMap:
			data = map[string]any(v)
		case string:
			paths = append(paths, v)
		default:
			paths = append(paths, stringFromTemplateValue(v))
		}
	}
	if len(paths) == 0 {
		return ""
	}
	raw := strings.TrimSpace(paths[0])
	if raw == "" {
		return ""
	}
	if isAbsoluteRef(raw) {
		return raw
	}
	base := ""
	if len(paths) > 1 {
		base = strings.TrimSpace(paths[1])
	}
	if base == "" && data != nil {
		base = stringFromTemplateValue(data[assetBaseURLKey])
	}
	if base == "" {
		if strings.HasPrefix(raw, "/") {
			return raw
		}
		return "/" + raw
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(raw, "/")
}

func isAbsoluteRef(raw string) bool {
	lower := strings.ToLower(raw)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "data:") ||
		strings.HasPrefix(raw, "//")
}

func stringFromTemplateValue(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
