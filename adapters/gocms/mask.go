package gocms

import (
	"strings"

	masker "github.com/goliatone/go-masker"
)

// Snapshot configurations routinely embed chooser-storage credentials; these
// keys are masked before the import path logs them.
var maskedConfigFields = []string{
	"token", "access_token", "refresh_token",
	"api_key", "apikey", "apiKey",
	"client_secret", "secret", "signing_key",
	"webhook_url", "storage_key",
}

func init() {
	for _, field := range maskedConfigFields {
		masker.Default.RegisterMaskField(field, "preserveEnds(2,2)")
	}
}

// MaskConfiguration returns a copy of the snapshot configuration safe for
// logging. String values under secret-ish keys are masked, nested maps are
// walked recursively.
func MaskConfiguration(cfg map[string]any) map[string]any {
	if len(cfg) == 0 {
		return nil
	}
	masked := make(map[string]any, len(cfg))
	for key, value := range cfg {
		switch v := value.(type) {
		case map[string]any:
			masked[key] = MaskConfiguration(v)
		case string:
			if isSecretField(key) {
				masked[key] = maskString(v)
			} else {
				masked[key] = v
			}
		default:
			masked[key] = value
		}
	}
	return masked
}

func isSecretField(key string) bool {
	key = strings.ToLower(key)
	for _, field := range maskedConfigFields {
		if key == strings.ToLower(field) {
			return true
		}
	}
	return false
}

func maskString(value string) string {
	if value == "" {
		return ""
	}
	if masked, err := masker.Default.String("preserveEnds(2,2)", value); err == nil {
		return masked
	}
	// Fallback masking if no rule is registered.
	runes := []rune(value)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:2]) + strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-2:])
}
