package schema

import (
	"strings"
	"testing"

	"github.com/goliatone/go-blocks/pkg/content"
)

func TestValidateRequiredFields(t *testing.T) {
	card := CardSpec(content.OrientationHorizontal)

	problems := Validate(card, map[string]any{"url": "https://example.com"})
	assertProblem(t, problems, "title", "is required")

	problems = Validate(card, map[string]any{"title": "Launch"})
	if len(problems) != 0 {
		t.Fatalf("expected valid payload, got %v", problems)
	}
}

func TestValidateChoiceMembership(t *testing.T) {
	alert := AlertSpec()

	problems := Validate(alert, map[string]any{"level": "fatal"})
	assertProblem(t, problems, "level", "not a valid choice")

	problems = Validate(alert, map[string]any{"level": "warning"})
	if len(problems) != 0 {
		t.Fatalf("expected valid level, got %v", problems)
	}
}

func TestValidateIntBounds(t *testing.T) {
	separator := SeparatorSpec()

	problems := Validate(separator, map[string]any{"top_margin": float64(20)})
	assertProblem(t, problems, "top_margin", "at most 15")

	problems = Validate(separator, map[string]any{"top_margin": float64(-1)})
	assertProblem(t, problems, "top_margin", "at least 0")

	problems = Validate(separator, map[string]any{"top_margin": "not a number"})
	assertProblem(t, problems, "top_margin", "must be a number")
}

func TestValidateRegexPattern(t *testing.T) {
	multi := MultiColumnsSpec()

	problems := Validate(multi, map[string]any{"bg_color": "ff00ff"})
	assertProblem(t, problems, "bg_color", "must match")

	problems = Validate(multi, map[string]any{"bg_color": "#f5f5f5"})
	if len(problems) != 0 {
		t.Fatalf("expected valid hex color, got %v", problems)
	}
}

func TestValidateStreamCardinality(t *testing.T) {
	card := CardSpec(content.OrientationHorizontal)
	payload := map[string]any{
		"title": "Launch",
		"top_detail_badges_tags": []any{
			map[string]any{"type": "badges", "value": []any{}},
			map[string]any{"type": "tags", "value": []any{}},
		},
	}

	problems := Validate(card, payload)
	assertProblem(t, problems, "top_detail_badges_tags", "at most 1")
}

func TestValidateNestedStructPath(t *testing.T) {
	tag := TagSpec()
	payload := map[string]any{
		"label": "News",
		"link":  map[string]any{"external_url": "https://example.com"},
	}
	if problems := Validate(tag, payload); len(problems) != 0 {
		t.Fatalf("expected valid tag, got %v", problems)
	}

	payload = map[string]any{"is_small": true}
	problems := Validate(tag, payload)
	assertProblem(t, problems, "label", "is required")
}

func TestValidateStreamPalette(t *testing.T) {
	palette := DefaultCatalog().Build(BuildOptions{})

	entries := []map[string]any{
		{"type": "card", "value": map[string]any{"title": "Launch"}},
		{"type": "carousel", "value": map[string]any{}},
	}
	problems := ValidateStream(palette, entries)
	assertProblem(t, problems, "1", `unknown block type "carousel"`)

	entries = []map[string]any{
		{"type": "alert", "value": map[string]any{"level": "info"}},
	}
	if problems := ValidateStream(palette, entries); len(problems) != 0 {
		t.Fatalf("expected valid stream, got %v", problems)
	}
}

// Helpers

func assertProblem(t *testing.T, problems []Problem, path, fragment string) {
	t.Helper()
	for _, problem := range problems {
		if strings.HasSuffix(problem.Path, path) && strings.Contains(problem.Message, fragment) {
			return
		}
	}
	t.Fatalf("expected problem at %s containing %q, got %v", path, fragment, problems)
}
