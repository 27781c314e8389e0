package render

import "testing"

func TestFieldValueResolvesDottedPaths(t *testing.T) {
	data := map[string]any{
		"image": map[string]any{
			"url": "/media/cover.png",
			"alt": "Cover",
		},
		"title": "Hello",
	}

	if got := fieldValue(data, "image.url"); got != "/media/cover.png" {
		t.Fatalf("expected nested value, got %v", got)
	}
	if got := fieldValue(data, "title"); got != "Hello" {
		t.Fatalf("expected top level value, got %v", got)
	}
	if got := fieldValue(data, "image.width"); got != "" {
		t.Fatalf("expected empty for missing leaf, got %v", got)
	}
	if got := fieldValue("title"); got != "" {
		t.Fatalf("expected empty without data map, got %v", got)
	}
}

func TestAssetURLNormalizesReferences(t *testing.T) {
	cases := []struct {
		name string
		args []any
		want string
	}{
		{"absolute http", []any{"https://cdn.example.com/a.png"}, "https://cdn.example.com/a.png"},
		{"protocol relative", []any{"//cdn.example.com/a.png"}, "//cdn.example.com/a.png"},
		{"data uri", []any{"data:image/png;base64,xyz"}, "data:image/png;base64,xyz"},
		{"rooted path", []any{"/media/a.png"}, "/media/a.png"},
		{"relative path", []any{"media/a.png"}, "/media/a.png"},
		{"explicit base", []any{"media/a.png", "https://cdn.example.com/"}, "https://cdn.example.com/media/a.png"},
		{"payload base", []any{"media/a.png", map[string]any{"asset_base_url": "https://assets.example.com"}}, "https://assets.example.com/media/a.png"},
		{"empty", []any{""}, ""},
	}

	for _, tc := range cases {
		if got := assetURL(tc.args...); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
