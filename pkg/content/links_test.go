package content

import "testing"

func TestLinkURLPrecedence(t *testing.T) {
	link := Link{
		ExternalURL: "https://example.com/out",
		Page:        &PageRef{Path: "/about"},
	}
	if got := link.URL(); got != "https://example.com/out" {
		t.Fatalf("expected external url to win, got %q", got)
	}

	link.ExternalURL = ""
	if got := link.URL(); got != "/about" {
		t.Fatalf("expected page path, got %q", got)
	}

	link.Page = nil
	if got := link.URL(); got != "" {
		t.Fatalf("expected empty url, got %q", got)
	}
}

func TestLinkHasTarget(t *testing.T) {
	if (Link{}).HasTarget() {
		t.Fatalf("empty link should have no target")
	}
	if !(Link{ExternalURL: "https://example.com"}).HasTarget() {
		t.Fatalf("external url should count as target")
	}
	// An unresolved page reference still counts: the editor picked a page.
	if !(Link{Page: &PageRef{}}).HasTarget() {
		t.Fatalf("page reference should count as target")
	}
	if (Link{Text: "label only"}).HasTarget() {
		t.Fatalf("label alone should not count as target")
	}
}
