// Package content defines the typed records block payloads decode into,
// plus the presentation resolvers derived from them. Records are built
// once at the boundary by the stream decoder; every field is optional
// unless noted and absent values are normal inputs, never errors.
package content

import "github.com/google/uuid"

// PageRef points at an internal page by ID with its resolved path.
type PageRef struct {
	ID   uuid.UUID `json:"id,omitempty"`
	Path string    `json:"path,omitempty"`
}

// DocumentRef points at a hosted document.
type DocumentRef struct {
	ID    uuid.UUID `json:"id,omitempty"`
	URL   string    `json:"url,omitempty"`
	Title string    `json:"title,omitempty"`
}

// ImageRef is a chooser-owned image handle. Storage and renditions stay
// with the host; blocks only carry the reference.
type ImageRef struct {
	ID  uuid.UUID `json:"id,omitempty"`
	URL string    `json:"url,omitempty"`
	Alt string    `json:"alt,omitempty"`
}

// Link is a page-or-external target with an optional label. At most one
// side is populated by the editor; when both are, the external URL wins.
type Link struct {
	Text        string   `json:"text,omitempty"`
	Page        *PageRef `json:"page,omitempty"`
	ExternalURL string   `json:"external_url,omitempty"`
}

// URL resolves the navigable target: the external URL when set,
// otherwise the page path, otherwise empty.
func (l Link) URL() string {
	if l.ExternalURL != "" {
		return l.ExternalURL
	}
	if l.Page != nil {
		return l.Page.Path
	}
	return ""
}

// HasTarget reports whether either side of the link is populated. A page
// reference counts even before its path is resolved.
func (l Link) HasTarget() bool {
	return l.ExternalURL != "" || l.Page != nil
}

// Button is a link rendered with a button class.
type Button struct {
	Link
	Kind string `json:"kind,omitempty"`
}

// Badge is a non-clickable label with an accent color.
type Badge struct {
	Text     string `json:"text,omitempty"`
	Color    string `json:"color,omitempty"`
	HideIcon bool   `json:"hide_icon,omitempty"`
}

// Tag is a label that may itself link somewhere.
type Tag struct {
	Label string `json:"label,omitempty"`
	Small bool   `json:"small,omitempty"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Link  Link   `json:"link,omitempty"`
}

// DetailKind tags a top-detail group as badges or tags.
type DetailKind string

const (
	DetailBadges DetailKind = "badges"
	DetailTags   DetailKind = "tags"
)

// TopDetail is one badge-or-tag group shown above a card's content. The
// editor may author at most one; the constraint is enforced upstream.
type TopDetail struct {
	Kind   DetailKind `json:"kind"`
	Badges []Badge    `json:"badges,omitempty"`
	Tags   []Tag      `json:"tags,omitempty"`
}

// ActionKind tags a call-to-action group as links or buttons.
type ActionKind string

const (
	ActionLinks   ActionKind = "links"
	ActionButtons ActionKind = "buttons"
)

// ActionGroup is an explicit call-to-action embedded in a card, distinct
// from the card's whole-surface link.
type ActionGroup struct {
	Kind    ActionKind `json:"kind"`
	Links   []Link     `json:"links,omitempty"`
	Buttons []Button   `json:"buttons,omitempty"`
}
