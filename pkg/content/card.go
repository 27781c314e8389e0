package content

import "github.com/goliatone/go-blocks/pkg/dsfr"

// Orientation selects the card layout. The original variants differed
// only in ratio choices and template, so one struct plus this field
// replaces them.
type Orientation string

const (
	OrientationVertical   Orientation = "vertical"
	OrientationHorizontal Orientation = "horizontal"
)

// Card is a composite block combining an optional image, text, a
// whole-card link target, badge/tag details, and call-to-action groups.
type Card struct {
	Title       string       `json:"title,omitempty"`
	HeadingTag  string       `json:"heading_tag,omitempty"`
	Description string       `json:"description,omitempty"` // may contain HTML
	Image       *ImageRef    `json:"image,omitempty"`
	ImageRatio  string       `json:"image_ratio,omitempty"`
	ImageBadges []Badge      `json:"image_badges,omitempty"`
	URL         string       `json:"url,omitempty"`
	Document    *DocumentRef `json:"document,omitempty"`

	TopDetailText string `json:"top_detail_text,omitempty"`
	TopDetailIcon string `json:"top_detail_icon,omitempty"`
	// TopDetail holds at most one badges-or-tags group; the max-one
	// constraint is enforced by the authoring schema, not here.
	TopDetail []TopDetail `json:"top_detail,omitempty"`

	BottomDetailText string `json:"bottom_detail_text,omitempty"`
	BottomDetailIcon string `json:"bottom_detail_icon,omitempty"`
	// CallToAction holds at most one links-or-buttons group.
	CallToAction []ActionGroup `json:"call_to_action,omitempty"`

	GreyBackground bool `json:"grey_background,omitempty"`
	NoBackground   bool `json:"no_background,omitempty"`
	NoBorder       bool `json:"no_border,omitempty"`
	Shadow         bool `json:"shadow,omitempty"`

	Orientation Orientation `json:"orientation,omitempty"`
}

// EnlargeLink decides whether the whole card surface becomes one
// clickable region. That requires a link target on the card itself and
// no competing clickable element inside it: an explicit call-to-action
// or a linked tag in the top detail disables it.
func (c Card) EnlargeLink() bool {
	if c.URL == "" && c.Document == nil {
		return false
	}
	if len(c.CallToAction) > 0 {
		return false
	}
	// Only the first group matters; the schema caps the stream at one.
	if len(c.TopDetail) > 0 && c.TopDetail[0].Kind == DetailTags {
		for _, tag := range c.TopDetail[0].Tags {
			if tag.Link.HasTarget() {
				return false
			}
		}
	}
	return true
}

// ImageClasses returns the class list for the card image: the base
// responsive class, plus the ratio class when one is set.
func (c Card) ImageClasses() string {
	if c.ImageRatio != "" {
		return dsfr.ResponsiveImageClass + " " + c.ImageRatio
	}
	return dsfr.ResponsiveImageClass
}

// TargetURL resolves the whole-card destination: the URL field wins,
// then the document.
func (c Card) TargetURL() string {
	if c.URL != "" {
		return c.URL
	}
	if c.Document != nil {
		return c.Document.URL
	}
	return ""
}

// TemplateContext flattens the card and its resolved presentation facts
// into the payload block templates interpolate. Templates never decide;
// they read enlarge_link and image_classes as precomputed values.
func (c Card) TemplateContext() map[string]any {
	heading := headingOrDefault(c.HeadingTag)
	orientation := c.Orientation
	if orientation == "" {
		orientation = OrientationVertical
	}

	ctx := map[string]any{
		"title":              c.Title,
		"heading_tag":        heading,
		"description":        c.Description,
		"image_classes":      c.ImageClasses(),
		"enlarge_link":       c.EnlargeLink(),
		"url":                c.URL,
		"target_url":         c.TargetURL(),
		"top_detail_text":    c.TopDetailText,
		"top_detail_icon":    c.TopDetailIcon,
		"bottom_detail_text": c.BottomDetailText,
		"bottom_detail_icon": c.BottomDetailIcon,
		"grey_background":    c.GreyBackground,
		"no_background":      c.NoBackground,
		"no_border":          c.NoBorder,
		"shadow":             c.Shadow,
		"orientation":        string(orientation),
	}
	if c.Image != nil {
		ctx["image_url"] = c.Image.URL
		ctx["image_alt"] = c.Image.Alt
	}
	if c.Document != nil {
		ctx["document_url"] = c.Document.URL
		ctx["document_title"] = c.Document.Title
	}
	if len(c.ImageBadges) > 0 {
		ctx["image_badges"] = badgeContexts(c.ImageBadges)
	}
	if len(c.TopDetail) > 0 {
		ctx["top_detail"] = topDetailContext(c.TopDetail[0])
	}
	if len(c.CallToAction) > 0 {
		ctx["call_to_action"] = actionGroupContext(c.CallToAction[0])
	}
	return ctx
}

func badgeContexts(badges []Badge) []map[string]any {
	out := make([]map[string]any, len(badges))
	for i, badge := range badges {
		out[i] = map[string]any{
			"text":      badge.Text,
			"color":     badge.Color,
			"hide_icon": badge.HideIcon,
		}
	}
	return out
}

func tagContexts(tags []Tag) []map[string]any {
	out := make([]map[string]any, len(tags))
	for i, tag := range tags {
		out[i] = map[string]any{
			"label": tag.Label,
			"small": tag.Small,
			"color": tag.Color,
			"icon":  tag.Icon,
			"url":   tag.Link.URL(),
		}
	}
	return out
}

func linkContexts(links []Link) []map[string]any {
	out := make([]map[string]any, len(links))
	for i, link := range links {
		out[i] = map[string]any{
			"text": link.Text,
			"url":  link.URL(),
		}
	}
	return out
}

func buttonContexts(buttons []Button) []map[string]any {
	out := make([]map[string]any, len(buttons))
	for i, button := range buttons {
		out[i] = map[string]any{
			"text": button.Text,
			"url":  button.URL(),
			"kind": button.Kind,
		}
	}
	return out
}

func topDetailContext(detail TopDetail) map[string]any {
	ctx := map[string]any{"kind": string(detail.Kind)}
	switch detail.Kind {
	case DetailBadges:
		ctx["badges"] = badgeContexts(detail.Badges)
	case DetailTags:
		ctx["tags"] = tagContexts(detail.Tags)
	}
	return ctx
}

func actionGroupContext(group ActionGroup) map[string]any {
	ctx := map[string]any{"kind": string(group.Kind)}
	switch group.Kind {
	case ActionLinks:
		ctx["links"] = linkContexts(group.Links)
	case ActionButtons:
		ctx["buttons"] = buttonContexts(group.Buttons)
	}
	return ctx
}
