package content

import "github.com/goliatone/go-blocks/pkg/dsfr"

// ContextProvider is implemented by every block record. TemplateContext
// flattens the record into the payload its template interpolates.
type ContextProvider interface {
	TemplateContext() map[string]any
}

// Paragraph is editor-authored rich text, already sanitized upstream.
type Paragraph struct {
	HTML string `json:"html,omitempty"`
}

func (p Paragraph) TemplateContext() map[string]any {
	return map[string]any{"html": p.HTML}
}

// Markdown carries raw markdown source. The host owns conversion.
type Markdown struct {
	Source string `json:"source,omitempty"`
}

func (m Markdown) TemplateContext() map[string]any {
	return map[string]any{"source": m.Source}
}

// RawHTML is unescaped markup. Catalogs only offer it when the host
// explicitly allows it.
type RawHTML struct {
	HTML string `json:"html,omitempty"`
}

func (r RawHTML) TemplateContext() map[string]any {
	return map[string]any{"html": r.HTML}
}

// BadgeList is a standalone list of badges.
type BadgeList struct {
	Badges []Badge `json:"badges,omitempty"`
}

func (b BadgeList) TemplateContext() map[string]any {
	return map[string]any{"badges": badgeContexts(b.Badges)}
}

// TagList is a standalone list of tags.
type TagList struct {
	Tags []Tag `json:"tags,omitempty"`
}

func (t TagList) TemplateContext() map[string]any {
	return map[string]any{"tags": tagContexts(t.Tags)}
}

// Accordion is one expandable section.
type Accordion struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"` // rich text
}

// Accordions groups sections under an optional shared title.
type Accordions struct {
	Title string      `json:"title,omitempty"`
	Items []Accordion `json:"items,omitempty"`
}

func (a Accordions) TemplateContext() map[string]any {
	items := make([]map[string]any, len(a.Items))
	for i, item := range a.Items {
		items[i] = map[string]any{"title": item.Title, "content": item.Content}
	}
	return map[string]any{"title": a.Title, "items": items}
}

// Alert is a severity-colored message box.
type Alert struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Level       string `json:"level,omitempty"`
	HeadingTag  string `json:"heading_tag,omitempty"`
}

func (a Alert) TemplateContext() map[string]any {
	return map[string]any{
		"title":       a.Title,
		"description": a.Description,
		"level":       a.Level,
		"heading_tag": headingOrDefault(a.HeadingTag),
	}
}

// Callout is an emphasized aside.
type Callout struct {
	Title      string `json:"title,omitempty"`
	Text       string `json:"text,omitempty"`
	HeadingTag string `json:"heading_tag,omitempty"`
}

func (c Callout) TemplateContext() map[string]any {
	return map[string]any{
		"title":       c.Title,
		"text":        c.Text,
		"heading_tag": headingOrDefault(c.HeadingTag),
	}
}

// Iframe embeds external content. The title is mandatory upstream for
// accessibility.
type Iframe struct {
	Title  string `json:"title,omitempty"`
	URL    string `json:"url,omitempty"`
	Height int    `json:"height,omitempty"`
}

func (i Iframe) TemplateContext() map[string]any {
	return map[string]any{"title": i.Title, "url": i.URL, "height": i.Height}
}

// ImageAndText pairs an image column with rich text. The LinkLabel,
// Page, and LinkURL fields are obsolete spellings of Link kept so
// previously authored content still renders.
type ImageAndText struct {
	Image *ImageRef `json:"image,omitempty"`
	Side  string    `json:"side,omitempty"`  // left or right
	Ratio string    `json:"ratio,omitempty"` // columns out of 12: 3, 5, 6
	Text  string    `json:"text,omitempty"`
	Link  Link      `json:"link,omitempty"`

	LinkLabel string   `json:"link_label,omitempty"`
	Page      *PageRef `json:"page,omitempty"`
	LinkURL   string   `json:"link_url,omitempty"`
}

// ResolvedLink folds the obsolete fields into the Link when the new
// field is empty.
func (b ImageAndText) ResolvedLink() Link {
	if b.Link.HasTarget() || b.Link.Text != "" {
		return b.Link
	}
	return Link{Text: b.LinkLabel, Page: b.Page, ExternalURL: b.LinkURL}
}

func (b ImageAndText) TemplateContext() map[string]any {
	link := b.ResolvedLink()
	ctx := map[string]any{
		"side":      b.Side,
		"ratio":     b.Ratio,
		"text":      b.Text,
		"link_text": link.Text,
		"link_url":  link.URL(),
	}
	if b.Image != nil {
		ctx["image_url"] = b.Image.URL
		ctx["image_alt"] = b.Image.Alt
	}
	return ctx
}

// Image is a captioned standalone image.
type Image struct {
	Title      string    `json:"title,omitempty"`
	HeadingTag string    `json:"heading_tag,omitempty"`
	Image      *ImageRef `json:"image,omitempty"`
	Alt        string    `json:"alt,omitempty"`
	Caption    string    `json:"caption,omitempty"`
	URL        string    `json:"url,omitempty"`
}

func (b Image) TemplateContext() map[string]any {
	ctx := map[string]any{
		"title":       b.Title,
		"heading_tag": headingOrDefault(b.HeadingTag),
		"alt":         b.Alt,
		"caption":     b.Caption,
		"url":         b.URL,
	}
	if b.Image != nil {
		ctx["image_url"] = b.Image.URL
		if b.Alt == "" {
			ctx["alt"] = b.Image.Alt
		}
	}
	return ctx
}

// Quote cites an author, optionally with a portrait and accent color.
type Quote struct {
	Image       *ImageRef `json:"image,omitempty"`
	Quote       string    `json:"quote,omitempty"`
	AuthorName  string    `json:"author_name,omitempty"`
	AuthorTitle string    `json:"author_title,omitempty"`
	Color       string    `json:"color,omitempty"`
}

func (q Quote) TemplateContext() map[string]any {
	ctx := map[string]any{
		"quote":        q.Quote,
		"author_name":  q.AuthorName,
		"author_title": q.AuthorTitle,
		"color":        q.Color,
	}
	if q.Image != nil {
		ctx["image_url"] = q.Image.URL
	}
	return ctx
}

// Separator is a horizontal rule with margins in spacing units.
type Separator struct {
	TopMargin    int `json:"top_margin"`
	BottomMargin int `json:"bottom_margin"`
}

func (s Separator) TemplateContext() map[string]any {
	return map[string]any{"top_margin": s.TopMargin, "bottom_margin": s.BottomMargin}
}

// Step is one entry in a stepper.
type Step struct {
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Stepper renders progress through numbered steps.
type Stepper struct {
	Title   string `json:"title,omitempty"`
	Total   int    `json:"total,omitempty"`
	Current int    `json:"current,omitempty"`
	Steps   []Step `json:"steps,omitempty"`
}

func (s Stepper) TemplateContext() map[string]any {
	steps := make([]map[string]any, len(s.Steps))
	for i, step := range s.Steps {
		steps[i] = map[string]any{"title": step.Title, "detail": step.Detail}
	}
	return map[string]any{
		"title":   s.Title,
		"total":   s.Total,
		"current": s.Current,
		"steps":   steps,
	}
}

// TextAndCTA is rich text followed by a single button-styled link.
type TextAndCTA struct {
	Text     string `json:"text,omitempty"`
	CTALabel string `json:"cta_label,omitempty"`
	CTAURL   string `json:"cta_url,omitempty"`
}

func (t TextAndCTA) TemplateContext() map[string]any {
	return map[string]any{"text": t.Text, "cta_label": t.CTALabel, "cta_url": t.CTAURL}
}

// Video embeds a player URL in embed format.
type Video struct {
	Title   string `json:"title,omitempty"`
	Caption string `json:"caption,omitempty"`
	URL     string `json:"url,omitempty"`
}

func (v Video) TemplateContext() map[string]any {
	return map[string]any{"title": v.Title, "caption": v.Caption, "url": v.URL}
}

// MultiColumns lays child blocks out in columns under an optional
// title, over an optional background. BgColorHex is the obsolete
// free-form predecessor of BgColorClass.
type MultiColumns struct {
	BgImage      *ImageRef `json:"bg_image,omitempty"`
	BgColorClass string    `json:"bg_color_class,omitempty"`
	BgColorHex   string    `json:"bg_color_hex,omitempty"`
	Title        string    `json:"title,omitempty"`
	HeadingTag   string    `json:"heading_tag,omitempty"`
	Columns      Stream    `json:"columns,omitempty"`
}

func (m MultiColumns) TemplateContext() map[string]any {
	ctx := map[string]any{
		"bg_color_class": m.BgColorClass,
		"bg_color_hex":   m.BgColorHex,
		"title":          m.Title,
		"heading_tag":    m.HeadingTag,
		"columns":        m.Columns.Contexts(),
	}
	if m.HeadingTag == "" {
		ctx["heading_tag"] = "h2"
	}
	if m.BgImage != nil {
		ctx["bg_image_url"] = m.BgImage.URL
	}
	return ctx
}

// FullWidthBackground stretches child blocks across the page width over
// an optional background.
type FullWidthBackground struct {
	BgImage      *ImageRef `json:"bg_image,omitempty"`
	BgColorClass string    `json:"bg_color_class,omitempty"`
	Content      Stream    `json:"content,omitempty"`
}

func (f FullWidthBackground) TemplateContext() map[string]any {
	ctx := map[string]any{
		"bg_color_class": f.BgColorClass,
		"content":        f.Content.Contexts(),
	}
	if f.BgImage != nil {
		ctx["bg_image_url"] = f.BgImage.URL
	}
	return ctx
}

func headingOrDefault(tag string) string {
	if tag == "" {
		return dsfr.DefaultHeadingTag
	}
	return tag
}
