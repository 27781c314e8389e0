package schema

import (
	"github.com/goliatone/go-blocks/pkg/content"
)

// BuildOptions gates what the catalog exposes to a given host.
type BuildOptions struct {
	// AllowRawHTML includes the raw HTML block. Off by default: raw
	// markup can compromise the page, so hosts opt in explicitly.
	AllowRawHTML bool
	// HideObsolete strips obsolete fields from the returned specs so
	// builders stop offering them while stored content still decodes.
	HideObsolete bool
}

// Catalog is the ordered set of blocks a page-level stream offers.
type Catalog struct {
	children []ChildSpec
}

// DefaultCatalog returns the standard vocabulary in palette order.
// Cards appear horizontal here; the vertical variant lives inside
// multi-column streams.
func DefaultCatalog() *Catalog {
	return &Catalog{children: []ChildSpec{
		{Name: content.TypeParagraph, Label: "fields.rich_text", Block: ParagraphSpec()},
		{Name: content.TypeBadgeList, Label: "blocks.badges_list", Block: BadgeListSpec()},
		{Name: content.TypeImage, Label: "blocks.image", Block: ImageSpec()},
		{Name: content.TypeImageAndText, Label: "blocks.imageandtext", Block: ImageAndTextSpec()},
		{Name: content.TypeAlert, Label: "blocks.alert", Block: AlertSpec()},
		{Name: content.TypeCallout, Label: "blocks.callout", Block: CalloutSpec()},
		{Name: content.TypeQuote, Label: "blocks.quote", Block: QuoteSpec()},
		{Name: content.TypeVideo, Label: "blocks.video", Block: VideoSpec()},
		{Name: content.TypeCard, Label: "blocks.horizontal_card", Block: CardSpec(content.OrientationHorizontal)},
		{Name: content.TypeAccordions, Label: "blocks.accordions", Block: AccordionsSpec()},
		{Name: content.TypeStepper, Label: "blocks.stepper", Block: StepperSpec()},
		{Name: content.TypeTagList, Label: "blocks.tags_list", Block: TagListSpec()},
		{Name: content.TypeMarkdown, Label: "blocks.markdown", Block: MarkdownSpec()},
		{Name: content.TypeSeparator, Label: "blocks.separator", Block: SeparatorSpec()},
		{Name: content.TypeMultiColumns, Label: "blocks.multicolumns", Group: "groups.page_structure", Block: MultiColumnsSpec()},
		{Name: content.TypeFullWidthBackground, Label: "blocks.fullwidthbackground", Group: "groups.page_structure", Block: FullWidthBackgroundSpec()},
	}}
}

// Register appends a host-defined block to the catalog.
func (c *Catalog) Register(child ChildSpec) {
	c.children = append(c.children, child)
}

// Build returns the gated palette. The raw HTML block is appended last
// when allowed, matching its position in the original vocabulary.
func (c *Catalog) Build(opts BuildOptions) []ChildSpec {
	out := make([]ChildSpec, 0, len(c.children)+1)
	for _, child := range c.children {
		if opts.HideObsolete {
			child.Block = stripObsolete(child.Block)
		}
		out = append(out, child)
	}
	if opts.AllowRawHTML {
		html := RawHTMLSpec()
		html.Help = "blocks.html.help"
		out = append(out, ChildSpec{Name: content.TypeRawHTML, Label: "blocks.html", Block: html})
	}
	return out
}

// Lookup finds a palette block by name.
func (c *Catalog) Lookup(name string) (BlockSpec, bool) {
	for _, child := range c.children {
		if child.Name == name {
			return child.Block, true
		}
	}
	if name == content.TypeRawHTML {
		return RawHTMLSpec(), true
	}
	return BlockSpec{}, false
}

// Codes lists the palette block names in order, without gating.
func (c *Catalog) Codes() []string {
	out := make([]string, len(c.children))
	for i, child := range c.children {
		out[i] = child.Name
	}
	return out
}

// stripObsolete removes obsolete fields at every nesting level.
func stripObsolete(spec BlockSpec) BlockSpec {
	if len(spec.Fields) > 0 {
		fields := make([]FieldSpec, 0, len(spec.Fields))
		for _, field := range spec.Fields {
			if field.Obsolete {
				continue
			}
			if field.Child != nil {
				child := stripObsolete(*field.Child)
				field.Child = &child
			}
			fields = append(fields, field)
		}
		spec.Fields = fields
	}
	if len(spec.Members) > 0 {
		members := make([]ChildSpec, len(spec.Members))
		for i, member := range spec.Members {
			member.Block = stripObsolete(member.Block)
			members[i] = member
		}
		spec.Members = members
	}
	return spec
}
