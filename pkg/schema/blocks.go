package schema

import (
	"github.com/goliatone/go-blocks/pkg/content"
	"github.com/goliatone/go-blocks/pkg/dsfr"
)

// Spec constructors for every block in the vocabulary. Codes line up
// with the content package's stream types so decoded entries, catalog
// specs, and templates key on the same names.

// LinkWithoutLabelSpec declares a page-or-external target.
func LinkWithoutLabelSpec() BlockSpec {
	return BlockSpec{
		Code: "link",
		Icon: "link",
		Fields: []FieldSpec{
			{Name: "page", Kind: KindPage, Label: "fields.page", Help: "fields.page.help", Group: "target"},
			{Name: "external_url", Kind: KindURL, Label: "fields.external_url", Help: "fields.external_url.help", Group: "target"},
		},
	}
}

// LinkSpec adds the visible label to the bare link target.
func LinkSpec() BlockSpec {
	spec := LinkWithoutLabelSpec()
	spec.Fields = append(spec.Fields, FieldSpec{Name: "text", Kind: KindChar, Label: "fields.link_label"})
	return spec
}

// ButtonSpec is a labeled link rendered with a button class.
func ButtonSpec() BlockSpec {
	spec := LinkSpec()
	spec.Code = "button"
	spec.Fields = append(spec.Fields, FieldSpec{
		Name:    "button_type",
		Kind:    KindChoice,
		Label:   "fields.button_type",
		Choices: choiceList(dsfr.ButtonKinds(), "choices.button"),
	})
	return spec
}

// BadgeSpec declares one badge.
func BadgeSpec() BlockSpec {
	return BlockSpec{
		Code: "badge",
		Fields: []FieldSpec{
			{Name: "text", Kind: KindChar, Label: "fields.badge_label"},
			{Name: "color", Kind: KindChoice, Label: "fields.badge_color", Choices: choiceList(dsfr.BadgeColors(), "choices.badge_color")},
			{Name: "hide_icon", Kind: KindBool, Label: "fields.hide_badge_icon"},
		},
	}
}

// TagSpec declares one tag, optionally clickable.
func TagSpec() BlockSpec {
	link := LinkWithoutLabelSpec()
	return BlockSpec{
		Code: "tag",
		Fields: []FieldSpec{
			{Name: "label", Kind: KindChar, Label: "fields.title", Required: true},
			{Name: "is_small", Kind: KindBool, Label: "fields.small_tag"},
			{Name: "color", Kind: KindChoice, Label: "fields.tag_color", Help: "fields.tag_color.help", Choices: choiceList(dsfr.IllustrationColors(), "choices.color")},
			{Name: "icon_class", Kind: KindIcon, Label: "fields.icon", MaxLength: 70},
			{Name: "link", Kind: KindStruct, Child: &link},
		},
	}
}

// BadgeListSpec is a stream of badges.
func BadgeListSpec() BlockSpec {
	return BlockSpec{
		Code:     content.TypeBadgeList,
		Icon:     "list-ul",
		Template: "badges_list",
		Members:  []ChildSpec{{Name: "badge", Label: "blocks.badge", Block: BadgeSpec()}},
	}
}

// TagListSpec is a stream of tags.
func TagListSpec() BlockSpec {
	return BlockSpec{
		Code:     content.TypeTagList,
		Icon:     "list-ul",
		Template: "tags_list",
		Members:  []ChildSpec{{Name: "tag", Label: "blocks.tag", Block: TagSpec()}},
	}
}

// LinkListSpec is the vertical link list used in call-to-action slots.
func LinkListSpec() BlockSpec {
	return BlockSpec{
		Code:    "links",
		Icon:    "list-ul",
		Members: []ChildSpec{{Name: "link", Label: "blocks.link", Block: LinkSpec()}},
	}
}

// ButtonListSpec is the horizontal button list used in call-to-action
// slots.
func ButtonListSpec() BlockSpec {
	return BlockSpec{
		Code:    "buttons",
		Icon:    "list-ul",
		Members: []ChildSpec{{Name: "button", Label: "blocks.button", Block: ButtonSpec()}},
	}
}

// CardSpec declares the card block. Horizontal cards trade the image
// ratio choices for the layout split; everything else is shared.
func CardSpec(orientation content.Orientation) BlockSpec {
	ratios := choiceList(dsfr.ImageRatios(), "choices.ratio")
	if orientation == content.OrientationHorizontal {
		ratios = choiceList(dsfr.HorizontalRatios(), "choices.horizontal_ratio")
	}

	imageBadges := BadgeListSpec()
	imageBadges.MaxNum = 1

	topDetail := BlockSpec{
		MaxNum: 1,
		Members: []ChildSpec{
			{Name: "badges", Label: "blocks.badges_list", Block: BadgeListSpec()},
			{Name: "tags", Label: "blocks.tags_list", Block: TagListSpec()},
		},
	}
	callToAction := BlockSpec{
		MaxNum: 1,
		Members: []ChildSpec{
			{Name: "links", Label: "blocks.links", Block: LinkListSpec()},
			{Name: "buttons", Label: "blocks.buttons", Block: ButtonListSpec()},
		},
	}

	return BlockSpec{
		Code:     content.TypeCard,
		Icon:     "tablet-alt",
		Template: "card",
		Fields: []FieldSpec{
			{Name: "title", Kind: KindChar, Label: "fields.title", Required: true},
			{Name: "heading_tag", Kind: KindChoice, Label: "fields.heading_tag", Help: "fields.heading_tag.help", Default: dsfr.DefaultHeadingTag, Choices: choiceList(dsfr.HeadingTags(), "choices.heading")},
			{Name: "description", Kind: KindText, Label: "fields.content", Help: "fields.content.help"},
			{Name: "image", Kind: KindImage, Label: "fields.image"},
			{Name: "image_ratio", Kind: KindChoice, Label: "fields.image_ratio", Choices: ratios},
			{Name: "image_badge", Kind: KindStream, Label: "fields.image_badge", Help: "fields.image_badge.help", Child: &imageBadges},
			{Name: "url", Kind: KindURL, Label: "fields.link", Group: "target"},
			{Name: "document", Kind: KindDocument, Label: "fields.document", Help: "fields.document.help", Group: "target"},
			{Name: "top_detail_text", Kind: KindChar, Label: "fields.top_detail_text"},
			{Name: "top_detail_icon", Kind: KindIcon, Label: "fields.top_detail_icon"},
			{Name: "top_detail_badges_tags", Kind: KindStream, Label: "fields.top_detail_badges_tags", Child: &topDetail},
			{Name: "bottom_detail_text", Kind: KindChar, Label: "fields.bottom_detail_text", Help: "fields.bottom_detail_text.help"},
			{Name: "bottom_detail_icon", Kind: KindIcon, Label: "fields.bottom_detail_icon"},
			{Name: "call_to_action", Kind: KindStream, Label: "fields.call_to_action", Help: "fields.call_to_action.help", Child: &callToAction},
			{Name: "grey_background", Kind: KindBool, Label: "fields.grey_background"},
			{Name: "no_background", Kind: KindBool, Label: "fields.no_background"},
			{Name: "no_border", Kind: KindBool, Label: "fields.no_border"},
			{Name: "shadow", Kind: KindBool, Label: "fields.shadow"},
		},
	}
}

// ParagraphSpec is scalar rich text.
func ParagraphSpec() BlockSpec {
	return BlockSpec{Code: content.TypeParagraph, Kind: KindRichText, Template: "paragraph"}
}

// MarkdownSpec is scalar markdown source.
func MarkdownSpec() BlockSpec {
	return BlockSpec{Code: content.TypeMarkdown, Kind: KindMarkdown, Template: "markdown"}
}

// RawHTMLSpec is unescaped markup, offered only when the host allows it.
func RawHTMLSpec() BlockSpec {
	return BlockSpec{Code: content.TypeRawHTML, Kind: KindRawHTML, Template: "html", Label: "blocks.html"}
}

// AccordionSpec is one expandable section.
func AccordionSpec() BlockSpec {
	return BlockSpec{
		Code: "accordion",
		Fields: []FieldSpec{
			{Name: "title", Kind: KindChar, Label: "fields.title", Required: true},
			{Name: "content", Kind: KindRichText, Label: "fields.content", Required: true},
		},
	}
}

// AccordionsSpec groups sections under an optional title entry.
func AccordionsSpec() BlockSpec {
	return BlockSpec{
		Code:     content.TypeAccordions,
		Template: "accordions",
		Members: []ChildSpec{
			{Name: "title", Label: "fields.title", Block: BlockSpec{Kind: KindChar}},
			{Name: "accordion", Label: "blocks.accordion", Block: AccordionSpec(), MinNum: 1, MaxNum: 15},
		},
	}
}

// AlertSpec is a severity-colored message box.
func AlertSpec() BlockSpec {
	return BlockSpec{
		Code:     content.TypeAlert,
		Template: "alert",
		Fields: []FieldSpec{
			{Name: "title", Kind: KindChar, Label: "fields.message_title"},
			{Name: "description", Kind: KindText, Label: "fields.message_text"},
			{Name: "level", Kind: KindChoice, Label: "fields.message_type", Required: true, Choices: choiceList(dsfr.AlertLevels(), "choices.level")},
			{Name: "heading_tag", Kind: KindChoice, Label: "fields.heading_tag", Help: "fields.heading_tag.help", Default: dsfr.DefaultHeadingTag, Choices: choiceList(dsfr.HeadingTags(), "choices.heading")},
		},
	}
}

// CalloutSpec is an emphasized aside.
func CalloutSpec() BlockSpec {
	return BlockSpec{
		Code:     content.TypeCallout,
		Template: "callout",
		Fields: []FieldSpec{
			{Name: "title", Kind: KindChar, Label: "fields.callout_title"},
			{Name: "text", Kind: KindText, Label: "fields.callout_text"},
			{Name: "heading_tag", Kind: KindChoice, Label: "fields.heading_tag", Help: "fields.heading_tag.help", Default: dsfr.DefaultHeadingTag, Choices: choiceList(dsfr.HeadingTags(), "choices.heading")},
		},
	}
}

// IframeSpec embeds external content.
func IframeSpec() BlockSpec {
	return BlockSpec{
		Code:     content.TypeIframe,
		Icon:     "globe",
		Template: "iframe",
		Fields: []FieldSpec{
			{Name: "title", Kind: KindChar, Label: "fields.title", Help: "fields.iframe_title.help", Required: true},
			{Name: "url", Kind: KindURL, Label: "fields.iframe_url", Help: "fields.iframe_url.help", Required: true},
			{Name: "height", Kind: KindInt, Label: "fields.height", Required: true},
		},
	}
}

// ImageAndTextSpec pairs an image with rich text. The three obsolete
// link fields survive for previously authored content.
func ImageAndTextSpec() BlockSpec {
	link := LinkSpec()
	return BlockSpec{
		Code:     content.TypeImageAndText,
		Icon:     "image",
		Template: "imageandtext",
		Fields: []FieldSpec{
			{Name: "image", Kind: KindImage, Label: "fields.image", Required: true},
			{Name: "image_side", Kind: KindChoice, Label: "fields.image_side", Default: "right", Choices: []Choice{
				{Value: "left", Label: "choices.side.left"},
				{Value: "right", Label: "choices.side.right"},
			}},
			{Name: "image_ratio", Kind: KindChoice, Label: "fields.image_width", Default: "3", Choices: []Choice{
				{Value: "3", Label: "choices.column_width.3"},
				{Value: "5", Label: "choices.column_width.5"},
				{Value: "6", Label: "choices.column_width.6"},
			}},
			{Name: "text", Kind: KindRichText, Label: "fields.rich_text", Required: true},
			{Name: "link", Kind: KindStruct, Label: "fields.link", Help: "fields.image_text_link.help", Child: &link},
			{Name: "link_label", Kind: KindChar, Label: "fields.link_label_obsolete", Help: "fields.obsolete.help", Group: "obsolete", Obsolete: true},
			{Name: "page", Kind: KindPage, Label: "fields.internal_link_obsolete", Help: "fields.obsolete.help", Group: "obsolete", Obsolete: true},
			{Name: "link_url", Kind: KindURL, Label: "fields.link_url_obsolete", Help: "fields.obsolete.help", Group: "obsolete", Obsolete: true},
		},
	}
}

// ImageSpec is a captioned standalone image.
func ImageSpec() BlockSpec {
	return BlockSpec{
		Code:     content.TypeImage,
		Icon:     "image",
		Template: "image",
		Fields: []FieldSpec{
			{Name: "title", Kind: KindChar, Label: "fields.title"},
			{Name: "heading_tag", Kind: KindChoice, Label: "fields.heading_tag", Help: "fields.heading_tag.help", Default: dsfr.DefaultHeadingTag, Choices: choiceList(dsfr.HeadingTags(), "choices.heading")},
			{Name: "image", Kind: KindImage, Label: "fields.image", Required: true},
			{Name: "alt", Kind: KindChar, Label: "fields.image_alt"},
			{Name: "caption", Kind: KindChar, Label: "fields.caption"},
			{Name: "url", Kind: KindURL, Label: "fields.link"},
		},
	}
}

// QuoteSpec cites an author.
func QuoteSpec() BlockSpec {
	return BlockSpec{
		Code:     content.TypeQuote,
		Icon:     "openquote",
		Template: "quote",
		Fields: []FieldSpec{
			{Name: "image", Kind: KindImage, Label: "fields.image"},
			{Name: "quote", Kind: KindChar, Label: "fields.quote", Required: true},
			{Name: "author_name", Kind: KindChar, Label: "fields.author_name", Required: true},
			{Name: "author_title", Kind: KindChar, Label: "fields.author_title"},
			{Name: "color", Kind: KindChoice, Label: "fields.color", Choices: choiceList(dsfr.IllustrationColors(), "choices.color")},
		},
	}
}

// SeparatorSpec is a horizontal rule with bounded margins.
func SeparatorSpec() BlockSpec {
	return BlockSpec{
		Code:     content.TypeSeparator,
		Template: "separator",
		Fields: []FieldSpec{
			{Name: "top_margin", Kind: KindInt, Label: "fields.top_margin", Default: dsfr.SeparatorMarginDefault, MinValue: intPtr(0), MaxValue: intPtr(dsfr.SeparatorMarginMax)},
			{Name: "bottom_margin", Kind: KindInt, Label: "fields.bottom_margin", Default: dsfr.SeparatorMarginDefault, MinValue: intPtr(0), MaxValue: intPtr(dsfr.SeparatorMarginMax)},
		},
	}
}

// StepSpec is one stepper entry.
func StepSpec() BlockSpec {
	return BlockSpec{
		Code: "step",
		Fields: []FieldSpec{
			{Name: "title", Kind: KindChar, Label: "fields.title", Required: true},
			{Name: "detail", Kind: KindText, Label: "fields.detail", Required: true},
		},
	}
}

// StepperSpec renders progress through numbered steps.
func StepperSpec() BlockSpec {
	steps := BlockSpec{Members: []ChildSpec{{Name: "step", Label: "blocks.step", Block: StepSpec()}}}
	return BlockSpec{
		Code:     content.TypeStepper,
		Template: "stepper",
		Fields: []FieldSpec{
			{Name: "title", Kind: KindChar, Label: "fields.title", Required: true},
			{Name: "total", Kind: KindInt, Label: "fields.step_total", Required: true},
			{Name: "current", Kind: KindInt, Label: "fields.step_current", Required: true},
			{Name: "steps", Kind: KindStream, Label: "fields.steps", Child: &steps},
		},
	}
}

// TextAndCTASpec is rich text with a single button-styled link.
func TextAndCTASpec() BlockSpec {
	return BlockSpec{
		Code:     content.TypeTextAndCTA,
		Icon:     "link",
		Template: "text_cta",
		Fields: []FieldSpec{
			{Name: "text", Kind: KindRichText, Label: "fields.rich_text"},
			{Name: "cta_label", Kind: KindChar, Label: "fields.cta_label", Help: "fields.cta_label.help"},
			{Name: "cta_url", Kind: KindChar, Label: "fields.link"},
		},
	}
}

// VideoSpec embeds a player URL.
func VideoSpec() BlockSpec {
	return BlockSpec{
		Code:     content.TypeVideo,
		Icon:     "media",
		Template: "video",
		Fields: []FieldSpec{
			{Name: "title", Kind: KindChar, Label: "fields.title"},
			{Name: "caption", Kind: KindChar, Label: "fields.caption", Required: true},
			{Name: "url", Kind: KindURL, Label: "fields.video_url", Help: "fields.video_url.help", Required: true},
		},
	}
}

// commonStreamMembers are the blocks every structure stream offers.
func commonStreamMembers() []ChildSpec {
	return []ChildSpec{
		{Name: "text", Label: "fields.rich_text", Block: BlockSpec{Kind: KindRichText, Template: "paragraph"}},
		{Name: "image", Label: "blocks.image", Block: ImageSpec()},
		{Name: "video", Label: "blocks.video", Block: VideoSpec()},
		{Name: "quote", Label: "blocks.quote", Block: QuoteSpec()},
		{Name: "text_cta", Label: "blocks.text_cta", Block: TextAndCTASpec()},
		{Name: "iframe", Label: "blocks.iframe", Block: IframeSpec()},
	}
}

// HexColorPattern validates the obsolete free-form background color.
const HexColorPattern = `^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`

// MultiColumnsSpec lays child blocks out in columns. Column streams
// carry vertical cards.
func MultiColumnsSpec() BlockSpec {
	columns := BlockSpec{
		Icon:    "dots-horizontal",
		Members: append(commonStreamMembers(), ChildSpec{Name: "card", Label: "blocks.vertical_card", Block: CardSpec(content.OrientationVertical)}),
	}
	return BlockSpec{
		Code:     content.TypeMultiColumns,
		Icon:     "dots-horizontal",
		Template: "multicolumns",
		Fields: []FieldSpec{
			{Name: "bg_image", Kind: KindImage, Label: "fields.bg_image"},
			{Name: "bg_color_class", Kind: KindChoice, Label: "fields.bg_color_class", Help: "fields.bg_color_class.help", Choices: choiceList(dsfr.BackgroundColors(), "choices.color")},
			{Name: "bg_color", Kind: KindRegex, Label: "fields.bg_color_obsolete", Help: "fields.obsolete.help", Pattern: HexColorPattern, Obsolete: true},
			{Name: "title", Kind: KindChar, Label: "fields.title"},
			{Name: "heading_tag", Kind: KindChoice, Label: "fields.heading_tag", Help: "fields.heading_tag_h2.help", Default: "h2", Choices: choiceList(dsfr.HeadingTags(), "choices.heading")},
			{Name: "columns", Kind: KindStream, Label: "fields.columns", Child: &columns},
		},
	}
}

// FullWidthBackgroundSpec stretches child blocks across the page.
// Content streams carry horizontal cards and image-and-text blocks.
func FullWidthBackgroundSpec() BlockSpec {
	body := BlockSpec{
		Icon: "minus",
		Members: append(commonStreamMembers(),
			ChildSpec{Name: "image_and_text", Label: "blocks.imageandtext", Block: ImageAndTextSpec()},
			ChildSpec{Name: "card", Label: "blocks.horizontal_card", Block: CardSpec(content.OrientationHorizontal)},
		),
	}
	return BlockSpec{
		Code:     content.TypeFullWidthBackground,
		Icon:     "minus",
		Template: "fullwidthbackground",
		Fields: []FieldSpec{
			{Name: "bg_image", Kind: KindImage, Label: "fields.bg_image"},
			{Name: "bg_color_class", Kind: KindChoice, Label: "fields.bg_color_class", Help: "fields.bg_color_class.help", Choices: choiceList(dsfr.BackgroundColors(), "choices.color")},
			{Name: "content", Kind: KindStream, Label: "fields.content", Child: &body},
		},
	}
}
