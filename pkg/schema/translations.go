package schema

import (
	i18n "github.com/goliatone/go-i18n"
)

// Translations returns the builtin label catalog for the block
// vocabulary. Hosts merge or replace it; keys match the Label and Help
// references in the block specs.
func Translations() i18n.Translations {
	return i18n.Translations{
		"en": newCatalog("en", map[string]string{
			"blocks.accordions":          "Accordions",
			"blocks.accordion":           "Accordion",
			"blocks.alert":               "Alert message",
			"blocks.badge":               "Badge",
			"blocks.badges_list":         "Badge list",
			"blocks.button":              "Button",
			"blocks.buttons":             "Buttons",
			"blocks.callout":             "Callout",
			"blocks.fullwidthbackground": "Full width background",
			"blocks.horizontal_card":     "Horizontal card",
			"blocks.html":                "HTML",
			"blocks.html.help":           "Warning: Use HTML block with caution. Malicious code can compromise the security of the site.",
			"blocks.iframe":              "Iframe",
			"blocks.image":               "Image",
			"blocks.imageandtext":        "Image and text",
			"blocks.link":                "Link",
			"blocks.links":               "Links",
			"blocks.markdown":            "Markdown",
			"blocks.multicolumns":        "Multiple columns",
			"blocks.quote":               "Quote",
			"blocks.separator":           "Separator",
			"blocks.step":                "Step",
			"blocks.stepper":             "Stepper",
			"blocks.tag":                 "Tag",
			"blocks.tags_list":           "Tag list",
			"blocks.text_cta":            "Text and call to action",
			"blocks.vertical_card":       "Vertical card",
			"blocks.video":               "Video",

			"groups.page_structure": "Page structure",

			"fields.author_name":             "Author name",
			"fields.author_title":            "Author title",
			"fields.badge_color":             "Badge color",
			"fields.badge_label":             "Badge label",
			"fields.bg_color_class":          "Background color",
			"fields.bg_color_class.help":     "Uses the French Design System colors",
			"fields.bg_color_obsolete":       "Background color, hexadecimal format (obsolete)",
			"fields.bg_image":                "Background image",
			"fields.bottom_detail_text":      "Bottom detail: text",
			"fields.bottom_detail_text.help": "Incompatible with the bottom call-to-action",
			"fields.bottom_detail_icon":      "Bottom detail: icon",
			"fields.button_type":             "Button type",
			"fields.call_to_action":          "Bottom call-to-action: links or buttons",
			"fields.call_to_action.help":     "Incompatible with the bottom detail text",
			"fields.caption":                 "Caption",
			"fields.color":                   "Color",
			"fields.columns":                 "Columns",
			"fields.content":                 "Content",
			"fields.content.help":            "Can contain HTML.",
			"fields.cta_label":               "Call to action label",
			"fields.cta_label.help":          "The link appears as a button under the text block",
			"fields.detail":                  "Detail",
			"fields.document":                "or Document",
			"fields.document.help":           "Select a document to make the card link to it (if the 'Link' field is not populated.)",
			"fields.external_url":            "External URL",
			"fields.external_url.help":       "Use either this or the Page parameter.",
			"fields.grey_background":         "Card with grey background",
			"fields.heading_tag":             "Heading level",
			"fields.heading_tag.help":        "Adapt to the page layout. Defaults to heading 3.",
			"fields.heading_tag_h2.help":     "Adapt to the page layout. Defaults to heading 2.",
			"fields.height":                  "Height (in pixels)",
			"fields.hide_badge_icon":         "Hide badge icon",
			"fields.icon":                    "Icon",
			"fields.iframe_title.help":       "Accessibility: The title should describe, in a clear and concise manner, the embedded content.",
			"fields.iframe_url":              "URL of the iframe",
			"fields.iframe_url.help":         "Example for Tally: https://tally.so/embed/w2jMRa",
			"fields.image":                   "Image",
			"fields.image_alt":               "Alternative text (textual description of the image)",
			"fields.image_badge":             "Image area badge",
			"fields.image_badge.help":        "Only used if the card has an image.",
			"fields.image_ratio":             "Image ratio",
			"fields.image_side":              "Side where the image is displayed",
			"fields.image_text_link.help":    "The link is shown at the bottom of the text block, with an arrow",
			"fields.image_width":             "Image width",
			"fields.internal_link_obsolete":  "Internal link (obsolete)",
			"fields.link":                    "Link",
			"fields.link_label":              "Link label",
			"fields.link_label_obsolete":     "Link label (obsolete)",
			"fields.link_url_obsolete":       "Link URL (obsolete)",
			"fields.message_text":            "Message text",
			"fields.message_title":           "Message title",
			"fields.message_type":            "Message type",
			"fields.no_background":           "Card without background",
			"fields.no_border":               "Card without border",
			"fields.obsolete.help":           "This field is obsolete and will be removed in the near future. Please replace with the Link field above.",
			"fields.page":                    "Page",
			"fields.page.help":               "Link to a page of this site. Use either this or the external URL parameter.",
			"fields.quote":                   "Quote",
			"fields.rich_text":               "Rich text",
			"fields.shadow":                  "Card with a shadow",
			"fields.small_tag":               "Small tag",
			"fields.step_current":            "Current step",
			"fields.step_total":              "Number of steps",
			"fields.steps":                   "Steps",
			"fields.tag_color":               "Tag color",
			"fields.tag_color.help":          "Only for clickable tags",
			"fields.title":                   "Title",
			"fields.top_detail_badges_tags":  "Top detail: badges or tags",
			"fields.top_detail_icon":         "Top detail: icon",
			"fields.top_detail_text":         "Top detail: text",
			"fields.bottom_margin":           "Bottom margin",
			"fields.top_margin":              "Top margin",
			"fields.callout_text":            "Callout text",
			"fields.callout_title":           "Callout title",
			"fields.video_url":               "Video URL",
			"fields.video_url.help":          "Use embed format (e.g. : https://www.youtube.com/embed/gLzXOViPX-0)",

			"choices.button.fr-btn":                             "Primary",
			"choices.button.fr-btn fr-btn--secondary":           "Secondary",
			"choices.button.fr-btn fr-btn--tertiary":            "Tertiary",
			"choices.button.fr-btn fr-btn--tertiary-no-outline": "Tertiary without border",
			"choices.heading.h2":                                "Heading 2",
			"choices.heading.h3":                                "Heading 3",
			"choices.heading.h4":                                "Heading 4",
			"choices.heading.h5":                                "Heading 5",
			"choices.heading.h6":                                "Heading 6",
			"choices.level.error":                               "Error",
			"choices.level.info":                                "Information",
			"choices.level.success":                             "Success",
			"choices.level.warning":                             "Warning",
			"choices.badge_color.new":                           "New",
			"choices.badge_color.grey":                          "Grey",
			"choices.side.left":                                 "Left",
			"choices.side.right":                                "Right",
			"choices.column_width.3":                            "3/12",
			"choices.column_width.5":                            "5/12",
			"choices.column_width.6":                            "6/12",
			"choices.horizontal_ratio.fr-card--horizontal-tier": "1/3",
			"choices.horizontal_ratio.fr-card--horizontal-half": "50/50",
		}),
		"fr": newCatalog("fr", map[string]string{
			"blocks.accordions":          "Accordéons",
			"blocks.accordion":           "Accordéon",
			"blocks.alert":               "Message d'alerte",
			"blocks.badge":               "Badge",
			"blocks.badges_list":         "Liste de badges",
			"blocks.button":              "Bouton",
			"blocks.buttons":             "Boutons",
			"blocks.callout":             "Mise en avant",
			"blocks.fullwidthbackground": "Fond pleine largeur",
			"blocks.horizontal_card":     "Carte horizontale",
			"blocks.html":                "HTML",
			"blocks.iframe":              "Iframe",
			"blocks.image":               "Image",
			"blocks.imageandtext":        "Image et texte",
			"blocks.link":                "Lien",
			"blocks.links":               "Liens",
			"blocks.markdown":            "Markdown",
			"blocks.multicolumns":        "Multi-colonnes",
			"blocks.quote":               "Citation",
			"blocks.separator":           "Séparateur",
			"blocks.step":                "Étape",
			"blocks.stepper":             "Étapes",
			"blocks.tag":                 "Tag",
			"blocks.tags_list":           "Liste de tags",
			"blocks.text_cta":            "Texte et appel à l'action",
			"blocks.vertical_card":       "Carte verticale",
			"blocks.video":               "Vidéo",

			"groups.page_structure": "Structure de page",

			"fields.content":          "Contenu",
			"fields.heading_tag":      "Niveau de titre",
			"fields.heading_tag.help": "À adapter à la structure de la page. Titre 3 par défaut.",
			"fields.image":            "Image",
			"fields.image_ratio":      "Ratio de l'image",
			"fields.link":             "Lien",
			"fields.page":             "Page",
			"fields.quote":            "Citation",
			"fields.rich_text":        "Texte enrichi",
			"fields.title":            "Titre",

			"choices.heading.h2":    "Titre 2",
			"choices.heading.h3":    "Titre 3",
			"choices.heading.h4":    "Titre 4",
			"choices.heading.h5":    "Titre 5",
			"choices.heading.h6":    "Titre 6",
			"choices.level.error":   "Erreur",
			"choices.level.info":    "Information",
			"choices.level.success": "Succès",
			"choices.level.warning": "Attention",
		}),
	}
}

func newCatalog(locale string, entries map[string]string) *i18n.TranslationCatalog {
	catalog := &i18n.TranslationCatalog{
		Locale:   i18n.Locale{Code: locale},
		Messages: make(map[string]i18n.Message),
	}
	for key, template := range entries {
		msg := i18n.Message{}
		msg.SetContent(template)
		catalog.Messages[key] = msg
	}
	return catalog
}
