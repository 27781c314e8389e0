package settings

import (
	"github.com/goliatone/go-blocks/pkg/config"
	"github.com/goliatone/go-blocks/pkg/dsfr"
	"github.com/goliatone/go-blocks/pkg/schema"
)

// Paths resolved by the Presentation accessor. Overlay snapshots use the same
// nested layout FromConfig seeds, so a page can flip a single leaf.
const (
	PathAllowRawHTML = "blocks.allow_raw_html"
	PathHeadingTag   = "blocks.heading_tag"
	PathCardRatio    = "blocks.card_ratio"
	PathHideObsolete = "blocks.hide_obsolete_fields"
	PathHiddenBlocks = "blocks.hidden"
	PathLocale       = "locale.default"
)

// Presentation is the typed view of the merged presentation settings.
type Presentation struct {
	AllowRawHTML bool
	HeadingTag   string
	CardRatio    string
	HideObsolete bool
	HiddenBlocks []string
	Locale       string
}

// CatalogOptions maps the resolved gates onto catalog build options.
func (p Presentation) CatalogOptions() schema.BuildOptions {
	return schema.BuildOptions{
		AllowRawHTML: p.AllowRawHTML,
		HideObsolete: p.HideObsolete,
	}
}

// FromConfig builds the site snapshot every resolver stack starts from. The
// seeded payload carries every presentation path so overlays only need the
// leaves they override.
func FromConfig(cfg config.Config) Snapshot {
	return Snapshot{
		Scope: SiteScope(),
		Data: map[string]any{
			"blocks": map[string]any{
				"allow_raw_html":       cfg.Blocks.AllowRawHTML,
				"heading_tag":          cfg.Blocks.DefaultHeadingTag,
				"hide_obsolete_fields": cfg.Blocks.HideObsoleteFields,
			},
			"locale": map[string]any{
				"default": cfg.Localization.DefaultLocale,
			},
		},
	}
}

// Presentation resolves the known presentation paths, keeping defaults for
// anything no layer provides.
func (r *Resolver) Presentation() Presentation {
	p := Presentation{
		HeadingTag:   dsfr.DefaultHeadingTag,
		HideObsolete: true,
		Locale:       "en",
	}
	if v, _, err := r.ResolveBool(PathAllowRawHTML); err == nil {
		p.AllowRawHTML = v
	}
	if v, _, err := r.ResolveString(PathHeadingTag); err == nil && v != "" {
		p.HeadingTag = v
	}
	if v, _, err := r.ResolveString(PathCardRatio); err == nil {
		p.CardRatio = v
	}
	if v, _, err := r.ResolveBool(PathHideObsolete); err == nil {
		p.HideObsolete = v
	}
	if v, _, err := r.ResolveStringSlice(PathHiddenBlocks); err == nil {
		p.HiddenBlocks = v
	}
	if v, _, err := r.ResolveString(PathLocale); err == nil && v != "" {
		p.Locale = v
	}
	return p
}
