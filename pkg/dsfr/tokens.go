// Package dsfr collects the design-system tokens block schemas and
// resolvers share: CSS class names, enumerated choices, and defaults.
// Tokens are plain strings so templates can interpolate them directly.
package dsfr

// ResponsiveImageClass is the base class every block image carries.
const ResponsiveImageClass = "fr-responsive-img"

// Image ratio classes, widest to tallest.
const (
	RatioUltrawide = "fr-ratio-32x9"
	RatioWide      = "fr-ratio-16x9"
	RatioLandscape = "fr-ratio-3x2"
	RatioStandard  = "fr-ratio-4x3"
	RatioSquare    = "fr-ratio-1x1"
	RatioPortrait  = "fr-ratio-3x4"
	RatioTall      = "fr-ratio-2x3"
)

// Horizontal card layout classes controlling the image column width.
const (
	HorizontalTier = "fr-card--horizontal-tier"
	HorizontalHalf = "fr-card--horizontal-half"
)

// Button kind classes.
const (
	ButtonPrimary           = "fr-btn"
	ButtonSecondary         = "fr-btn fr-btn--secondary"
	ButtonTertiary          = "fr-btn fr-btn--tertiary"
	ButtonTertiaryNoOutline = "fr-btn fr-btn--tertiary-no-outline"
)

// Alert and badge severity levels.
const (
	LevelInfo    = "info"
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Badge accent colors outside the severity palette.
const (
	BadgeNew  = "new"
	BadgeGrey = "grey"
)

// Separator margin bounds, in spacing units.
const (
	SeparatorMarginMax     = 15
	SeparatorMarginDefault = 3
)

// DefaultHeadingTag is applied when a block leaves its heading level unset.
const DefaultHeadingTag = "h3"

// ImageRatios lists the selectable ratio classes in display order.
func ImageRatios() []string {
	return []string{
		RatioUltrawide,
		RatioWide,
		RatioLandscape,
		RatioStandard,
		RatioSquare,
		RatioPortrait,
		RatioTall,
	}
}

// HorizontalRatios lists the horizontal-card layout classes.
func HorizontalRatios() []string {
	return []string{HorizontalTier, HorizontalHalf}
}

// HeadingTags lists the selectable heading levels. h1 is reserved for the
// page title and intentionally absent.
func HeadingTags() []string {
	return []string{"h2", "h3", "h4", "h5", "h6"}
}

// AlertLevels lists the severity choices in display order.
func AlertLevels() []string {
	return []string{LevelError, LevelSuccess, LevelInfo, LevelWarning}
}

// ButtonKinds lists the button class choices.
func ButtonKinds() []string {
	return []string{ButtonPrimary, ButtonSecondary, ButtonTertiary, ButtonTertiaryNoOutline}
}

// IllustrationColors lists the decorative palette used by badges, tags,
// quotes, and column backgrounds.
func IllustrationColors() []string {
	return []string{
		"green-tilleul-verveine",
		"green-bourgeon",
		"green-emeraude",
		"green-menthe",
		"green-archipel",
		"blue-ecume",
		"blue-cumulus",
		"purple-glycine",
		"pink-macaron",
		"pink-tuile",
		"yellow-tournesol",
		"yellow-moutarde",
		"orange-terre-battue",
		"brown-cafe-creme",
		"brown-caramel",
		"brown-opera",
		"beige-gris-galet",
	}
}

// BadgeColors lists every badge color choice: accents, severities, then
// the illustration palette.
func BadgeColors() []string {
	out := []string{BadgeNew, BadgeGrey}
	out = append(out, AlertLevels()...)
	out = append(out, IllustrationColors()...)
	return out
}

// BackgroundColors lists the selectable background classes for column
// and full-width blocks.
func BackgroundColors() []string {
	out := []string{}
	out = append(out, AlertLevels()...)
	out = append(out, IllustrationColors()...)
	return out
}

// ValidImageRatio reports whether ratio is a known ratio class. The empty
// string is valid and means no forced ratio.
func ValidImageRatio(ratio string) bool {
	if ratio == "" {
		return true
	}
	for _, known := range ImageRatios() {
		if known == ratio {
			return true
		}
	}
	for _, known := range HorizontalRatios() {
		if known == ratio {
			return true
		}
	}
	return false
}

// ValidHeadingTag reports whether tag is a selectable heading level.
func ValidHeadingTag(tag string) bool {
	for _, known := range HeadingTags() {
		if known == tag {
			return true
		}
	}
	return false
}
