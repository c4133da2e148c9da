package parser

import (
	"github.com/goliatone/go-hints/internal/coerce"
	"github.com/goliatone/go-hints/pkg/model"
)

// Keys recognised inside the reserved "_defaults" object.
const (
	defaultColor        = "color"
	defaultColorMap     = "colors"
	defaultItemColors   = "itemColors"
	defaultDataType     = "dataType"
	defaultComplexity   = "complexity"
	defaultContext      = "context"
	defaultCustom       = "custom"
	defaultPresentation = "presentation"
)

func parseDefaults(out *model.Document, value any) {
	defaults, ok := value.(map[string]any)
	if !ok {
		return
	}

	if color, ok := coerce.String(defaults[defaultColor]); ok {
		out.DefaultColor = color
	}
	if colors, ok := coerce.StringMap(defaults[defaultColorMap]); ok {
		out.ColorMap = colors
	}
	out.ItemColors = parseItemColors(defaults[defaultItemColors])

	if tag, ok := coerce.String(defaults[defaultDataType]); ok {
		out.TypeDefault = tag
	}
	if tag, ok := coerce.String(defaults[defaultComplexity]); ok {
		out.ComplexityDefault = tag
	}
	if tag, ok := coerce.String(defaults[defaultContext]); ok {
		out.ContextDefault = tag
	}
	if custom, ok := coerce.StringMap(defaults[defaultCustom]); ok {
		out.CustomPreferences = custom
	}
	out.Presentation = parsePresentation(defaults[defaultPresentation])
}

func parseItemColors(value any) *model.ItemColorConfig {
	raw, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	field, ok := coerce.String(raw["field"])
	if !ok {
		return nil
	}
	cfg := &model.ItemColorConfig{Field: field}
	if colors, ok := coerce.StringMap(raw["colors"]); ok {
		cfg.Colors = colors
	}
	if fallback, ok := coerce.String(raw["default"]); ok {
		cfg.Default = fallback
	}
	return cfg
}

// parsePresentation accepts a plain style tag or the count-based rule shape
// with a low-count style, a high-count style, and an integer threshold. Any
// other shape is absent.
func parsePresentation(value any) *model.PresentationRule {
	if tag, ok := coerce.String(value); ok {
		return &model.PresentationRule{Style: tag}
	}

	raw, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	low, okLow := coerce.String(raw["lowCount"])
	high, okHigh := coerce.String(raw["highCount"])
	threshold, okThreshold := coerce.Int(raw["threshold"])
	if !okLow || !okHigh || !okThreshold {
		return nil
	}
	return &model.PresentationRule{
		LowCountStyle:  low,
		HighCountStyle: high,
		Threshold:      threshold,
	}
}
