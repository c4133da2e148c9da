// Package palette resolves a hints document's colour rules against a
// go-theme manifest. Hints authors may name theme tokens ("brand",
// "danger") instead of literal values; resolution replaces token names with
// the selected theme's token values and passes anything else through
// untouched. Like the rest of the read path it never fails: a missing
// selector, theme, or token degrades to the literal value.
package palette

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-hints/pkg/model"
)

// Colors is the fully resolved colour configuration for one model.
type Colors struct {
	Default string
	ByType  map[string]string
	Items   *model.ItemColorConfig
}

// ForType returns the colour for a value kind, falling back to Default.
func (c Colors) ForType(kind model.ValueKind) string {
	if colour, ok := c.ByType[string(kind)]; ok {
		return colour
	}
	return c.Default
}

// ForItem returns the colour for an item whose keyed field has the given
// value. Empty when no item colouring is configured.
func (c Colors) ForItem(value string) string {
	if c.Items == nil {
		return ""
	}
	if colour, ok := c.Items.Colors[value]; ok {
		return colour
	}
	return c.Items.Default
}

// Resolve maps the document's colour rules through the selected theme's
// tokens. Variant tokens overlay the base manifest tokens, matching how
// go-theme layers variants. selector may be nil; doc may be nil.
func Resolve(doc *model.Document, selector theme.ThemeSelector, themeName, variant string) Colors {
	if doc == nil {
		return Colors{}
	}

	tokens := resolveTokens(selector, themeName, variant)

	out := Colors{Default: lookupToken(tokens, doc.DefaultColor)}
	if doc.ColorMap != nil {
		out.ByType = make(map[string]string, len(doc.ColorMap))
		for kind, colour := range doc.ColorMap {
			out.ByType[kind] = lookupToken(tokens, colour)
		}
	}
	if doc.ItemColors != nil {
		items := &model.ItemColorConfig{
			Field:   doc.ItemColors.Field,
			Default: lookupToken(tokens, doc.ItemColors.Default),
		}
		if doc.ItemColors.Colors != nil {
			items.Colors = make(map[string]string, len(doc.ItemColors.Colors))
			for value, colour := range doc.ItemColors.Colors {
				items.Colors[value] = lookupToken(tokens, colour)
			}
		}
		out.Items = items
	}
	return out
}

func resolveTokens(selector theme.ThemeSelector, themeName, variant string) map[string]string {
	if selector == nil || themeName == "" {
		return nil
	}
	selection, err := selector.Select(themeName, variant)
	if err != nil || selection == nil || selection.Manifest == nil {
		return nil
	}

	manifest := selection.Manifest
	tokens := make(map[string]string, len(manifest.Tokens))
	for name, value := range manifest.Tokens {
		tokens[name] = value
	}
	if selection.Variant != "" {
		if v, ok := manifest.Variants[selection.Variant]; ok {
			for name, value := range v.Tokens {
				tokens[name] = value
			}
		}
	}
	return tokens
}

func lookupToken(tokens map[string]string, colour string) string {
	if colour == "" {
		return ""
	}
	if value, ok := tokens[colour]; ok {
		return value
	}
	return colour
}
