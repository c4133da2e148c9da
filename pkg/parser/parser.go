package parser

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-hints/internal/coerce"
	"github.com/goliatone/go-hints/pkg/model"
)

// Reserved top-level keys that never describe a field.
const (
	keyDefaults = "_defaults"
	keySections = "_sections"
	keyExample  = "_example"
)

// Per-field property keys.
const (
	propFieldType    = "fieldType"
	propOptional     = "isOptional"
	propCollection   = "isCollection"
	propDefault      = "defaultValue"
	propDisplayWidth = "displayWidth"
	propMinLength    = "minLength"
	propMaxLength    = "maxLength"
	propMinValue     = "minValue"
	propMaxValue     = "maxValue"
	propRange        = "range"
	propMetadata     = "metadata"
	propAlias        = "alias"
	propComputedFrom = "computedFrom"
	propWidget       = "widget"
	propOptions      = "options"
	propHidden       = "isHidden"
	propReadOnly     = "isReadOnly"
)

// Parse decodes a raw hints document and extracts its typed contents. The
// payload may be JSON, YAML, or TOML; each format is attempted in that
// order. Parse never fails: an undecodable payload yields an empty document
// and malformed members degrade to absent. The returned warnings describe
// skipped sections and are advisory only.
func Parse(raw []byte, locale string) (*model.Document, []string) {
	decoded, ok := decode(raw)
	if !ok {
		return &model.Document{}, nil
	}
	return ParseMap(decoded, locale)
}

// ParseMap extracts a typed document from an already-decoded hints payload.
func ParseMap(doc map[string]any, locale string) (*model.Document, []string) {
	out := &model.Document{}
	if len(doc) == 0 {
		return out, nil
	}

	var warnings []string

	for key, value := range doc {
		switch key {
		case keyDefaults:
			parseDefaults(out, value)
		case keySections:
			warnings = append(warnings, parseSections(out, value)...)
		case keyExample:
			// Documentation-only sample entry; never a field.
		default:
			props, ok := value.(map[string]any)
			if !ok {
				continue
			}
			if out.FieldHints == nil {
				out.FieldHints = make(map[string]model.FieldHint)
			}
			out.FieldHints[key] = parseFieldHint(props, locale)
		}
	}

	return out, warnings
}

func decode(raw []byte) (map[string]any, bool) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, false
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err == nil {
		return decoded, true
	}

	decoded = nil
	if err := yaml.Unmarshal(raw, &decoded); err == nil && decoded != nil {
		return decoded, true
	}

	decoded = nil
	if err := toml.Unmarshal(raw, &decoded); err == nil && decoded != nil {
		return decoded, true
	}

	return nil, false
}

func parseFieldHint(props map[string]any, locale string) model.FieldHint {
	hint := model.FieldHint{}

	if kind, ok := coerce.String(props[propFieldType]); ok {
		hint.Type = model.ValueKind(kind)
	}
	hint.Optional = boolProp(props, propOptional)
	hint.Collection = boolProp(props, propCollection)
	hint.Hidden = boolProp(props, propHidden)
	hint.ReadOnly = boolProp(props, propReadOnly)

	if value, ok := coerce.Primitive(props[propDefault]); ok {
		hint.Default = value
	}
	if width, ok := coerce.String(props[propDisplayWidth]); ok {
		hint.DisplayWidth = width
	}
	hint.MinLength = intProp(props, propMinLength)
	hint.MaxLength = intProp(props, propMaxLength)
	hint.Range = parseRange(props)

	if metadata, ok := coerce.StringMap(props[propMetadata]); ok {
		hint.Metadata = metadata
	}
	hint.Aliases = parseAliases(props, locale)
	hint.ComputedFrom = parseDependencyGroups(props[propComputedFrom])

	if widget, ok := coerce.String(props[propWidget]); ok {
		hint.Widget = widget
	}
	hint.Options = parseOptions(props[propOptions])

	return hint
}

func boolProp(props map[string]any, key string) *bool {
	value, ok := coerce.Bool(props[key])
	if !ok {
		return nil
	}
	return &value
}

func intProp(props map[string]any, key string) *int {
	value, ok := coerce.Int(props[key])
	if !ok {
		return nil
	}
	return &value
}

// parseRange yields a range only when both bounds parse; a single bound is
// not actionable and is dropped. Saved documents carry the bounds as a
// nested "range" object instead of the flat keys; both shapes are accepted.
func parseRange(props map[string]any) *model.Range {
	min, okMin := coerce.Float(props[propMinValue])
	max, okMax := coerce.Float(props[propMaxValue])
	if okMin && okMax {
		return &model.Range{Min: min, Max: max}
	}
	if nested, ok := props[propRange].(map[string]any); ok {
		min, okMin = coerce.Float(nested["min"])
		max, okMax = coerce.Float(nested["max"])
		if okMin && okMax {
			return &model.Range{Min: min, Max: max}
		}
	}
	return nil
}

// parseAliases resolves OCR extraction aliases with a two-step locale
// fallback: "alias.<locale>" first, then the unqualified "alias" key.
func parseAliases(props map[string]any, locale string) []string {
	if locale != "" {
		if aliases, ok := coerce.StringList(props[propAlias+"."+locale]); ok {
			return aliases
		}
	}
	if aliases, ok := coerce.StringList(props[propAlias]); ok {
		return aliases
	}
	return nil
}

func parseDependencyGroups(value any) [][]string {
	switch v := value.(type) {
	case string:
		if group, ok := coerce.StringList(v); ok {
			return [][]string{group}
		}
	case []any:
		var groups [][]string
		for _, entry := range v {
			if group, ok := coerce.StringList(entry); ok {
				groups = append(groups, group)
			}
		}
		return groups
	}
	return nil
}

func parseOptions(value any) []model.Option {
	entries, ok := value.([]any)
	if !ok {
		return nil
	}
	var options []model.Option
	for _, entry := range entries {
		switch v := entry.(type) {
		case string:
			if v = strings.TrimSpace(v); v != "" {
				options = append(options, model.Option{Value: v, Label: v})
			}
		case map[string]any:
			option, ok := parseOptionPair(v)
			if !ok {
				continue
			}
			options = append(options, option)
		}
	}
	return options
}

func parseOptionPair(raw map[string]any) (model.Option, bool) {
	value, ok := scalar(raw["value"])
	if !ok {
		return model.Option{}, false
	}
	label, ok := coerce.String(raw["label"])
	if !ok {
		label = value
	}
	return model.Option{Value: value, Label: label}, true
}

func scalar(value any) (string, bool) {
	if s, ok := coerce.String(value); ok {
		return s, true
	}
	if b, ok := value.(bool); ok {
		if b {
			return "true", true
		}
		return "false", true
	}
	if f, ok := coerce.Float(value); ok {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}
