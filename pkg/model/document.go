package model

// ItemColorConfig colours individual items based on the value of one of
// their fields. Default applies when the field's value has no entry in
// Colors.
type ItemColorConfig struct {
	Field   string            `json:"field"`
	Colors  map[string]string `json:"colors,omitempty"`
	Default string            `json:"default,omitempty"`
}

// PresentationRule selects a presentation style. A plain tag sets Style;
// the count-based form leaves Style empty and picks between LowCountStyle
// and HighCountStyle around Threshold.
type PresentationRule struct {
	Style          string `json:"style,omitempty"`
	LowCountStyle  string `json:"lowCount,omitempty"`
	HighCountStyle string `json:"highCount,omitempty"`
	Threshold      int    `json:"threshold,omitempty"`
}

// StyleFor returns the style to use when presenting count items.
func (r PresentationRule) StyleFor(count int) string {
	if r.Style != "" {
		return r.Style
	}
	if count <= r.Threshold {
		return r.LowCountStyle
	}
	return r.HighCountStyle
}

// Document is the parser's complete output for one model: field hints keyed
// by field identifier, unresolved layout sections, and model-level
// presentation defaults. Nil maps and nil pointers mean absent, so the
// built-in default applies; an empty non-nil map means "explicitly nothing".
type Document struct {
	FieldHints        map[string]FieldHint
	Sections          []Section
	DefaultColor      string
	ColorMap          map[string]string
	ItemColors        *ItemColorConfig
	TypeDefault       string
	ComplexityDefault string
	ContextDefault    string
	CustomPreferences map[string]string
	Presentation      *PresentationRule
}

// Hint returns the hint for the given field identifier.
func (d *Document) Hint(fieldID string) (FieldHint, bool) {
	if d == nil {
		return FieldHint{}, false
	}
	hint, ok := d.FieldHints[fieldID]
	return hint, ok
}

// HasSections reports whether the document declares at least one layout
// section. The resolver uses this to decide between the document's layout
// and the synthetic default section.
func (d *Document) HasSections() bool {
	return d != nil && len(d.Sections) > 0
}

// Clone returns a deep copy of the document so cache consumers never share
// mutable state with the cached value.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{
		DefaultColor:      d.DefaultColor,
		TypeDefault:       d.TypeDefault,
		ComplexityDefault: d.ComplexityDefault,
		ContextDefault:    d.ContextDefault,
	}
	if d.FieldHints != nil {
		out.FieldHints = make(map[string]FieldHint, len(d.FieldHints))
		for id, hint := range d.FieldHints {
			out.FieldHints[id] = hint.Clone()
		}
	}
	out.Sections = CloneSections(d.Sections)
	out.ColorMap = cloneStringMap(d.ColorMap)
	out.CustomPreferences = cloneStringMap(d.CustomPreferences)
	if d.ItemColors != nil {
		cfg := *d.ItemColors
		cfg.Colors = cloneStringMap(d.ItemColors.Colors)
		out.ItemColors = &cfg
	}
	if d.Presentation != nil {
		rule := *d.Presentation
		out.Presentation = &rule
	}
	return out
}
