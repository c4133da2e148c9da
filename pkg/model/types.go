package model

// ValueKind is the declarative type tag a hints author assigns to a field.
// The set is open; unrecognised tags flow through untouched so consumers can
// extend it without a parser change.
type ValueKind string

const (
	ValueKindString  ValueKind = "string"
	ValueKindInteger ValueKind = "integer"
	ValueKindNumber  ValueKind = "number"
	ValueKindBoolean ValueKind = "boolean"
	ValueKindDate    ValueKind = "date"
	ValueKindURL     ValueKind = "url"
	ValueKindArray   ValueKind = "array"
	ValueKindObject  ValueKind = "object"
)

// Range bounds a numeric field. The parser only produces a Range when both
// bounds are present; a single bound is not actionable.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether value falls inside the inclusive range.
func (r Range) Contains(value float64) bool {
	return value >= r.Min && value <= r.Max
}

// Option is one selectable value/label pair for enumerated fields.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldHint describes one field's declarative type and display behaviour as
// authored in a hints document. Pointer fields distinguish "absent" from the
// zero value; absent means the consumer falls back to its own default.
type FieldHint struct {
	Type         ValueKind         `json:"fieldType,omitempty"`
	Optional     *bool             `json:"isOptional,omitempty"`
	Collection   *bool             `json:"isCollection,omitempty"`
	Default      any               `json:"defaultValue,omitempty"`
	DisplayWidth string            `json:"displayWidth,omitempty"`
	MinLength    *int              `json:"minLength,omitempty"`
	MaxLength    *int              `json:"maxLength,omitempty"`
	Range        *Range            `json:"range,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Aliases      []string          `json:"alias,omitempty"`
	ComputedFrom [][]string        `json:"computedFrom,omitempty"`
	Widget       string            `json:"widget,omitempty"`
	Options      []Option          `json:"options,omitempty"`
	Hidden       *bool             `json:"isHidden,omitempty"`
	ReadOnly     *bool             `json:"isReadOnly,omitempty"`
}

// FullyDeclarative reports whether the hint carries enough information to
// present the field without inspecting its runtime value: both the value
// kind and the optionality must be authored. This is always computed, never
// stored, so it can not drift from the underlying attributes.
func (h FieldHint) FullyDeclarative() bool {
	return h.Type != "" && h.Optional != nil
}

// Clone returns a deep copy of the hint.
func (h FieldHint) Clone() FieldHint {
	out := h
	out.Metadata = cloneStringMap(h.Metadata)
	out.Aliases = cloneStringSlice(h.Aliases)
	if h.Range != nil {
		r := *h.Range
		out.Range = &r
	}
	out.Optional = cloneBool(h.Optional)
	out.Collection = cloneBool(h.Collection)
	out.Hidden = cloneBool(h.Hidden)
	out.ReadOnly = cloneBool(h.ReadOnly)
	out.MinLength = cloneInt(h.MinLength)
	out.MaxLength = cloneInt(h.MaxLength)
	if len(h.ComputedFrom) > 0 {
		out.ComputedFrom = make([][]string, len(h.ComputedFrom))
		for idx, group := range h.ComputedFrom {
			out.ComputedFrom[idx] = cloneStringSlice(group)
		}
	}
	if len(h.Options) > 0 {
		out.Options = append([]Option(nil), h.Options...)
	}
	return out
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cloneStringSlice(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneBool(in *bool) *bool {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}

func cloneInt(in *int) *int {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}
