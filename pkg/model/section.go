package model

// FieldRefsKey is the temporary metadata key under which the parser stores a
// section's comma-separated field identifiers. The section builder consumes
// and removes it when it swaps identifiers for concrete Field instances.
const FieldRefsKey = "fields"

// Section is an ordered, named grouping of fields for display. Freshly
// parsed sections carry field identifiers in Metadata[FieldRefsKey] and an
// empty Fields slice; the section builder populates Fields and strips the
// key. Sections are not mutated after that.
type Section struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Fields      []Field           `json:"-"`
	Collapsible bool              `json:"isCollapsible,omitempty"`
	Collapsed   bool              `json:"isCollapsed,omitempty"`
	LayoutStyle string            `json:"layoutStyle,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Clone returns a copy of the section. Field instances are shared (they are
// caller-owned), everything else is copied.
func (s Section) Clone() Section {
	out := s
	out.Metadata = cloneStringMap(s.Metadata)
	if s.Fields != nil {
		out.Fields = append([]Field(nil), s.Fields...)
	}
	return out
}

// CloneSections copies a section slice, cloning each element.
func CloneSections(sections []Section) []Section {
	if sections == nil {
		return nil
	}
	out := make([]Section, len(sections))
	for idx, section := range sections {
		out[idx] = section.Clone()
	}
	return out
}

// Warning reports field identifiers referenced by a section that do not
// exist in the concrete field set. Warnings are advisory; the offending
// identifiers are omitted and the section still resolves.
type Warning struct {
	Section string
	Missing []string
}

func (w Warning) String() string {
	msg := "section " + w.Section + ": unknown fields"
	for idx, id := range w.Missing {
		if idx == 0 {
			msg += " " + id
			continue
		}
		msg += ", " + id
	}
	return msg
}
