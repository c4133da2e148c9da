package resolver

import (
	"strings"

	"github.com/goliatone/go-hints/pkg/model"
)

// Build resolves parsed sections against a concrete field set. Each
// section's stored identifier list is looked up in a one-time id→field
// table; matches keep the order the section specifies, not the order of
// fields. Identifiers with no match are omitted and reported in a warning
// per section. The temporary identifier metadata is stripped from the
// resolved sections.
func Build(sections []model.Section, fields []model.Field) ([]model.Section, []model.Warning) {
	if len(sections) == 0 {
		return nil, nil
	}

	byID := make(map[string]model.Field, len(fields))
	for _, field := range fields {
		if field == nil {
			continue
		}
		byID[field.FieldID()] = field
	}

	out := make([]model.Section, 0, len(sections))
	var warnings []model.Warning

	for _, section := range sections {
		resolved := section.Clone()

		refs := splitRefs(resolved.Metadata[model.FieldRefsKey])
		delete(resolved.Metadata, model.FieldRefsKey)
		if len(resolved.Metadata) == 0 {
			resolved.Metadata = nil
		}

		var missing []string
		for _, ref := range refs {
			field, ok := byID[ref]
			if !ok {
				missing = append(missing, ref)
				continue
			}
			resolved.Fields = append(resolved.Fields, field)
		}
		if len(missing) > 0 {
			warnings = append(warnings, model.Warning{Section: resolved.ID, Missing: missing})
		}

		out = append(out, resolved)
	}

	return out, warnings
}

func splitRefs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	refs := make([]string, 0, len(parts))
	for _, part := range parts {
		if ref := strings.TrimSpace(part); ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}
