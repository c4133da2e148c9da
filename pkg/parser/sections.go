package parser

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-hints/internal/coerce"
	"github.com/goliatone/go-hints/pkg/model"
)

// parseSections extracts the ordered layout sections from the reserved
// "_sections" array. A section missing its identifier or title is skipped
// with a warning; it never aborts the rest of the document. The section's
// field identifiers are stashed in Metadata[model.FieldRefsKey] for the
// section builder to resolve later.
func parseSections(out *model.Document, value any) []string {
	entries, ok := value.([]any)
	if !ok {
		return nil
	}

	var warnings []string
	seen := make(map[string]struct{}, len(entries))

	for idx, entry := range entries {
		raw, ok := entry.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("section %d skipped: not an object", idx))
			continue
		}

		id, okID := coerce.String(raw["id"])
		title, okTitle := coerce.String(raw["title"])
		title = sanitizeText(title)
		if !okID || !okTitle || title == "" {
			warnings = append(warnings, fmt.Sprintf("section %d skipped: missing id or title", idx))
			continue
		}
		if _, dup := seen[id]; dup {
			warnings = append(warnings, fmt.Sprintf("section %q skipped: duplicate id", id))
			continue
		}
		seen[id] = struct{}{}

		section := model.Section{
			ID:    id,
			Title: title,
		}
		if description, ok := coerce.String(raw["description"]); ok {
			section.Description = sanitizeText(description)
		}
		if style, ok := coerce.String(raw["layoutStyle"]); ok {
			section.LayoutStyle = style
		}
		if collapsible, ok := coerce.Bool(raw["isCollapsible"]); ok {
			section.Collapsible = collapsible
		}
		if collapsed, ok := coerce.Bool(raw["isCollapsed"]); ok {
			section.Collapsed = collapsed
		}
		if metadata, ok := coerce.StringMap(raw["metadata"]); ok {
			section.Metadata = metadata
		}
		if refs, ok := coerce.StringList(raw["fields"]); ok {
			if section.Metadata == nil {
				section.Metadata = make(map[string]string, 1)
			}
			section.Metadata[model.FieldRefsKey] = strings.Join(refs, ",")
		}

		out.Sections = append(out.Sections, section)
	}

	return warnings
}
