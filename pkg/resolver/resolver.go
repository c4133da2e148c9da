package resolver

import (
	"context"

	"github.com/goliatone/go-hints/pkg/cache"
	"github.com/goliatone/go-hints/pkg/model"
)

// Identity of the synthetic fallback section used when neither an override
// nor a hints document supplies a layout.
const (
	DefaultSectionID    = "_default"
	DefaultSectionTitle = "Details"
)

// Resolver applies the precedence chain for one logical caller. It is not
// safe for concurrent use; give each caller its own Resolver the same way
// each caller owns its cache session.
type Resolver struct {
	session *cache.Session
}

// New returns a resolver backed by the given cache session. session may be
// nil, in which case every model resolves to the synthetic default layout.
func New(session *cache.Session) *Resolver {
	return &Resolver{session: session}
}

// Resolve produces the ordered sections to present. Precedence, first match
// wins:
//
//  1. A non-empty explicit override, used verbatim with no cache
//     interaction.
//  2. The named model's hints document, when it declares sections, resolved
//     against fields.
//  3. A single synthetic section holding every field in input order.
//
// A nil and an empty override both mean "no override": an override with no
// sections has nothing to present, so it falls through rather than
// producing an empty form.
func (r *Resolver) Resolve(ctx context.Context, override []model.Section, modelName string, fields []model.Field) ([]model.Section, []model.Warning) {
	if len(override) > 0 {
		return model.CloneSections(override), nil
	}

	if r != nil && r.session != nil && modelName != "" {
		doc, ok := r.session.Cached(modelName)
		if !ok {
			doc = r.session.Document(ctx, modelName)
		}
		if doc.HasSections() {
			return Build(doc.Sections, fields)
		}
	}

	return []model.Section{defaultSection(fields)}, nil
}

func defaultSection(fields []model.Field) model.Section {
	section := model.Section{
		ID:    DefaultSectionID,
		Title: DefaultSectionTitle,
	}
	if len(fields) > 0 {
		section.Fields = append([]model.Field(nil), fields...)
	}
	return section
}
