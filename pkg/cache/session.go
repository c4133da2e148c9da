package cache

import (
	"context"

	"github.com/goliatone/go-hints/pkg/model"
)

// Session is the call-scope cache tier. It belongs to exactly one logical
// caller for its whole lifetime and is therefore unsynchronised. A session
// consults the shared tier first and keeps its own entries for models the
// shared tier does not hold, including negative entries for models known
// to have no hints, so absence is probed at most once per session.
type Session struct {
	shared  *Shared
	load    LoadFunc
	entries map[string]*model.Document
}

// NewSession returns a session backed by the given shared tier and loader.
// shared may be nil for a purely call-scoped cache.
func NewSession(shared *Shared, load LoadFunc) *Session {
	return &Session{
		shared:  shared,
		load:    load,
		entries: make(map[string]*model.Document),
	}
}

// Cached performs a non-blocking lookup across both tiers. ok reports
// whether the model's presence is known; a nil document with ok=true means
// the model is known to have no hints.
func (s *Session) Cached(modelName string) (*model.Document, bool) {
	if s == nil {
		return nil, false
	}
	if doc, ok := s.entries[modelName]; ok {
		return doc, true
	}
	if doc, ok := s.shared.Lookup(modelName); ok {
		return doc, true
	}
	return nil, false
}

// Document returns the parsed hints document for the model, loading and
// parsing it synchronously on a miss. A nil return means the model has no
// hints; load failures are absorbed into that same answer but are not
// cached, so a transient failure (including context cancellation) does not
// poison the session.
//
// During the shared tier's writable phase a fresh document is offered to
// the shared tier first; whichever value the shared tier ends up holding is
// the one cached here, so concurrent sessions converge on a single cached
// value per model. After the freeze the document stays in this session only.
func (s *Session) Document(ctx context.Context, modelName string) *model.Document {
	if s == nil || modelName == "" {
		return nil
	}
	if doc, ok := s.Cached(modelName); ok {
		return doc
	}
	if s.load == nil {
		s.entries[modelName] = nil
		return nil
	}

	doc, found, err := s.load(ctx, modelName)
	if err != nil {
		return nil
	}
	if !found {
		s.entries[modelName] = nil
		return nil
	}

	if s.shared != nil && !s.shared.Frozen() {
		doc, _ = s.shared.Store(modelName, doc)
	}
	s.entries[modelName] = doc
	return doc
}

// Invalidate drops the session's own entry for the model, forcing the next
// Document call to consult the shared tier or re-load. It never touches the
// shared tier; a watcher-driven reload is a call-scope concern.
func (s *Session) Invalidate(modelName string) {
	if s == nil {
		return
	}
	delete(s.entries, modelName)
}
