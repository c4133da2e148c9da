package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/goliatone/go-hints/pkg/model"
)

// LoadFunc fetches and parses the hints document for one model. found is
// false when no document exists anywhere; err is reserved for I/O failures
// and context cancellation.
type LoadFunc func(ctx context.Context, modelName string) (doc *model.Document, found bool, err error)

// ExistsFunc reports whether a hints document exists for the model without
// reading it. Preload uses it to skip I/O for models known to have no hints.
type ExistsFunc func(modelName string) bool

// Shared is the process-wide cache tier. One mutex guards both the entry
// map and the phase flag; the flag is additionally an atomic so the read
// path can skip the lock once the tier has become immutable (the map is
// never written again after that point).
type Shared struct {
	mu    sync.Mutex
	state sharedState
}

type sharedState struct {
	entries map[string]*model.Document
	frozen  atomic.Bool
}

// NewShared returns an empty, writable shared tier.
func NewShared() *Shared {
	return &Shared{state: sharedState{entries: make(map[string]*model.Document)}}
}

// Lookup returns the cached document for the model. It takes the lock only
// while the tier is still writable.
func (s *Shared) Lookup(modelName string) (*model.Document, bool) {
	if s == nil {
		return nil, false
	}
	if s.state.frozen.Load() {
		doc, ok := s.state.entries[modelName]
		return doc, ok
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.state.entries[modelName]
	return doc, ok
}

// Store caches a document during the writable phase. The first writer for a
// model wins; later attempts and any attempt after the freeze are refused.
// It returns the document now held for the model and whether this call
// stored it, so racing callers converge on the same value.
func (s *Shared) Store(modelName string, doc *model.Document) (*model.Document, bool) {
	if s == nil || modelName == "" || doc == nil {
		return doc, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.frozen.Load() {
		return doc, false
	}
	if existing, ok := s.state.entries[modelName]; ok {
		return existing, false
	}
	s.state.entries[modelName] = doc
	return doc, true
}

// Frozen reports whether the tier has completed its one-way transition to
// the immutable phase.
func (s *Shared) Frozen() bool {
	return s != nil && s.state.frozen.Load()
}

// Len reports the number of cached models.
func (s *Shared) Len() int {
	if s == nil {
		return 0
	}
	if s.state.frozen.Load() {
		return len(s.state.entries)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.entries)
}

// Preload loads and caches every named model that has a document, then
// freezes the tier. It is idempotent and safe under concurrent callers: the
// phase is checked before any work and re-checked under the lock, and
// stores are first-writer-wins. exists may be nil, in which case every
// model is loaded unconditionally. A load failure aborts without freezing
// so the caller can retry.
func (s *Shared) Preload(ctx context.Context, modelNames []string, exists ExistsFunc, load LoadFunc) error {
	if s == nil || load == nil {
		return nil
	}
	if s.state.frozen.Load() {
		return nil
	}

	for _, name := range modelNames {
		if name == "" {
			continue
		}
		if _, ok := s.Lookup(name); ok {
			continue
		}
		if exists != nil && !exists(name) {
			continue
		}
		doc, found, err := load(ctx, name)
		if err != nil {
			return fmt.Errorf("cache: preload %s: %w", name, err)
		}
		if found {
			s.Store(name, doc)
		}
	}

	s.freeze()
	return nil
}

func (s *Shared) freeze() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.frozen.Load() {
		s.state.frozen.Store(true)
	}
}
