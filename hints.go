// Package hints resolves externally authored presentation metadata for data
// models: per-field display rules, layout sections, colour mappings, and
// extraction aliases. Raw documents come from a source chain, parse leniently
// into typed structures, and are served to concurrent callers through a
// two-tier cache with a fixed precedence chain (explicit override, hints
// document, synthetic default).
//
// The Engine is the composition root: construct one per application, wire a
// source and locale, preload the models you know about, then hand each
// logical caller its own session-backed resolver.
package hints

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-hints/pkg/cache"
	"github.com/goliatone/go-hints/pkg/model"
	"github.com/goliatone/go-hints/pkg/parser"
	"github.com/goliatone/go-hints/pkg/resolver"
	"github.com/goliatone/go-hints/pkg/source"
)

// Aliases re-exported from pkg/model for convenience at the boundary.
type (
	Document   = model.Document
	FieldHint  = model.FieldHint
	Section    = model.Section
	Field      = model.Field
	FieldValue = model.FieldValue
	Warning    = model.Warning
)

// Option customises the engine configuration.
type Option func(*Engine)

// WithBundle supplies the application bundle filesystem probed for hints
// documents (its "Hints" subfolder first, then its root).
func WithBundle(bundle fs.FS) Option {
	return func(e *Engine) {
		e.bundle = bundle
	}
}

// WithUserDataDir supplies the user-data directory whose "Hints" subfolder
// participates in lookup and receives saved documents.
func WithUserDataDir(dir string) Option {
	return func(e *Engine) {
		e.userDataDir = dir
	}
}

// WithProvider replaces the assembled source chain with a custom provider.
func WithProvider(provider source.Provider) Option {
	return func(e *Engine) {
		e.provider = provider
	}
}

// WithLocale sets the locale tag used to resolve extraction aliases.
func WithLocale(tag string) Option {
	return func(e *Engine) {
		e.locale = tag
	}
}

// WithSharedCache replaces the engine's shared cache tier, for callers that
// want several engines to converge on one process-wide tier.
func WithSharedCache(shared *cache.Shared) Option {
	return func(e *Engine) {
		e.shared = shared
	}
}

// WithDiagnostics registers a callback invoked with the parser's non-fatal
// warnings for each document as it is parsed.
func WithDiagnostics(fn func(modelName string, warnings []string)) Option {
	return func(e *Engine) {
		e.diagnostics = fn
	}
}

// Engine owns the wiring between source, parser, and shared cache. It is
// safe for concurrent use; per-caller state lives in the sessions it hands
// out.
type Engine struct {
	bundle      fs.FS
	userDataDir string
	provider    source.Provider
	locale      string
	shared      *cache.Shared
	diagnostics func(string, []string)
}

// New constructs an Engine. Without options the engine has no sources and
// every model resolves to the synthetic default layout.
func New(options ...Option) *Engine {
	e := &Engine{}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	if e.provider == nil {
		e.provider = source.NewBundleChain(e.bundle, e.userDataDir)
	}
	if e.shared == nil {
		e.shared = cache.NewShared()
	}
	return e
}

// Shared exposes the engine's shared cache tier.
func (e *Engine) Shared() *cache.Shared {
	return e.shared
}

// NewSession returns a call-scope cache session for one logical caller.
func (e *Engine) NewSession() *cache.Session {
	return cache.NewSession(e.shared, e.loadFunc())
}

// NewResolver returns a resolver bound to a fresh session. Like the
// session, the resolver belongs to a single caller.
func (e *Engine) NewResolver() *resolver.Resolver {
	return resolver.New(e.NewSession())
}

// Preload loads hints for the named models into the shared tier and then
// freezes it. Idempotent; once the tier is frozen this is a no-op. Models
// with no document are skipped without I/O.
func (e *Engine) Preload(ctx context.Context, modelNames ...string) error {
	return e.shared.Preload(ctx, modelNames, e.provider.Exists, e.loadFunc())
}

// Resolve is the one-shot convenience entry point: it resolves the
// precedence chain using a throwaway session. Callers resolving repeatedly
// should hold their own resolver from NewResolver.
func (e *Engine) Resolve(ctx context.Context, override []Section, modelName string, fields []Field) ([]Section, []Warning) {
	return e.NewResolver().Resolve(ctx, override, modelName, fields)
}

// Save writes a field-hints mapping to the engine's user-data directory.
// This is the only operation in the package that surfaces an error.
func (e *Engine) Save(modelName string, fieldHints map[string]FieldHint) error {
	return source.Save(e.userDataDir, modelName, fieldHints)
}

func (e *Engine) loadFunc() cache.LoadFunc {
	return func(ctx context.Context, modelName string) (*model.Document, bool, error) {
		raw, found, err := e.provider.Load(ctx, modelName)
		if err != nil || !found {
			return nil, found, err
		}
		doc, warnings := parser.Parse(raw, e.locale)
		if e.diagnostics != nil && len(warnings) > 0 {
			e.diagnostics(modelName, warnings)
		}
		return doc, true, nil
	}
}
