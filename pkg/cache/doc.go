// Package cache implements the two-tier hints cache. A Session is scoped to
// one logical caller and needs no synchronisation; a Shared instance is
// process-wide and guards its storage and phase flag with a single mutex so
// a reader can never observe the phase and the storage out of step. The
// shared tier moves one way from writable to immutable when preload
// completes; after that point a miss only ever populates the session tier.
//
// Parsed documents handed out by either tier are immutable views: callers
// must not mutate them and should use Document.Clone when they need to.
package cache
