package hints

import "github.com/goliatone/go-hints/pkg/cache"

var defaultShared = cache.NewShared()

// DefaultShared returns the process-wide shared cache tier. It exists only
// for composition roots that want independently constructed engines to
// converge on one tier (pass it through WithSharedCache); nothing inside
// the resolution logic reaches for it.
func DefaultShared() *cache.Shared {
	return defaultShared
}
