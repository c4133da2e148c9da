// Package model defines the typed structures produced by the hints parser
// and consumed by the resolver: per-field display hints, layout sections,
// and the parsed document held by the cache tiers. A Document owns its hints
// and sections exclusively; consumers receive copies, never shared mutable
// references, so a cached document can be read concurrently without locks.
package model
