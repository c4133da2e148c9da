// Package resolver produces the final ordered sections for a model by
// walking a fixed precedence chain: an explicit caller-supplied layout, the
// model's parsed hints document, then a single synthetic section holding
// every field. Resolution never fails; missing hints and dangling field
// references degrade to defaults and warnings. For fixed inputs the result
// is the same whether the hints came from a warm cache or a cold load.
package resolver
