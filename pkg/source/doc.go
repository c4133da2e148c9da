// Package source locates raw hints documents for the parser. Lookup walks a
// fixed chain of locations (bundled "Hints" folder, bundle root, user-data
// "Hints" folder) and first found wins; a model with no document anywhere is
// "no hints", not an error. The package also carries the explicit write path
// used to save a hints mapping back to disk and a filesystem watcher that
// reports edits to authored documents.
package source
