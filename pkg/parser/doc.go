// Package parser converts raw hints documents into the typed model. Parsing
// is deliberately lenient: hints are authored by hand outside the build, so
// a malformed field or property degrades to "absent" rather than an error,
// and a broken section is skipped with a warning while the rest of the
// document still parses. The only inputs that yield an empty document are
// payloads that are not valid JSON, YAML, or TOML at all.
package parser
