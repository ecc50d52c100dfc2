// Package field binds names to live form fields. A Cache hands out exactly
// one Handle per field name for the lifetime of the form session, so state
// attached through one reference (change listeners, the memoized attribute,
// an offline capability flag) is visible through every other reference to
// the same field.
//
// A handle resolves its underlying form attribute lazily on first use and
// caches it; if the form has no such attribute the access fails fast with
// AttributeNotFoundError rather than returning a placeholder. Lookup
// handles additionally carry the record read/write path, routed through the
// offline capability resolver.
package field
