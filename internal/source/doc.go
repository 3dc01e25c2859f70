// Package source reads override declarations from a project's config.xml.
//
// Two kinds of declarations are extracted:
//   - preference elements (name/value pairs), either global (direct children
//     of the root) or scoped to a platform element
//   - config-file blocks, which are only honoured inside a platform element
//
// A Reader is created once per run and caches per-platform preference lists.
// It never mutates the parsed document, so the cache is safe to share across
// platforms.
package source
