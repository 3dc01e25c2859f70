// Package plan turns the declarations read from config.xml into ordered,
// per-target override records consumed by the merge engines.
//
// Indexing pipeline for one platform:
//  1. Preferences (global, then platform scoped) → look up the static
//     preference map; hits become attribute records, misses are dropped
//     with an info diagnostic
//  2. config-file blocks → dedupe by target and normalized parent (last
//     block wins) → one fragment record per child element
//  3. Emit records per target: preferences first, then fragments block by
//     block. This is the order the merge engines apply them in.
package plan
