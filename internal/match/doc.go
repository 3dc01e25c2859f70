// Package match provides name normalization and similarity scoring used to
// suggest the intended preference when a declared name has no mapping.
//
// Key functions:
//   - NormalizeIdent: normalizes names for fuzzy matching
//   - Similarity: Levenshtein based similarity in [0, 1]
//   - Suggest: ranks known names against an unknown one
package match
