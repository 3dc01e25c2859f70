// Package diagnostic provides structured platform errors and
// "why this was skipped" explanations for the platform config merge.
//
// Key capabilities:
//   - Skip reasons for overrides that were dropped on purpose
//     (unmapped preferences, unresolved parents, unsupported targets)
//   - "Did you mean" suggestions for near-miss preference names
//   - Per-target attribution of every message
package diagnostic
