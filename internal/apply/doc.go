// Package apply runs a full merge over a project.
//
// An Applier enumerates the prepared platforms, indexes the source document
// for each one and hands the records of every target file to the matching
// merge engine (internal/manifest or internal/infoplist). Each platform goes
// through the states Discovered, Indexed and then Applied or Failed. A
// failure is recorded in the Report and never stops the remaining platforms.
//
// In dry-run mode nothing is written; every changed target carries a unified
// diff instead.
package apply
