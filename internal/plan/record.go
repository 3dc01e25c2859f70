package plan

import (
	"platform-config/internal/diagnostic"
	"platform-config/internal/fragment"
	"platform-config/internal/source"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is the type of an override record.
type Kind int

const (
	// KindPreference sets an attribute on the resolved parent.
	KindPreference Kind = iota // preference
	// KindFragment upserts an element (manifest) or replaces a key (plist).
	KindFragment // config-file
)

// Record is a single override for one target file.
type Record struct {
	// Target is the target file name as declared ("AndroidManifest.xml", "*-Info.plist").
	Target string
	// Parent is the normalized locator of the node or key to change.
	Parent string
	// Kind selects attribute assignment or element upsert.
	Kind Kind
	// Destination is the attribute name (preference) or element tag (fragment).
	Destination string
	// Preference is set for KindPreference records.
	Preference *source.Preference
	// Fragment is set for KindFragment records.
	Fragment *fragment.Node
}

// Value returns the preference value, or empty string for fragments.
func (r Record) Value() string {
	if r.Preference == nil {
		return ""
	}

	return r.Preference.Value
}

// TargetPlan is the ordered list of records for one target file.
type TargetPlan struct {
	Target  string
	Records []Record
}

// Plan is the indexing result for one platform.
type Plan struct {
	// Platform the plan was built for.
	Platform string
	// Targets in order of first appearance.
	Targets []TargetPlan
	// Diagnostics contains skipped declarations.
	Diagnostics diagnostic.Diagnostics
}

// Records returns the records for a target, or nil.
func (p *Plan) Records(target string) []Record {
	for _, tp := range p.Targets {
		if tp.Target == target {
			return tp.Records
		}
	}

	return nil
}

// TargetNames returns the target names in plan order.
func (p *Plan) TargetNames() []string {
	names := make([]string, 0, len(p.Targets))
	for _, tp := range p.Targets {
		names = append(names, tp.Target)
	}

	return names
}

// Len returns the total number of records across all targets.
func (p *Plan) Len() int {
	n := 0
	for _, tp := range p.Targets {
		n += len(tp.Records)
	}

	return n
}

func (p *Plan) add(rec Record) {
	for i := range p.Targets {
		if p.Targets[i].Target == rec.Target {
			p.Targets[i].Records = append(p.Targets[i].Records, rec)
			return
		}
	}

	p.Targets = append(p.Targets, TargetPlan{Target: rec.Target, Records: []Record{rec}})
}
