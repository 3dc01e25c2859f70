package plan

import (
	"gopkg.in/yaml.v3"

	"platform-config/internal/diagnostic"
	"platform-config/internal/fragment"
)

// ExportedPlan is the serializable form of a Plan.
type ExportedPlan struct {
	Platform string                  `yaml:"platform"`
	Targets  []ExportedTarget        `yaml:"targets"`
	Skipped  []diagnostic.Diagnostic `yaml:"skipped,omitempty"`
}

// ExportedTarget lists the records of one target file.
type ExportedTarget struct {
	Target  string           `yaml:"target"`
	Records []ExportedRecord `yaml:"records"`
}

// ExportedRecord is a single record as written to YAML.
type ExportedRecord struct {
	Kind        string         `yaml:"kind"`
	Parent      string         `yaml:"parent"`
	Destination string         `yaml:"destination"`
	Preference  string         `yaml:"preference,omitempty"`
	Value       string         `yaml:"value,omitempty"`
	Fragment    *fragment.Node `yaml:"fragment,omitempty"`
}

// Export converts a plan into its serializable form.
func Export(p *Plan) *ExportedPlan {
	out := &ExportedPlan{
		Platform: p.Platform,
		Targets:  make([]ExportedTarget, 0, len(p.Targets)),
		Skipped:  p.Diagnostics.Infos,
	}

	for _, tp := range p.Targets {
		et := ExportedTarget{Target: tp.Target}

		for _, rec := range tp.Records {
			er := ExportedRecord{
				Kind:        rec.Kind.String(),
				Parent:      rec.Parent,
				Destination: rec.Destination,
				Fragment:    rec.Fragment,
			}

			if rec.Preference != nil {
				er.Preference = rec.Preference.Name
				er.Value = rec.Preference.Value
			}

			et.Records = append(et.Records, er)
		}

		out.Targets = append(out.Targets, et)
	}

	return out
}

// ExportYAML renders plans as a YAML document.
func ExportYAML(plans ...*Plan) ([]byte, error) {
	exported := make([]*ExportedPlan, 0, len(plans))
	for _, p := range plans {
		exported = append(exported, Export(p))
	}

	return yaml.Marshal(exported)
}
