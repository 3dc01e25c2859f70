package apply

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"platform-config/internal/diagnostic"
	"platform-config/internal/infoplist"
	"platform-config/internal/project"
	"platform-config/internal/source"
)

// Error codes recorded for failed platforms.
const (
	CodeTargetNotFound  = "target_not_found"
	CodeAppNameMissing  = "app_name_missing"
	CodeMalformedSource = "malformed_source"
	CodeInvalidFragment = "invalid_fragment"
	CodePlatformFailed  = "platform_failed"
)

// TargetResult describes what happened to one target file.
type TargetResult struct {
	// Targets are the declared target names merged into this file.
	Targets []string `yaml:"targets"`
	// Path of the file on disk.
	Path    string `yaml:"path"`
	Records int    `yaml:"records"`
	Changed bool   `yaml:"changed"`
	Written bool   `yaml:"written"`
	// Diff is set in dry-run mode when the file would change.
	Diff      string `yaml:"diff,omitempty"`
	Additions int    `yaml:"additions,omitempty"`
	Deletions int    `yaml:"deletions,omitempty"`
}

// PlatformResult is the outcome for one platform.
type PlatformResult struct {
	Platform    string                 `yaml:"platform"`
	Dir         string                 `yaml:"dir"`
	State       State                  `yaml:"state"`
	Targets     []TargetResult         `yaml:"targets,omitempty"`
	Diagnostics diagnostic.Diagnostics `yaml:"diagnostics,omitempty"`
	Error       string                 `yaml:"error,omitempty"`

	err error
}

// Err returns the error that failed the platform, if any.
func (p *PlatformResult) Err() error {
	return p.err
}

func (p *PlatformResult) fail(err error) {
	p.State = StateFailed
	p.err = err
	p.Error = err.Error()
	p.Diagnostics.AddError(errorCode(err), err.Error(), "", "")
}

// errorCode classifies a platform failure by its sentinel.
func errorCode(err error) string {
	switch {
	case errors.Is(err, project.ErrTargetNotFound):
		return CodeTargetNotFound
	case errors.Is(err, project.ErrAppNameMissing):
		return CodeAppNameMissing
	case errors.Is(err, source.ErrDocumentFormat):
		return CodeMalformedSource
	case errors.Is(err, infoplist.ErrRender):
		return CodeInvalidFragment
	default:
		return CodePlatformFailed
	}
}

// Report is the outcome of one run.
type Report struct {
	RunID     string            `yaml:"run_id"`
	Root      string            `yaml:"root"`
	DryRun    bool              `yaml:"dry_run"`
	Platforms []*PlatformResult `yaml:"platforms"`
	// Error is set when the platforms could not be enumerated.
	Error string `yaml:"error,omitempty"`
}

// Platform returns the result for a platform id, or nil.
func (r *Report) Platform(id string) *PlatformResult {
	for _, p := range r.Platforms {
		if p.Platform == id {
			return p
		}
	}

	return nil
}

// Failed returns the platforms that ended in StateFailed.
func (r *Report) Failed() []*PlatformResult {
	var out []*PlatformResult

	for _, p := range r.Platforms {
		if p.State == StateFailed {
			out = append(out, p)
		}
	}

	return out
}

// YAML renders the report.
func (r *Report) YAML() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	return data, nil
}
