package diagnostic

import (
	"fmt"
	"strings"
)

// Diagnostics holds the findings of indexing, merging and applying.
type Diagnostics struct {
	// Errors are fatal: the platform they belong to was not applied.
	Errors []Diagnostic `yaml:"errors,omitempty"`
	// Infos are skipped overrides.
	Infos []Diagnostic `yaml:"infos,omitempty"`
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Code is a unique identifier for this type of diagnostic.
	Code string `yaml:"code"`
	// Message is the human-readable description.
	Message string `yaml:"message"`
	// Target identifies which target file this relates to (if any).
	Target string `yaml:"target,omitempty"`
	// Locator identifies the parent locator or key this relates to (if any).
	Locator string `yaml:"locator,omitempty"`
	// Suggestions are potential fixes or alternatives.
	Suggestions []string `yaml:"suggestions,omitempty"`
}

// Reason explains why an override did not reach its target.
// Skips are not errors: they are recorded as info diagnostics.
type Reason string

const (
	ReasonUnmappedPlatform      Reason = "unmapped_platform"
	ReasonUnmappedPreference    Reason = "unmapped_preference"
	ReasonMainActivityNotFound  Reason = "main_activity_not_found"
	ReasonParentNotFound        Reason = "parent_not_found"
	ReasonInvalidLocator        Reason = "invalid_locator"
	ReasonPreferenceUnsupported Reason = "preference_not_supported"
	ReasonUnsupportedTarget     Reason = "unsupported_target"
)

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, target, locator string) {
	d.Errors = append(d.Errors, Diagnostic{
		Code:    code,
		Message: message,
		Target:  target,
		Locator: locator,
	})
}

// AddSkip records an override that was dropped for the given reason.
func (d *Diagnostics) AddSkip(reason Reason, message, target, locator string, suggestions ...string) {
	d.Infos = append(d.Infos, Diagnostic{
		Code:        string(reason),
		Message:     message,
		Target:      target,
		Locator:     locator,
		Suggestions: suggestions,
	})
}

// Skips returns the info diagnostics recorded with the given reason.
func (d *Diagnostics) Skips(reason Reason) []Diagnostic {
	var out []Diagnostic

	for _, info := range d.Infos {
		if info.Code == string(reason) {
			out = append(out, info)
		}
	}

	return out
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Infos = append(d.Infos, other.Infos...)
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Target != "" {
		prefix = append(prefix, "["+d.Target+"]")
	}

	if d.Locator != "" {
		prefix = append(prefix, d.Locator)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
