package mapping

import (
	"maps"
	"slices"
)

// Platforms with a merge engine.
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

// Well-known target file names.
const (
	ManifestTarget = "AndroidManifest.xml"
	PlistTarget    = "*-Info.plist"
)

// Entry maps a named preference to an attribute write in a target file.
type Entry struct {
	Name        string `yaml:"name" toml:"name" json:"name"`
	Target      string `yaml:"target" toml:"target" json:"target"`
	Parent      string `yaml:"parent" toml:"parent" json:"parent"`
	Destination string `yaml:"destination" toml:"destination" json:"destination"`
}

// builtinPreferences is the table of preferences understood out of the box.
// ios is present but empty: no plist key is driven by a preference.
var builtinPreferences = map[string][]Entry{
	PlatformAndroid: {
		{Name: "android-manifest-hardwareAccelerated", Target: ManifestTarget, Parent: RootLocator, Destination: "android:hardwareAccelerated"},
		{Name: "android-installLocation", Target: ManifestTarget, Parent: RootLocator, Destination: "android:installLocation"},
		{Name: "android-activity-hardwareAccelerated", Target: ManifestTarget, Parent: "application", Destination: "android:hardwareAccelerated"},
		{Name: "android-configChanges", Target: ManifestTarget, Parent: MainActivityLocator, Destination: "android:configChanges"},
		{Name: "android-launchMode", Target: ManifestTarget, Parent: MainActivityLocator, Destination: "android:launchMode"},
		{Name: "android-theme", Target: ManifestTarget, Parent: MainActivityLocator, Destination: "android:theme"},
		{Name: "android-windowSoftInputMode", Target: ManifestTarget, Parent: MainActivityLocator, Destination: "android:windowSoftInputMode"},
		{Name: "android-applicationName", Target: ManifestTarget, Parent: "application", Destination: "android:name"},
	},
	PlatformIOS: {},
}

// PreferenceMap is a platform scoped lookup table from preference name to Entry.
// It has no mutators; build a new one to change it.
type PreferenceMap struct {
	platforms map[string]map[string]Entry
}

// Default returns the built-in preference map.
func Default() *PreferenceMap {
	return NewPreferenceMap(nil)
}

// NewPreferenceMap builds a map from the built-in table plus extra entries.
// Extra entries win over built-ins with the same platform and name.
// Entries with an empty parent are attached to the document root.
func NewPreferenceMap(extra map[string][]Entry) *PreferenceMap {
	m := &PreferenceMap{platforms: make(map[string]map[string]Entry)}

	for platform, entries := range builtinPreferences {
		m.add(platform, entries)
	}

	for platform, entries := range extra {
		m.add(platform, entries)
	}

	return m
}

func (m *PreferenceMap) add(platform string, entries []Entry) {
	table, ok := m.platforms[platform]
	if !ok {
		table = make(map[string]Entry, len(entries))
		m.platforms[platform] = table
	}

	for _, e := range entries {
		if e.Name == "" {
			continue
		}

		e.Parent = NormalizeLocator(e.Parent)
		table[e.Name] = e
	}
}

// HasPlatform reports whether the map has a table for platform, even an empty one.
func (m *PreferenceMap) HasPlatform(platform string) bool {
	_, ok := m.platforms[platform]
	return ok
}

// Lookup returns the entry for a preference on a platform.
func (m *PreferenceMap) Lookup(platform, name string) (Entry, bool) {
	e, ok := m.platforms[platform][name]
	return e, ok
}

// Names returns the sorted preference names known for a platform.
func (m *PreferenceMap) Names(platform string) []string {
	return slices.Sorted(maps.Keys(m.platforms[platform]))
}
