package plan

import (
	"fmt"

	"platform-config/internal/diagnostic"
	"platform-config/internal/mapping"
	"platform-config/internal/match"
	"platform-config/internal/source"
)

// suggestionThreshold is the minimum similarity for a "did you mean" hint.
const suggestionThreshold = 0.8

// Build indexes the declarations of one platform into per-target records.
func Build(r *source.Reader, prefs *mapping.PreferenceMap, platform string) *Plan {
	p := &Plan{Platform: platform}

	indexPreferences(p, r.Preferences(platform), prefs)
	indexConfigFiles(p, r.ConfigFiles(platform))

	return p
}

// indexPreferences emits one attribute record per mapped preference.
func indexPreferences(p *Plan, declared []source.Preference, prefs *mapping.PreferenceMap) {
	if !prefs.HasPlatform(p.Platform) {
		for _, pref := range declared {
			p.Diagnostics.AddSkip(diagnostic.ReasonUnmappedPlatform,
				fmt.Sprintf("no preference mappings for platform %q", p.Platform), "", pref.Name)
		}

		return
	}

	known := prefs.Names(p.Platform)

	for i := range declared {
		pref := declared[i]

		entry, ok := prefs.Lookup(p.Platform, pref.Name)
		if !ok {
			p.Diagnostics.AddSkip(diagnostic.ReasonUnmappedPreference,
				"preference has no mapping for this platform", "", pref.Name,
				match.Suggest(pref.Name, known, suggestionThreshold)...)

			continue
		}

		p.add(Record{
			Target:      entry.Target,
			Parent:      entry.Parent,
			Kind:        KindPreference,
			Destination: entry.Destination,
			Preference:  &pref,
		})
	}
}

// indexConfigFiles dedupes blocks by target and normalized parent and emits
// one fragment record per child of each surviving block.
//
// A key keeps the position where it was first declared; a later block with
// the same key replaces the earlier block's children entirely.
func indexConfigFiles(p *Plan, blocks []source.ConfigFile) {
	var order []string

	survivors := make(map[string]source.ConfigFile)

	for _, block := range blocks {
		key := mapping.BlockKey(block.Target, block.Parent)
		if _, seen := survivors[key]; !seen {
			order = append(order, key)
		}

		survivors[key] = block
	}

	for _, key := range order {
		block := survivors[key]
		parent := mapping.NormalizeLocator(block.Parent)

		for _, child := range block.Children {
			p.add(Record{
				Target:      block.Target,
				Parent:      parent,
				Kind:        KindFragment,
				Destination: child.Tag,
				Fragment:    child,
			})
		}
	}
}
