package apply

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"platform-config/internal/diagnostic"
	"platform-config/internal/infoplist"
	"platform-config/internal/manifest"
	"platform-config/internal/mapping"
	"platform-config/internal/plan"
	"platform-config/internal/project"
	"platform-config/internal/source"
)

// plistPattern matches the declared names of property-list targets.
const plistPattern = "*Info.plist"

// engine locates and merges one kind of target file.
type engine struct {
	name   string
	locate func(fs afero.Fs, layout project.Layout, dir string, src *source.Reader) (string, error)
	merge  func(data []byte, records []plan.Record) ([]byte, diagnostic.Diagnostics, error)
}

var manifestEngine = engine{
	name: "manifest",
	locate: func(fs afero.Fs, layout project.Layout, dir string, _ *source.Reader) (string, error) {
		return layout.ManifestPath(fs, dir)
	},
	merge: manifest.Apply,
}

var plistEngine = engine{
	name: "infoplist",
	locate: func(fs afero.Fs, layout project.Layout, dir string, src *source.Reader) (string, error) {
		return layout.InfoPlistPath(fs, dir, src.AppName())
	},
	merge: infoplist.Apply,
}

// engineFor returns the engine handling target on platform.
func engineFor(platform, target string) (engine, bool) {
	switch platform {
	case mapping.PlatformAndroid:
		if target == mapping.ManifestTarget {
			return manifestEngine, true
		}
	case mapping.PlatformIOS:
		if ok, _ := doublestar.Match(plistPattern, target); ok {
			return plistEngine, true
		}
	}

	return engine{}, false
}

// targetFile collects the records of every declared target that resolves to
// the same file, in plan order.
type targetFile struct {
	path    string
	engine  engine
	targets []string
	records []plan.Record
}
