// Package project locates the source document, the platform directories and
// the target files of a hybrid app project.
package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"platform-config/internal/common"
)

// Default names inside a project root.
const (
	DefaultSourceFile   = "config.xml"
	DefaultPlatformsDir = "platforms"
)

var (
	// ErrTargetNotFound is returned when no known layout holds the target file.
	ErrTargetNotFound = errors.New("target file not found")
	// ErrAppNameMissing is returned when the source document declares no app name.
	ErrAppNameMissing = errors.New("source document has no name element")
	// ErrNotProject is returned when no source document is found.
	ErrNotProject = errors.New("not a project directory")
)

// manifestLayouts lists manifest locations relative to the android platform
// root, newest layout first.
var manifestLayouts = []string{
	filepath.Join("app", "src", "main", "AndroidManifest.xml"),
	"AndroidManifest.xml",
}

// Layout describes where things live in a project.
type Layout struct {
	Root         string
	SourceFile   string
	PlatformsDir string
}

// NewLayout returns the default layout rooted at root.
func NewLayout(root string) Layout {
	return Layout{
		Root:         root,
		SourceFile:   DefaultSourceFile,
		PlatformsDir: DefaultPlatformsDir,
	}
}

// SourcePath returns the absolute path of the source document.
func (l Layout) SourcePath() string {
	return filepath.Join(l.Root, l.SourceFile)
}

// PlatformRoot returns the directory of a platform.
func (l Layout) PlatformRoot(platform string) string {
	return filepath.Join(l.Root, l.PlatformsDir, platform)
}

// Platform is a prepared platform directory.
type Platform struct {
	// ID is the normalized identifier (trimmed, lower case).
	ID string
	// Dir is the directory name as found on disk.
	Dir string
}

// Platforms lists the platform directories in directory listing order
// (sorted by name). A missing platforms directory yields no platforms.
func (l Layout) Platforms(fs afero.Fs) ([]Platform, error) {
	dir := filepath.Join(l.Root, l.PlatformsDir)

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		exists, existsErr := afero.DirExists(fs, dir)
		if existsErr == nil && !exists {
			return nil, nil
		}

		return nil, fmt.Errorf("listing platforms in %s: %w", dir, err)
	}

	var platforms []Platform

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		platforms = append(platforms, Platform{
			ID:  common.PlatformID(entry.Name()),
			Dir: entry.Name(),
		})
	}

	return platforms, nil
}

// ManifestPath returns the AndroidManifest.xml of the android platform,
// preferring the nested layout over the legacy flat one.
func (l Layout) ManifestPath(fs afero.Fs, platformDir string) (string, error) {
	root := l.PlatformRoot(platformDir)

	for _, rel := range manifestLayouts {
		candidate := filepath.Join(root, rel)

		ok, err := afero.Exists(fs, candidate)
		if err != nil {
			return "", fmt.Errorf("checking %s: %w", candidate, err)
		}

		if ok {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: AndroidManifest.xml in %s", ErrTargetNotFound, root)
}

// InfoPlistPath returns <platform>/<App>/<App>-Info.plist.
func (l Layout) InfoPlistPath(fs afero.Fs, platformDir, appName string) (string, error) {
	if appName == "" {
		return "", ErrAppNameMissing
	}

	path := filepath.Join(l.PlatformRoot(platformDir), appName, appName+"-Info.plist")

	ok, err := afero.Exists(fs, path)
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", path, err)
	}

	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTargetNotFound, path)
	}

	return path, nil
}

// FindRoot walks up from dir until it finds a directory holding sourceFile.
func FindRoot(fs afero.Fs, dir, sourceFile string) (string, error) {
	dir = filepath.Clean(dir)

	for {
		ok, err := afero.Exists(fs, filepath.Join(dir, sourceFile))
		if err != nil {
			return "", err
		}

		if ok {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s above %s", ErrNotProject, sourceFile, dir)
		}

		dir = parent
	}
}
