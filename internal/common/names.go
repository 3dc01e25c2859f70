package common

import (
	"path/filepath"
	"strings"
)

// PlatformID normalizes a platform directory name into a platform identifier.
// Returns empty string if name is blank.
func PlatformID(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// BaseName returns the last element of a file path.
// Returns empty string if name is empty.
func BaseName(name string) string {
	if name == "" {
		return ""
	}

	return filepath.Base(name)
}
