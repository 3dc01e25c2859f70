package apply

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// writeTarget replaces the content of an existing target file, keeping its mode.
func writeTarget(fs afero.Fs, path string, content []byte) error {
	perm := os.FileMode(filePerm)

	if info, err := fs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := afero.WriteFile(fs, path, content, perm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}

// WriteReport writes the YAML report to path.
// It creates the parent directory if it doesn't exist.
func WriteReport(fs afero.Fs, path string, report *Report) error {
	data, err := report.YAML()
	if err != nil {
		return err
	}

	if err := fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	if err := afero.WriteFile(fs, path, data, filePerm); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}

	return nil
}
