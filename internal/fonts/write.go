// SPDX-FileCopyrightText: 2026 The fonty authors
// SPDX-License-Identifier: MIT

package fonts

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFiles materializes every inline file of the manifest under baseDir.
// Entries are written in manifest order; the first failure aborts the
// remaining iteration. When two entries resolve to the same destination the
// later one wins.
func WriteFiles(m *FontManifest, baseDir string) error {
	for _, f := range m.Files {
		if err := writeEntry(baseDir, f.Filename, []byte(f.Contents)); err != nil {
			return err
		}
	}

	return nil
}

// writeEntry writes data to baseDir/filename, creating parent directories as
// needed and truncating any existing file.
func writeEntry(baseDir, filename string, data []byte) error {
	path, err := destPath(baseDir, filename)
	if err != nil {
		return err
	}

	if err := makeParent(path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDirectoryCreate, filepath.Dir(path), err)
	}

	f, err := openWritableFile(path, 0o640)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrFileWrite, path, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()

		return fmt.Errorf("%w: write %s: %v", ErrFileWrite, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrFileWrite, path, err)
	}

	return nil
}

// destPath joins baseDir and filename and verifies the result has a parent
// component to create.
func destPath(baseDir, filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("%w: empty filename", ErrInvalidPath)
	}

	path := filepath.Join(baseDir, filename)
	if parent := filepath.Dir(path); parent == path {
		return "", fmt.Errorf("%w: %q has no parent directory", ErrInvalidPath, path)
	}

	return path, nil
}

func makeParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	return os.MkdirAll(dir, 0o750)
}

func openWritableFile(path string, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
}
