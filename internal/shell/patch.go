package shell

import (
	"os"
	"path/filepath"
	"strings"
)

// FileContains reports whether the file at path contains needle.
// A missing file contains nothing.
func FileContains(path, needle string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &ProfileError{
			Path:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	return strings.Contains(string(content), needle), nil
}

// AppendBlock appends a block of text to the file at path, creating the
// file and its parent directories when absent. The write is atomic: the
// new content is staged in a temporary file in the same directory and
// renamed over the original.
func AppendBlock(path, block string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &ProfileError{
			Path:    path,
			Message: "failed to create parent directory",
			Cause:   err,
		}
	}

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return &ProfileError{
			Path:    path,
			Message: "failed to read existing file",
			Cause:   err,
		}
	}

	tmpFile, err := os.CreateTemp(dir, ".mq-installer-tmp-*")
	if err != nil {
		return &ProfileError{
			Path:    path,
			Message: "failed to create temporary file",
			Cause:   err,
		}
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath) // Clean up on error

	if len(existing) > 0 {
		if _, err := tmpFile.Write(existing); err != nil {
			tmpFile.Close()
			return &ProfileError{
				Path:    path,
				Message: "failed to write existing content",
				Cause:   err,
			}
		}

		if !strings.HasSuffix(string(existing), "\n") {
			if _, err := tmpFile.WriteString("\n"); err != nil {
				tmpFile.Close()
				return &ProfileError{
					Path:    path,
					Message: "failed to write newline",
					Cause:   err,
				}
			}
		}
	}

	if !strings.HasSuffix(block, "\n") {
		block += "\n"
	}

	if _, err := tmpFile.WriteString(block); err != nil {
		tmpFile.Close()
		return &ProfileError{
			Path:    path,
			Message: "failed to write block",
			Cause:   err,
		}
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return &ProfileError{
			Path:    path,
			Message: "failed to sync file",
			Cause:   err,
		}
	}

	tmpFile.Close()

	if err := os.Rename(tmpPath, path); err != nil {
		return &ProfileError{
			Path:    path,
			Message: "failed to rename temp file",
			Cause:   err,
		}
	}

	return nil
}
