package binary

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Installer places a verified staging file at the final install path.
// This is the only component that mutates the persistent install location.
type Installer struct {
	binDir string
}

// NewInstaller creates an installer targeting the given bin directory
func NewInstaller(binDir string) *Installer {
	return &Installer{binDir: binDir}
}

// BinaryPath returns the final install path for a binary name
func (i *Installer) BinaryPath(binaryName string) string {
	return filepath.Join(i.binDir, binaryName)
}

// Install moves the staged file into the bin directory, replacing any
// existing binary, and sets the executable bit. The rename is atomic when
// staging and bin directory share a filesystem; a copy fallback handles
// cross-device staging.
func (i *Installer) Install(stagedPath, binaryName string) (string, error) {
	if err := os.MkdirAll(i.binDir, 0755); err != nil {
		return "", fmt.Errorf("create bin dir: %w", err)
	}

	destPath := i.BinaryPath(binaryName)

	if err := os.Rename(stagedPath, destPath); err != nil {
		if copyErr := copyFile(stagedPath, destPath); copyErr != nil {
			return "", fmt.Errorf("install binary: %w", copyErr)
		}
		os.Remove(stagedPath)
	}

	if err := SetExecutable(destPath); err != nil {
		return "", fmt.Errorf("set executable: %w", err)
	}

	return destPath, nil
}

// VerifyInstalled confirms the installed binary exists and is executable.
// This is the final gate of the pipeline: it catches silent failures in the
// move or permission steps.
func (i *Installer) VerifyInstalled(binaryName string) error {
	destPath := i.BinaryPath(binaryName)

	info, err := os.Stat(destPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("binary not found at %s", destPath)
		}
		return fmt.Errorf("stat binary: %w", err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", destPath)
	}

	// The executable bit has no meaning on Windows
	if runtime.GOOS != "windows" && info.Mode().Perm()&0111 == 0 {
		return fmt.Errorf("%s is not executable", destPath)
	}

	return nil
}

// SetExecutable sets executable permissions on a file
func SetExecutable(path string) error {
	if err := os.Chmod(path, 0755); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	return nil
}

// copyFile copies src to dst, creating or truncating dst.
// Used as a rename fallback when staging and destination are on different
// filesystems.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("copy: %w", err)
	}

	return out.Close()
}
