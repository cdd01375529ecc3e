// Package shell makes the install directory reachable from the user's
// shell by appending a PATH export to the shell's profile file.
//
// Integration is idempotent and never fatal: every outcome short of a
// successful append degrades to information the caller reports.
package shell

import (
	"fmt"
	"strings"
)

// ShellType represents a supported shell
type ShellType string

const (
	// ShellBash represents the Bash shell
	ShellBash ShellType = "bash"
	// ShellZsh represents the Z shell
	ShellZsh ShellType = "zsh"
	// ShellFish represents the Fish shell
	ShellFish ShellType = "fish"
	// ShellUnknown represents an unknown or unsupported shell
	ShellUnknown ShellType = "unknown"
)

// String returns the string representation of the shell type
func (s ShellType) String() string {
	return string(s)
}

// IsValid returns true if the shell type is supported
func (s ShellType) IsValid() bool {
	switch s {
	case ShellBash, ShellZsh, ShellFish:
		return true
	default:
		return false
	}
}

// Status describes the outcome of PATH integration
type Status int

const (
	// StatusAlreadyInPath means the bin directory is already on PATH;
	// nothing was touched
	StatusAlreadyInPath Status = iota
	// StatusAdded means the export line was appended to the profile
	StatusAdded
	// StatusAlreadyPresent means the profile already references the bin
	// directory; no duplicate edit was made
	StatusAlreadyPresent
	// StatusManual means no profile file could be identified and the user
	// must edit PATH themselves
	StatusManual
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusAlreadyInPath:
		return "already in PATH"
	case StatusAdded:
		return "added"
	case StatusAlreadyPresent:
		return "already present"
	default:
		return "manual"
	}
}

// Config holds configuration for the PATH integrator.
// HomeDir and PathEnv default to the real environment when empty.
type Config struct {
	// BinDir is the directory to put on PATH
	BinDir string
	// HomeDir overrides the user home directory (tests)
	HomeDir string
	// PathEnv overrides the current PATH value (tests)
	PathEnv string
}

// IntegrationResult contains the result of PATH integration
type IntegrationResult struct {
	// Shell is the detected or specified shell type
	Shell ShellType
	// ProfileFile is the profile that was inspected or edited (may be empty)
	ProfileFile string
	// Status describes what happened
	Status Status
	// ExportLine is the line that was (or would be) appended
	ExportLine string
}

// DetectionResult contains the result of shell detection
type DetectionResult struct {
	// Shell is the detected shell type
	Shell ShellType
	// Method describes how the shell was detected
	Method string
	// ShellPath is the filesystem path to the shell binary
	ShellPath string
}

// UnsupportedShellError represents an unsupported shell error
type UnsupportedShellError struct {
	Shell string
}

func (e *UnsupportedShellError) Error() string {
	supported := GetSupportedShells()
	names := make([]string, len(supported))
	for i, s := range supported {
		names[i] = s.String()
	}
	return fmt.Sprintf("unsupported shell: %s (supported: %s)", e.Shell, strings.Join(names, ", "))
}

// ProfileError represents an error with shell profile file operations
type ProfileError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ProfileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("profile error (%s): %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("profile error (%s): %s", e.Path, e.Message)
}

func (e *ProfileError) Unwrap() error {
	return e.Cause
}
