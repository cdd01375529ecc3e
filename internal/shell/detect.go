package shell

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// DetectShell detects the user's shell using multiple methods
func DetectShell() *DetectionResult {
	// Method 1: $SHELL environment variable (most reliable)
	if shellPath := os.Getenv("SHELL"); shellPath != "" {
		if shellType := parseShellFromPath(shellPath); shellType.IsValid() {
			return &DetectionResult{
				Shell:     shellType,
				Method:    "$SHELL environment variable",
				ShellPath: shellPath,
			}
		}
	}

	// Method 2: parent process name (covers invocation via curl | sh where
	// $SHELL may be unset)
	if shellType, shellPath := detectFromParentProcess(); shellType.IsValid() {
		return &DetectionResult{
			Shell:     shellType,
			Method:    "parent process",
			ShellPath: shellPath,
		}
	}

	return &DetectionResult{
		Shell:  ShellUnknown,
		Method: "detection failed",
	}
}

// parseShellFromPath extracts the shell type from a shell binary path
// Examples:
//   - /bin/bash -> bash
//   - /usr/bin/zsh -> zsh
//   - /usr/local/bin/fish -> fish
func parseShellFromPath(shellPath string) ShellType {
	baseName := strings.ToLower(filepath.Base(shellPath))

	// Strip a login-shell dash and Windows suffix
	baseName = strings.TrimPrefix(baseName, "-")
	baseName = strings.TrimSuffix(baseName, ".exe")

	switch baseName {
	case "bash":
		return ShellBash
	case "zsh":
		return ShellZsh
	case "fish":
		return ShellFish
	default:
		return ShellUnknown
	}
}

// detectFromParentProcess walks up the process tree looking for a known
// shell. The walk is bounded since PID 1 loops to itself on some systems.
func detectFromParentProcess() (ShellType, string) {
	proc, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		return ShellUnknown, ""
	}

	for depth := 0; depth < 8; depth++ {
		name, err := proc.Name()
		if err != nil {
			return ShellUnknown, ""
		}

		if shellType := parseShellFromPath(name); shellType.IsValid() {
			exe, _ := proc.Exe()
			return shellType, exe
		}

		proc, err = proc.Parent()
		if err != nil {
			return ShellUnknown, ""
		}
	}

	return ShellUnknown, ""
}

// ValidateShell validates that a shell type is supported
func ValidateShell(shell ShellType) error {
	if !shell.IsValid() {
		return &UnsupportedShellError{Shell: shell.String()}
	}
	return nil
}

// GetSupportedShells returns a list of supported shells
func GetSupportedShells() []ShellType {
	return []ShellType{ShellBash, ShellZsh, ShellFish}
}
