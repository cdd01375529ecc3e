package shell

import (
	"fmt"
	"os"
	"path/filepath"
)

// MarkerComment identifies this installer as the author of a profile edit.
const MarkerComment = "# Added by mq-installer"

// ProfilePath returns the profile file for a shell, or "" when no profile
// can be identified (the caller then asks the user to edit PATH manually).
//
//   - bash: ~/.bashrc, else ~/.bash_profile if present, else ~/.bashrc
//     (created on append)
//   - zsh:  ~/.zshrc only if present
//   - fish: ~/.config/fish/config.fish (parent directory created on append)
func ProfilePath(shell ShellType, homeDir string) (string, error) {
	if err := ValidateShell(shell); err != nil {
		return "", err
	}

	if homeDir == "" {
		var err error
		homeDir, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home directory: %w", err)
		}
	}

	switch shell {
	case ShellBash:
		bashrc := filepath.Join(homeDir, ".bashrc")
		if fileExists(bashrc) {
			return bashrc, nil
		}
		if profile := filepath.Join(homeDir, ".bash_profile"); fileExists(profile) {
			return profile, nil
		}
		return bashrc, nil
	case ShellZsh:
		zshrc := filepath.Join(homeDir, ".zshrc")
		if fileExists(zshrc) {
			return zshrc, nil
		}
		return "", nil
	case ShellFish:
		return filepath.Join(homeDir, ".config", "fish", "config.fish"), nil
	default:
		return "", &UnsupportedShellError{Shell: shell.String()}
	}
}

// ExportLine returns the shell-syntax-specific PATH export for a directory.
func ExportLine(shell ShellType, dir string) (string, error) {
	if err := ValidateShell(shell); err != nil {
		return "", err
	}

	switch shell {
	case ShellFish:
		return fmt.Sprintf(`set -gx PATH "%s" $PATH`, dir), nil
	default:
		return fmt.Sprintf(`export PATH="%s:$PATH"`, dir), nil
	}
}

// fileExists reports whether path exists and is a regular file
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
