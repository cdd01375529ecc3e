// Package config loads the optional installer configuration.
//
// Configuration is a small declarative Lua file evaluated in a sandboxed
// VM with a read-only platform table injected, so settings can differ per
// OS or architecture. A missing config file simply yields the defaults;
// a config file that fails to parse is an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Defaults for the installer configuration.
const (
	// DefaultRepo is the GitHub repository mq-tui is released from
	DefaultRepo = "harehare/mq"
	// DefaultBinary is the base name of the installed binary
	DefaultBinary = "mq-tui"
	// DefaultRootDirName is the installer root directory under $HOME
	DefaultRootDirName = ".mq"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "MQ_INSTALLER_CONFIG"

// Config holds the installer settings.
type Config struct {
	// RootDir is the installer root; binaries go into RootDir/bin
	RootDir string
	// Repo is the GitHub repository identifier ("owner/name")
	Repo string
	// Binary is the base name of the binary to install
	Binary string
	// Version pins a release tag; empty means latest
	Version string
	// Verify enables checksum verification (default true)
	Verify bool
	// Keyring is an optional armored keyring path enabling GPG
	// signature verification
	Keyring string
}

// Default returns the default configuration rooted under the given home
// directory.
func Default(homeDir string) *Config {
	return &Config{
		RootDir: filepath.Join(homeDir, DefaultRootDirName),
		Repo:    DefaultRepo,
		Binary:  DefaultBinary,
		Verify:  true,
	}
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.RootDir == "" {
		return fmt.Errorf("install_dir must not be empty")
	}

	parts := strings.Split(c.Repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("repo must be of the form owner/name, got %q", c.Repo)
	}

	if c.Binary == "" {
		return fmt.Errorf("binary must not be empty")
	}

	return nil
}

// DefaultPath returns the config file path: $MQ_INSTALLER_CONFIG when set,
// otherwise ~/.config/mq-installer/config.lua.
func DefaultPath(homeDir string) string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	return filepath.Join(homeDir, ".config", "mq-installer", "config.lua")
}

// ExpandHome expands a leading "~/" in a path against the given home
// directory.
func ExpandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
