package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/harehare/mq-installer/internal/platform"
)

func TestParseInstallFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    installFlags
		wantErr bool
	}{
		{
			name: "no args",
			args: nil,
			want: installFlags{},
		},
		{
			name: "all flags",
			args: []string{"--dir", "/opt/mq", "--tag", "v1.2.0", "--config", "/etc/mq.lua", "--keyring", "/etc/key.asc", "--no-verify", "--verbose"},
			want: installFlags{
				dir:        "/opt/mq",
				tag:        "v1.2.0",
				configPath: "/etc/mq.lua",
				keyring:    "/etc/key.asc",
				noVerify:   true,
				verbose:    true,
			},
		},
		{
			name:    "dir without value",
			args:    []string{"--dir"},
			wantErr: true,
		},
		{
			name:    "tag without value",
			args:    []string{"--tag"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInstallFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseInstallFlags(%v) expected error", tt.args)
				}
				return
			}

			if err != nil {
				t.Fatalf("parseInstallFlags(%v) unexpected error: %v", tt.args, err)
			}
			if *got != tt.want {
				t.Errorf("parseInstallFlags(%v) = %+v, want %+v", tt.args, *got, tt.want)
			}
		})
	}
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	home := t.TempDir()
	info := &platform.Info{OS: platform.OSLinux, Arch: platform.ArchX8664}

	flags := &installFlags{
		dir:      "~/custom",
		tag:      "v9.9.9",
		noVerify: true,
		keyring:  "~/keys/release.asc",
		// point at a nonexistent config so defaults apply underneath
		configPath: filepath.Join(home, "missing.lua"),
	}

	cfg, err := loadConfig(context.Background(), flags, info, home)
	if err != nil {
		t.Fatalf("loadConfig() unexpected error: %v", err)
	}

	if want := filepath.Join(home, "custom"); cfg.RootDir != want {
		t.Errorf("RootDir = %q, want %q", cfg.RootDir, want)
	}
	if cfg.Version != "v9.9.9" {
		t.Errorf("Version = %q, want v9.9.9", cfg.Version)
	}
	if cfg.Verify {
		t.Error("Verify = true, want false after --no-verify")
	}
	if want := filepath.Join(home, "keys", "release.asc"); cfg.Keyring != want {
		t.Errorf("Keyring = %q, want %q", cfg.Keyring, want)
	}
}

func TestLoadConfigFileAndOverride(t *testing.T) {
	home := t.TempDir()
	info := &platform.Info{OS: platform.OSLinux, Arch: platform.ArchX8664}

	configPath := filepath.Join(home, "config.lua")
	if err := os.WriteFile(configPath, []byte(`installer = { version = "v1.0.0", repo = "myorg/mq" }`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	flags := &installFlags{configPath: configPath, tag: "v2.0.0"}

	cfg, err := loadConfig(context.Background(), flags, info, home)
	if err != nil {
		t.Fatalf("loadConfig() unexpected error: %v", err)
	}

	// The flag wins over the config file
	if cfg.Version != "v2.0.0" {
		t.Errorf("Version = %q, want flag override v2.0.0", cfg.Version)
	}
	if cfg.Repo != "myorg/mq" {
		t.Errorf("Repo = %q, want config value myorg/mq", cfg.Repo)
	}
}
