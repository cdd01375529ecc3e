package binary

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestInstall(t *testing.T) {
	staging := t.TempDir()
	binDir := filepath.Join(t.TempDir(), "bin")

	stagedPath := filepath.Join(staging, "mq-tui-x86_64-unknown-linux-gnu")
	if err := os.WriteFile(stagedPath, []byte("binary"), 0644); err != nil {
		t.Fatalf("write staged file: %v", err)
	}

	installer := NewInstaller(binDir)
	destPath, err := installer.Install(stagedPath, "mq-tui")
	if err != nil {
		t.Fatalf("Install() unexpected error: %v", err)
	}

	if want := filepath.Join(binDir, "mq-tui"); destPath != want {
		t.Errorf("Install() path = %q, want %q", destPath, want)
	}

	info, err := os.Stat(destPath)
	if err != nil {
		t.Fatalf("stat installed binary: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm()&0111 == 0 {
		t.Errorf("installed binary is not executable: %v", info.Mode())
	}

	// The staged file must be gone after a successful install
	if _, err := os.Stat(stagedPath); !os.IsNotExist(err) {
		t.Errorf("staged file still present at %s", stagedPath)
	}
}

func TestInstallReplacesExisting(t *testing.T) {
	staging := t.TempDir()
	binDir := t.TempDir()

	oldPath := filepath.Join(binDir, "mq-tui")
	if err := os.WriteFile(oldPath, []byte("old version"), 0755); err != nil {
		t.Fatalf("write old binary: %v", err)
	}

	stagedPath := filepath.Join(staging, "mq-tui-x86_64-unknown-linux-gnu")
	if err := os.WriteFile(stagedPath, []byte("new version"), 0644); err != nil {
		t.Fatalf("write staged file: %v", err)
	}

	installer := NewInstaller(binDir)
	destPath, err := installer.Install(stagedPath, "mq-tui")
	if err != nil {
		t.Fatalf("Install() unexpected error: %v", err)
	}

	got, err := os.ReadFile(destPath)
	if err != nil {
		t.Fatalf("read installed binary: %v", err)
	}
	if string(got) != "new version" {
		t.Errorf("installed content = %q, want %q", got, "new version")
	}
}

func TestVerifyInstalled(t *testing.T) {
	// Each subtest gets its own bin dir: os.WriteFile's mode argument only
	// applies on creation, so reusing a file written by an earlier subtest
	// would keep its old permissions.
	t.Run("missing binary", func(t *testing.T) {
		installer := NewInstaller(t.TempDir())

		if err := installer.VerifyInstalled("mq-tui"); err == nil {
			t.Error("VerifyInstalled() expected error for missing binary")
		}
	})

	t.Run("not executable", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("executable bit has no meaning on windows")
		}

		installer := NewInstaller(t.TempDir())
		if err := os.WriteFile(installer.BinaryPath("mq-tui"), []byte("binary"), 0644); err != nil {
			t.Fatalf("write binary: %v", err)
		}

		if err := installer.VerifyInstalled("mq-tui"); err == nil {
			t.Error("VerifyInstalled() expected error for non-executable binary")
		}
	})

	t.Run("installed and executable", func(t *testing.T) {
		installer := NewInstaller(t.TempDir())
		if err := os.WriteFile(installer.BinaryPath("mq-tui"), []byte("binary"), 0755); err != nil {
			t.Fatalf("write binary: %v", err)
		}

		if err := installer.VerifyInstalled("mq-tui"); err != nil {
			t.Errorf("VerifyInstalled() unexpected error: %v", err)
		}
	})

	t.Run("executable after chmod", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("executable bit has no meaning on windows")
		}

		installer := NewInstaller(t.TempDir())
		path := installer.BinaryPath("mq-tui")
		if err := os.WriteFile(path, []byte("binary"), 0644); err != nil {
			t.Fatalf("write binary: %v", err)
		}
		if err := SetExecutable(path); err != nil {
			t.Fatalf("SetExecutable() unexpected error: %v", err)
		}

		if err := installer.VerifyInstalled("mq-tui"); err != nil {
			t.Errorf("VerifyInstalled() unexpected error: %v", err)
		}
	})

	t.Run("directory instead of file", func(t *testing.T) {
		dirInstaller := NewInstaller(t.TempDir())
		if err := os.Mkdir(dirInstaller.BinaryPath("mq-tui"), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}

		if err := dirInstaller.VerifyInstalled("mq-tui"); err == nil {
			t.Error("VerifyInstalled() expected error for directory")
		}
	})
}

func TestSetExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit has no meaning on windows")
	}

	path := filepath.Join(t.TempDir(), "mq-tui")
	if err := os.WriteFile(path, []byte("binary"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := SetExecutable(path); err != nil {
		t.Fatalf("SetExecutable() unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}
}
