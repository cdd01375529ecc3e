package binary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/harehare/mq-installer/internal/release"
)

// Manager orchestrates binary download, verification, and installation
type Manager struct {
	rootDir    string
	binDir     string
	downloader *Downloader
	verifier   *Verifier
	installer  *Installer
}

// NewManager creates a new binary manager
func NewManager(config Config) (*Manager, error) {
	if config.RootDir == "" {
		return nil, fmt.Errorf("RootDir is required")
	}

	binDir := filepath.Join(config.RootDir, "bin")

	return &Manager{
		rootDir:    config.RootDir,
		binDir:     binDir,
		downloader: NewDownloader(),
		verifier:   NewVerifier(),
		installer:  NewInstaller(binDir),
	}, nil
}

// BinDir returns the directory binaries are installed into
func (m *Manager) BinDir() string {
	return m.binDir
}

// BinaryPath returns the filesystem path of an installed binary
func (m *Manager) BinaryPath(binaryName string) string {
	return m.installer.BinaryPath(binaryName)
}

// IsInstalled checks if a binary is already installed and executable
func (m *Manager) IsInstalled(binaryName string) bool {
	return m.installer.VerifyInstalled(binaryName) == nil
}

// VerifyInstalled confirms the installed binary exists and is executable
func (m *Manager) VerifyInstalled(binaryName string) error {
	return m.installer.VerifyInstalled(binaryName)
}

// Install downloads, verifies, and installs one release artifact.
//
// The binary download is fatal on failure; the checksum manifest download
// is best-effort and downgrades verification to a warning. A checksum
// mismatch aborts the install with nothing written to the bin directory.
// The staging directory and everything in it are removed on every exit
// path.
func (m *Manager) Install(ctx context.Context, art *release.Artifact, opts InstallOptions) (*InstallResult, error) {
	if art == nil {
		return nil, fmt.Errorf("artifact is required")
	}

	startTime := time.Now()

	if err := os.MkdirAll(m.rootDir, 0755); err != nil {
		return nil, fmt.Errorf("create root dir: %w", err)
	}

	stagingDir, err := os.MkdirTemp(m.rootDir, ".staging-")
	if err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	defer os.RemoveAll(stagingDir)

	result := &InstallResult{Version: art.Version}

	// Download the binary (required)
	stagedBinary := filepath.Join(stagingDir, art.Filename)
	if err := m.downloader.DownloadToFile(ctx, art.DownloadURL, stagedBinary); err != nil {
		return nil, fmt.Errorf("download binary: %w", err)
	}

	// Download the checksum manifest (best-effort). The manifest outcome
	// must be known before deciding verification policy, so this is not
	// issued concurrently with the binary download.
	manifestPath := ""
	if !opts.SkipVerify {
		manifestPath = filepath.Join(stagingDir, release.ChecksumsFile)
		if err := m.downloader.DownloadToFile(ctx, art.ChecksumURL, manifestPath); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("checksum manifest download failed (%v); continuing without verification", err))
			manifestPath = ""
		}
	}

	// Verify
	verification, err := m.verifier.VerifyChecksum(stagedBinary, manifestPath, art.Filename, art.BinaryName)
	if err != nil {
		return nil, fmt.Errorf("verify binary: %w", err)
	}
	if opts.SkipVerify {
		verification.Reason = "verification disabled"
	}
	if verification.Outcome == OutcomeSkipped {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("checksum verification skipped: %s", verification.Reason))
	}
	result.Verification = verification

	// Optional GPG signature verification
	if opts.KeyringPath != "" {
		sigResult, sigWarn, err := m.verifySignature(ctx, art, stagedBinary, stagingDir, opts.KeyringPath)
		if err != nil {
			return nil, err
		}
		if sigWarn != "" {
			result.Warnings = append(result.Warnings, sigWarn)
		}
		if sigResult != nil {
			result.Verification = sigResult
		}
	}

	// Install: the sole mutating step on persistent state
	destPath, err := m.installer.Install(stagedBinary, art.BinaryName)
	if err != nil {
		return nil, err
	}

	result.Path = destPath
	result.InstallTime = time.Since(startTime)

	return result, nil
}

// verifySignature downloads the detached signature and checks it against
// the configured keyring. A missing signature asset is a warning; an
// invalid signature is fatal.
func (m *Manager) verifySignature(ctx context.Context, art *release.Artifact, stagedBinary, stagingDir, keyringPath string) (*VerificationResult, string, error) {
	sigPath := filepath.Join(stagingDir, filepath.Base(art.SignatureURL))
	if err := m.downloader.DownloadToFile(ctx, art.SignatureURL, sigPath); err != nil {
		return nil, fmt.Sprintf("signature download failed (%v); continuing without signature verification", err), nil
	}

	sigResult, err := m.verifier.VerifySignature(stagedBinary, sigPath, keyringPath)
	if err != nil {
		return nil, "", fmt.Errorf("verify signature: %w", err)
	}

	return sigResult, "", nil
}
