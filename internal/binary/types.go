// Package binary downloads, verifies, and installs the mq-tui binary.
//
// All download and verification work happens on files inside a per-run
// staging directory; the only operation that touches the final install
// path is the atomic rename performed after verification succeeds or is
// explicitly skipped.
package binary

import (
	"time"
)

// Outcome is the result of integrity verification.
type Outcome int

const (
	// OutcomeSkipped means verification could not be performed (no manifest,
	// no matching entry, or verification disabled). Installation proceeds
	// with a warning.
	OutcomeSkipped Outcome = iota
	// OutcomeVerified means the computed digest matched the manifest entry.
	OutcomeVerified
	// OutcomeMismatch means a manifest entry was present and did not match.
	// This aborts the installation.
	OutcomeMismatch
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeVerified:
		return "verified"
	case OutcomeMismatch:
		return "mismatch"
	default:
		return "skipped"
	}
}

// VerificationMethod indicates how a binary was verified
type VerificationMethod int

const (
	// VerificationNone indicates verification was skipped
	VerificationNone VerificationMethod = iota
	// VerificationSHA256 indicates SHA256 checksum verification was used
	VerificationSHA256
	// VerificationGPG indicates GPG signature verification was used
	VerificationGPG
)

// String returns the string representation of the verification method
func (v VerificationMethod) String() string {
	switch v {
	case VerificationSHA256:
		return "SHA256"
	case VerificationGPG:
		return "GPG"
	default:
		return "None"
	}
}

// VerificationResult contains the outcome of a verification attempt
type VerificationResult struct {
	Method  VerificationMethod
	Outcome Outcome
	// Reason explains a skipped verification (e.g. "checksum manifest unavailable")
	Reason string
}

// Config holds configuration for the binary manager.
// Paths are injected here rather than read from module globals so the
// manager is testable in isolation.
type Config struct {
	// RootDir is the installer root (default: ~/.mq). Binaries are
	// installed into RootDir/bin and staging directories are created
	// under RootDir.
	RootDir string
}

// InstallOptions configures a single install run
type InstallOptions struct {
	// SkipVerify disables checksum verification entirely
	SkipVerify bool
	// KeyringPath enables GPG signature verification against the given
	// armored keyring file (optional)
	KeyringPath string
}

// InstallResult contains information about a completed installation
type InstallResult struct {
	Version      string
	Path         string
	Verification *VerificationResult
	InstallTime  time.Duration
	// Warnings collects non-fatal conditions for the caller to report
	Warnings []string
}
