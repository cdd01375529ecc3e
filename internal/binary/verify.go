package binary

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp" //nolint:staticcheck // Using ProtonMail's maintained fork
)

// ErrChecksumMismatch is returned when a manifest entry is present and does
// not match the computed digest. Unlike a missing manifest this is never
// downgradeable: it may indicate a corrupted or tampered artifact.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// ErrSignatureInvalid is returned when a detached signature is present and
// does not verify against the keyring.
var ErrSignatureInvalid = errors.New("signature verification failed")

// Verifier handles integrity verification of downloaded binaries
type Verifier struct{}

// NewVerifier creates a new verifier
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyChecksum checks a downloaded binary against a checksum manifest.
//
// manifestPath may be empty when the manifest could not be downloaded; the
// result is then Skipped and installation proceeds with a warning. A
// manifest entry that does not match is a Mismatch and returns
// ErrChecksumMismatch; the caller must abort.
//
// filename is the release asset name used to find the manifest entry;
// binaryName is the installed name, matched for "filename/binaryName"
// style manifest keys.
func (v *Verifier) VerifyChecksum(binaryPath, manifestPath, filename, binaryName string) (*VerificationResult, error) {
	if manifestPath == "" {
		return &VerificationResult{
			Method:  VerificationNone,
			Outcome: OutcomeSkipped,
			Reason:  "checksum manifest unavailable",
		}, nil
	}

	expected, err := findChecksum(manifestPath, filename, binaryName)
	if err != nil {
		// No matching entry or unreadable manifest: integrity checking is
		// best-effort, the artifact itself is required
		return &VerificationResult{
			Method:  VerificationNone,
			Outcome: OutcomeSkipped,
			Reason:  fmt.Sprintf("no usable manifest entry: %v", err),
		}, nil
	}

	actual, err := calculateSHA256(binaryPath)
	if err != nil {
		return nil, fmt.Errorf("calculate checksum: %w", err)
	}

	// Exact case-sensitive comparison on the hex digest
	if actual != expected {
		return &VerificationResult{
				Method:  VerificationSHA256,
				Outcome: OutcomeMismatch,
			}, fmt.Errorf("%w:\nactual:   %s\nexpected: %s",
				ErrChecksumMismatch, actual, expected)
	}

	return &VerificationResult{
		Method:  VerificationSHA256,
		Outcome: OutcomeVerified,
	}, nil
}

// VerifySignature verifies a detached signature against an armored keyring.
// Both armored and binary signatures are accepted.
func (v *Verifier) VerifySignature(binaryPath, signaturePath, keyringPath string) (*VerificationResult, error) {
	keyring, err := loadKeyring(keyringPath)
	if err != nil {
		return nil, fmt.Errorf("load keyring: %w", err)
	}

	binaryFile, err := os.Open(binaryPath)
	if err != nil {
		return nil, fmt.Errorf("open binary: %w", err)
	}
	defer binaryFile.Close()

	sigFile, err := os.Open(signaturePath)
	if err != nil {
		return nil, fmt.Errorf("open signature: %w", err)
	}
	defer sigFile.Close()

	// Verify signature (try armored first)
	_, err = openpgp.CheckArmoredDetachedSignature(keyring, binaryFile, sigFile, nil)
	if err != nil {
		binaryFile.Seek(0, io.SeekStart)
		sigFile.Seek(0, io.SeekStart)
		_, err = openpgp.CheckDetachedSignature(keyring, binaryFile, sigFile, nil)
	}
	if err != nil {
		return &VerificationResult{
			Method:  VerificationGPG,
			Outcome: OutcomeMismatch,
		}, fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}

	return &VerificationResult{
		Method:  VerificationGPG,
		Outcome: OutcomeVerified,
	}, nil
}

// loadKeyring loads a GPG keyring from a file
func loadKeyring(keyringPath string) (openpgp.EntityList, error) {
	keyringFile, err := os.Open(keyringPath)
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	defer keyringFile.Close()

	keyring, err := openpgp.ReadArmoredKeyRing(keyringFile)
	if err != nil {
		// Try reading as non-armored keyring
		keyringFile.Seek(0, io.SeekStart)
		keyring, err = openpgp.ReadKeyRing(keyringFile)
		if err != nil {
			return nil, fmt.Errorf("read keyring: %w", err)
		}
	}

	if len(keyring) == 0 {
		return nil, fmt.Errorf("keyring is empty")
	}

	return keyring, nil
}

// calculateSHA256 calculates the SHA256 checksum of a file
func calculateSHA256(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// findChecksum finds the checksum for a release asset in a checksum manifest.
// Each line is "<hex digest><whitespace><identifier>". The identifier may be
// the plain asset name, a "asset/binary" style key, or a path whose basename
// is the asset name; the first matching line wins.
func findChecksum(manifestPath, filename, binaryName string) (string, error) {
	file, err := os.Open(manifestPath)
	if err != nil {
		return "", fmt.Errorf("open checksum manifest: %w", err)
	}
	defer file.Close()

	tripleKey := filename + "/" + binaryName

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}

		ident := parts[1]
		// Some publishers prefix the identifier with '*' for binary mode
		ident = strings.TrimPrefix(ident, "*")

		if ident == filename || ident == tripleKey {
			return parts[0], nil
		}

		if filepath.Base(ident) == filename {
			return parts[0], nil
		}
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("scan checksum manifest: %w", err)
	}

	return "", fmt.Errorf("checksum not found for %s", filename)
}
