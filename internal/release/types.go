// Package release resolves published mq-tui versions and derives the
// download locations of their per-platform assets.
package release

import "fmt"

// Artifact describes a downloadable release asset for one platform.
// It is fully derived from a version tag and platform information; no
// network access is needed to construct it.
type Artifact struct {
	// Version is the release tag, treated as an opaque token (e.g. "v1.2.0")
	Version string
	// Triple is the platform target triple (e.g. "x86_64-unknown-linux-gnu")
	Triple string
	// Filename is the asset name (e.g. "mq-tui-x86_64-unknown-linux-gnu")
	Filename string
	// BinaryName is the name the binary is installed as ("mq-tui" or "mq-tui.exe")
	BinaryName string
	// DownloadURL is the asset download URL
	DownloadURL string
	// ChecksumURL is the checksum manifest URL for this release
	ChecksumURL string
	// SignatureURL is the detached signature URL (verification is optional)
	SignatureURL string
}

// RepoError represents an invalid repository identifier.
type RepoError struct {
	Repo string
}

func (e *RepoError) Error() string {
	return fmt.Sprintf("invalid repository %q: expected owner/name", e.Repo)
}
