package release

import (
	"fmt"
	"strings"

	"github.com/harehare/mq-installer/internal/platform"
)

// ChecksumsFile is the fixed name of the checksum manifest release asset.
const ChecksumsFile = "checksums.txt"

// SplitRepo splits an "owner/name" repository identifier.
func SplitRepo(repo string) (owner, name string, err error) {
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", &RepoError{Repo: repo}
	}
	return parts[0], parts[1], nil
}

// Locate constructs the artifact descriptor for one release on one platform.
// Pattern: https://github.com/{repo}/releases/download/{version}/{binary}-{triple}
// with an .exe suffix on Windows.
//
// Locate is pure: same inputs always yield the same descriptor.
func Locate(repo, binary, version string, info *platform.Info) (*Artifact, error) {
	if _, _, err := SplitRepo(repo); err != nil {
		return nil, err
	}
	if binary == "" {
		return nil, fmt.Errorf("binary name is required")
	}
	if version == "" {
		return nil, fmt.Errorf("version is required")
	}
	if info == nil {
		return nil, fmt.Errorf("platform info is required")
	}

	triple := info.Triple()

	filename := fmt.Sprintf("%s-%s", binary, triple)
	binaryName := binary
	if info.IsWindows() {
		filename += ".exe"
		binaryName += ".exe"
	}

	baseURL := fmt.Sprintf("https://github.com/%s/releases/download/%s", repo, version)

	return &Artifact{
		Version:      version,
		Triple:       triple,
		Filename:     filename,
		BinaryName:   binaryName,
		DownloadURL:  fmt.Sprintf("%s/%s", baseURL, filename),
		ChecksumURL:  fmt.Sprintf("%s/%s", baseURL, ChecksumsFile),
		SignatureURL: fmt.Sprintf("%s/%s.asc", baseURL, filename),
	}, nil
}
