// Package platform detects the host operating system and architecture and
// normalizes them to the small set of targets mq-tui is published for.
//
// Detection is strict: a kernel name or machine architecture outside the
// supported set is an error, never a defaulted guess. On Linux the package
// additionally gathers distribution details via gopsutil; distro detection
// failures fall back gracefully since the installer only needs OS and arch.
package platform

import "context"

// Supported operating systems.
const (
	OSLinux   = "linux"
	OSDarwin  = "darwin"
	OSWindows = "windows"
)

// Supported architectures, in release-asset naming.
const (
	ArchX8664   = "x86_64"
	ArchAarch64 = "aarch64"
)

// Linux distribution family constants.
const (
	FamilyDebian  = "debian"
	FamilyRHEL    = "rhel"
	FamilyFedora  = "fedora"
	FamilySUSE    = "suse"
	FamilyArch    = "arch"
	FamilyAlpine  = "alpine"
	FamilyGentoo  = "gentoo"
	FamilyUnknown = "unknown"
)

// Info contains platform detection information.
type Info struct {
	OS       string // "linux", "darwin", "windows"
	Arch     string // "x86_64", "aarch64" (normalized)
	ArchRaw  string // original value before normalization (e.g. "amd64")
	Platform string // distro ID (Linux only, e.g. "ubuntu")
	Family   string // canonical family (e.g. "debian", "rhel")
	Version  string // distro version (Linux only, e.g. "22.04")
}

// Triple returns the target triple used in release asset names,
// e.g. "x86_64-unknown-linux-gnu" or "aarch64-apple-darwin".
func (i *Info) Triple() string {
	switch i.OS {
	case OSDarwin:
		return i.Arch + "-apple-darwin"
	case OSWindows:
		return i.Arch + "-pc-windows-msvc"
	default:
		return i.Arch + "-unknown-linux-gnu"
	}
}

// Distro contains Linux distribution information.
// This is nil on non-Linux platforms.
type Distro struct {
	ID      string
	Family  string
	Version string
}

// GetDistro returns distro information if this is a Linux platform.
// Returns nil for non-Linux platforms or if distro detection failed.
func (i *Info) GetDistro() *Distro {
	if i.OS != OSLinux || i.Platform == "" {
		return nil
	}
	return &Distro{
		ID:      i.Platform,
		Family:  i.Family,
		Version: i.Version,
	}
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == OSLinux
}

// IsMacOS returns true if the platform is macOS.
func (i *Info) IsMacOS() bool {
	return i.OS == OSDarwin
}

// IsWindows returns true if the platform is Windows.
func (i *Info) IsWindows() bool {
	return i.OS == OSWindows
}

// IsX8664 returns true if the architecture is x86_64.
func (i *Info) IsX8664() bool {
	return i.Arch == ArchX8664
}

// IsAarch64 returns true if the architecture is aarch64.
func (i *Info) IsAarch64() bool {
	return i.Arch == ArchAarch64
}

// IsAppleSilicon returns true if running on Apple Silicon (macOS + aarch64).
func (i *Info) IsAppleSilicon() bool {
	return i.OS == OSDarwin && i.Arch == ArchAarch64
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
