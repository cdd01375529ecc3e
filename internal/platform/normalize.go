package platform

import (
	"fmt"
	"strings"
)

// familyMap maps distribution names to their canonical family names.
// This is used to normalize variations of family strings from gopsutil.
var familyMap = map[string]string{
	"debian":   FamilyDebian,
	"ubuntu":   FamilyDebian, // gopsutil might return ubuntu as family
	"rhel":     FamilyRHEL,
	"centos":   FamilyRHEL,
	"rocky":    FamilyRHEL,
	"fedora":   FamilyFedora,
	"suse":     FamilySUSE,
	"opensuse": FamilySUSE,
	"arch":     FamilyArch,
	"manjaro":  FamilyArch,
	"alpine":   FamilyAlpine,
	"gentoo":   FamilyGentoo,
}

// NormalizeOS maps a kernel name to a supported OS value.
// It accepts both uname-style kernel names (Linux, Darwin, CYGWIN_NT-10.0,
// MINGW64_NT-10.0, MSYS_NT-10.0, Windows_NT) and Go runtime values.
func NormalizeOS(kernel string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(kernel))

	switch {
	case name == "linux":
		return OSLinux, nil
	case name == "darwin":
		return OSDarwin, nil
	case name == "windows":
		return OSWindows, nil
	case strings.HasPrefix(name, "cygwin"),
		strings.HasPrefix(name, "mingw"),
		strings.HasPrefix(name, "msys"),
		strings.HasPrefix(name, "windows_nt"):
		return OSWindows, nil
	default:
		return "", fmt.Errorf("unsupported operating system: %s (supported: linux, darwin, windows)", kernel)
	}
}

// NormalizeArch maps a machine architecture string to a supported value.
// Both uname machine names and GOARCH values are accepted.
func NormalizeArch(arch string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(arch)) {
	case "x86_64", "amd64":
		return ArchX8664, nil
	case "aarch64", "arm64":
		return ArchAarch64, nil
	default:
		return "", fmt.Errorf("unsupported architecture: %s (supported: x86_64, aarch64)", arch)
	}
}

// normalizePlatform converts platform IDs to lowercase for consistency.
func normalizePlatform(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}

// mapFamily maps distribution family strings to canonical family names.
func mapFamily(family string) string {
	normalized := strings.ToLower(strings.TrimSpace(family))
	if canonical, ok := familyMap[normalized]; ok {
		return canonical
	}

	return FamilyUnknown
}
