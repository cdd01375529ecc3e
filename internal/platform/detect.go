package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using actual platform detection.
type RealDetector struct{}

// staticDetector returns a fixed Info. It lets a single detection result
// be reused by components that take a Detector.
type staticDetector struct {
	info *Info
}

// Static returns a Detector that always yields info.
func Static(info *Info) Detector {
	return &staticDetector{info: info}
}

func (d *staticDetector) Detect(ctx context.Context) (*Info, error) {
	return d.info, nil
}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect performs platform detection and returns platform information.
// It normalizes runtime.GOOS and runtime.GOARCH through the same tables
// used for uname-style input, and uses gopsutil for Linux distribution
// details.
//
// An unsupported OS or architecture is a hard failure: mq-tui publishes
// binaries for a fixed target set and guessing would produce a broken
// download URL. Distro detection failures are not fatal; the installer
// continues with OS and arch only.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	osName, err := NormalizeOS(runtime.GOOS)
	if err != nil {
		return nil, fmt.Errorf("platform detection failed: %w", err)
	}

	arch, err := NormalizeArch(runtime.GOARCH)
	if err != nil {
		return nil, fmt.Errorf("platform detection failed: %w", err)
	}

	info := &Info{
		OS:      osName,
		Arch:    arch,
		ArchRaw: runtime.GOARCH,
	}

	// Detect Linux distribution details using gopsutil (Linux only)
	if info.OS == OSLinux {
		platform, family, version, err := host.PlatformInformationWithContext(ctx)
		if err != nil {
			// Check if context was cancelled - this is a hard failure
			if ctx.Err() != nil {
				return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
			}
			// Graceful fallback: OS and arch are enough to build the
			// download URL
			return info, nil
		}

		platform = normalizePlatform(platform)
		family = mapFamily(family)
		version = normalizePlatform(version)

		if platform != "" {
			info.Platform = platform
			info.Family = family
			info.Version = version
		}
	}

	return info, nil
}
