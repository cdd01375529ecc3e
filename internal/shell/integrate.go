package shell

import (
	"fmt"
	"os"
	"path/filepath"
)

// Integrator makes the bin directory reachable from the user's shell
type Integrator struct {
	binDir  string
	homeDir string
	pathEnv string
}

// NewIntegrator creates a new PATH integrator
func NewIntegrator(config Config) (*Integrator, error) {
	if config.BinDir == "" {
		return nil, fmt.Errorf("BinDir is required")
	}

	pathEnv := config.PathEnv
	if pathEnv == "" {
		pathEnv = os.Getenv("PATH")
	}

	return &Integrator{
		binDir:  config.BinDir,
		homeDir: config.HomeDir,
		pathEnv: pathEnv,
	}, nil
}

// Integrate idempotently wires the bin directory into the shell's profile.
//
// Outcomes, checked in order:
//  1. bin directory already on PATH: nothing to do
//  2. profile identified and does not mention the directory: append the
//     marker comment and export line
//  3. profile already mentions the directory: no duplicate edit
//  4. no profile identified: the user must edit PATH manually
//
// Errors from this component are informational; they never fail the
// installation.
func (i *Integrator) Integrate(shellType ShellType) (*IntegrationResult, error) {
	result := &IntegrationResult{Shell: shellType}

	if dirInPath(i.binDir, i.pathEnv) {
		result.Status = StatusAlreadyInPath
		return result, nil
	}

	if err := ValidateShell(shellType); err != nil {
		result.Status = StatusManual
		return result, err
	}

	profile, err := ProfilePath(shellType, i.homeDir)
	if err != nil {
		result.Status = StatusManual
		return result, err
	}
	if profile == "" {
		result.Status = StatusManual
		return result, nil
	}
	result.ProfileFile = profile

	exportLine, err := ExportLine(shellType, i.binDir)
	if err != nil {
		result.Status = StatusManual
		return result, err
	}
	result.ExportLine = exportLine

	present, err := FileContains(profile, i.binDir)
	if err != nil {
		result.Status = StatusManual
		return result, err
	}
	if present {
		result.Status = StatusAlreadyPresent
		return result, nil
	}

	block := fmt.Sprintf("\n%s\n%s\n", MarkerComment, exportLine)
	if err := AppendBlock(profile, block); err != nil {
		result.Status = StatusManual
		return result, err
	}

	result.Status = StatusAdded
	return result, nil
}

// DetectAndIntegrate detects the user's shell and wires up its profile
func (i *Integrator) DetectAndIntegrate() (*IntegrationResult, error) {
	return i.integrateDetected(DetectShell())
}

func (i *Integrator) integrateDetected(detection *DetectionResult) (*IntegrationResult, error) {
	if !detection.Shell.IsValid() {
		// Still honor the already-in-PATH short circuit for unknown shells
		if dirInPath(i.binDir, i.pathEnv) {
			return &IntegrationResult{
				Shell:  detection.Shell,
				Status: StatusAlreadyInPath,
			}, nil
		}
		return &IntegrationResult{
			Shell:  detection.Shell,
			Status: StatusManual,
		}, &UnsupportedShellError{Shell: detection.Shell.String()}
	}

	return i.Integrate(detection.Shell)
}

// dirInPath reports whether dir is one of the entries of the given PATH
// value.
func dirInPath(dir, pathEnv string) bool {
	clean := filepath.Clean(dir)

	for _, entry := range filepath.SplitList(pathEnv) {
		if entry == "" {
			continue
		}
		if filepath.Clean(entry) == clean {
			return true
		}
	}

	return false
}
