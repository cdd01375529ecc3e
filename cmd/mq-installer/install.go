package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/harehare/mq-installer/internal/binary"
	"github.com/harehare/mq-installer/internal/config"
	"github.com/harehare/mq-installer/internal/github"
	"github.com/harehare/mq-installer/internal/platform"
	"github.com/harehare/mq-installer/internal/release"
	"github.com/harehare/mq-installer/internal/shell"
	"github.com/harehare/mq-installer/internal/transaction"
)

// installTimeout bounds the whole pipeline including downloads.
const installTimeout = 10 * time.Minute

// installFlags holds command line overrides for the install pipeline
type installFlags struct {
	dir        string
	tag        string
	configPath string
	keyring    string
	noVerify   bool
	verbose    bool
}

// parseInstallFlags parses install options from the argument list
func parseInstallFlags(args []string) (*installFlags, error) {
	flags := &installFlags{}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--dir":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--dir requires a path")
			}
			i++
			flags.dir = args[i]
		case "--tag":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--tag requires a release tag")
			}
			i++
			flags.tag = args[i]
		case "--config":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--config requires a path")
			}
			i++
			flags.configPath = args[i]
		case "--keyring":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--keyring requires a path")
			}
			i++
			flags.keyring = args[i]
		case "--no-verify":
			flags.noVerify = true
		case "--verbose":
			flags.verbose = true
		default:
			return nil, fmt.Errorf("unknown option: %s (see --help)", args[i])
		}
	}

	return flags, nil
}

// loadConfig loads the Lua config (if any) and applies flag overrides
func loadConfig(ctx context.Context, flags *installFlags, platformInfo *platform.Info, homeDir string) (*config.Config, error) {
	parser := config.NewParser(platform.Static(platformInfo))
	if flags.verbose {
		parser.SetLogger(config.NewWriterLogger(os.Stderr))
	}

	configPath := flags.configPath
	if configPath == "" {
		configPath = config.DefaultPath(homeDir)
	}

	cfg, err := parser.Load(ctx, configPath, homeDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %s", config.FormatError(err, flags.verbose))
	}

	if flags.dir != "" {
		cfg.RootDir = config.ExpandHome(flags.dir, homeDir)
	}
	if flags.tag != "" {
		cfg.Version = flags.tag
	}
	if flags.noVerify {
		cfg.Verify = false
	}
	if flags.keyring != "" {
		cfg.Keyring = config.ExpandHome(flags.keyring, homeDir)
	}

	return cfg, nil
}

// resolveVersion resolves the release tag to install: the pinned tag when
// one is configured, otherwise the latest published release.
func resolveVersion(ctx context.Context, cfg *config.Config) (string, error) {
	resolver := release.NewResolver(github.NewClient())

	if cfg.Version != "" {
		return resolver.ResolveTag(ctx, cfg.Repo, cfg.Version)
	}

	return resolver.ResolveLatest(ctx, cfg.Repo)
}

// setupShellIntegration wires the bin directory into the user's shell
// profile. All outcomes are informational; this never fails the install.
func setupShellIntegration(binDir string) {
	integrator, err := shell.NewIntegrator(shell.Config{BinDir: binDir})
	if err != nil {
		fmt.Printf("⚠  PATH setup skipped: %v\n", err)
		return
	}

	result, err := integrator.DetectAndIntegrate()
	if err != nil {
		fmt.Printf("⚠  PATH setup failed: %v\n", err)
		printManualPathHint(binDir)
		return
	}

	switch result.Status {
	case shell.StatusAlreadyInPath:
		fmt.Printf("✓ %s is already in your PATH\n", binDir)
	case shell.StatusAdded:
		fmt.Printf("✓ Added %s to PATH in %s\n", binDir, result.ProfileFile)
		fmt.Printf("  Restart your shell or run: source %s\n", result.ProfileFile)
	case shell.StatusAlreadyPresent:
		fmt.Printf("⚠  %s already references %s; restart your shell to pick it up\n", result.ProfileFile, binDir)
	default:
		fmt.Printf("⚠  No shell profile found for %q\n", result.Shell)
		printManualPathHint(binDir)
	}
}

func printManualPathHint(binDir string) {
	fmt.Println("   Add this to your shell profile manually:")
	fmt.Printf("     export PATH=\"%s:$PATH\"\n", binDir)
}

// runInstall handles the default install pipeline
func runInstall(args []string) error {
	flags, err := parseInstallFlags(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), installTimeout)
	defer cancel()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("get home directory: %w", err)
	}

	// Step 1: Detect platform
	fmt.Println("Detecting platform...")
	detector := platform.NewDetector()
	platformInfo, err := detector.Detect(ctx)
	if err != nil {
		return err
	}
	if distro := platformInfo.GetDistro(); distro != nil {
		fmt.Printf("✓ Detected %s (%s family), %s\n", distro.ID, distro.Family, platformInfo.Triple())
	} else {
		fmt.Printf("✓ Detected %s\n", platformInfo.Triple())
	}

	// Step 2: Load configuration
	cfg, err := loadConfig(ctx, flags, platformInfo, homeDir)
	if err != nil {
		return err
	}

	// Step 3: Guard against concurrent installer runs
	lock, err := transaction.AcquireLock(cfg.RootDir)
	if err != nil {
		return err
	}
	defer lock.Release()

	// Step 4: Resolve version
	fmt.Printf("\nResolving release of %s...\n", cfg.Repo)
	version, err := resolveVersion(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Release %s\n", version)

	// Step 5: Locate the artifact for this platform
	artifact, err := release.Locate(cfg.Repo, cfg.Binary, version, platformInfo)
	if err != nil {
		return err
	}

	// Step 6: Download, verify, install
	fmt.Printf("\nInstalling %s...\n", artifact.Filename)
	manager, err := binary.NewManager(binary.Config{RootDir: cfg.RootDir})
	if err != nil {
		return err
	}

	result, err := manager.Install(ctx, artifact, binary.InstallOptions{
		SkipVerify:  !cfg.Verify,
		KeyringPath: cfg.Keyring,
	})
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Printf("⚠  %s\n", warning)
	}
	if result.Verification.Outcome == binary.OutcomeVerified {
		fmt.Printf("✓ Verified (%s)\n", result.Verification.Method)
	}
	fmt.Printf("✓ Installed %s\n", result.Path)

	// Step 7: Shell PATH integration (never fatal)
	fmt.Println()
	setupShellIntegration(manager.BinDir())

	// Step 8: Final verification of the installed binary
	if err := manager.VerifyInstalled(artifact.BinaryName); err != nil {
		return fmt.Errorf("installation verification failed: %w", err)
	}

	fmt.Println()
	fmt.Printf("%s %s installed. Run: %s\n", cfg.Binary, version, filepath.Base(result.Path))

	return nil
}
