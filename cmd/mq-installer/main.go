package main

import (
	"fmt"
	"os"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

func main() {
	args := os.Args[1:]

	if len(args) > 0 {
		switch args[0] {
		case "--version", "-V":
			fmt.Printf("mq-installer %s\n", Version)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		case "install":
			args = args[1:]
		}
	}

	if err := runInstall(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("mq-installer - installs the mq-tui binary from GitHub releases")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  mq-installer [install] [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --dir <path>       Install root directory (default: ~/.mq)")
	fmt.Println("  --tag <tag>        Install a specific release tag instead of the latest")
	fmt.Println("  --no-verify        Skip checksum verification")
	fmt.Println("  --keyring <path>   Verify the detached GPG signature against this keyring")
	fmt.Println("  --config <path>    Config file location (default: ~/.config/mq-installer/config.lua)")
	fmt.Println("  --verbose          Verbose output")
	fmt.Println("  --version          Show version information")
	fmt.Println("  --help             Show this help")
}
