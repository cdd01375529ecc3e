package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/harehare/mq-installer/internal/platform"
	lua "github.com/yuin/gopher-lua"
)

// Parser evaluates Lua installer configs with platform conditionals.
type Parser struct {
	detector platform.Detector
	logger   Logger
}

// NewParser creates a new config parser with the given platform detector.
func NewParser(detector platform.Detector) *Parser {
	return &Parser{
		detector: detector,
		logger:   defaultLogger(),
	}
}

// SetLogger replaces the parser's logger.
func (p *Parser) SetLogger(logger Logger) {
	if logger != nil {
		p.logger = logger
	}
}

// ParseError represents a config parsing error with a friendly message.
type ParseError struct {
	Message string // User-friendly message
	Detail  string // Technical details (raw Lua error)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// Load reads the config file at path, or returns the defaults when the
// file does not exist.
func (p *Parser) Load(ctx context.Context, path, homeDir string) (*Config, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			p.logger.Debug("no config file, using defaults", "path", path)
			return Default(homeDir), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	p.logger.Debug("loading config", "path", path)
	return p.ParseString(ctx, string(code), homeDir)
}

// ParseString parses a Lua config from a string.
// This is useful for testing and in-memory configs.
func (p *Parser) ParseString(ctx context.Context, luaCode, homeDir string) (*Config, error) {
	L := newSandboxedVM()
	defer L.Close()

	// Detect platform and inject the platform table
	if p.detector != nil {
		platformInfo, err := p.detector.Detect(ctx)
		if err != nil {
			return nil, fmt.Errorf("platform detection failed: %w", err)
		}
		if err := platform.InjectPlatformTable(L, platformInfo); err != nil {
			return nil, fmt.Errorf("inject platform table: %w", err)
		}
	}

	if err := L.DoString(luaCode); err != nil {
		return nil, &ParseError{
			Message: "Lua syntax error",
			Detail:  err.Error(),
		}
	}

	return extractConfig(L, homeDir)
}

// extractConfig extracts the config from a Lua state.
// It expects a global "installer" table; absent fields keep their defaults.
func extractConfig(L *lua.LState, homeDir string) (*Config, error) {
	config := Default(homeDir)

	installerTable := L.GetGlobal("installer")
	if installerTable.Type() == lua.LTNil {
		// A config file that defines nothing is legal
		return config, nil
	}
	if installerTable.Type() != lua.LTTable {
		return nil, &ParseError{
			Message: "invalid 'installer' table",
			Detail:  fmt.Sprintf("expected table, got %s", installerTable.Type()),
		}
	}

	table := installerTable.(*lua.LTable)

	if v := table.RawGetString("install_dir"); v.Type() == lua.LTString {
		config.RootDir = ExpandHome(v.String(), homeDir)
	}

	if v := table.RawGetString("repo"); v.Type() == lua.LTString {
		config.Repo = v.String()
	}

	if v := table.RawGetString("binary"); v.Type() == lua.LTString {
		config.Binary = v.String()
	}

	if v := table.RawGetString("version"); v.Type() == lua.LTString {
		config.Version = v.String()
	}

	if v := table.RawGetString("verify"); v.Type() == lua.LTBool {
		config.Verify = bool(v.(lua.LBool))
	}

	if v := table.RawGetString("keyring"); v.Type() == lua.LTString {
		config.Keyring = ExpandHome(v.String(), homeDir)
	}

	if err := config.Validate(); err != nil {
		return nil, &ParseError{
			Message: "config validation failed",
			Detail:  err.Error(),
		}
	}

	return config, nil
}

// FormatError formats a ParseError for user display.
// In verbose mode, show the raw Lua error. Otherwise, show a friendly message.
func FormatError(err error, verbose bool) string {
	if parseErr, ok := err.(*ParseError); ok {
		if verbose {
			return fmt.Sprintf("%s\n\nDetails:\n%s", parseErr.Message, parseErr.Detail)
		}
		detail := parseErr.Detail
		if idx := strings.Index(detail, "stack traceback"); idx > 0 {
			detail = strings.TrimSpace(detail[:idx])
		}
		return fmt.Sprintf("%s: %s", parseErr.Message, detail)
	}
	return err.Error()
}
