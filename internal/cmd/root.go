package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/renato0307/hookpin/internal/config"
	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/logging"
	"github.com/renato0307/hookpin/internal/theme"
)

// EnvColor overrides the color mode for hookpin and its hooks
const EnvColor = "HOOKPIN_COLOR"

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Color       string           `help:"Whether to use color in output" enum:"auto,always,never" default:"auto"`
	Config      string           `help:"Path to the hook configuration" short:"c" default:".pre-commit-config.yaml"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Autoupdate   AutoupdateCmd   `cmd:"autoupdate" help:"Update pinned revisions to the latest tag"`
	Clean        CleanCmd        `cmd:"clean" help:"Remove every cached repository and environment"`
	Fmt          FmtCmd          `cmd:"fmt" help:"Rewrite the configuration in canonical form"`
	GC           GCCmd           `cmd:"gc" help:"Remove cached repositories no configuration uses"`
	History      HistoryCmd      `cmd:"history" help:"Show past hook runs"`
	HookImpl     HookImplCmd     `cmd:"hook-impl" help:"Entry point of installed git hook scripts" hidden:""`
	Install      InstallCmd      `cmd:"install" help:"Install git hook scripts"`
	InstallHooks InstallHooksCmd `cmd:"install-hooks" help:"Fetch repositories and install environments for every hook"`
	List         ListCmd         `cmd:"list" help:"List configured hooks"`
	Run          RunCmd          `cmd:"run" help:"Run hooks"`
	SampleConfig SampleConfigCmd `cmd:"sample-config" help:"Print a starter configuration"`
	Settings     SettingsCmd     `cmd:"settings" help:"Manage settings (meta)"`
	Uninstall    UninstallCmd    `cmd:"uninstall" help:"Remove git hook scripts"`
	Validate     ValidateCmd     `cmd:"validate" help:"Validate configuration files"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv && c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
		if !c.Debug {
			if _, hasEnv := os.LookupEnv(logging.EnvDebug); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
		if c.Config == domain.ConfigFileName && c.settings.ConfigFile != "" {
			c.Config = c.settings.ConfigFile
		}
	}
	if c.Color == config.ColorAuto {
		if env := os.Getenv(EnvColor); env != "" {
			if err := config.ValidateColor(env); err != nil {
				return fmt.Errorf("$%s: %w", EnvColor, err)
			}
			c.Color = env
		} else if c.settings != nil && c.settings.Color != "" {
			c.Color = c.settings.Color
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Hooks call back into hookpin: share the same log file with them
	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, fmt.Sprintf("%d", c.MaxLogFiles))
	}

	theme.SetColor(c.UseColor())

	// The container opens the store, whose gorm logger needs logging ready
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// UseColor resolves the color mode against the terminal
func (c *CLI) UseColor() bool {
	switch c.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// workDir returns the current directory for commands that act on a repository
func workDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}
