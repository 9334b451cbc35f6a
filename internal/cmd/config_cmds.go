package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/renato0307/hookpin/internal/logging"
	"github.com/renato0307/hookpin/internal/services"
	"github.com/renato0307/hookpin/internal/theme"
)

// ValidateCmd validates configuration files
type ValidateCmd struct {
	CheckRemote bool     `help:"Also reject revs that name a branch on the remote"`
	Files       []string `arg:"" optional:"" help:"Configuration files (defaults to --config)"`
}

// Run executes the validate command
func (v *ValidateCmd) Run(cli *CLI) error {
	files := v.Files
	if len(files) == 0 {
		files = []string{cli.Config}
	}

	failed := false
	for _, path := range files {
		logging.Logger.Info("Executing validate command", "path", path, "check_remote", v.CheckRemote)
		cfg, err := cli.Container.ConfigService.Validate(context.Background(), path, v.CheckRemote)
		if err != nil {
			failed = true
			fmt.Fprintln(os.Stderr, theme.ErrorStyle.Render(err.Error()))
			continue
		}
		for _, w := range cfg.Warnings {
			fmt.Fprintln(os.Stderr, theme.WarningStyle.Render(fmt.Sprintf("%s: warning: %s", path, w)))
		}
		fmt.Printf("%s: %d repos, %d hooks\n", path, len(cfg.Repos), cfg.HookCount())
	}
	if failed {
		return &ExitError{Code: 1}
	}
	return nil
}

// FmtCmd rewrites the configuration in canonical form
type FmtCmd struct {
	Check bool `help:"Only report whether the file would change"`
	Diff  bool `help:"Print the changes"`
}

// Run executes the fmt command
func (f *FmtCmd) Run(cli *CLI) error {
	result, err := cli.Container.ConfigService.Format(cli.Config, f.Check)
	if err != nil {
		return err
	}
	if !result.Changed {
		fmt.Printf("%s is already formatted\n", cli.Config)
		return nil
	}
	if f.Diff || f.Check {
		printDiff(os.Stdout, result.Diff)
	}
	if f.Check {
		fmt.Fprintf(os.Stderr, "%s is not formatted\n", cli.Config)
		return &ExitError{Code: 1}
	}
	fmt.Printf("Formatted %s\n", cli.Config)
	return nil
}

// ListCmd lists configured hooks
type ListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	cfg, err := cli.Container.ConfigService.Load(cli.Config)
	if err != nil {
		return err
	}
	hooks := cli.Container.ConfigService.ListHooks(cfg)

	if l.Format == "json" {
		type hookJSON struct {
			Alias  string   `json:"alias,omitempty"`
			ID     string   `json:"id"`
			Name   string   `json:"name,omitempty"`
			Repo   string   `json:"repo"`
			Rev    string   `json:"rev,omitempty"`
			Stages []string `json:"stages,omitempty"`
		}
		out := make([]hookJSON, 0, len(hooks))
		for _, h := range hooks {
			out = append(out, hookJSON{
				Alias:  h.Alias,
				ID:     h.ID,
				Name:   h.Name,
				Repo:   h.Repo,
				Rev:    h.Rev,
				Stages: stageNames(h),
			})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Repo", "Rev", "Stages"})
	for _, h := range hooks {
		id := h.ID
		if h.Alias != "" {
			id += " (" + h.Alias + ")"
		}
		stages := strings.Join(stageNames(h), ",")
		if stages == "" {
			stages = "all"
		}
		t.AppendRow(table.Row{id, h.Name, h.Repo, h.Rev, stages})
	}
	t.Render()
	return nil
}

func stageNames(h services.HookListing) []string {
	names := make([]string, 0, len(h.Stages))
	for _, s := range h.Stages {
		names = append(names, string(s))
	}
	return names
}

// SampleConfigCmd prints a starter configuration
type SampleConfigCmd struct{}

// Run executes the sample-config command
func (s *SampleConfigCmd) Run(cli *CLI) error {
	fmt.Print(cli.Container.ConfigService.SampleConfig())
	return nil
}

// configPathIn resolves a --config value against dir
func configPathIn(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
