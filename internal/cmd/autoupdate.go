package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/renato0307/hookpin/internal/logging"
	"github.com/renato0307/hookpin/internal/services"
	"github.com/renato0307/hookpin/internal/theme"
)

// AutoupdateCmd updates pinned revisions
type AutoupdateCmd struct {
	BleedingEdge bool     `help:"Update to the default branch head instead of the latest tag"`
	Freeze       bool     `help:"Pin the commit sha and keep the tag in a comment"`
	Repos        []string `help:"Only update this repository (repeatable)" name:"repo"`
}

// Run executes the autoupdate command
func (a *AutoupdateCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing autoupdate command", "repos", a.Repos, "freeze", a.Freeze, "bleeding_edge", a.BleedingEdge)

	results, err := cli.Container.AutoupdateService.Autoupdate(context.Background(), services.AutoupdateOptions{
		BleedingEdge: a.BleedingEdge,
		ConfigPath:   cli.Config,
		Freeze:       a.Freeze,
		Repos:        a.Repos,
	})
	if err != nil {
		return err
	}

	failed := false
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed = true
			fmt.Fprintf(os.Stderr, "[%s] %s\n", r.Repo, theme.ErrorStyle.Render(r.Err.Error()))
		case r.Updated():
			rev := r.NewRev
			if r.FrozenTag != "" {
				rev += " (frozen: " + r.FrozenTag + ")"
			}
			fmt.Printf("[%s] updating %s -> %s\n", r.Repo, r.OldRev, theme.HighlightStyle.Render(rev))
		default:
			fmt.Printf("[%s] already up to date!\n", r.Repo)
		}
	}
	if failed {
		return &ExitError{Code: 1}
	}
	return nil
}
