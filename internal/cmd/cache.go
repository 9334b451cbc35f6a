package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/hookpin/internal/config"
	"github.com/renato0307/hookpin/internal/logging"
)

// GCCmd removes unused cached repositories
type GCCmd struct{}

// Run executes the gc command
func (g *GCCmd) Run(cli *CLI) error {
	result, err := cli.Container.RepositoryService.GC(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("%d repo(s) removed, %d kept.\n", result.Removed, result.Kept)
	return nil
}

// CleanCmd removes the whole cache
type CleanCmd struct {
	Force bool `help:"Do not ask for confirmation" short:"f"`
}

// Run executes the clean command
func (c *CleanCmd) Run(cli *CLI) error {
	home := config.GetHookpinHome()
	logging.Logger.Info("Executing clean command", "home", home, "force", c.Force)

	if !c.Force {
		ok, err := confirm("Remove every cached repository and environment?", "Cache: "+home)
		if err != nil {
			return err
		}
		if !ok {
			logging.Logger.Info("User cancelled clean")
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cli.Container.RepositoryService.Clean(context.Background()); err != nil {
		return err
	}
	fmt.Printf("Cleaned %s.\n", home)
	return nil
}
