package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/renato0307/hookpin/internal/logging"
	"github.com/renato0307/hookpin/internal/services"
)

// InstallCmd installs git hook scripts
type InstallCmd struct {
	HookTypes    []string `help:"Git hook types to install (defaults to default_install_hook_types or pre-commit)" short:"t" name:"hook-type"`
	InstallHooks bool     `help:"Also fetch repositories and install hook environments"`
	Overwrite    bool     `help:"Replace existing hook scripts instead of keeping them as .legacy" short:"f"`
	Yes          bool     `help:"Do not ask for confirmation" short:"y"`
}

// Run executes the install command
func (i *InstallCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing install command", "hook_types", i.HookTypes, "overwrite", i.Overwrite)

	if i.Overwrite && !i.Yes {
		ok, err := confirm("Replace existing git hook scripts?", "Scripts not written by hookpin will be lost.")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled")
			return nil
		}
	}

	wd, err := workDir()
	if err != nil {
		return err
	}
	paths, err := cli.Container.InstallService.Install(services.InstallOptions{
		ConfigPath: cli.Config,
		HookTypes:  i.HookTypes,
		Overwrite:  i.Overwrite,
		WorkDir:    wd,
	})
	for _, p := range paths {
		fmt.Printf("hookpin installed at %s\n", p)
	}
	if err != nil {
		return err
	}

	if i.InstallHooks {
		return installHooks(cli)
	}
	return nil
}

// UninstallCmd removes git hook scripts
type UninstallCmd struct {
	HookTypes []string `help:"Git hook types to remove" short:"t" name:"hook-type"`
}

// Run executes the uninstall command
func (u *UninstallCmd) Run(cli *CLI) error {
	wd, err := workDir()
	if err != nil {
		return err
	}
	paths, err := cli.Container.InstallService.Uninstall(services.InstallOptions{
		ConfigPath: cli.Config,
		HookTypes:  u.HookTypes,
		WorkDir:    wd,
	})
	for _, p := range paths {
		fmt.Printf("%s uninstalled\n", p)
	}
	return err
}

// InstallHooksCmd fetches repositories and installs environments
type InstallHooksCmd struct{}

// Run executes the install-hooks command
func (i *InstallHooksCmd) Run(cli *CLI) error {
	return installHooks(cli)
}

func installHooks(cli *CLI) error {
	ctx := context.Background()
	cfg, err := cli.Container.ConfigService.Load(cli.Config)
	if err != nil {
		return err
	}
	hooks, err := cli.Container.RepositoryService.Resolve(ctx, cfg, cli.Config)
	if err != nil {
		return err
	}
	if err := cli.Container.RepositoryService.InstallEnvironments(ctx, hooks); err != nil {
		return err
	}
	fmt.Printf("%d hooks ready\n", len(hooks))
	return nil
}

// confirm asks a yes/no question, refusing when stdin is not a terminal
func confirm(title, description string) (bool, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return false, fmt.Errorf("refusing to continue without a terminal, pass --yes")
	}
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}
