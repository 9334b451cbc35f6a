package cmd

import (
	"fmt"
	"os"

	adaptergit "github.com/renato0307/hookpin/internal/adapters/git"
	adapterrunner "github.com/renato0307/hookpin/internal/adapters/runner"
	adapterstorage "github.com/renato0307/hookpin/internal/adapters/storage"
	adapteryaml "github.com/renato0307/hookpin/internal/adapters/yamlconfig"
	"github.com/renato0307/hookpin/internal/config"
	"github.com/renato0307/hookpin/internal/logging"
	"github.com/renato0307/hookpin/internal/ports"
	"github.com/renato0307/hookpin/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	AutoupdateService *services.AutoupdateService
	ConfigService     *services.ConfigService
	HistoryService    *services.HistoryService
	InstallService    *services.InstallService
	RepositoryService *services.RepositoryService

	// Run services are built per command, they need a reporter
	classifier ports.FileClassifier
	executor   ports.HookExecutor
	git        ports.GitRepository
	loader     ports.ConfigLoader

	// Internal - for cleanup only
	store ports.Store
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	home := config.GetHookpinHome()

	store, err := adapterstorage.NewSQLiteRepositoryForHome(home)
	if err != nil {
		return nil, err
	}

	var ignorePaths []string
	if settings != nil {
		ignorePaths = settings.IgnorePaths
	}
	classifier, err := adapterrunner.NewClassifier(ignorePaths)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	gitRepo := adaptergit.NewCLIRepository()
	loader := adapteryaml.NewLoader()
	installer := adapterrunner.NewPythonInstaller(settings.PythonExecutable(), config.GetEnvsPath())
	locker := adapterstorage.NewFileLocker(config.GetLockPath())

	executable, err := os.Executable()
	if err != nil {
		logging.Logger.Warn("Failed to resolve hookpin executable", "error", err)
		executable = "hookpin"
	}

	return &Container{
		AutoupdateService: services.NewAutoupdateService(gitRepo, loader, ""),
		ConfigService:     services.NewConfigService(loader, gitRepo),
		HistoryService:    services.NewHistoryService(store),
		InstallService:    services.NewInstallService(gitRepo, loader, executable),
		RepositoryService: services.NewRepositoryService(services.RepositoryServiceParams{
			EnvsDir:     config.GetEnvsPath(),
			Git:         gitRepo,
			Installer:   installer,
			Loader:      loader,
			Locker:      locker,
			NativeHooks: settings.UseNativeHooks(),
			ReposDir:    config.GetReposPath(),
			Store:       store,
		}),
		classifier: classifier,
		executor:   adapterrunner.NewExecutor(),
		git:        gitRepo,
		loader:     loader,
		store:      store,
	}, nil
}

// NewRunService creates a RunService reporting to reporter
func (c *Container) NewRunService(reporter ports.RunReporter) *services.RunService {
	return services.NewRunService(c.git, c.loader, c.RepositoryService, c.classifier, c.executor, c.store, reporter)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
