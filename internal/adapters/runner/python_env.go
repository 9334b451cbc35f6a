package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/logging"
	"github.com/renato0307/hookpin/internal/ports"
)

const (
	// EnvDirName is the virtualenv created inside a cached hook repository
	EnvDirName = "hookpin-env"
	// installStateFile marks a finished install and records its inputs
	installStateFile = ".install_state_v1"
)

// envNamespace seeds the names of environments for local hooks
var envNamespace = uuid.MustParse("9b0f3c5e-7a53-4c55-9a4c-3f1c6ad2e0a1")

// PythonInstaller implements ports.EnvironmentInstaller with virtualenvs
type PythonInstaller struct {
	envsRoot string
	python   string
}

// Verify interface compliance at compile time
var _ ports.EnvironmentInstaller = (*PythonInstaller)(nil)

// NewPythonInstaller creates an installer using python for venv creation.
// Local hooks get their environments under envsRoot.
func NewPythonInstaller(python, envsRoot string) *PythonInstaller {
	return &PythonInstaller{envsRoot: envsRoot, python: python}
}

type installState struct {
	AdditionalDependencies []string `json:"additional_dependencies"`
	Python                 string   `json:"python"`
}

// EnvironmentDir returns where hook's environment lives, empty when the
// language needs none
func (p *PythonInstaller) EnvironmentDir(hook domain.ResolvedHook) string {
	if hook.Language != domain.LanguagePython {
		return ""
	}
	if hook.RepoPath != "" {
		return filepath.Join(hook.RepoPath, EnvDirName)
	}
	key := strings.Join(append([]string{p.python}, hook.AdditionalDependencies...), "\x00")
	return filepath.Join(p.envsRoot, "py-"+uuid.NewSHA1(envNamespace, []byte(key)).String())
}

// InstallEnvironment creates the virtualenv and installs the hook
// repository plus additional dependencies. Finished installs are reused.
func (p *PythonInstaller) InstallEnvironment(ctx context.Context, hook domain.ResolvedHook) error {
	envDir := p.EnvironmentDir(hook)
	if envDir == "" {
		return nil
	}

	state := installState{AdditionalDependencies: hook.AdditionalDependencies, Python: p.python}
	want, err := json.Marshal(state)
	if err != nil {
		return err
	}
	statePath := filepath.Join(envDir, installStateFile)
	if have, err := os.ReadFile(statePath); err == nil && bytes.Equal(have, want) {
		logging.Logger.Debug("Environment up to date", "hook", hook.ID, "env", envDir)
		return nil
	}

	logging.Logger.Info("Installing python environment", "hook", hook.ID, "env", envDir)
	if err := os.RemoveAll(envDir); err != nil {
		return fmt.Errorf("failed to reset %s: %w", envDir, err)
	}
	if err := os.MkdirAll(filepath.Dir(envDir), 0755); err != nil {
		return err
	}

	if err := runInstallStep(ctx, hook.RepoPath, p.python, "-m", "venv", envDir); err != nil {
		return err
	}

	var pkgs []string
	if hook.RepoPath != "" {
		pkgs = append(pkgs, ".")
	}
	pkgs = append(pkgs, hook.AdditionalDependencies...)
	if len(pkgs) > 0 {
		args := append([]string{"-m", "pip", "install", "--disable-pip-version-check", "--quiet"}, pkgs...)
		if err := runInstallStep(ctx, hook.RepoPath, filepath.Join(envDir, "bin", "python"), args...); err != nil {
			return err
		}
	}

	return os.WriteFile(statePath, want, 0644)
}

func runInstallStep(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		logging.Logger.Error("Environment install step failed", "cmd", name, "args", args, "error", err)
		return fmt.Errorf("%s %s failed: %w\nOutput: %s", filepath.Base(name), strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return nil
}
