package services

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/logging"
	"github.com/renato0307/hookpin/internal/ports"
)

// hookMarker identifies scripts written by hookpin
const hookMarker = "ID: 2b6c0f4e-hookpin-hook-script"

// legacySuffix is appended to foreign hook scripts moved aside on install
const legacySuffix = ".legacy"

//go:embed hook-script.tmpl
var hookScriptTemplate string

var hookScript = template.Must(template.New("hook").Funcs(template.FuncMap{
	"quote": shellQuote,
}).Parse(hookScriptTemplate))

// InstallService installs and removes git hook scripts
type InstallService struct {
	executable string
	git        ports.WorkTreeInspector
	loader     ports.ConfigReader
}

// NewInstallService creates a new InstallService.
// executable is the hookpin binary the scripts call back into.
func NewInstallService(git ports.WorkTreeInspector, loader ports.ConfigReader, executable string) *InstallService {
	return &InstallService{
		executable: executable,
		git:        git,
		loader:     loader,
	}
}

// Install writes a hook script per hook type and returns their paths.
// Existing foreign scripts are kept as <type>.legacy and still run first,
// unless overwrite is set.
func (s *InstallService) Install(opts InstallOptions) ([]string, error) {
	root, err := s.git.RepoRoot(opts.WorkDir)
	if err != nil {
		return nil, err
	}
	hooksDir, err := s.git.HooksDir(root)
	if err != nil {
		return nil, err
	}
	hookTypes, err := s.hookTypes(root, opts)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", hooksDir, err)
	}

	var installed []string
	for _, hookType := range hookTypes {
		path := filepath.Join(hooksDir, hookType)

		if existing, err := os.ReadFile(path); err == nil && !isOurScript(existing) {
			if opts.Overwrite {
				logging.Logger.Info("Overwriting existing hook", "path", path)
			} else {
				logging.Logger.Info("Keeping existing hook as legacy", "path", path)
				if err := os.Rename(path, path+legacySuffix); err != nil {
					return installed, fmt.Errorf("failed to move %s aside: %w", path, err)
				}
			}
		}

		script, err := renderHookScript(s.executable, opts.ConfigPath, hookType)
		if err != nil {
			return installed, err
		}
		if err := os.WriteFile(path, script, 0755); err != nil {
			return installed, fmt.Errorf("failed to write %s: %w", path, err)
		}
		// WriteFile keeps the mode of an existing file
		if err := os.Chmod(path, 0755); err != nil {
			return installed, err
		}
		installed = append(installed, path)
	}
	return installed, nil
}

// Uninstall removes hookpin scripts and restores legacy ones.
// It returns the paths that were removed.
func (s *InstallService) Uninstall(opts InstallOptions) ([]string, error) {
	root, err := s.git.RepoRoot(opts.WorkDir)
	if err != nil {
		return nil, err
	}
	hooksDir, err := s.git.HooksDir(root)
	if err != nil {
		return nil, err
	}
	hookTypes, err := s.hookTypes(root, opts)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, hookType := range hookTypes {
		path := filepath.Join(hooksDir, hookType)
		existing, err := os.ReadFile(path)
		if err != nil || !isOurScript(existing) {
			continue
		}
		if err := os.Remove(path); err != nil {
			return removed, err
		}
		removed = append(removed, path)

		if _, err := os.Stat(path + legacySuffix); err == nil {
			logging.Logger.Info("Restoring legacy hook", "path", path)
			if err := os.Rename(path+legacySuffix, path); err != nil {
				return removed, err
			}
		}
	}
	return removed, nil
}

// hookTypes validates requested hook types, defaulting to the
// configuration's default_install_hook_types and then pre-commit
func (s *InstallService) hookTypes(root string, opts InstallOptions) ([]string, error) {
	types := opts.HookTypes
	if len(types) == 0 {
		configPath := opts.ConfigPath
		if !filepath.IsAbs(configPath) {
			configPath = filepath.Join(root, configPath)
		}
		if cfg, err := s.loader.Load(configPath); err == nil {
			types = cfg.DefaultInstallHookTypes
		}
	}
	if len(types) == 0 {
		types = []string{string(domain.StagePreCommit)}
	}

	valid := domain.HookTypeStages()
	for _, t := range types {
		if _, ok := valid[t]; !ok {
			return nil, fmt.Errorf("unknown hook type '%s'", t)
		}
	}
	return types, nil
}

func renderHookScript(executable, configPath, hookType string) ([]byte, error) {
	var buf bytes.Buffer
	err := hookScript.Execute(&buf, map[string]string{
		"ConfigPath": configPath,
		"Executable": executable,
		"HookType":   hookType,
		"Marker":     hookMarker,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render hook script: %w", err)
	}
	return buf.Bytes(), nil
}

func isOurScript(data []byte) bool {
	return bytes.Contains(data, []byte(hookMarker))
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
