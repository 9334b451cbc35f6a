package yamlconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/logging"
)

type rawManifestHook struct {
	rawHook                 `yaml:",inline"`
	Description             string `yaml:"description"`
	MinimumPreCommitVersion string `yaml:"minimum_pre_commit_version"`
}

// LoadManifest reads the hooks exported by the repository checked out at repoPath
func (l *Loader) LoadManifest(repoPath string) ([]domain.HookDefinition, error) {
	path := filepath.Join(repoPath, domain.ManifestFileName)
	logging.Logger.Debug("Loading manifest", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", domain.ErrInvalidManifest, path)
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	return parseManifest(data)
}

func parseManifest(data []byte) ([]domain.HookDefinition, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidManifest, err)
	}

	var raw []rawManifestHook
	if err := root.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidManifest, err)
	}

	var seq *yaml.Node
	if len(root.Content) > 0 {
		seq = root.Content[0]
	}

	issues := domain.NewIssues()
	defs := make([]domain.HookDefinition, 0, len(raw))
	for i, h := range raw {
		line := 0
		if seq != nil && i < len(seq.Content) {
			line = seq.Content[i].Line
		}
		path := fmt.Sprintf("[%d]", i)
		required := []struct {
			key   string
			value string
		}{
			{"id", h.ID},
			{"name", h.Name},
			{"entry", h.Entry},
			{"language", h.Language},
		}
		missing := false
		for _, r := range required {
			if r.value == "" {
				missing = true
				issues = multierror.Append(issues, &domain.ValidationIssue{
					Line:    line,
					Message: fmt.Sprintf("%s is required", r.key),
					Path:    path + "." + r.key,
				})
			}
		}
		if missing {
			continue
		}
		if !domain.IsKnownLanguage(h.Language) {
			issues = multierror.Append(issues, &domain.ValidationIssue{
				Line:    line,
				Message: fmt.Sprintf("unknown language '%s'", h.Language),
				Path:    path + ".language",
			})
			continue
		}

		def := domain.NewHookDefinition(h.ID, h.Name, h.Entry, h.Language).Merge(h.toEntry())
		def.Description = h.Description
		def.MinimumPreCommitVersion = h.MinimumPreCommitVersion
		defs = append(defs, def)
	}

	if err := issues.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidManifest, err)
	}
	return defs, nil
}
