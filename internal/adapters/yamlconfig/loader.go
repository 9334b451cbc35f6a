package yamlconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/logging"
	"github.com/renato0307/hookpin/internal/ports"
)

// Loader reads and writes hook configuration documents as YAML
type Loader struct{}

// Verify interface compliance at compile time
var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a YAML config loader
func NewLoader() *Loader {
	return &Loader{}
}

// topLevelKeys are the keys understood at the top of a configuration
var topLevelKeys = map[string]bool{
	"ci":                         true,
	"default_install_hook_types": true,
	"default_language_version":   true,
	"default_stages":             true,
	"exclude":                    true,
	"fail_fast":                  true,
	"files":                      true,
	"minimum_pre_commit_version": true,
	"repos":                      true,
}

// ignoredHookKeys are accepted for compatibility but have no effect
var ignoredHookKeys = []string{"description", "language_version", "log_file", "minimum_pre_commit_version"}

// Load reads, parses and validates the configuration at path
func (l *Loader) Load(path string) (*domain.Config, error) {
	logging.Logger.Debug("Loading config", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoConfig, path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for _, w := range cfg.Warnings {
		logging.Logger.Warn("Config warning", "path", path, "warning", w)
	}
	return cfg, nil
}

// Parse decodes a configuration document, checks it against the config
// schema and the structural invariants
func (l *Loader) Parse(data []byte) (*domain.Config, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: document is empty", domain.ErrInvalidConfig)
	}

	issues, err := validateSchema(&root)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		merr := domain.NewIssues()
		merr = multierror.Append(merr, issues...)
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, merr)
	}

	cfg, err := decodeConfig(&root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeConfig converts a schema-valid tree into the domain model
func decodeConfig(root *yaml.Node) (*domain.Config, error) {
	var raw rawConfig
	if err := root.Decode(&raw); err != nil {
		return nil, err
	}

	cfg := &domain.Config{
		CI:                      raw.CI,
		DefaultInstallHookTypes: raw.DefaultInstallHookTypes,
		DefaultLanguageVersion:  raw.DefaultLanguageVersion,
		Exclude:                 domain.DefaultExclude,
		FailFast:                raw.FailFast,
		Files:                   domain.DefaultFiles,
		MinimumPreCommitVersion: raw.MinimumPreCommitVersion,
	}
	if raw.Files != nil {
		cfg.Files = *raw.Files
	}
	if raw.Exclude != nil {
		cfg.Exclude = *raw.Exclude
	}

	cfg.DefaultStages = normalizeStages(raw.DefaultStages)

	doc := root.Content[0]
	cfg.Warnings = unknownKeyWarnings(doc)
	if childNode(doc, "default_language_version") != nil {
		cfg.Warnings = append(cfg.Warnings, "'default_language_version' is ignored")
	}

	reposNode := childNode(doc, "repos")
	for i, r := range raw.Repos {
		src := domain.HookSource{
			Repo: r.Repo,
			Rev:  r.Rev,
		}
		var hooksNode *yaml.Node
		if reposNode != nil && i < len(reposNode.Content) {
			src.Line = reposNode.Content[i].Line
			hooksNode = childNode(reposNode.Content[i], "hooks")
		}

		for j, h := range r.Hooks {
			entry := h.toEntry()
			if hooksNode != nil && j < len(hooksNode.Content) {
				entry.Line = hooksNode.Content[j].Line
				for _, key := range ignoredHookKeys {
					if childNode(hooksNode.Content[j], key) != nil {
						cfg.Warnings = append(cfg.Warnings,
							fmt.Sprintf("repos[%d].hooks[%d]: '%s' is ignored", i, j, key))
					}
				}
			}
			src.Hooks = append(src.Hooks, entry)
		}
		cfg.Repos = append(cfg.Repos, src)
	}

	return cfg, nil
}

func unknownKeyWarnings(doc *yaml.Node) []string {
	if doc.Kind != yaml.MappingNode {
		return nil
	}
	var unknown []string
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if key := doc.Content[i].Value; !topLevelKeys[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return []string{fmt.Sprintf("unexpected key(s) in configuration: %s", strings.Join(unknown, ", "))}
}

// normalizeStages resolves legacy stage names. Unknown names are kept so
// validation can report them with their location.
func normalizeStages(names []string) []domain.Stage {
	if names == nil {
		return nil
	}
	stages := make([]domain.Stage, 0, len(names))
	for _, name := range names {
		s, err := domain.NormalizeStage(name)
		if err != nil {
			s = domain.Stage(name)
		}
		stages = append(stages, s)
	}
	return stages
}

// Marshal serializes a configuration in canonical form
func (l *Loader) Marshal(cfg *domain.Config) ([]byte, error) {
	raw := fromDomain(cfg)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(raw); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}
