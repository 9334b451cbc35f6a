package yamlconfig

import "github.com/renato0307/hookpin/internal/domain"

// Field order is the canonical key order used by Marshal.

// list keeps an explicit empty list apart from an absent key: omitempty
// only drops it when nil, so `args: []` survives a rewrite.
type list []string

func (l list) IsZero() bool {
	return l == nil
}

type rawConfig struct {
	DefaultInstallHookTypes list              `yaml:"default_install_hook_types,omitempty"`
	DefaultLanguageVersion  map[string]string `yaml:"default_language_version,omitempty"`
	DefaultStages           list              `yaml:"default_stages,omitempty"`
	Files                   *string           `yaml:"files,omitempty"`
	Exclude                 *string           `yaml:"exclude,omitempty"`
	FailFast                bool              `yaml:"fail_fast,omitempty"`
	MinimumPreCommitVersion string            `yaml:"minimum_pre_commit_version,omitempty"`
	Repos                   []rawRepo         `yaml:"repos"`
	CI                      map[string]any    `yaml:"ci,omitempty"`
}

type rawRepo struct {
	Repo  string    `yaml:"repo"`
	Rev   string    `yaml:"rev,omitempty"`
	Hooks []rawHook `yaml:"hooks"`
}

type rawHook struct {
	ID                     string  `yaml:"id"`
	Name                   string  `yaml:"name,omitempty"`
	Alias                  string  `yaml:"alias,omitempty"`
	Entry                  string  `yaml:"entry,omitempty"`
	Language               string  `yaml:"language,omitempty"`
	Files                  *string `yaml:"files,omitempty"`
	Exclude                *string `yaml:"exclude,omitempty"`
	Types                  list    `yaml:"types,omitempty"`
	TypesOr                list    `yaml:"types_or,omitempty"`
	ExcludeTypes           list    `yaml:"exclude_types,omitempty"`
	Args                   list    `yaml:"args,omitempty"`
	Stages                 list    `yaml:"stages,omitempty"`
	AdditionalDependencies list    `yaml:"additional_dependencies,omitempty"`
	AlwaysRun              *bool   `yaml:"always_run,omitempty"`
	PassFilenames          *bool   `yaml:"pass_filenames,omitempty"`
	RequireSerial          *bool   `yaml:"require_serial,omitempty"`
	Verbose                *bool   `yaml:"verbose,omitempty"`
}

func (h rawHook) toEntry() domain.HookEntry {
	return domain.HookEntry{
		AdditionalDependencies: []string(h.AdditionalDependencies),
		Alias:                  h.Alias,
		AlwaysRun:              h.AlwaysRun,
		Args:                   []string(h.Args),
		Entry:                  h.Entry,
		Exclude:                h.Exclude,
		ExcludeTypes:           []string(h.ExcludeTypes),
		Files:                  h.Files,
		ID:                     h.ID,
		Language:               h.Language,
		Name:                   h.Name,
		PassFilenames:          h.PassFilenames,
		RequireSerial:          h.RequireSerial,
		Stages:                 normalizeStages([]string(h.Stages)),
		Types:                  []string(h.Types),
		TypesOr:                []string(h.TypesOr),
		Verbose:                h.Verbose,
	}
}

func fromDomain(cfg *domain.Config) rawConfig {
	raw := rawConfig{
		CI:                      cfg.CI,
		DefaultInstallHookTypes: list(cfg.DefaultInstallHookTypes),
		DefaultLanguageVersion:  cfg.DefaultLanguageVersion,
		DefaultStages:           stageNames(cfg.DefaultStages),
		FailFast:                cfg.FailFast,
		MinimumPreCommitVersion: cfg.MinimumPreCommitVersion,
		Repos:                   make([]rawRepo, 0, len(cfg.Repos)),
	}
	if cfg.Files != domain.DefaultFiles {
		files := cfg.Files
		raw.Files = &files
	}
	if cfg.Exclude != domain.DefaultExclude {
		exclude := cfg.Exclude
		raw.Exclude = &exclude
	}

	for _, src := range cfg.Repos {
		repo := rawRepo{
			Hooks: make([]rawHook, 0, len(src.Hooks)),
			Repo:  src.Repo,
			Rev:   src.Rev,
		}
		for _, e := range src.Hooks {
			repo.Hooks = append(repo.Hooks, rawHook{
				AdditionalDependencies: list(e.AdditionalDependencies),
				Alias:                  e.Alias,
				AlwaysRun:              e.AlwaysRun,
				Args:                   list(e.Args),
				Entry:                  e.Entry,
				Exclude:                e.Exclude,
				ExcludeTypes:           list(e.ExcludeTypes),
				Files:                  e.Files,
				ID:                     e.ID,
				Language:               e.Language,
				Name:                   e.Name,
				PassFilenames:          e.PassFilenames,
				RequireSerial:          e.RequireSerial,
				Stages:                 stageNames(e.Stages),
				Types:                  list(e.Types),
				TypesOr:                list(e.TypesOr),
				Verbose:                e.Verbose,
			})
		}
		raw.Repos = append(raw.Repos, repo)
	}
	return raw
}

func stageNames(stages []domain.Stage) list {
	if stages == nil {
		return nil
	}
	names := make(list, 0, len(stages))
	for _, s := range stages {
		names = append(names, string(s))
	}
	return names
}
