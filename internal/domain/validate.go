package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ValidationIssue is one structural problem found in a configuration
type ValidationIssue struct {
	Err     error // Optional sentinel (e.g. ErrFloatingRev)
	Line    int
	Message string
	Path    string // e.g. repos[1].hooks[0].id
}

func (i *ValidationIssue) Error() string {
	var b strings.Builder
	if i.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", i.Line)
	}
	if i.Path != "" {
		b.WriteString(i.Path)
		b.WriteString(": ")
	}
	b.WriteString(i.Message)
	return b.String()
}

func (i *ValidationIssue) Unwrap() error {
	return i.Err
}

// FormatIssues renders aggregated issues one per line
func FormatIssues(errs []error) string {
	lines := make([]string, 0, len(errs)+1)
	if len(errs) == 1 {
		lines = append(lines, "1 problem found:")
	} else {
		lines = append(lines, fmt.Sprintf("%d problems found:", len(errs)))
	}
	for _, err := range errs {
		lines = append(lines, "  - "+err.Error())
	}
	return strings.Join(lines, "\n")
}

// NewIssues returns an empty aggregate using FormatIssues
func NewIssues() *multierror.Error {
	return &multierror.Error{ErrorFormat: FormatIssues}
}

// Validate checks the structural invariants of the configuration.
// Every problem is collected; the returned error wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	issues := NewIssues()
	add := func(line int, path string, sentinel error, format string, args ...any) {
		issues = multierror.Append(issues, &ValidationIssue{
			Err:     sentinel,
			Line:    line,
			Message: fmt.Sprintf(format, args...),
			Path:    path,
		})
	}

	if _, err := regexp.Compile(c.Files); err != nil {
		add(0, "files", nil, "invalid regex: %v", err)
	}
	if _, err := regexp.Compile(c.Exclude); err != nil {
		add(0, "exclude", nil, "invalid regex: %v", err)
	}
	for i, s := range c.DefaultStages {
		if !IsValidStage(s) {
			add(0, fmt.Sprintf("default_stages[%d]", i), nil, "unknown stage '%s'", s)
		}
	}

	if len(c.Repos) == 0 {
		add(0, "repos", nil, "at least one repository is required")
	}

	knownTags := KnownTags()
	for i, src := range c.Repos {
		path := fmt.Sprintf("repos[%d]", i)
		repo := strings.TrimSpace(src.Repo)

		switch {
		case repo == "":
			add(src.Line, path+".repo", nil, "repo is required")
		case src.IsLocal(), src.IsBuiltin():
			if src.Rev != "" {
				add(src.Line, path+".rev", nil, "rev must not be set for repo '%s'", src.Repo)
			}
		case strings.TrimSpace(src.Rev) == "":
			add(src.Line, path+".rev", nil, "rev is required for repo '%s'", src.Repo)
		case IsFloatingRev(src.Rev):
			add(src.Line, path+".rev", ErrFloatingRev,
				"rev '%s' names a branch, pin a tag or commit instead", src.Rev)
		}

		if len(src.Hooks) == 0 {
			add(src.Line, path+".hooks", nil, "at least one hook is required")
		}

		seen := make(map[string]int, len(src.Hooks))
		for j, hook := range src.Hooks {
			hookPath := fmt.Sprintf("%s.hooks[%d]", path, j)
			if strings.TrimSpace(hook.ID) == "" {
				add(hook.Line, hookPath+".id", nil, "id is required")
				continue
			}
			if first, found := seen[hook.ID]; found {
				add(hook.Line, hookPath+".id", nil,
					"duplicate id '%s' (first declared at hooks[%d])", hook.ID, first)
			} else {
				seen[hook.ID] = j
			}

			validateEntry(src, hook, hookPath, knownTags, add)
		}
	}

	if err := issues.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func validateEntry(
	src HookSource,
	hook HookEntry,
	path string,
	knownTags map[string]struct{},
	add func(line int, path string, sentinel error, format string, args ...any),
) {
	switch {
	case src.IsLocal():
		if hook.Name == "" {
			add(hook.Line, path+".name", nil, "name is required for local hooks")
		}
		if hook.Entry == "" {
			add(hook.Line, path+".entry", nil, "entry is required for local hooks")
		}
		if hook.Language == "" {
			add(hook.Line, path+".language", nil, "language is required for local hooks")
		} else if !IsKnownLanguage(hook.Language) {
			add(hook.Line, path+".language", nil, "unknown language '%s'", hook.Language)
		}
	case src.IsBuiltin():
		if !IsBuiltinHook(hook.ID) {
			add(hook.Line, path+".id", ErrHookNotFound, "'%s' is not a builtin hook", hook.ID)
		}
		if hook.Entry != "" || hook.Language != "" {
			add(hook.Line, path, nil, "entry and language cannot be overridden for builtin hooks")
		}
	default:
		if hook.Entry != "" {
			add(hook.Line, path+".entry", nil, "entry can only be set for local hooks")
		}
		if hook.Language != "" {
			add(hook.Line, path+".language", nil, "language can only be set for local hooks")
		}
	}

	if hook.Files != nil {
		if _, err := regexp.Compile(*hook.Files); err != nil {
			add(hook.Line, path+".files", nil, "invalid regex: %v", err)
		}
	}
	if hook.Exclude != nil {
		if _, err := regexp.Compile(*hook.Exclude); err != nil {
			add(hook.Line, path+".exclude", nil, "invalid regex: %v", err)
		}
	}
	tagFilters := []struct {
		key  string
		tags []string
	}{
		{"types", hook.Types},
		{"types_or", hook.TypesOr},
		{"exclude_types", hook.ExcludeTypes},
	}
	for _, filter := range tagFilters {
		for _, tag := range filter.tags {
			if _, ok := knownTags[tag]; !ok {
				add(hook.Line, path+"."+filter.key, nil, "unknown type tag '%s'", tag)
			}
		}
	}
	for k, s := range hook.Stages {
		if !IsValidStage(s) {
			add(hook.Line, fmt.Sprintf("%s.stages[%d]", path, k), nil, "unknown stage '%s'", s)
		}
	}
}
