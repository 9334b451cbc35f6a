package domain

import "strings"

// Special repo values
const (
	RepoBuiltin = "builtin"
	RepoLocal   = "local"
)

// ConfigFileName is the default configuration file name
const ConfigFileName = ".pre-commit-config.yaml"

// ManifestFileName is the hooks manifest every hook repository exports
const ManifestFileName = ".pre-commit-hooks.yaml"

// Default file filters
const (
	DefaultExclude = "^$"
	DefaultFiles   = ""
)

// Config is a parsed hook configuration document.
// It is read once at the start of a run and never mutated by it.
type Config struct {
	CI                      map[string]any // Third-party CI settings, kept verbatim
	DefaultInstallHookTypes []string
	DefaultLanguageVersion  map[string]string
	DefaultStages           []Stage
	Exclude                 string
	FailFast                bool
	Files                   string
	MinimumPreCommitVersion string
	Repos                   []HookSource
	Warnings                []string       // Non-fatal findings (unknown keys, ignored options)
}

// HookSource references an external tool repository pinned at a revision
type HookSource struct {
	Hooks []HookEntry
	Line  int // Line in the source document (0 if unknown)
	Repo  string
	Rev   string
}

// HookEntry references one hook exposed by a HookSource.
// Nil pointers and nil slices mean "not set": the manifest value applies.
type HookEntry struct {
	AdditionalDependencies []string
	Alias                  string
	AlwaysRun              *bool
	Args                   []string
	Entry                  string // local hooks only
	Exclude                *string
	ExcludeTypes           []string
	Files                  *string
	ID                     string
	Language               string // local hooks only
	Line                   int
	Name                   string
	PassFilenames          *bool
	RequireSerial          *bool
	Stages                 []Stage
	Types                  []string
	TypesOr                []string
	Verbose                *bool
}

// IsLocal reports whether hooks are defined inline
func (s HookSource) IsLocal() bool {
	return s.Repo == RepoLocal
}

// IsBuiltin reports whether hooks run natively inside hookpin
func (s HookSource) IsBuiltin() bool {
	return s.Repo == RepoBuiltin
}

// IsRemote reports whether the source must be fetched
func (s HookSource) IsRemote() bool {
	return !s.IsLocal() && !s.IsBuiltin()
}

// HookIDs returns the hook ids of a source in declaration order
func (s HookSource) HookIDs() []string {
	ids := make([]string, 0, len(s.Hooks))
	for _, h := range s.Hooks {
		ids = append(ids, h.ID)
	}
	return ids
}

// FindSource returns the first source whose repo matches
func (c *Config) FindSource(repo string) (*HookSource, bool) {
	for i := range c.Repos {
		if c.Repos[i].Repo == repo {
			return &c.Repos[i], true
		}
	}
	return nil, false
}

// HookCount returns the number of hook entries across all sources
func (c *Config) HookCount() int {
	n := 0
	for _, r := range c.Repos {
		n += len(r.Hooks)
	}
	return n
}

// floatingRevs are branch names that never pin a snapshot
var floatingRevs = map[string]bool{
	"HEAD":    true,
	"develop": true,
	"main":    true,
	"master":  true,
	"trunk":   true,
}

// IsFloatingRev reports whether rev obviously names a moving pointer
func IsFloatingRev(rev string) bool {
	rev = strings.TrimSpace(rev)
	if rev == "" {
		return true
	}
	if strings.HasPrefix(rev, "refs/heads/") || strings.HasPrefix(rev, "origin/") {
		return true
	}
	return floatingRevs[rev]
}

// RevUpdate is a new revision for every source pointing at Repo
type RevUpdate struct {
	FrozenTag string // Written as a "frozen: <tag>" comment when Rev is a sha
	Repo      string
	Rev       string
}
