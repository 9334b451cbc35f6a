package domain

// Hook languages
const (
	LanguageBuiltin = "builtin"
	LanguageFail    = "fail"
	LanguagePygrep  = "pygrep"
	LanguagePython  = "python"
	LanguageScript  = "script"
	LanguageSystem  = "system"
)

// knownLanguages is every language a manifest may declare.
// Only a subset can be executed, see RunnableLanguage.
var knownLanguages = map[string]bool{
	LanguageBuiltin:      true,
	LanguageFail:         true,
	LanguagePygrep:       true,
	LanguagePython:       true,
	LanguageScript:       true,
	LanguageSystem:       true,
	"conda":              true,
	"coursier":           true,
	"dart":               true,
	"docker":             true,
	"docker_image":       true,
	"dotnet":             true,
	"golang":             true,
	"haskell":            true,
	"julia":              true,
	"lua":                true,
	"node":               true,
	"perl":               true,
	"r":                  true,
	"ruby":               true,
	"rust":               true,
	"swift":              true,
	"unsupported":        true,
	"unsupported_script": true,
}

// IsKnownLanguage reports whether lang is a recognised hook language
func IsKnownLanguage(lang string) bool {
	return knownLanguages[lang]
}

// RunnableLanguage reports whether hookpin can execute hooks of lang
func RunnableLanguage(lang string) bool {
	switch lang {
	case LanguageBuiltin, LanguageFail, LanguagePygrep, LanguagePython, LanguageScript, LanguageSystem, "unsupported", "unsupported_script":
		return true
	}
	return false
}

// HookDefinition is a hook as exported by a repository manifest
type HookDefinition struct {
	AdditionalDependencies  []string
	Alias                   string
	AlwaysRun               bool
	Args                    []string
	Description             string
	Entry                   string
	Exclude                 string
	ExcludeTypes            []string
	Files                   string
	ID                      string
	Language                string
	MinimumPreCommitVersion string
	Name                    string
	PassFilenames           bool
	RequireSerial           bool
	Stages                  []Stage
	Types                   []string
	TypesOr                 []string
	Verbose                 bool
}

// NewHookDefinition returns a definition with manifest defaults applied
func NewHookDefinition(id, name, entry, language string) HookDefinition {
	return HookDefinition{
		Entry:         entry,
		Exclude:       DefaultExclude,
		ExcludeTypes:  []string{},
		Files:         DefaultFiles,
		ID:            id,
		Language:      language,
		Name:          name,
		PassFilenames: true,
		Types:         []string{TagFile},
		TypesOr:       []string{},
	}
}

// Merge applies the keys set in a config entry over the definition
func (d HookDefinition) Merge(e HookEntry) HookDefinition {
	out := d
	if e.Name != "" {
		out.Name = e.Name
	}
	if e.Alias != "" {
		out.Alias = e.Alias
	}
	if e.Entry != "" {
		out.Entry = e.Entry
	}
	if e.Language != "" {
		out.Language = e.Language
	}
	if e.Files != nil {
		out.Files = *e.Files
	}
	if e.Exclude != nil {
		out.Exclude = *e.Exclude
	}
	if e.AlwaysRun != nil {
		out.AlwaysRun = *e.AlwaysRun
	}
	if e.PassFilenames != nil {
		out.PassFilenames = *e.PassFilenames
	}
	if e.RequireSerial != nil {
		out.RequireSerial = *e.RequireSerial
	}
	if e.Verbose != nil {
		out.Verbose = *e.Verbose
	}
	if e.Args != nil {
		out.Args = append([]string(nil), e.Args...)
	}
	if e.Types != nil {
		out.Types = append([]string(nil), e.Types...)
	}
	if e.TypesOr != nil {
		out.TypesOr = append([]string(nil), e.TypesOr...)
	}
	if e.ExcludeTypes != nil {
		out.ExcludeTypes = append([]string(nil), e.ExcludeTypes...)
	}
	if e.Stages != nil {
		out.Stages = append([]Stage(nil), e.Stages...)
	}
	if e.AdditionalDependencies != nil {
		out.AdditionalDependencies = append([]string(nil), e.AdditionalDependencies...)
	}
	return out
}

// DefinitionFromLocal builds a definition for a hook declared under repo: local
func DefinitionFromLocal(e HookEntry) HookDefinition {
	return NewHookDefinition(e.ID, e.Name, e.Entry, e.Language).Merge(e)
}

// ResolvedHook is a definition bound to the checkout it runs from
type ResolvedHook struct {
	HookDefinition
	EnvDir   string // Language environment directory (python only)
	Repo     string
	RepoPath string // Checkout path, empty for local and builtin hooks
	Rev      string
}

// DisplayName returns the name printed in results
func (h ResolvedHook) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	return h.ID
}

// RunsInStage reports whether the hook participates in stage
func (h ResolvedHook) RunsInStage(stage Stage) bool {
	if len(h.Stages) == 0 {
		return true
	}
	for _, s := range h.Stages {
		if s == stage {
			return true
		}
	}
	return false
}

// Matches reports whether the hook is selected by an id or alias
func (h ResolvedHook) Matches(idOrAlias string) bool {
	return h.ID == idOrAlias || (h.Alias != "" && h.Alias == idOrAlias)
}
