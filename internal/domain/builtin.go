package domain

import "strings"

// NativeHooksRepo is the repository whose hooks hookpin can run natively
const NativeHooksRepo = "https://github.com/pre-commit/pre-commit-hooks"

// BuiltinHooks are the hooks implemented inside hookpin.
// Their metadata mirrors the manifest of NativeHooksRepo.
var BuiltinHooks = map[string]HookDefinition{
	"check-json":          builtinHook("check-json", "check json", "checks json files for parseable syntax.", []string{"json"}),
	"check-toml":          builtinHook("check-toml", "check toml", "checks toml files for parseable syntax.", []string{"toml"}),
	"check-yaml":          builtinHook("check-yaml", "check yaml", "checks yaml files for parseable syntax.", []string{"yaml"}),
	"end-of-file-fixer":   builtinHook("end-of-file-fixer", "fix end of files", "ensures that a file is either empty, or ends with one newline.", []string{TagText}),
	"trailing-whitespace": builtinHook("trailing-whitespace", "trim trailing whitespace", "trims trailing whitespace.", []string{TagText}),
}

func builtinHook(id, name, description string, types []string) HookDefinition {
	d := NewHookDefinition(id, name, id, LanguageBuiltin)
	d.Description = description
	d.Types = types
	return d
}

// IsBuiltinHook reports whether id has a native implementation
func IsBuiltinHook(id string) bool {
	_, ok := BuiltinHooks[id]
	return ok
}

// IsNativeRepo reports whether url points at NativeHooksRepo
func IsNativeRepo(url string) bool {
	normalized := strings.TrimSuffix(strings.TrimSuffix(strings.ToLower(url), "/"), ".git")
	return normalized == NativeHooksRepo
}
