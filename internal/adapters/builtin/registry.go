// Package builtin runs the pre-commit-hooks checks and fixers in process.
package builtin

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/logging"
)

// Hook checks or fixes files and reports whether any of them failed.
// Files are already joined with the repository root.
type Hook func(ctx context.Context, args []string, files []File) (failed bool, output string)

// File is a path as shown to the user and as opened on disk
type File struct {
	Name string
	Path string
}

var registry = map[string]Hook{
	"check-json":          checkJSON,
	"check-toml":          checkTOML,
	"check-yaml":          checkYAML,
	"end-of-file-fixer":   fixEndOfFile,
	"trailing-whitespace": trimTrailingWhitespace,
}

// IDs returns the ids with a native implementation, sorted
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Run executes hook id against files relative to dir
func Run(ctx context.Context, id, dir string, args, files []string) (bool, string, error) {
	hook, ok := registry[id]
	if !ok {
		return false, "", fmt.Errorf("%w: no builtin hook '%s'", domain.ErrHookNotFound, id)
	}

	resolved := make([]File, 0, len(files))
	for _, f := range files {
		path := f
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, f)
		}
		resolved = append(resolved, File{Name: f, Path: path})
	}

	logging.Logger.Debug("Running builtin hook", "id", id, "files", len(files), "args", args)
	failed, output := hook(ctx, args, resolved)
	return failed, output, nil
}

// parseArgs fills flags from hook args the way the hook's own CLI would
func parseArgs(id string, flags any, args []string) error {
	parser, err := kong.New(flags,
		kong.Name(id),
		kong.Writers(io.Discard, io.Discard),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return err
	}
	if _, err := parser.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", id, err)
	}
	return nil
}

// report accumulates per-file messages
type report struct {
	failed bool
	out    strings.Builder
}

func (r *report) fail(format string, a ...any) {
	r.failed = true
	fmt.Fprintf(&r.out, format, a...)
	r.out.WriteString("\n")
}

func (r *report) result() (bool, string) {
	return r.failed, r.out.String()
}
