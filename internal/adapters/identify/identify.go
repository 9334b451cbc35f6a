// Package identify tags files with the types used by hook filters.
package identify

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/renato0307/hookpin/internal/domain"
)

// sniffLen is how much of a file decides text or binary
const sniffLen = 1024

var extensions = map[string][]string{
	"bash":     {"shell", "bash"},
	"bat":      {"batch"},
	"c":        {"c"},
	"cc":       {"c++"},
	"cfg":      {"cfg"},
	"cpp":      {"c++"},
	"css":      {"css"},
	"csv":      {"csv"},
	"gif":      {"image", "gif"},
	"go":       {"go"},
	"gql":      {"graphql"},
	"graphql":  {"graphql"},
	"gz":       {"gzip"},
	"h":        {"c"},
	"hpp":      {"c++"},
	"htm":      {"html"},
	"html":     {"html"},
	"ini":      {"ini"},
	"j2":       {"jinja"},
	"java":     {"java"},
	"jinja":    {"jinja"},
	"jpeg":     {"image", "jpeg"},
	"jpg":      {"image", "jpeg"},
	"js":       {"javascript"},
	"json":     {"json"},
	"jsx":      {"jsx"},
	"kt":       {"kotlin"},
	"lua":      {"lua"},
	"markdown": {"markdown"},
	"md":       {"markdown"},
	"mjs":      {"javascript"},
	"pdf":      {"pdf"},
	"php":      {"php"},
	"pl":       {"perl"},
	"png":      {"image", "png"},
	"proto":    {"proto"},
	"py":       {"python"},
	"pyi":      {"pyi"},
	"r":        {"r"},
	"rb":       {"ruby"},
	"rs":       {"rust"},
	"rst":      {"rst"},
	"scss":     {"scss"},
	"sh":       {"shell"},
	"sql":      {"sql"},
	"svg":      {"image", "svg", "xml"},
	"swift":    {"swift"},
	"tar":      {"tar"},
	"tf":       {"terraform"},
	"toml":     {"toml"},
	"ts":       {"ts"},
	"tsx":      {"tsx"},
	"txt":      {"plain-text"},
	"xml":      {"xml"},
	"yaml":     {"yaml"},
	"yml":      {"yaml"},
	"zip":      {"zip"},
	"zsh":      {"shell", "zsh"},
}

var names = map[string][]string{
	".bashrc":        {"shell", "bash"},
	".env":           {"dotenv"},
	".gitattributes": {"gitattributes"},
	".gitignore":     {"gitignore"},
	".zshrc":         {"shell", "zsh"},
	"Dockerfile":     {"dockerfile"},
	"GNUmakefile":    {"makefile"},
	"Makefile":       {"makefile"},
	"go.mod":         {"go-mod"},
	"go.sum":         {"go-sum"},
	"makefile":       {"makefile"},
	"setup.cfg":      {"cfg", "ini"},
}

var interpreters = map[string][]string{
	"bash":    {"shell", "bash"},
	"node":    {"javascript"},
	"perl":    {"perl"},
	"python":  {"python"},
	"python3": {"python"},
	"ruby":    {"ruby"},
	"sh":      {"shell"},
	"zsh":     {"shell", "zsh"},
}

// Tags identifies path: kind of entry, mode, text or binary and the
// language tags from its name, extension or shebang.
func Tags(path string) (map[string]struct{}, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to identify %s: %w", path, err)
	}

	tags := make(map[string]struct{})
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		tags[domain.TagSymlink] = struct{}{}
		return tags, nil
	case info.IsDir():
		tags[domain.TagDirectory] = struct{}{}
		return tags, nil
	case !info.Mode().IsRegular():
		return tags, nil
	}

	tags[domain.TagFile] = struct{}{}
	executable := info.Mode()&0111 != 0
	if executable {
		tags[domain.TagExecutable] = struct{}{}
	} else {
		tags[domain.TagNonExecutable] = struct{}{}
	}

	head, err := readHead(path)
	if err != nil {
		return nil, err
	}
	if isText(head) {
		tags[domain.TagText] = struct{}{}
	} else {
		tags[domain.TagBinary] = struct{}{}
	}

	nameTags := FromFilename(filepath.Base(path))
	for _, t := range nameTags {
		tags[t] = struct{}{}
	}
	if len(nameTags) == 0 && executable {
		for _, t := range fromShebang(head) {
			tags[t] = struct{}{}
		}
	}

	return tags, nil
}

// FromFilename returns language tags implied by a file name alone
func FromFilename(name string) []string {
	if t, ok := names[name]; ok {
		return t
	}
	if strings.HasPrefix(name, "Dockerfile.") {
		return names["Dockerfile"]
	}
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return nil
	}
	return extensions[strings.ToLower(ext)]
}

func fromShebang(head []byte) []string {
	if !bytes.HasPrefix(head, []byte("#!")) {
		return nil
	}
	line, _, _ := bytes.Cut(head[2:], []byte("\n"))
	fields := strings.Fields(string(line))
	if len(fields) == 0 {
		return nil
	}

	interp := filepath.Base(fields[0])
	if interp == "env" {
		args := fields[1:]
		for len(args) > 0 && strings.HasPrefix(args[0], "-") {
			args = args[1:]
		}
		if len(args) == 0 {
			return nil
		}
		interp = filepath.Base(args[0])
	}

	if t, ok := interpreters[interp]; ok {
		return t
	}
	// python3.12, python2
	if strings.HasPrefix(interp, "python") {
		return interpreters["python"]
	}
	return nil
}

func readHead(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to identify %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return buf[:n], nil
}

// isText treats data as text unless it holds bytes outside the usual
// printable and whitespace ranges
func isText(data []byte) bool {
	for _, b := range data {
		switch {
		case b >= 0x20 && b != 0x7f:
		case b == '\t', b == '\n', b == '\r', b == '\f', b == '\b', b == 0x1b, b == 0x07:
		default:
			return false
		}
	}
	return true
}

// Has reports whether tags contains every tag in want
func Has(tags map[string]struct{}, want ...string) bool {
	for _, w := range want {
		if _, ok := tags[w]; !ok {
			return false
		}
	}
	return true
}
