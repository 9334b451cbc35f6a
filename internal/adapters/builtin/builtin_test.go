package builtin

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hookpin/internal/domain"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestRegistryMatchesBuiltinHooks(t *testing.T) {
	var ids []string
	for id := range domain.BuiltinHooks {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	assert.Equal(t, ids, IDs())
}

func TestRun_UnknownHook(t *testing.T) {
	_, _, err := Run(context.Background(), "check-xml", t.TempDir(), nil, nil)

	assert.ErrorIs(t, err, domain.ErrHookNotFound)
}

func TestCheckYAML(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"ok.yaml":     "a: 1\nb: [1, 2]\n",
		"bad.yaml":    "a: [1, 2\n",
		"multi.yaml":  "a: 1\n---\nb: 2\n",
		"tagged.yaml": "a: !!python/name:os.system\n",
	})

	tests := []struct {
		name     string
		args     []string
		files    []string
		failed   bool
		contains string
	}{
		{"valid", nil, []string{"ok.yaml"}, false, ""},
		{"syntax error", nil, []string{"ok.yaml", "bad.yaml"}, true, "bad.yaml:"},
		{"multiple documents rejected", nil, []string{"multi.yaml"}, true, "expected a single document"},
		{"multiple documents allowed", []string{"--allow-multiple-documents"}, []string{"multi.yaml"}, false, ""},
		{"short flag", []string{"-m"}, []string{"multi.yaml"}, false, ""},
		{"unsafe only checks syntax", []string{"--unsafe"}, []string{"tagged.yaml"}, false, ""},
		{"unknown flag", []string{"--colour"}, []string{"ok.yaml"}, true, "check-yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failed, out, err := Run(context.Background(), "check-yaml", dir, tt.args, tt.files)

			require.NoError(t, err)
			assert.Equal(t, tt.failed, failed, out)
			if tt.contains != "" {
				assert.Contains(t, out, tt.contains)
			} else {
				assert.Empty(t, out)
			}
		})
	}
}

func TestCheckTOML(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"pyproject.toml": "[tool.black]\nline-length = 88\n",
		"bad.toml":       "[tool\nkey = 1\n",
		"dup.toml":       "a = 1\na = 2\n",
	})

	failed, out, err := Run(context.Background(), "check-toml", dir, nil, []string{"pyproject.toml"})
	require.NoError(t, err)
	assert.False(t, failed)
	assert.Empty(t, out)

	failed, out, err = Run(context.Background(), "check-toml", dir, nil, []string{"bad.toml", "dup.toml"})
	require.NoError(t, err)
	assert.True(t, failed)
	assert.Contains(t, out, "bad.toml: line ")
	assert.Contains(t, out, "dup.toml:")
}

func TestValidateJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"object", `{"a": 1, "b": [true, null, {"c": "d"}]}`, ""},
		{"scalar", `42`, ""},
		{"duplicate key", `{"a": 1, "a": 2}`, "duplicate key: a"},
		{"nested duplicate", `{"a": [{"x": 1, "x": 1}]}`, "duplicate key: x"},
		{"same key in siblings", `[{"x": 1}, {"x": 2}]`, ""},
		{"trailing comma", `{"a": 1,}`, "invalid"},
		{"empty", ``, "unexpected end"},
		{"extra data", `{} {}`, "extra data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateJSON([]byte(tt.input))
			if tt.contains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestCheckJSON(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"ok.json":  `{"a": 1}`,
		"dup.json": `{"a": 1, "a": 1}`,
	})

	failed, out, err := Run(context.Background(), "check-json", dir, nil, []string{"ok.json", "dup.json"})

	require.NoError(t, err)
	assert.True(t, failed)
	assert.Equal(t, "dup.json: Failed to json decode (duplicate key: a)\n", out)
}

func TestFixLastLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty stays empty", "", ""},
		{"already fine", "a\n", "a\n"},
		{"missing newline", "a", "a\n"},
		{"extra newlines", "a\n\n\n", "a\n"},
		{"crlf kept", "a\r\n\r\n", "a\r\n"},
		{"only newlines", "\n\n", ""},
		{"only crlf", "\r\n", ""},
		{"trailing spaces are content", "a\n  ", "a\n  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(fixLastLine([]byte(tt.input))))
		})
	}
}

func TestEndOfFileFixer(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"ok.txt":    "fine\n",
		"short.txt": "no newline",
		"long.txt":  "too many\n\n",
	})

	failed, out, err := Run(context.Background(), "end-of-file-fixer", dir, nil, []string{"ok.txt", "short.txt", "long.txt"})

	require.NoError(t, err)
	assert.True(t, failed)
	assert.Equal(t, "Fixing short.txt\nFixing long.txt\n", out)
	assert.Equal(t, "no newline\n", readFile(t, dir, "short.txt"))
	assert.Equal(t, "too many\n", readFile(t, dir, "long.txt"))

	// Second pass is clean
	failed, out, err = Run(context.Background(), "end-of-file-fixer", dir, nil, []string{"ok.txt", "short.txt", "long.txt"})
	require.NoError(t, err)
	assert.False(t, failed)
	assert.Empty(t, out)
}

func TestTrimLines(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		isMarkdown bool
		chars      string
		expected   string
	}{
		{"spaces and tabs", "a  \nb\t\n", false, defaultStripChars, "a\nb\n"},
		{"crlf kept", "a \r\nb\r\n", false, defaultStripChars, "a\r\nb\r\n"},
		{"no final newline", "a  ", false, defaultStripChars, "a"},
		{"markdown hard break", "line  \nnext   \n", true, defaultStripChars, "line  \nnext  \n"},
		{"markdown blank line", "   \n", true, defaultStripChars, "\n"},
		{"markdown off", "line  \n", false, defaultStripChars, "line\n"},
		{"custom chars", "a.,\nb \n", false, ".,", "a\nb \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(trimLines([]byte(tt.input), tt.isMarkdown, tt.chars)))
		})
	}
}

func TestTrailingWhitespace(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"README.md": "title  \n",
		"main.go":   "package main  \n",
		"clean.txt": "ok\n",
	})
	files := []string{"README.md", "main.go", "clean.txt"}

	failed, out, err := Run(context.Background(), "trailing-whitespace", dir, []string{"--markdown-linebreak-ext=md,markdown"}, files)

	require.NoError(t, err)
	assert.True(t, failed)
	assert.Equal(t, "Fixing main.go\n", out)
	assert.Equal(t, "title  \n", readFile(t, dir, "README.md"))
	assert.Equal(t, "package main\n", readFile(t, dir, "main.go"))
}

func TestTrailingWhitespace_BadExtension(t *testing.T) {
	failed, out, err := Run(context.Background(), "trailing-whitespace", t.TempDir(), []string{"--markdown-linebreak-ext=.md/x"}, nil)

	require.NoError(t, err)
	assert.True(t, failed)
	assert.Contains(t, out, "bad --markdown-linebreak-ext extension")
}
