package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByPattern(t *testing.T) {
	files := []string{"src/app.py", "src/app_test.py", "docs/index.md", "vendor/lib.py"}

	tests := []struct {
		name     string
		include  string
		exclude  string
		expected []string
	}{
		{"defaults keep everything", "", "^$", files},
		{"include", `\.py$`, "^$", []string{"src/app.py", "src/app_test.py", "vendor/lib.py"}},
		{"include and exclude", `\.py$`, `^vendor/|_test\.py$`, []string{"src/app.py"}},
		{"search semantics", `app`, "", []string{"src/app.py", "src/app_test.py"}},
	}

	c, err := NewClassifier(nil)
	require.NoError(t, err)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.FilterByPattern(files, tt.include, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err = c.FilterByPattern(files, "(", "")
	assert.ErrorContains(t, err, "invalid pattern")
}

func TestFilterByTypes(t *testing.T) {
	root := t.TempDir()
	for name, content := range map[string]string{
		"a.py":       "x = 1\n",
		"b.pyi":      "x: int\n",
		"c.yaml":     "a: 1\n",
		"logo.png":   "\x89PNG\x00\x00",
		"run_script": "#!/usr/bin/env python3\n",
	} {
		mode := os.FileMode(0644)
		if name == "run_script" {
			mode = 0755
		}
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), mode))
	}
	files := []string{"a.py", "b.pyi", "c.yaml", "logo.png", "run_script", "deleted.py"}

	c, err := NewClassifier(nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.py", "b.pyi", "c.yaml", "run_script"}, c.FilterByTypes(root, files, []string{"text"}, nil, nil))
	assert.Equal(t, []string{"a.py", "run_script"}, c.FilterByTypes(root, files, []string{"python"}, nil, nil))
	assert.Equal(t, []string{"a.py", "b.pyi", "run_script"}, c.FilterByTypes(root, files, []string{"file"}, []string{"python", "pyi"}, nil))
	assert.Equal(t, []string{"a.py", "b.pyi", "c.yaml"}, c.FilterByTypes(root, files, []string{"text"}, nil, []string{"executable"}))
}

func TestFilterIgnored(t *testing.T) {
	c, err := NewClassifier([]string{"vendor/**", "*.min.js"})
	require.NoError(t, err)

	got := c.FilterIgnored([]string{"vendor/a/b.go", "main.go", "app.min.js", "web/app.min.js"})

	assert.Equal(t, []string{"main.go", "web/app.min.js"}, got)

	_, err = NewClassifier([]string{"[unclosed"})
	assert.Error(t, err)
}
