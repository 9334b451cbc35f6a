package identify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hookpin/internal/domain"
)

func TestTags(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string, mode os.FileMode) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), mode))
		return path
	}

	tests := []struct {
		name    string
		path    string
		want    []string
		notWant []string
	}{
		{
			name:    "yaml",
			path:    write("config.yml", "a: 1\n", 0644),
			want:    []string{domain.TagFile, domain.TagText, domain.TagNonExecutable, "yaml"},
			notWant: []string{domain.TagExecutable, domain.TagBinary},
		},
		{
			name: "python stub",
			path: write("mod.pyi", "def f() -> int: ...\n", 0644),
			want: []string{"pyi"},
		},
		{
			name:    "shebang script",
			path:    write("run", "#!/usr/bin/env python3\nprint(1)\n", 0755),
			want:    []string{domain.TagExecutable, domain.TagText, "python"},
			notWant: []string{domain.TagNonExecutable},
		},
		{
			name: "shell shebang",
			path: write("deploy", "#!/bin/bash\necho hi\n", 0755),
			want: []string{"shell", "bash"},
		},
		{
			name:    "binary",
			path:    write("logo.png", "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR", 0644),
			want:    []string{domain.TagBinary, "image", "png"},
			notWant: []string{domain.TagText},
		},
		{
			name: "special name",
			path: write("Makefile", "all:\n", 0644),
			want: []string{"makefile", domain.TagText},
		},
		{
			name: "empty file is text",
			path: write("empty.json", "", 0644),
			want: []string{domain.TagText, "json"},
		},
		{
			name:    "utf-8 text",
			path:    write("README.md", "héllo wörld\n", 0644),
			want:    []string{domain.TagText, "markdown"},
			notWant: []string{domain.TagBinary},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, err := Tags(tt.path)
			require.NoError(t, err)
			assert.True(t, Has(tags, tt.want...), "got %v", tags)
			for _, n := range tt.notWant {
				assert.NotContains(t, tags, n)
			}
		})
	}
}

func TestTags_DirectoryAndSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a.go")
	require.NoError(t, os.WriteFile(target, []byte("package a\n"), 0644))
	link := filepath.Join(dir, "link.go")
	require.NoError(t, os.Symlink(target, link))

	tags, err := Tags(dir)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{domain.TagDirectory: {}}, tags)

	tags, err = Tags(link)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{domain.TagSymlink: {}}, tags)
}

func TestTags_Missing(t *testing.T) {
	_, err := Tags(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestFromFilename(t *testing.T) {
	assert.Equal(t, []string{"go-mod"}, FromFilename("go.mod"))
	assert.Equal(t, []string{"dockerfile"}, FromFilename("Dockerfile.dev"))
	assert.Equal(t, []string{"yaml"}, FromFilename("CI.YAML"))
	assert.Nil(t, FromFilename("LICENSE"))
}

func TestTagsAreKnown(t *testing.T) {
	known := domain.KnownTags()
	for _, group := range []map[string][]string{extensions, names, interpreters} {
		for key, tags := range group {
			for _, tag := range tags {
				_, ok := known[tag]
				assert.True(t, ok, "%s -> %s", key, tag)
			}
		}
	}
}
