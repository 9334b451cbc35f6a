package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsGitURL(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://github.com/pre-commit/pre-commit-hooks", true},
		{"http://github.com/psf/black", true},
		{"https://gitlab.com/owner/repo.git", true},
		{"git@github.com:PyCQA/flake8.git", true},
		{"ssh://git@github.com/PyCQA/isort", true},
		{"user@host.com:path/repo", true},
		{"git://github.com/owner/repo", true},
		{"ftps://example.com/repo.git", true},
		{"file:///srv/hooks/owner/repo", true},
		{"/srv/hooks/repo.git", true},
		{"repo.git/", true},
		{"local", false},
		{"builtin", false},
		{"/home/user/repo", false},
		{"./relative/path", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, isGitURL(tt.url))
		})
	}
}

func TestParseRepoSource_EmptySource(t *testing.T) {
	_, err := parseRepoSource("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestParseRepoSource_Remote(t *testing.T) {
	tests := []struct {
		name          string
		url           string
		expectedOwner string
		expectedRepo  string
	}{
		{"https", "https://github.com/pre-commit/pre-commit-hooks", "pre-commit", "pre-commit-hooks"},
		{"https with .git", "https://github.com/psf/black.git", "psf", "black"},
		{"nested path", "https://gitlab.com/org/subgroup/repo", "subgroup", "repo"},
		{"scp style", "git@github.com:PyCQA/flake8.git", "PyCQA", "flake8"},
		{"ssh protocol", "ssh://git@github.com/PyCQA/isort", "PyCQA", "isort"},
		{"file protocol", "file:///srv/hooks/acme/lint", "acme", "lint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseRepoSource(tt.url)
			require.NoError(t, err)
			assert.True(t, result.isRemote)
			assert.Equal(t, tt.url, result.path)
			assert.Equal(t, tt.expectedOwner, result.owner)
			assert.Equal(t, tt.expectedRepo, result.repo)
		})
	}
}

func TestParseRepoSource_LocalPath(t *testing.T) {
	result, err := parseRepoSource("/home/user/repo")
	require.NoError(t, err)
	assert.False(t, result.isRemote)
	assert.Equal(t, "/home/user/repo", result.path)
	assert.Empty(t, result.owner)
}

func TestCLIRepository_ParseRepoSource(t *testing.T) {
	rs, err := NewCLIRepository().ParseRepoSource("https://github.com/psf/black")
	require.NoError(t, err)
	assert.Equal(t, "psf/black", rs.Slug())
}

func TestIsSameRepo(t *testing.T) {
	tests := []struct {
		name     string
		url1     string
		url2     string
		expected bool
	}{
		{"same url", "https://github.com/psf/black", "https://github.com/psf/black", true},
		{"one with .git", "https://github.com/psf/black", "https://github.com/psf/black.git", true},
		{"trailing slash", "https://github.com/psf/black/", "https://github.com/psf/black", true},
		{"different case", "https://GitHub.com/PSF/Black", "https://github.com/psf/black", true},
		{"https vs scp", "https://github.com/psf/black.git", "git@github.com:psf/black.git", true},
		{"http vs https", "http://github.com/psf/black", "https://github.com/psf/black", true},
		{"ssh vs scp", "ssh://git@github.com/psf/black", "git@github.com:psf/black", true},
		{"different owner", "https://github.com/psf/black", "https://github.com/other/black", false},
		{"different repo", "https://github.com/PyCQA/flake8", "https://github.com/PyCQA/isort", false},
		{"different host", "https://github.com/psf/black", "https://gitlab.com/psf/black", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isSameRepo(tt.url1, tt.url2))
		})
	}
}
