package git

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/renato0307/hookpin/internal/logging"
)

// repoSource represents parsed repository source (internal)
type repoSource struct {
	isRemote bool
	owner    string // From github.com/owner/repo or similar
	path     string // URL or local path
	repo     string // From github.com/owner/repo or similar
}

var gitURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://`),           // https:// or http://
	regexp.MustCompile(`^git@`),                // git@github.com:owner/repo
	regexp.MustCompile(`^ssh://`),              // ssh://git@github.com/owner/repo
	regexp.MustCompile(`^git://`),              // git://github.com/owner/repo
	regexp.MustCompile(`^ftps?://`),            // ftp:// or ftps://
	regexp.MustCompile(`^file://`),             // file:///srv/hooks
	regexp.MustCompile(`\.git(/|\\)?$`),        // ends with .git
	regexp.MustCompile(`^[a-zA-Z0-9.-]+@.*:`), // generic user@host:path format
}

// isGitURL checks if string is git URL (https://, git@, ssh://, file://)
func isGitURL(source string) bool {
	if source == "" {
		return false
	}

	for _, pattern := range gitURLPatterns {
		if pattern.MatchString(source) {
			return true
		}
	}

	return false
}

// parseRepoSource parses repository path or URL
func parseRepoSource(source string) (*repoSource, error) {
	logging.Logger.Debug("Parsing repo source", "source", source)

	if source == "" {
		return nil, fmt.Errorf("empty source")
	}

	rs := &repoSource{
		isRemote: isGitURL(source),
		path:     source,
	}

	if !rs.isRemote {
		return rs, nil
	}

	cleanURL := strings.TrimSuffix(strings.TrimSuffix(source, "/"), ".git")

	var ownerRepo string

	// Supported formats:
	// - https://github.com/owner/repo.git
	// - git@github.com:owner/repo.git
	// - ssh://git@github.com/owner/repo.git
	// - file:///srv/hooks/owner/repo
	switch {
	case strings.HasPrefix(cleanURL, "https://"), strings.HasPrefix(cleanURL, "http://"),
		strings.HasPrefix(cleanURL, "git://"), strings.HasPrefix(cleanURL, "file://"):
		parts := strings.SplitN(cleanURL, "://", 2)
		pathParts := strings.Split(parts[1], "/")
		if len(pathParts) >= 3 {
			ownerRepo = pathParts[len(pathParts)-2] + "/" + pathParts[len(pathParts)-1]
		}
	case strings.HasPrefix(cleanURL, "ssh://"):
		path := strings.TrimPrefix(cleanURL, "ssh://")
		if idx := strings.Index(path, "@"); idx >= 0 {
			path = path[idx+1:]
		}
		parts := strings.Split(path, "/")
		if len(parts) >= 3 {
			ownerRepo = parts[len(parts)-2] + "/" + parts[len(parts)-1]
		}
	case strings.Contains(cleanURL, "@") && strings.Contains(cleanURL, ":"):
		// git@github.com:owner/repo
		parts := strings.SplitN(cleanURL, ":", 2)
		ownerRepo = parts[1]
	}

	parts := strings.Split(ownerRepo, "/")
	if len(parts) == 2 && parts[0] != "" && parts[1] != "" {
		rs.owner = parts[0]
		rs.repo = parts[1]
		logging.Logger.Debug("Parsed remote repo", "owner", rs.owner, "repo", rs.repo)
	} else {
		logging.Logger.Warn("Could not extract owner/repo from URL", "url", source)
	}

	return rs, nil
}

// isSameRepo checks if two URLs point to the same repository
// Normalizes URLs for comparison (handles .git suffix, https vs ssh, etc.)
func isSameRepo(url1, url2 string) bool {
	normalize := func(url string) string {
		url = strings.TrimSuffix(url, "/")
		url = strings.TrimSuffix(url, ".git")
		url = strings.ToLower(url)

		// Canonical form is host/owner/repo
		if strings.HasPrefix(url, "https://") {
			url = strings.TrimPrefix(url, "https://")
		} else if strings.HasPrefix(url, "http://") {
			url = strings.TrimPrefix(url, "http://")
		}
		if strings.HasPrefix(url, "ssh://") {
			url = strings.TrimPrefix(url, "ssh://")
			if idx := strings.Index(url, "@"); idx >= 0 {
				url = url[idx+1:]
			}
		}
		// git@host:path
		if strings.Contains(url, "@") && strings.Contains(url, ":") {
			parts := strings.SplitN(url, "@", 2)
			if len(parts) == 2 {
				url = strings.Replace(parts[1], ":", "/", 1)
			}
		}

		return url
	}

	return normalize(url1) == normalize(url2)
}
