package runner

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/gobwas/glob"

	"github.com/renato0307/hookpin/internal/adapters/identify"
	"github.com/renato0307/hookpin/internal/logging"
	"github.com/renato0307/hookpin/internal/ports"
)

// Classifier implements ports.FileClassifier.
// Regexes and file tags are cached for the lifetime of a run.
type Classifier struct {
	ignore []glob.Glob

	mu       sync.Mutex
	patterns map[string]*regexp.Regexp
	tags     map[string]map[string]struct{}
}

// Verify interface compliance at compile time
var _ ports.FileClassifier = (*Classifier)(nil)

// NewClassifier creates a classifier skipping files that match ignorePaths globs
func NewClassifier(ignorePaths []string) (*Classifier, error) {
	c := &Classifier{
		patterns: make(map[string]*regexp.Regexp),
		tags:     make(map[string]map[string]struct{}),
	}
	for _, p := range ignorePaths {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore path '%s': %w", p, err)
		}
		c.ignore = append(c.ignore, g)
	}
	return c, nil
}

// FilterByPattern keeps files matching include and not matching exclude.
// An empty include matches everything.
func (c *Classifier) FilterByPattern(files []string, include, exclude string) ([]string, error) {
	inc, err := c.compile(include)
	if err != nil {
		return nil, err
	}
	exc, err := c.compile(exclude)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(files))
	for _, f := range files {
		if inc != nil && !inc.MatchString(f) {
			continue
		}
		if exc != nil && exc.MatchString(f) {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

// FilterByTypes keeps files carrying all of types, any of typesOr and none
// of excludeTypes. Files that cannot be identified are dropped.
func (c *Classifier) FilterByTypes(root string, files []string, types, typesOr, excludeTypes []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		tags, ok := c.tagsFor(root, f)
		if !ok {
			continue
		}
		if !identify.Has(tags, types...) {
			continue
		}
		if len(typesOr) > 0 && !hasAny(tags, typesOr) {
			continue
		}
		if hasAny(tags, excludeTypes) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// FilterIgnored drops files matching the configured ignore globs
func (c *Classifier) FilterIgnored(files []string) []string {
	if len(c.ignore) == 0 {
		return files
	}

	out := make([]string, 0, len(files))
	for _, f := range files {
		ignored := false
		for _, g := range c.ignore {
			if g.Match(filepath.ToSlash(f)) {
				ignored = true
				break
			}
		}
		if ignored {
			logging.Logger.Debug("Ignoring file", "file", f)
			continue
		}
		out = append(out, f)
	}
	return out
}

func (c *Classifier) compile(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if re, ok := c.patterns[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern '%s': %w", pattern, err)
	}
	c.patterns[pattern] = re
	return re, nil
}

func (c *Classifier) tagsFor(root, file string) (map[string]struct{}, bool) {
	path := file
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, file)
	}

	c.mu.Lock()
	tags, ok := c.tags[path]
	c.mu.Unlock()
	if ok {
		return tags, true
	}

	tags, err := identify.Tags(path)
	if err != nil {
		logging.Logger.Debug("Skipping unidentifiable file", "file", file, "error", err)
		return nil, false
	}

	c.mu.Lock()
	c.tags[path] = tags
	c.mu.Unlock()
	return tags, true
}

func hasAny(tags map[string]struct{}, want []string) bool {
	for _, w := range want {
		if _, ok := tags[w]; ok {
			return true
		}
	}
	return false
}
