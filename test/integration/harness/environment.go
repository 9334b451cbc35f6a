package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own HOOKPIN_HOME.
type TestEnvironment struct {
	HookpinHome string
	extraEnv    map[string]string
	tb          testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp HOOKPIN_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		HookpinHome: tb.TempDir(),
		extraEnv:    make(map[string]string),
		tb:          tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out HOOKPIN_*, SKIP and the GIT_ variables git exports to hooks, and sets:
//   - HOOKPIN_HOME to the temp directory
//   - HOOKPIN_DEBUG to empty string (disables debug logging)
//   - HOOKPIN_COLOR to never
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+6+len(e.extraEnv))

	overrideKeys := map[string]bool{
		"GIT_DIR":        true,
		"GIT_INDEX_FILE": true,
		"GIT_WORK_TREE":  true,
		"SKIP":           true,
	}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "HOOKPIN_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"HOOKPIN_HOME="+e.HookpinHome,
		"HOOKPIN_DEBUG=",
		"HOOKPIN_COLOR=never",
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.HookpinHome, "db.db")
}

// ReposPath returns the directory hook repositories are cloned into.
func (e *TestEnvironment) ReposPath() string {
	return filepath.Join(e.HookpinHome, "repos")
}

// WriteSettings writes settings.json into HOOKPIN_HOME.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(filepath.Join(e.HookpinHome, "settings.json"), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
