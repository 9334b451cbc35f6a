package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/renato0307/hookpin/internal/logging"
)

// keptGitEnv are GIT_ variables that still apply when operating on a
// repository other than the one a hook was invoked in
var keptGitEnv = map[string]bool{
	"GIT_ASKPASS":         true,
	"GIT_EXEC_PATH":       true,
	"GIT_HTTP_PROXY":      true,
	"GIT_SSH":             true,
	"GIT_SSH_COMMAND":     true,
	"GIT_SSL_CAINFO":      true,
	"GIT_SSL_NO_VERIFY":   true,
	"GIT_TERMINAL_PROMPT": true,
}

// isolatedEnv drops the GIT_ variables git exports to hooks (GIT_DIR,
// GIT_INDEX_FILE, ...) so commands target the working directory
func isolatedEnv() []string {
	env := make([]string, 0, len(os.Environ())+1)
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "GIT_") && !keptGitEnv[name] && !strings.HasPrefix(name, "GIT_CONFIG_") {
			continue
		}
		env = append(env, kv)
	}
	return append(env, "GIT_TERMINAL_PROMPT=0")
}

// runGit runs git in dir and returns stdout.
// isolated selects isolatedEnv for commands on hook repositories.
func runGit(ctx context.Context, dir string, isolated bool, args ...string) ([]byte, error) {
	logging.Logger.Debug("Running git", "dir", dir, "args", args)

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	if isolated {
		cmd.Env = isolatedEnv()
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		logging.Logger.Debug("Git command failed", "args", args, "error", err, "stderr", stderr.String())
		return nil, fmt.Errorf("git %s failed: %w\nOutput: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// splitNUL splits -z output into paths
func splitNUL(out []byte) []string {
	var files []string
	for _, p := range bytes.Split(out, []byte{0}) {
		if len(p) > 0 {
			files = append(files, string(p))
		}
	}
	return files
}
