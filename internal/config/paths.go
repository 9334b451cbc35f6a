package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the hookpin cache directory
const EnvHome = "HOOKPIN_HOME"

// GetHookpinHome returns $HOOKPIN_HOME, $XDG_CACHE_HOME/hookpin or ~/.cache/hookpin
func GetHookpinHome() string {
	if home := os.Getenv(EnvHome); home != "" {
		return ExpandPath(home)
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(ExpandPath(cacheHome), "hookpin")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".hookpin"
	}
	return filepath.Join(homeDir, ".cache", "hookpin")
}

// GetDBPath returns $HOOKPIN_HOME/db.db
func GetDBPath() string {
	return filepath.Join(GetHookpinHome(), "db.db")
}

// GetReposPath returns $HOOKPIN_HOME/repos
func GetReposPath() string {
	return filepath.Join(GetHookpinHome(), "repos")
}

// GetEnvsPath returns $HOOKPIN_HOME/envs
func GetEnvsPath() string {
	return filepath.Join(GetHookpinHome(), "envs")
}

// GetLockPath returns $HOOKPIN_HOME/.lock
func GetLockPath() string {
	return filepath.Join(GetHookpinHome(), ".lock")
}

// GetSettingsPath returns $HOOKPIN_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHookpinHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
