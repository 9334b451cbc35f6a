package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Color modes accepted by --color and the color setting
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// Settings represents the structure of $HOOKPIN_HOME/settings.json
type Settings struct {
	Color       string      `json:"color,omitempty"`
	ConfigFile  string      `json:"config_file,omitempty"`
	Debug       *bool       `json:"debug,omitempty"`
	IgnorePaths StringArray `json:"ignore_paths,omitempty"`
	Jobs        *int        `json:"jobs,omitempty"`
	MaxLogFiles *int        `json:"max_log_files,omitempty"`
	NativeHooks *bool       `json:"native_hooks,omitempty"`
	Python      string      `json:"python,omitempty"`
}

// UseNativeHooks reports whether pre-commit-hooks ids run natively (default true)
func (s *Settings) UseNativeHooks() bool {
	return s == nil || s.NativeHooks == nil || *s.NativeHooks
}

// PythonExecutable returns the interpreter used to create environments
func (s *Settings) PythonExecutable() string {
	if s == nil || s.Python == "" {
		return "python3"
	}
	return s.Python
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ValidateColor checks a color mode value
func ValidateColor(mode string) error {
	switch mode {
	case "", ColorAlways, ColorAuto, ColorNever:
		return nil
	}
	return fmt.Errorf("invalid color mode '%s' (expected always, auto or never)", mode)
}

// LoadSettings loads settings from $HOOKPIN_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := ValidateColor(settings.Color); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if settings.ConfigFile != "" {
		settings.ConfigFile = ExpandPath(settings.ConfigFile)
	}
	if settings.Python != "" {
		settings.Python = ExpandPath(settings.Python)
	}

	return &settings, nil
}

// SaveSettings saves settings to $HOOKPIN_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
