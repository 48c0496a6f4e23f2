package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/hpungsan/msgpipe/internal/message"
)

// DefaultMessageMaxChars is the maximum message length when nothing overrides it.
const DefaultMessageMaxChars = message.DefaultMaxChars

// DirName is the per-user and per-repo directory holding config.json.
const DirName = ".msgpipe"

// Config holds application configuration.
type Config struct {
	// MessageMaxChars is the maximum character count (runes) for message text
	MessageMaxChars int `json:"message_max_chars"`

	// LogLevel is one of debug, info, warn, error.
	// MSGPIPE_LOG_LEVEL overrides it at logger construction.
	LogLevel string `json:"log_level,omitempty"`

	// LogFormat is text or json.
	LogFormat string `json:"log_format,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		MessageMaxChars: DefaultMessageMaxChars,
		LogLevel:        "warn",
		LogFormat:       "text",
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.msgpipe.
func Load(baseDir string) (*Config, error) {
	return loadFile(filepath.Join(baseDir, "config.json"))
}

// LoadWithRepo loads configuration from both global (~/.msgpipe) and repo (.msgpipe) directories.
// Repo config is found by walking upward from startDir to find the nearest .msgpipe/config.json.
// Repo config takes precedence. Either or both configs may be missing.
func LoadWithRepo(globalDir, startDir string) (*Config, error) {
	global, err := loadFileRaw(filepath.Join(globalDir, "config.json"))
	if err != nil {
		return nil, err
	}

	repo, err := loadFileRaw(FindRepoConfig(startDir))
	if err != nil {
		return nil, err
	}

	// Apply defaults, then global, then repo
	return Merge(Merge(DefaultConfig(), global), repo), nil
}

// FindRepoConfig walks upward from startDir to find the nearest .msgpipe/config.json.
// Returns the path if found, or empty string if not found.
func FindRepoConfig(startDir string) string {
	if startDir == "" {
		return ""
	}
	dir := startDir
	for {
		configPath := filepath.Join(dir, DirName, "config.json")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the path is empty or the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	if configPath == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile loads configuration from a specific file path.
// Returns default config if the file doesn't exist.
func loadFile(configPath string) (*Config, error) {
	cfg, err := loadFileRaw(configPath)
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence when set; a non-positive MessageMaxChars counts as unset.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.MessageMaxChars = overlay.MessageMaxChars
	if result.MessageMaxChars <= 0 {
		result.MessageMaxChars = base.MessageMaxChars
	}

	result.LogLevel = mergeString(base.LogLevel, overlay.LogLevel)
	result.LogFormat = mergeString(base.LogFormat, overlay.LogFormat)

	return result
}

// mergeString returns the trimmed overlay if non-empty, else the trimmed base.
func mergeString(base, overlay string) string {
	if s := strings.TrimSpace(overlay); s != "" {
		return s
	}
	return strings.TrimSpace(base)
}
