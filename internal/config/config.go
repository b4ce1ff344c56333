package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config drives the recents CLI. The library itself takes no configuration;
// everything here is about where the demo commands point and how they log.
type Config struct {
	File  string // registry file override (empty = ~/.local/share/recently-used.xbel)
	App   string // default application name for `recents record`
	Exec  string // default exec command for `recents record`
	Owner string // default metadata owner (empty = library default)

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)
}

// fileConfig mirrors the optional YAML config file,
// ~/.config/recents/config.yaml by default.
type fileConfig struct {
	File      string `yaml:"file"`
	App       string `yaml:"app"`
	Exec      string `yaml:"exec"`
	Owner     string `yaml:"owner"`
	LogLevel  string `yaml:"log_level"`
	PrettyLog *bool  `yaml:"pretty_log"`
}

// Load builds the configuration in three layers: defaults, then the YAML
// config file when present, then RECENTS_* environment variables. A .env in
// the working directory is honored before the environment is read.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:  "info",
		PrettyLog: true,
	}

	applyFile(cfg, configPath())

	cfg.File = getenv("RECENTS_FILE", cfg.File)
	cfg.App = getenv("RECENTS_APP", cfg.App)
	cfg.Exec = getenv("RECENTS_EXEC", cfg.Exec)
	cfg.Owner = getenv("RECENTS_OWNER", cfg.Owner)
	cfg.LogLevel = getenv("RECENTS_LOG_LEVEL", cfg.LogLevel)
	cfg.PrettyLog = mustBool("RECENTS_PRETTY_LOG", cfg.PrettyLog)

	return cfg
}

// configPath resolves the YAML config location. RECENTS_CONFIG wins;
// otherwise ~/.config/recents/config.yaml.
func configPath() string {
	if p := os.Getenv("RECENTS_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "recents", "config.yaml")
}

// applyFile overlays values from the YAML config file onto cfg.
// A missing or unreadable file is silently skipped; the file is optional.
func applyFile(cfg *Config, path string) {
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return
	}

	if fc.File != "" {
		cfg.File = fc.File
	}
	if fc.App != "" {
		cfg.App = fc.App
	}
	if fc.Exec != "" {
		cfg.Exec = fc.Exec
	}
	if fc.Owner != "" {
		cfg.Owner = fc.Owner
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.PrettyLog != nil {
		cfg.PrettyLog = *fc.PrettyLog
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
