// Package config loads mdsearch settings from a YAML file and the
// environment.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/mdsearch"
	"github.com/fwojciec/mdsearch/fs"
	"github.com/fwojciec/mdsearch/search"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the settings shared by every command.
type Config struct {
	Root           string              `yaml:"root" env:"MDSEARCH_ROOT" env-default:"~/hacktricks"`
	Concurrency    int                 `yaml:"concurrency" env:"MDSEARCH_CONCURRENCY" env-default:"8"`
	FuzzyThreshold int                 `yaml:"fuzzy_threshold" env:"MDSEARCH_FUZZY_THRESHOLD" env-default:"80"`
	Extensions     []string            `yaml:"extensions" env:"MDSEARCH_EXTENSIONS" env-default:".md"`
	LinkDenylist   []string            `yaml:"link_denylist" env:"MDSEARCH_LINK_DENYLIST"`
	LogLevel       string              `yaml:"log_level" env:"MDSEARCH_LOG_LEVEL" env-default:"warn"`
	Synonyms       map[string][]string `yaml:"synonyms"`
}

// Load reads the configuration file at path, if any, then applies
// MDSEARCH_* environment variables and defaults. An empty path reads the
// environment only.
func Load(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, mdsearch.Errorf(mdsearch.EINVALID, "invalid environment: %v", err)
		}
	} else {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, mdsearch.Errorf(mdsearch.ENOTFOUND, "config file %q not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, mdsearch.Errorf(mdsearch.EINVALID, "invalid config file %q: %v", path, err)
		}
	}

	if cfg.Synonyms == nil {
		cfg.Synonyms = DefaultSynonyms()
	}
	if cfg.LinkDenylist == nil {
		cfg.LinkDenylist = mdsearch.DefaultLinkDenylist()
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = fs.DefaultExtensions
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = search.DefaultConcurrency
	}
	root, err := ExpandHome(cfg.Root)
	if err != nil {
		return nil, err
	}
	cfg.Root = root

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports whether the configuration values are usable.
func (c *Config) Validate() error {
	// Scores run 0-100 and a match must exceed the threshold.
	if c.FuzzyThreshold < 1 || c.FuzzyThreshold > 99 {
		return mdsearch.Errorf(mdsearch.EINVALID, "fuzzy_threshold must be between 1 and 99, got %d", c.FuzzyThreshold)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, mdsearch.Errorf(mdsearch.EINVALID, "unknown log_level %q", c.LogLevel)
	}
	return level, nil
}

// ExpandHome replaces a leading "~" in path with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", mdsearch.Errorf(mdsearch.EINVALID, "cannot expand %q: %v", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// DefaultSynonyms returns the built-in synonym table for security notes.
func DefaultSynonyms() map[string][]string {
	return map[string][]string{
		"ad":                   {"active directory"},
		"privesc":              {"privilege escalation"},
		"kerberoasting":        {"kerberoast", "kerberos roasting"},
		"sql":                  {"sql injection", "structured query language"},
		"lsass":                {"local security authority subsystem service"},
		"persistence":          {"backdoor", "persistent access"},
		"pass the hash":        {"pth", "passing the hash"},
		"rce":                  {"remote code execution"},
		"smb":                  {"server message block", "cifs"},
		"cmd":                  {"command prompt", "windows cmd"},
		"mimikatz":             {"credential dumping tool"},
		"shell":                {"reverse shell", "bind shell"},
		"privilege escalation": {"priv esc", "privesc"},
		"directory traversal":  {"path traversal", "dot-dot-slash attack"},
	}
}
