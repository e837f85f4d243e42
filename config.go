package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	defaultConfigPath   = "aocgen.json"
	defaultBaseURL      = "https://adventofcode.com"
	defaultUA           = "aocgen (Go scaffolding tool; set user_agent in aocgen.json to add contact info)"
	defaultSessionEnv   = "AOC_SESSION"
	defaultSolutionsDir = "solutions"
	defaultGoVersion    = "1.23"
)

// appConfig holds the application configuration.
type appConfig struct {
	BaseURL      string `json:"base_url"`
	UserAgent    string `json:"user_agent"`
	SessionEnv   string `json:"session_env"`
	SolutionsDir string `json:"solutions_dir"`
	GoVersion    string `json:"go_version"`
}

func defaultConfig() appConfig {
	return appConfig{
		BaseURL:      defaultBaseURL,
		UserAgent:    defaultUA,
		SessionEnv:   defaultSessionEnv,
		SolutionsDir: defaultSolutionsDir,
		GoVersion:    defaultGoVersion,
	}
}

// loadConfig loads configuration from the specified path. A missing file
// yields the defaults.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return appConfig{}, fmt.Errorf("stat config: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return appConfig{}, fmt.Errorf("load config: %w", err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return appConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg.normalize()
}

func (c appConfig) normalize() (appConfig, error) {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return appConfig{}, fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return appConfig{}, fmt.Errorf("invalid base_url: %q", c.BaseURL)
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		c.UserAgent = defaultUA
	}
	if strings.TrimSpace(c.SessionEnv) == "" {
		c.SessionEnv = defaultSessionEnv
	}
	if strings.TrimSpace(c.SolutionsDir) == "" {
		c.SolutionsDir = defaultSolutionsDir
	}
	c.SolutionsDir = path.Clean(filepath.ToSlash(strings.TrimSpace(c.SolutionsDir)))
	if path.IsAbs(c.SolutionsDir) || strings.HasPrefix(c.SolutionsDir, "..") {
		return appConfig{}, fmt.Errorf("solutions_dir must stay inside the workspace: %q", c.SolutionsDir)
	}
	if strings.TrimSpace(c.GoVersion) == "" {
		c.GoVersion = defaultGoVersion
	}
	return c, nil
}
