package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "aocgen.json"))
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("loadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	p := filepath.Join(t.TempDir(), "aocgen.json")
	data := `{
  "base_url": "http://localhost:8080/",
  "user_agent": "me@example.com",
  "solutions_dir": "./puzzles/"
}`
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := loadConfig(p)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.UserAgent != "me@example.com" {
		t.Errorf("UserAgent = %q", cfg.UserAgent)
	}
	if cfg.SolutionsDir != "puzzles" {
		t.Errorf("SolutionsDir = %q", cfg.SolutionsDir)
	}
	if cfg.SessionEnv != defaultSessionEnv {
		t.Errorf("SessionEnv = %q, want default", cfg.SessionEnv)
	}
	if cfg.GoVersion != defaultGoVersion {
		t.Errorf("GoVersion = %q, want default", cfg.GoVersion)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"relative base_url":      `{"base_url": "adventofcode.com"}`,
		"escaping solutions_dir": `{"solutions_dir": "../elsewhere"}`,
		"absolute solutions_dir": `{"solutions_dir": "/tmp/aoc"}`,
		"malformed json":         `{"base_url": `,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "aocgen.json")
			if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := loadConfig(p); err == nil {
				t.Error("loadConfig() error = nil, want error")
			}
		})
	}
}
