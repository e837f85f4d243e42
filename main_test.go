package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// newTestApp builds an app rooted in a temp dir whose config points at baseURL.
func newTestApp(t *testing.T, baseURL string) (*app, string) {
	t.Helper()
	root := t.TempDir()
	configPath := filepath.Join(root, "aocgen.json")
	if baseURL != "" {
		data := fmt.Sprintf(`{"base_url": %q, "user_agent": "aocgen-test"}`, baseURL)
		if err := os.WriteFile(configPath, []byte(data), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}
	a := &app{
		root:   root,
		now:    func() time.Time { return time.Date(2024, time.December, 5, 6, 0, 0, 0, time.UTC) },
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		log:    nopLogger(),
	}
	return a, configPath
}

func execute(a *app, args ...string) error {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.ExecuteContext(context.Background())
}

func TestCLIScaffoldDefaultsYear(t *testing.T) {
	srv := newInputServer(t, "puzzle\n")
	t.Setenv("AOC_SESSION", "abc")
	a, configPath := newTestApp(t, srv.URL)

	if err := execute(a, "--config", configPath, "scaffold", "--day", "7"); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	got := readString(t, filepath.Join(a.root, "solutions", "2024", "day07", "input.txt"))
	if got != "puzzle" {
		t.Errorf("input.txt = %q", got)
	}
}

func TestCLIScaffoldRejectsDayOutOfRange(t *testing.T) {
	for _, day := range []string{"0", "26", "-1"} {
		t.Run(day, func(t *testing.T) {
			a, configPath := newTestApp(t, "")
			err := execute(a, "--config", configPath, "scaffold", "--day", day, "--year", "2023")
			if err == nil {
				t.Fatal("scaffold accepted an out-of-range day")
			}
			if _, err := os.Stat(filepath.Join(a.root, "solutions")); !errors.Is(err, os.ErrNotExist) {
				t.Error("solutions directory created for an invalid day")
			}
		})
	}
}

func TestCLIScaffoldRequiresDay(t *testing.T) {
	a, configPath := newTestApp(t, "")
	err := execute(a, "--config", configPath, "scaffold")
	if err == nil || !strings.Contains(err.Error(), flagDay) {
		t.Fatalf("error = %v, want required flag error", err)
	}
}

func TestCLIScaffoldMissingSession(t *testing.T) {
	srv := newInputServer(t, "x")
	t.Setenv("AOC_SESSION", "")
	a, configPath := newTestApp(t, srv.URL)

	err := execute(a, "--config", configPath, "scaffold", "-d", "1", "-y", "2024")
	if errorKind(err) != "missing credential" {
		t.Fatalf("errorKind(%v) = %q", err, errorKind(err))
	}
}

func TestCLIInit(t *testing.T) {
	a, configPath := newTestApp(t, "")
	if err := execute(a, "--config", configPath, "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	for _, name := range []string{"go.work", ".gitignore", ".env"} {
		if _, err := os.Stat(filepath.Join(a.root, name)); err != nil {
			t.Errorf("%s missing: %v", name, err)
		}
	}
}

func TestCLIRunNotScaffolded(t *testing.T) {
	a, configPath := newTestApp(t, "")
	err := execute(a, "--config", configPath, "run", "--day", "3", "--release")
	if err == nil || !strings.Contains(err.Error(), "not scaffolded") {
		t.Fatalf("run error = %v, want not scaffolded", err)
	}
}

func TestRunArgs(t *testing.T) {
	if got := strings.Join(runArgs(false), " "); got != "run -gcflags=all=-N -l ." {
		t.Errorf("debug args = %q", got)
	}
	if got := strings.Join(runArgs(true), " "); got != "run -trimpath ." {
		t.Errorf("release args = %q", got)
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("fetch input: %w", ErrMissingSession), "missing credential"},
		{fmt.Errorf("fetch input: %w", &HTTPError{StatusCode: 404}), "http error 404"},
		{&NetworkError{URL: "http://x", Err: errors.New("refused")}, "network error"},
		{&FSError{Op: "create", Path: "a", Err: os.ErrPermission}, "filesystem error"},
		{errors.New("boom"), "error"},
	}
	for _, tt := range tests {
		if got := errorKind(tt.err); got != tt.want {
			t.Errorf("errorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
