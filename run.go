package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// runArgs returns the go command arguments for a debug or release run.
// Debug builds disable optimizations and inlining.
func runArgs(release bool) []string {
	if release {
		return []string{"run", "-trimpath", "."}
	}
	return []string{"run", "-gcflags=all=-N -l", "."}
}

// runDay hands a scaffolded day to `go run`. The solution runs with its src
// directory as working directory so it can read ../input.txt.
func runDay(ctx context.Context, root string, cfg appConfig, req scaffoldRequest, release bool, stdout, stderr io.Writer) error {
	dir := filepath.Join(root, filepath.FromSlash(dayPath(cfg.SolutionsDir, req)), srcDir)
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("day %d of %d is not scaffolded; run: aocgen scaffold --day %d --year %d", req.Day, req.Year, req.Day, req.Year)
		}
		return &FSError{Op: "stat", Path: dir, Err: err}
	}

	cmd := exec.CommandContext(ctx, "go", runArgs(release)...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go run %s: %w", req.moduleName(), err)
	}
	return nil
}
