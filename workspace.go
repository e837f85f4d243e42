package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	git "github.com/go-git/go-git/v5"
)

// workspaceReport summarizes an init run.
type workspaceReport struct {
	Files   []fileStatus
	GitInit bool
}

// initWorkspace writes the top-level files of a solutions workspace rooted
// at root and makes it a git repository unless it already is inside one.
func initWorkspace(root string, cfg appConfig, log *logger) (*workspaceReport, error) {
	if log == nil {
		log = nopLogger()
	}
	report, err := writeWorkspaceFiles(osfs.New(root), cfg, log)
	if err != nil {
		return report, err
	}

	created, err := ensureGitRepo(root)
	if err != nil {
		return report, err
	}
	report.GitInit = created
	if created {
		log.okf("initialized git repository in %s", root)
	} else {
		log.debug("git repository already present")
	}
	return report, nil
}

func writeWorkspaceFiles(fs billy.Filesystem, cfg appConfig, log *logger) (*workspaceReport, error) {
	w := newFileWriter(fs, log)
	data := templateData{
		GoVersion:    cfg.GoVersion,
		SessionEnv:   cfg.SessionEnv,
		BaseURL:      cfg.BaseURL,
		SolutionsDir: cfg.SolutionsDir,
	}

	report := &workspaceReport{}
	files := []struct {
		name string
		tmpl string
	}{
		{workFile, "go.work.tmpl"},
		{".gitignore", "gitignore.tmpl"},
		{".env", "env.tmpl"},
	}
	for _, f := range files {
		content, err := render(f.tmpl, data)
		if err != nil {
			return report, err
		}
		created, err := w.writeIfAbsent(f.name, content)
		if err != nil {
			return report, err
		}
		report.Files = append(report.Files, fileStatus{Path: f.name, Created: created})
	}
	return report, nil
}

// ensureGitRepo initializes a repository at root. It reports false when root
// already belongs to one.
func ensureGitRepo(root string) (bool, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return false, &FSError{Op: "resolve", Path: root, Err: err}
	}
	_, err = git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, git.ErrRepositoryNotExists) {
		return false, fmt.Errorf("open git repository: %w", err)
	}
	if _, err := git.PlainInit(abs, false); err != nil {
		return false, fmt.Errorf("git init: %w", err)
	}
	return true, nil
}
