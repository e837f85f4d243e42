package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"golang.org/x/mod/modfile"
)

// First year the event ran.
const firstYear = 2015

const (
	manifestFile = "go.mod"
	inputFile    = "input.txt"
	exampleFile  = "example.txt"
	srcDir       = "src"
	workFile     = "go.work"
)

// scaffoldRequest identifies one puzzle day.
type scaffoldRequest struct {
	Day  int
	Year int
}

// validate rejects days outside 1..25 and years outside the event's range.
func (r scaffoldRequest) validate(now time.Time) error {
	if r.Day < 1 || r.Day > 25 {
		return fmt.Errorf("day must be between 1 and 25, got %d", r.Day)
	}
	if r.Year < firstYear || r.Year > now.Year() {
		return fmt.Errorf("year must be between %d and %d, got %d", firstYear, now.Year(), r.Year)
	}
	return nil
}

// dayDirName returns the zero-padded directory name for a day, e.g. "day01".
func dayDirName(day int) string {
	return fmt.Sprintf("day%02d", day)
}

func (r scaffoldRequest) moduleName() string {
	return fmt.Sprintf("%s-%d", dayDirName(r.Day), r.Year)
}

// dayPath returns the slash-separated day directory below the workspace root.
func dayPath(solutionsDir string, r scaffoldRequest) string {
	return path.Join(solutionsDir, fmt.Sprint(r.Year), dayDirName(r.Day))
}

// fileStatus records what happened to one managed path.
type fileStatus struct {
	Path    string `json:"path"`
	Created bool   `json:"created"`
}

// scaffoldReport summarizes one scaffold run.
type scaffoldReport struct {
	Dir        string       `json:"dir"`
	Files      []fileStatus `json:"files"`
	Registered bool         `json:"registered_in_go_work"`
}

// builder produces the per-day layout below a workspace root.
type builder struct {
	fs      billy.Filesystem
	w       *fileWriter
	fetcher *inputFetcher
	cfg     appConfig
	log     *logger
}

// newBuilder creates a builder rooted at the given directory.
func newBuilder(root string, cfg appConfig, log *logger) *builder {
	return newBuilderFS(osfs.New(root), cfg, newInputFetcher(cfg), log)
}

func newBuilderFS(fs billy.Filesystem, cfg appConfig, fetcher *inputFetcher, log *logger) *builder {
	if log == nil {
		log = nopLogger()
	}
	return &builder{
		fs:      fs,
		w:       newFileWriter(fs, log),
		fetcher: fetcher,
		cfg:     cfg,
		log:     log,
	}
}

// scaffold creates whatever is missing of the day's layout. Existing files
// are never touched. A failed input download is returned after the other
// files are written so a rerun only has to fetch the input.
func (b *builder) scaffold(ctx context.Context, req scaffoldRequest) (*scaffoldReport, error) {
	dir := dayPath(b.cfg.SolutionsDir, req)
	src := path.Join(dir, srcDir)
	if err := b.fs.MkdirAll(src, 0o755); err != nil {
		return nil, &FSError{Op: "mkdir", Path: src, Err: err}
	}

	report := &scaffoldReport{Dir: dir}
	data := newTemplateData(b.cfg, req)

	files := []struct {
		name string
		tmpl string
	}{
		{path.Join(dir, manifestFile), "go.mod.tmpl"},
		{path.Join(dir, exampleFile), ""},
		{path.Join(src, "main.go"), "main.go.tmpl"},
		{path.Join(src, "main_test.go"), "main_test.go.tmpl"},
	}
	for _, f := range files {
		content := ""
		if f.tmpl != "" {
			var err error
			if content, err = render(f.tmpl, data); err != nil {
				return report, err
			}
		}
		created, err := b.w.writeIfAbsent(f.name, content)
		if err != nil {
			return report, err
		}
		report.Files = append(report.Files, fileStatus{Path: f.name, Created: created})
	}

	registered, err := b.registerInWork(dir)
	if err != nil {
		return report, err
	}
	report.Registered = registered

	input := path.Join(dir, inputFile)
	created, err := b.writeInput(ctx, req, input)
	if err != nil {
		return report, err
	}
	report.Files = append(report.Files, fileStatus{Path: input, Created: created})
	return report, nil
}

func (b *builder) writeInput(ctx context.Context, req scaffoldRequest, name string) (bool, error) {
	if _, err := b.fs.Stat(name); err == nil {
		b.log.fileEvent(name, false)
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, &FSError{Op: "stat", Path: name, Err: err}
	}

	b.log.infof("fetching input for day %d of %d", req.Day, req.Year)
	text, err := b.fetcher.fetch(ctx, req.Day, req.Year)
	if err != nil {
		if isAuthError(err) {
			b.log.warnf("the site rejected the session; refresh %s", b.cfg.SessionEnv)
		}
		return false, fmt.Errorf("fetch input: %w", err)
	}
	return b.w.writeIfAbsent(name, text)
}

// registerInWork adds dir to the workspace go.work when one exists and does
// not already use it.
func (b *builder) registerInWork(dir string) (bool, error) {
	data, err := readFile(b.fs, workFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, &FSError{Op: "read", Path: workFile, Err: err}
	}

	wf, err := modfile.ParseWork(workFile, data, nil)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", workFile, err)
	}
	for _, u := range wf.Use {
		if path.Clean(u.Path) == path.Clean(dir) {
			return false, nil
		}
	}
	if err := wf.AddUse("./"+dir, ""); err != nil {
		return false, fmt.Errorf("update %s: %w", workFile, err)
	}
	wf.Cleanup()

	f, err := b.fs.OpenFile(workFile, os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return false, &FSError{Op: "open", Path: workFile, Err: err}
	}
	if _, err := f.Write(modfile.Format(wf.Syntax)); err != nil {
		_ = f.Close()
		return false, &FSError{Op: "write", Path: workFile, Err: err}
	}
	if err := f.Close(); err != nil {
		return false, &FSError{Op: "close", Path: workFile, Err: err}
	}
	b.log.z.Info().Str("path", workFile).Str("use", "./"+dir).Msg("registered")
	return true, nil
}

func readFile(fs billy.Filesystem, name string) ([]byte, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
