package main

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("aocgen").Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/*.tmpl"),
)

// templateData is the variable set every template is rendered with.
type templateData struct {
	Day          int
	Year         int
	Module       string
	GoVersion    string
	SessionEnv   string
	BaseURL      string
	SolutionsDir string
}

func newTemplateData(cfg appConfig, req scaffoldRequest) templateData {
	return templateData{
		Day:          req.Day,
		Year:         req.Year,
		Module:       req.moduleName(),
		GoVersion:    cfg.GoVersion,
		SessionEnv:   cfg.SessionEnv,
		BaseURL:      cfg.BaseURL,
		SolutionsDir: cfg.SolutionsDir,
	}
}

func render(name string, data templateData) (string, error) {
	var out bytes.Buffer
	if err := templates.ExecuteTemplate(&out, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return out.String(), nil
}
