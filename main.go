package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

// Command and flag names.
const (
	cmdInit     = "init"
	cmdScaffold = "scaffold"
	cmdRun      = "run"
	cmdMCP      = "mcp"

	flagDay     = "day"
	flagYear    = "year"
	flagRelease = "release"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	root       string
	configPath string
	debug      bool
	now        func() time.Time
	stdout     io.Writer
	stderr     io.Writer

	log *logger
	cfg appConfig
}

func main() {
	_ = godotenv.Load()
	a := &app{
		root:   ".",
		now:    time.Now,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	if err := newRootCmd(a).ExecuteContext(context.Background()); err != nil {
		if a.log == nil {
			a.log = newLogger(false)
		}
		a.log.err(fmt.Sprintf("%s: %v", errorKind(err), err))
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "aocgen",
		Short:         "Advent of Code workspace scaffolding",
		Long:          `aocgen creates one Go module per puzzle day, downloads the puzzle input and runs solutions.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.log == nil {
				a.log = newLogger(a.debug)
			}
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log.debugf("config: base_url=%s solutions_dir=%s session_env=%s", cfg.BaseURL, cfg.SolutionsDir, cfg.SessionEnv)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", defaultConfigPath, "path to config file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(newInitCmd(a), newScaffoldCmd(a), newRunCmd(a), newMCPCmd(a))
	return root
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   cmdInit,
		Short: "Create go.work, .gitignore and .env in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.info("initializing workspace")
			if _, err := initWorkspace(a.root, a.cfg, a.log); err != nil {
				return err
			}
			a.log.ok("workspace ready")
			a.log.infof("put your session cookie in .env (%s=...)", a.cfg.SessionEnv)
			return nil
		},
	}
}

// addDayFlags registers --day (required) and --year.
func addDayFlags(cmd *cobra.Command, day, year *int) {
	cmd.Flags().IntVarP(day, flagDay, "d", 0, "puzzle day (1-25)")
	cmd.Flags().IntVarP(year, flagYear, "y", 0, "event year (default: current year)")
	_ = cmd.MarkFlagRequired(flagDay)
}

func (a *app) request(day, year int) (scaffoldRequest, error) {
	now := a.now()
	req := scaffoldRequest{Day: day, Year: year}
	if req.Year == 0 {
		req.Year = now.Year()
	}
	if err := req.validate(now); err != nil {
		return scaffoldRequest{}, err
	}
	return req, nil
}

func newScaffoldCmd(a *app) *cobra.Command {
	var day, year int
	cmd := &cobra.Command{
		Use:   cmdScaffold,
		Short: "Create the module for a puzzle day and download its input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.request(day, year)
			if err != nil {
				return err
			}
			a.log.infof("scaffolding day %d of %d", req.Day, req.Year)
			report, err := newBuilder(a.root, a.cfg, a.log).scaffold(cmd.Context(), req)
			if err != nil {
				return err
			}
			a.log.okf("day %d of %d ready in %s", req.Day, req.Year, report.Dir)
			return nil
		},
	}
	addDayFlags(cmd, &day, &year)
	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	var (
		day, year int
		release   bool
	)
	cmd := &cobra.Command{
		Use:   cmdRun,
		Short: "Run the solution for a puzzle day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.request(day, year)
			if err != nil {
				return err
			}
			a.log.infof("running %s (release=%v)", req.moduleName(), release)
			return runDay(cmd.Context(), a.root, a.cfg, req, release, a.stdout, a.stderr)
		},
	}
	addDayFlags(cmd, &day, &year)
	cmd.Flags().BoolVarP(&release, flagRelease, "r", false, "build with optimizations")
	return cmd
}

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   cmdMCP,
		Short: "Serve scaffold_day and fetch_input as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.info("serving MCP tools on stdio")
			return serveTools(cmd.Context(), newBuilder(a.root, a.cfg, a.log), a.now)
		},
	}
}
