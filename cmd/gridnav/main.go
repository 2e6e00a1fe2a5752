// Command gridnav loads an HCL episode description, builds the navigational
// state of every agent and reports it. Optionally it renders agent 0's
// distance field and direction mask.
//
// Usage:
//
//	gridnav -config episode.hcl [-log-level info] [-log-format text] [-render DIR]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/gridnav/config"
	"github.com/katalvlaran/gridnav/ctxlog"
	"github.com/katalvlaran/gridnav/episode"
	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/render"
)

// exitError carries a process exit code.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.msg)
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is main without the process exit; out receives the report and logW
// the logs.
func run(ctx context.Context, out, logW io.Writer, args []string) error {
	fs := flag.NewFlagSet("gridnav", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, `
gridnav - distance fields, heuristic masks and lifelong goals for grid MAPF.

Usage:
  gridnav -config FILE [options]

Options:
`)
		fs.PrintDefaults()
	}
	cfgPath := fs.String("config", "", "Path to the HCL episode file.")
	logLevel := fs.String("log-level", "", "Override the log level: debug, info, warn, error.")
	logFormat := fs.String("log-format", "", "Override the log format: text or json.")
	renderDir := fs.String("render", "", "Directory for agent 0's field.png and mask.html.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &exitError{code: 2, msg: err.Error()}
	}
	if *cfgPath == "" {
		fs.Usage()
		return &exitError{code: 2, msg: "gridnav: -config is required"}
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	level, format := cfg.Log.Level, cfg.Log.Format
	if *logLevel != "" {
		level = *logLevel
	}
	if *logFormat != "" {
		format = *logFormat
	}
	logger := ctxlog.New(level, format, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("config loaded", "path", *cfgPath, "agents", len(cfg.Starts))

	ep, err := episode.New(ctx, cfg.Episode, cfg.Grid, cfg.Starts, cfg.Goals)
	if err != nil {
		return err
	}
	defer ep.Close()

	fmt.Fprintf(out, "episode %s: %dx%d grid, %d agents\n", ep.ID, cfg.Grid.Height, cfg.Grid.Width, ep.Agents())
	for i := 0; i < ep.Agents(); i++ {
		st, err := ep.Agent(i)
		if err != nil {
			return err
		}
		goals, err := ep.Goals(i)
		if err != nil {
			return err
		}
		w, err := ep.Observe(i)
		if err != nil {
			return err
		}
		moves := 0
		for _, d := range gridgraph.Directions() {
			if w.At(d, w.Radius, w.Radius) {
				moves++
			}
		}
		fmt.Fprintf(out, "agent %d: pos %v goal %v distance %d goals %d length %d moves %d\n",
			i, st.Pos, st.Goal, st.Best, len(goals), goals.Length(), moves)
	}

	if *renderDir != "" {
		if err := renderAgent(ep, *renderDir); err != nil {
			return err
		}
		logger.Info("rendered", "dir", *renderDir)
	}
	return nil
}

// renderAgent writes agent 0's field and mask into dir.
func renderAgent(ep *episode.Episode, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := ep.Field(0)
	if err != nil {
		return err
	}
	if err := render.FieldPNG(f, filepath.Join(dir, "field.png")); err != nil {
		return err
	}
	m, err := ep.Mask(0)
	if err != nil {
		return err
	}
	out, err := os.Create(filepath.Join(dir, "mask.html"))
	if err != nil {
		return err
	}
	if err := render.MaskHTML(m, out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
