package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/atelierbuild/atelier/internal/build"
	"github.com/atelierbuild/atelier/internal/config"
	"github.com/atelierbuild/atelier/internal/version"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"atelier.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
	} `cmd:"" default:"withargs" help:"Build the portfolio site into the configured output directory"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`

	Version struct {
	} `cmd:"" help:"Print version information"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "build":
		if err := runBuild(logger); err != nil {
			logger.Error("Build failed", "error", err)
			os.Exit(1)
		}
	case "init":
		if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
			logger.Error("Init failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Configuration written to %s\n", CLI.Config)
	case "version":
		fmt.Printf("atelier %s (commit %s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
	default:
		logger.Error("Unknown command", "command", ctx.Command())
		os.Exit(1)
	}
}

func runBuild(logger *slog.Logger) error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := build.NewRunner(cfg, logger).Run(runCtx)
	if err != nil {
		return err
	}
	if report.HasErrors() {
		for _, f := range report.Failures() {
			logger.Error("Build problem", "problem", f.String())
		}
		return fmt.Errorf("build finished with %d problem(s)", len(report.Failures()))
	}

	logger.Info("Site ready",
		"output", cfg.Paths.Output,
		"projects", report.Projects(),
		"pages", report.Pages())
	return nil
}
