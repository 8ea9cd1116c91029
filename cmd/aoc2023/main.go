// Command aoc2023 runs the puzzle solvers listed in an HCL run plan.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/profile"

	"github.com/katalvlaran/aoc2023/internal/cli"
	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/ctxlog"
	"github.com/katalvlaran/aoc2023/internal/runner"
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires flags, logging, profiling and the plan together. Answers go to
// outW, logs to logW.
func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.ProfDir), profile.Quiet, profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(cfg.ProfDir), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	plan := config.Default(cfg.InputsDir)
	if cfg.PlanPath != "" {
		if plan, err = config.Load(cfg.PlanPath, cfg.InputsDir); err != nil {
			return err
		}
	}
	logger.Debug("Plan loaded.", "puzzles", len(plan.Puzzles), "only", cfg.Only)

	results, err := runner.New(runner.Default(), os.ReadFile).Run(ctx, plan, cfg.Only)
	for _, res := range results {
		fmt.Fprintf(outW, "%s: %d\n", res.Label(), res.Answer)
	}
	return err
}
