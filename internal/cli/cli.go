package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/ctxlog"
	"golang.org/x/exp/slices"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command line.
type Config struct {
	PlanPath  string
	InputsDir string
	Only      string
	LogLevel  string
	LogFormat string
	Profile   string
	ProfDir   string
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("aoc2023", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
aoc2023 - grid, graph and circuit puzzle solvers.

Usage:
  aoc2023 [options]

Without -plan every solver runs on <inputs>/<day>.txt.

Options:
`)
		flagSet.PrintDefaults()
	}

	planFlag := flagSet.String("plan", "", "Path to an HCL run plan.")
	inputsFlag := flagSet.String("inputs", "inputs", "Directory holding puzzle inputs, exposed to plans as ${inputs}.")
	onlyFlag := flagSet.String("only", "", "Run only puzzles with this solver label.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	profileFlag := flagSet.String("profile", "", "Write a profile. Options: 'cpu' or 'mem'.")
	profDirFlag := flagSet.String("profile-dir", ".", "Directory for profile output.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if _, ok := ctxlog.ParseLevel(logLevel); !ok {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	prof := strings.ToLower(*profileFlag)
	if prof != "" && prof != "cpu" && prof != "mem" {
		return nil, false, &ExitError{Code: 2, Message: "invalid profile: must be 'cpu' or 'mem'"}
	}

	if *onlyFlag != "" && !slices.Contains(config.Solvers, *onlyFlag) {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid only: unknown solver %q", *onlyFlag)}
	}

	return &Config{
		PlanPath:  *planFlag,
		InputsDir: *inputsFlag,
		Only:      *onlyFlag,
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Profile:   prof,
		ProfDir:   *profDirFlag,
	}, false, nil
}
