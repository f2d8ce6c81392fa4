// Package main provides the CLI entrypoint for argseval.
//
// argseval loads an argument definition file (YAML or TOML), evaluates
// token lists against it and prints the resulting name to value mapping:
//   - eval: evaluate the tokens given on the command line
//   - batch: evaluate one token list per input line, concurrently
//   - check: validate a definition file
//   - types: list the type identifiers a definition can use
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"argseval/engine"
	"argseval/internal/config"
	"argseval/internal/diagnostic"
)

// debugEnv turns on debug logging when set to any non-empty value.
const debugEnv = "ARGSEVAL_DEBUG"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the flags and streams shared by every command.
type app struct {
	specFile string
	debug    bool
	noColor  bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logger *slog.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:           "argseval",
		Short:         "Evaluate argument tokens against a declarative definition",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.noColor {
				color.NoColor = true
			}

			a.logger = newLogger(stderr, a.debug || os.Getenv(debugEnv) != "")
		},
	}

	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVarP(&a.specFile, "spec", "s", "", "Path to the argument definition file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (also "+debugEnv+")")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newEvalCmd(a),
		newBatchCmd(a),
		newCheckCmd(a),
		newTypesCmd(a),
	)

	return rootCmd
}

// newLogger writes text records without timestamps to w.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}

			return attr
		},
	}))
}

// loadEngine builds the engine described by the --spec file.
func (a *app) loadEngine() (*engine.Engine, error) {
	if a.specFile == "" {
		return nil, fmt.Errorf("no definition file given; use --spec")
	}

	f, err := config.LoadFile(a.specFile)
	if err != nil {
		return nil, err
	}

	b, err := f.Builder(nil)
	if err != nil {
		return nil, fmt.Errorf("invalid definition %s: %w", a.specFile, err)
	}

	e, err := b.Logger(a.logger).Build()
	if err != nil {
		return nil, fmt.Errorf("invalid definition %s: %w", a.specFile, err)
	}

	a.logger.Debug("definition loaded", "file", a.specFile, "version", f.Version)

	return e, nil
}

var severityColors = map[diagnostic.Severity]*color.Color{
	diagnostic.SeverityError:   color.New(color.FgRed, color.Bold),
	diagnostic.SeverityWarning: color.New(color.FgYellow),
	diagnostic.SeverityInfo:    color.New(color.FgCyan),
}

// printDiagnostics writes one line per diagnostic, most severe first.
func (a *app) printDiagnostics(d diagnostic.Diagnostics) {
	for _, diag := range d.All() {
		severityColors[diag.Severity].Fprintf(a.stderr, "%s: ", diag.Severity)
		fmt.Fprintln(a.stderr, diag.String())
	}
}
