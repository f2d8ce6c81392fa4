package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"argseval/internal/render"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		input string
		jobs  int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Evaluate one whitespace-separated token list per input line",
		Long: `Each non-blank input line not starting with '#' is split on whitespace
and evaluated. Results are printed as one JSON document per line, in input
order. Evaluation errors are reported in the document's "error" field.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.loadEngine()
			if err != nil {
				return err
			}

			lines, err := a.readLines(input)
			if err != nil {
				return err
			}

			out := make([][]byte, len(lines))

			var g errgroup.Group
			g.SetLimit(max(jobs, 1))

			for i, line := range lines {
				g.Go(func() error {
					out[i] = render.Line(e.Evaluate(strings.Fields(line)))

					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			a.logger.Debug("batch evaluated", "lines", len(lines), "jobs", jobs)

			w := bufio.NewWriter(a.stdout)
			for _, doc := range out {
				w.Write(doc)
				w.WriteByte('\n')
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "Input file, or - for stdin")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "Number of lines evaluated concurrently")

	return cmd
}

// readLines returns the non-blank, non-comment lines of path ("-" is stdin).
func (a *app) readLines(path string) ([]string, error) {
	var r io.Reader = a.stdin

	if f, ok := a.stdin.(*os.File); ok && path == "-" && term.IsTerminal(int(f.Fd())) {
		a.logger.Info("reading token lines from the terminal; end input with Ctrl-D")
	}

	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input %s: %w", path, err)
		}
		defer f.Close()

		r = f
	}

	var lines []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lines = append(lines, line)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return lines, nil
}
