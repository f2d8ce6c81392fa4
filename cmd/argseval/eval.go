package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"argseval/internal/diagnostic"
	"argseval/internal/render"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		format         string
		failOnLeftover bool
	)

	cmd := &cobra.Command{
		Use:   "eval [flags] -- tokens...",
		Short: "Evaluate tokens and print the resulting mapping",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			e, err := a.loadEngine()
			if err != nil {
				return err
			}

			m, evalErr := e.Evaluate(args)

			d := diagnostic.Inspect(e, m, evalErr)
			a.printDiagnostics(d)

			if evalErr != nil {
				return fmt.Errorf("evaluation failed: %w", evalErr)
			}

			if err := render.Write(a.stdout, f, m, nil); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}

			if failOnLeftover && len(m.Remaining()) > 0 {
				return fmt.Errorf("%d token(s) not consumed", len(m.Remaining()))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatJSON), "Output format: json, yaml or spew")
	cmd.Flags().BoolVar(&failOnLeftover, "fail-on-leftover", false, "Exit non-zero when tokens remain unconsumed")

	return cmd
}
