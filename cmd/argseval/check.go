package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"argseval/internal/diagnostic"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate a definition file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.loadEngine()
			if err != nil {
				return err
			}

			d := diagnostic.Inspect(e, nil, nil)
			a.printDiagnostics(d)

			if d.HasErrors() {
				return fmt.Errorf("%s: %d problem(s) found", a.specFile, len(d.Errors))
			}

			set := e.Set()
			color.New(color.FgGreen).Fprintf(a.stdout,
				"%s: ok (%d indexed, %d named, %d tagged, %d chains, %d expressions; order %v, mixing %t)\n",
				a.specFile,
				len(set.Indexed), len(set.Named), len(set.Tagged), len(set.Chains), len(set.Expressions),
				set.Order, set.Mixing,
			)

			return nil
		},
	}
}
