package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"argseval/resolver"
)

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the registered type identifiers",
		Long:  "Lists the built-in type identifiers, plus the aliases of the --spec file when one is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := resolver.NewDefaultRegistry()

			if a.specFile != "" {
				e, err := a.loadEngine()
				if err != nil {
					return err
				}

				reg = e.Registry()
			}

			for _, id := range reg.TypeIDs() {
				fmt.Fprintln(a.stdout, id)
			}

			return nil
		},
	}
}
