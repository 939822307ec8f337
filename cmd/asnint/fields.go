package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFieldsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List registered field types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTAG\tPOLICY\tDEFINITION")
			for _, name := range a.registry.Names() {
				f, _ := a.registry.Lookup(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, f.Tag, f.Definition.Policy(), f.Definition)
			}
			return w.Flush()
		},
	}
}
