package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/warp/holiday-engine/generic"
)

func newJurisdictionsCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:     "jurisdictions",
		Short:   "Print the registered jurisdictions",
		Long:    "This command prints every country code the engine knows, its aliases, its subdivisions and the default subdivision.",
		Aliases: []string{"countries"},
		Example: "holidays jurisdictions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME\tALIASES\tDEFAULT\tSUBDIVISIONS")
			for _, j := range generic.ListJurisdictions() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					j.Code,
					j.Name,
					orDash(strings.Join(j.Aliases, ",")),
					orDash(j.DefaultSubdivision),
					orDash(strings.Join(j.Subdivisions, ",")))
			}
			return tw.Flush()
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
