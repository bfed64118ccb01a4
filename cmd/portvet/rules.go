package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/portvet/portvet/pkg/portability"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the detection rules and their weights",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WEIGHT\tCATEGORY\tSCOPE\tRULE")
			for _, info := range portability.RuleTable() {
				scope := "all"
				if info.WebOnly {
					scope = "web"
				}
				weight := fmt.Sprintf("-%d", info.Weight)
				if info.InstantFail {
					weight = "fail"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", weight, info.Category, scope, info.Summary)
			}
			return w.Flush()
		},
	}
}
