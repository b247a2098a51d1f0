package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-classroom/components"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available components",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, e := range components.DefaultRegistry().Entries() {
			fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Description)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
