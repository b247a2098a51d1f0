package main

import (
	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-classroom/components"
	"github.com/vcrobe/nojs-classroom/runtime"
)

var renderCmd = &cobra.Command{
	Use:   "render <component>",
	Short: "Render a component once",
	Long: `Mounts the named component with its default props, overridden by --prop,
and prints the first frame on the configured surface.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, _ := cmd.Flags().GetStringArray("prop")
		props, err := parseProps(pairs)
		if err != nil {
			return err
		}
		comp, err := components.DefaultRegistry().New(args[0], props)
		if err != nil {
			return err
		}
		surf, err := newSurface(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		e := runtime.NewEngine(runtime.WithSurface(surf), runtime.WithLogger(logger))
		e.Mount(comp)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addSurfaceFlags(renderCmd)
	renderCmd.Flags().StringArrayP("prop", "p", nil, "Prop override as key=value (repeatable)")
}

func addSurfaceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("surface", "s", "", "Output surface: terminal, markdown, html")
	cmd.Flags().IntP("width", "w", 0, "Columns used for right alignment and wrapping")
}
