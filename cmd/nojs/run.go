package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-classroom/components"
	"github.com/vcrobe/nojs-classroom/internal/scenario"
	"github.com/vcrobe/nojs-classroom/runtime"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Play a scripted scenario against a component",
	Long: `Mounts the scenario's component, fires its events in order and prints
every frame. Fails when an event has no target or an expectation is not met.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenario.Load(args[0])
		if err != nil {
			return err
		}
		surf, err := newSurface(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		e := runtime.NewEngine(runtime.WithSurface(surf), runtime.WithLogger(logger))
		res, err := scenario.Run(e, components.DefaultRegistry(), s)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d events, %d renders\n", s.Component, res.Events, res.Renders)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addSurfaceFlags(runCmd)
}
