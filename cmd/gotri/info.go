package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gotri/internal/app"
	"github.com/philipparndt/gotri/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <a> <b> <c>",
	Short: "Classify a triangle and print its measurements",
	Long:  "Validate three side lengths and show the classification, angles, area, perimeter and circle radii.",
	Args:  cobra.ExactArgs(3),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	state := submit(args)
	analysis.Analyze(state.Triangle).Write(os.Stdout)
}

// submit validates the side arguments and exits with the status message
// when they do not form a triangle
func submit(args []string) app.State {
	state := app.NewState().Submit(args[0], args[1], args[2])
	if state.Triangle == nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", state.Message())
		os.Exit(1)
	}
	return state
}
