package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gotri/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gotri",
	Short: "Classify, render and export triangles from three side lengths",
	Long: `gotri builds a triangle from three side lengths, validates the triangle
inequality, classifies it by angles and sides, and renders the interactive
diagram to PNG. Triangles can also be exported as STL or OpenSCAD prisms.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
