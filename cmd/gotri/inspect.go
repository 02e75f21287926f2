package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gotri/internal/app"
	"github.com/philipparndt/gotri/pkg/analysis"
	"github.com/philipparndt/gotri/pkg/stl"
	"github.com/spf13/cobra"
)

var inspectFacet int

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.stl>",
	Short: "Classify a facet of an STL file as a triangle",
	Long:  "Read an ASCII or binary STL file, summarize it, and classify one facet by its edge lengths.",
	Args:  cobra.ExactArgs(1),
	Run:   runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().IntVarP(&inspectFacet, "facet", "n", 0, "Index of the facet to classify")
}

func runInspect(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	analysis.AnalyzeModel(model).Write(os.Stdout)

	if inspectFacet < 0 || inspectFacet >= model.FacetCount() {
		fmt.Fprintf(os.Stderr, "Error: facet %d out of range (model has %d facets)\n", inspectFacet, model.FacetCount())
		os.Exit(1)
	}

	sides := model.Facets[inspectFacet].Sides()
	fmt.Printf("Facet %d:\n", inspectFacet)

	state := app.NewState().Submit(
		fmt.Sprint(sides.A),
		fmt.Sprint(sides.B),
		fmt.Sprint(sides.C),
	)
	if state.Triangle == nil {
		fmt.Printf("  %s\n", state.Message())
		return
	}
	analysis.Analyze(state.Triangle).Write(os.Stdout)
}
