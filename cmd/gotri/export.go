package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gotri/pkg/openscad"
	"github.com/philipparndt/gotri/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	exportFormat    string
	exportOutput    string
	exportThickness float64
	exportBinary    bool
	exportRender    bool
)

var exportCmd = &cobra.Command{
	Use:   "export <a> <b> <c>",
	Short: "Export the triangle as an STL or OpenSCAD prism",
	Long: `Export the triangle, in side-length units with A at the origin and AB along +X,
as an extruded prism. A thickness of 0 exports the flat triangle.

With --format scad and --render the OpenSCAD program is rendered to STL by the
openscad binary.`,
	Args: cobra.ExactArgs(3),
	Run:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "stl", "Output format: stl or scad")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default triangle.<format>)")
	exportCmd.Flags().Float64VarP(&exportThickness, "thickness", "t", 1.0, "Extrusion height")
	exportCmd.Flags().BoolVar(&exportBinary, "binary", false, "Write binary instead of ASCII STL")
	exportCmd.Flags().BoolVar(&exportRender, "render", false, "Render the OpenSCAD program to STL")
}

func runExport(cmd *cobra.Command, args []string) {
	state := submit(args)
	t := state.Triangle

	if exportThickness < 0 {
		fmt.Fprintf(os.Stderr, "Error: thickness must not be negative\n")
		os.Exit(1)
	}

	format := strings.ToLower(exportFormat)
	output := exportOutput
	if output == "" {
		output = "triangle." + format
	}
	name := strings.TrimSuffix(filepath.Base(output), filepath.Ext(output))

	switch format {
	case "stl":
		model := stl.FromTriangle(name, t, exportThickness)
		if err := stl.Save(output, model, exportBinary); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d facets to %s\n", model.FacetCount(), output)

	case "scad":
		if exportRender {
			stlOutput := strings.TrimSuffix(output, filepath.Ext(output)) + ".stl"
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			fmt.Printf("Rendering OpenSCAD program to: %s\n", stlOutput)
			renderer := openscad.NewRenderer(filepath.Dir(output))
			if err := renderer.RenderTriangle(ctx, t, exportThickness, stlOutput); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		file, err := os.Create(output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := openscad.WriteSource(file, name, t, exportThickness); err != nil {
			file.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote OpenSCAD program to %s\n", output)

	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported format %q (expected stl or scad)\n", exportFormat)
		os.Exit(1)
	}
}
