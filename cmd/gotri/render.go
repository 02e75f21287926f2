package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gotri/internal/app"
	"github.com/philipparndt/gotri/internal/config"
	"github.com/philipparndt/gotri/pkg/viewer"
	"github.com/spf13/cobra"
)

var (
	renderOutput   string
	renderZoom     float64
	renderRotation float64
	renderTools    []string
	renderCircles  bool
	renderScene    string
	renderEmit     string
)

var renderCmd = &cobra.Command{
	Use:   "render [<a> <b> <c>]",
	Short: "Render the triangle diagram to a PNG file",
	Long: `Render the labelled triangle diagram with angle tools to a PNG image.
Sides and view settings come from the arguments and flags, or from a TOML scene file.

Tools are placed with --tool id=x,y for a free position or --tool id=A to attach
to a vertex. --emit-scene writes the rendered scene as a TOML file that
"gotri watch" and "gotri render --scene" accept.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if renderScene != "" {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(3)(cmd, args)
	},
	Run: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "triangle.png", "Output PNG file")
	renderCmd.Flags().Float64Var(&renderZoom, "zoom", 1.0, "Zoom level (0.3 to 3.0)")
	renderCmd.Flags().Float64Var(&renderRotation, "rotation", 0.0, "Rotation in degrees")
	renderCmd.Flags().StringArrayVar(&renderTools, "tool", nil, "Place an angle tool: id=x,y or id=A|B|C (repeatable)")
	renderCmd.Flags().BoolVar(&renderCircles, "circles", false, "Draw the circumcircle and incircle")
	renderCmd.Flags().StringVar(&renderScene, "scene", "", "Read sides, view and tools from a TOML scene file")
	renderCmd.Flags().StringVar(&renderEmit, "emit-scene", "", "Also write the scene to this TOML file")

	renderCmd.MarkFlagsMutuallyExclusive("scene", "zoom")
	renderCmd.MarkFlagsMutuallyExclusive("scene", "rotation")
	renderCmd.MarkFlagsMutuallyExclusive("scene", "tool")
	renderCmd.MarkFlagsMutuallyExclusive("scene", "circles")
}

func runRender(cmd *cobra.Command, args []string) {
	var scene config.Scene
	var err error

	if renderScene != "" {
		scene, err = config.Load(renderScene)
	} else {
		scene, err = sceneFromFlags(args)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	c := app.New(nil)
	scene.Apply(c)
	if err := writeImage(c, renderOutput); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if renderEmit != "" {
		if err := writeScene(c, renderEmit); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scene written to: %s\n", renderEmit)
	}

	fmt.Println(c.State().Message())
	fmt.Printf("Rendered to: %s\n", renderOutput)
}

func sceneFromFlags(args []string) (config.Scene, error) {
	scene := config.Default()
	scene.Triangle = config.Triangle{
		A: config.SideText(args[0]),
		B: config.SideText(args[1]),
		C: config.SideText(args[2]),
	}
	scene.View = config.View{Zoom: renderZoom, Rotation: renderRotation, Circles: renderCircles}

	for _, spec := range renderTools {
		tool, err := parseTool(spec)
		if err != nil {
			return config.Scene{}, err
		}
		scene.Tools = append(scene.Tools, tool)
	}
	return scene, scene.Validate()
}

// parseTool reads "id=x,y" or "id=V"
func parseTool(spec string) (config.Tool, error) {
	idText, place, ok := strings.Cut(spec, "=")
	if !ok {
		return config.Tool{}, fmt.Errorf("tool %q: expected id=x,y or id=vertex", spec)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return config.Tool{}, fmt.Errorf("tool %q: invalid id: %w", spec, err)
	}

	xText, yText, ok := strings.Cut(place, ",")
	if !ok {
		return config.Tool{ID: id, Vertex: strings.TrimSpace(place)}, nil
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xText), 64)
	if err != nil {
		return config.Tool{}, fmt.Errorf("tool %q: invalid x: %w", spec, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(yText), 64)
	if err != nil {
		return config.Tool{}, fmt.Errorf("tool %q: invalid y: %w", spec, err)
	}
	return config.Tool{ID: id, X: x, Y: y}, nil
}

func writeImage(c *app.Controller, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := viewer.WritePNG(file, c.Scene()); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func writeScene(c *app.Controller, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := config.Write(file, config.FromState(c.State(), c.ShowCircles())); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
