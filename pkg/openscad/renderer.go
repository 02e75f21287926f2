package openscad

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/stl"
)

// Source returns an OpenSCAD program that extrudes the triangle outline by
// thickness. A thickness of zero yields the bare 2D polygon.
func Source(name string, t *geometry.Triangle, thickness float64) string {
	outline := stl.Outline(t)

	points := make([]string, len(outline))
	for i, p := range outline {
		points[i] = fmt.Sprintf("[%s, %s]", number(p.X), number(p.Y))
	}
	polygon := fmt.Sprintf("polygon(points = [%s]);", strings.Join(points, ", "))

	var b strings.Builder
	fmt.Fprintf(&b, "// %s\n", name)
	fmt.Fprintf(&b, "// sides a = %g, b = %g, c = %g (%s)\n", t.Sides.A, t.Sides.B, t.Sides.C, t.Label())
	if thickness > 0 {
		fmt.Fprintf(&b, "linear_extrude(height = %g)\n  %s\n", thickness, polygon)
	} else {
		fmt.Fprintf(&b, "%s\n", polygon)
	}
	return b.String()
}

// number formats v without a negative zero
func number(v float64) string {
	if v == 0 {
		v = 0
	}
	return fmt.Sprintf("%g", v)
}

// WriteSource writes the OpenSCAD program to w
func WriteSource(w io.Writer, name string, t *geometry.Triangle, thickness float64) error {
	if _, err := io.WriteString(w, Source(name, t, thickness)); err != nil {
		return fmt.Errorf("failed to write OpenSCAD source: %w", err)
	}
	return nil
}

// Renderer handles OpenSCAD file rendering to STL
type Renderer struct {
	workDir string
	binary  string
}

// NewRenderer creates a new OpenSCAD renderer
func NewRenderer(workDir string) *Renderer {
	return &Renderer{
		workDir: workDir,
		binary:  "openscad",
	}
}

// Available reports whether the openscad binary is on PATH
func (r *Renderer) Available() bool {
	_, err := exec.LookPath(r.binary)
	return err == nil
}

// RenderToSTL renders an OpenSCAD file to STL format
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	absScadFile := scadFile
	if !filepath.IsAbs(scadFile) {
		absScadFile = filepath.Join(r.workDir, scadFile)
	}

	if !r.Available() {
		return fmt.Errorf("openscad not found in PATH. Please install OpenSCAD from https://openscad.org/")
	}

	cmd := exec.CommandContext(ctx, r.binary, "-o", outputFile, absScadFile)
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var errMsg strings.Builder
		errMsg.WriteString(fmt.Sprintf("failed to render %s: %v\n", scadFile, err))
		if stderr.Len() > 0 {
			errMsg.WriteString("stderr: ")
			errMsg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			errMsg.WriteString("stdout: ")
			errMsg.WriteString(stdout.String())
		}
		return fmt.Errorf("%s", errMsg.String())
	}

	return nil
}

// RenderTriangle writes the triangle program to a temporary file and renders
// it to outputFile
func (r *Renderer) RenderTriangle(ctx context.Context, t *geometry.Triangle, thickness float64, outputFile string) error {
	tmp, err := os.CreateTemp(r.workDir, "gotri_*.scad")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteSource(tmp, filepath.Base(outputFile), t, thickness); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	return r.RenderToSTL(ctx, tmp.Name(), outputFile)
}
