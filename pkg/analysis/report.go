package analysis

import (
	"fmt"
	"io"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/stl"
)

// Report summarizes a triangle's classification and measurements
type Report struct {
	Sides            geometry.Sides
	Angles           geometry.Angles
	Area             float64
	Perimeter        float64
	AngleType        geometry.AngleType
	SideType         geometry.SideType
	RightAngled      bool
	Hypotenuse       float64
	RightAngleVertex geometry.Vertex
	Circumradius     float64
	Inradius         float64
	Centroid         geometry.Vector2
}

// Analyze builds a report for a triangle
func Analyze(t *geometry.Triangle) *Report {
	return &Report{
		Sides:            t.Sides,
		Angles:           t.Angles,
		Area:             t.Area,
		Perimeter:        t.Perimeter,
		AngleType:        t.AngleType,
		SideType:         t.SideType,
		RightAngled:      t.RightAngled,
		Hypotenuse:       t.Hypotenuse,
		RightAngleVertex: t.RightAngleVertex,
		Circumradius:     t.Circumradius(),
		Inradius:         t.Inradius(),
		Centroid:         t.Centroid(),
	}
}

// Write prints the report in the CLI layout
func (r *Report) Write(w io.Writer) {
	fmt.Fprintln(w, "Triangle Information")
	fmt.Fprintln(w, "====================")
	fmt.Fprintf(w, "Type: %s, %s Triangle\n\n", r.AngleType, r.SideType)

	fmt.Fprintln(w, "Sides:")
	fmt.Fprintf(w, "  a (BC): %s\n", FormatMeasurement(r.Sides.A, ""))
	fmt.Fprintf(w, "  b (CA): %s\n", FormatMeasurement(r.Sides.B, ""))
	fmt.Fprintf(w, "  c (AB): %s\n\n", FormatMeasurement(r.Sides.C, ""))

	fmt.Fprintln(w, "Angles:")
	for _, v := range geometry.Vertices {
		marker := ""
		if r.RightAngled && v == r.RightAngleVertex {
			marker = " (right angle)"
		}
		fmt.Fprintf(w, "  %s: %s%s\n", v, FormatAngle(r.Angles.At(v)), marker)
	}
	fmt.Fprintf(w, "  Sum: %s\n\n", FormatAngle(r.Angles.Sum()))

	fmt.Fprintln(w, "Measurements:")
	fmt.Fprintf(w, "  Area: %.2f sq. units\n", r.Area)
	fmt.Fprintf(w, "  Perimeter: %.2f units\n", r.Perimeter)
	if r.RightAngled {
		fmt.Fprintf(w, "  Hypotenuse: %s\n", FormatMeasurement(r.Hypotenuse, ""))
	}
	fmt.Fprintf(w, "  Circumradius: %s\n", FormatMeasurement(r.Circumradius, ""))
	fmt.Fprintf(w, "  Inradius: %s\n", FormatMeasurement(r.Inradius, ""))
}

// ModelSummary contains the measurements of an STL model
type ModelSummary struct {
	Name        string
	FacetCount  int
	SurfaceArea float64
	Volume      float64
	Min, Max    geometry.Vector3
}

// AnalyzeModel summarizes an STL model
func AnalyzeModel(model *stl.Model) *ModelSummary {
	lo, hi := model.Bounds()
	return &ModelSummary{
		Name:        model.Name,
		FacetCount:  model.FacetCount(),
		SurfaceArea: model.SurfaceArea(),
		Volume:      model.Volume(),
		Min:         lo,
		Max:         hi,
	}
}

// Write prints the model summary
func (s *ModelSummary) Write(w io.Writer) {
	fmt.Fprintln(w, "STL File Information")
	fmt.Fprintln(w, "====================")
	if s.Name != "" {
		fmt.Fprintf(w, "Name: %s\n", s.Name)
	}
	fmt.Fprintf(w, "Facets: %d\n", s.FacetCount)
	fmt.Fprintf(w, "Surface Area: %.6f square units\n", s.SurfaceArea)
	fmt.Fprintf(w, "Volume: %.6f cubic units\n", s.Volume)
	fmt.Fprintf(w, "Min: %s\n", FormatVector(s.Min))
	fmt.Fprintf(w, "Max: %s\n\n", FormatVector(s.Max))
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatAngle formats an angle in degrees
func FormatAngle(degrees float64) string {
	return fmt.Sprintf("%.4f°", degrees)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
