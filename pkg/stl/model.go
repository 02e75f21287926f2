package stl

import (
	"math"

	"github.com/philipparndt/gotri/pkg/geometry"
)

// Model represents a complete STL model
type Model struct {
	Name   string
	Facets []geometry.Facet
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:   name,
		Facets: make([]geometry.Facet, 0),
	}
}

// AddFacet adds a facet to the model
func (m *Model) AddFacet(facet geometry.Facet) {
	m.Facets = append(m.Facets, facet)
}

// FacetCount returns the number of facets in the model
func (m *Model) FacetCount() int {
	return len(m.Facets)
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	total := 0.0
	for _, f := range m.Facets {
		total += f.Area()
	}
	return total
}

// Volume returns the enclosed volume of a closed, outward-facing mesh as the
// sum of signed tetrahedra against the origin
func (m *Model) Volume() float64 {
	total := 0.0
	for _, f := range m.Facets {
		total += f.V1.Dot(f.V2.Cross(f.V3)) / 6
	}
	return math.Abs(total)
}

// Bounds returns the minimum and maximum corner of the model
func (m *Model) Bounds() (geometry.Vector3, geometry.Vector3) {
	if len(m.Facets) == 0 {
		return geometry.Vector3{}, geometry.Vector3{}
	}
	inf := math.Inf(1)
	lo := geometry.NewVector3(inf, inf, inf)
	hi := geometry.NewVector3(-inf, -inf, -inf)
	for _, f := range m.Facets {
		for _, v := range []geometry.Vector3{f.V1, f.V2, f.V3} {
			lo = geometry.NewVector3(math.Min(lo.X, v.X), math.Min(lo.Y, v.Y), math.Min(lo.Z, v.Z))
			hi = geometry.NewVector3(math.Max(hi.X, v.X), math.Max(hi.Y, v.Y), math.Max(hi.Z, v.Z))
		}
	}
	return lo, hi
}

// Outline returns the triangle corners in side-length units with A at the
// origin, AB along +X and C on the +Y side
func Outline(t *geometry.Triangle) [3]geometry.Vector2 {
	var out [3]geometry.Vector2
	for i, v := range t.Vertices {
		// Lift turns the y-down model space into y-up
		p := geometry.Lift(v.Sub(t.Vertices[0]).Mul(1/t.Scale), 0)
		out[i] = geometry.Vector2{X: p.X, Y: p.Y}
	}
	return out
}

// FromTriangle extrudes the triangle along +Z. A thickness of zero yields a
// single flat facet.
func FromTriangle(name string, t *geometry.Triangle, thickness float64) *Model {
	m := NewModel(name)
	outline := Outline(t)

	bottom := [3]geometry.Vector3{}
	top := [3]geometry.Vector3{}
	for i, p := range outline {
		bottom[i] = geometry.NewVector3(p.X, p.Y, 0)
		top[i] = geometry.NewVector3(p.X, p.Y, thickness)
	}

	if thickness <= 0 {
		m.AddFacet(geometry.NewFacet(bottom[0], bottom[1], bottom[2]))
		return m
	}

	m.AddFacet(geometry.NewFacet(bottom[0], bottom[2], bottom[1]))
	m.AddFacet(geometry.NewFacet(top[0], top[1], top[2]))
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		m.AddFacet(geometry.NewFacet(bottom[i], bottom[j], top[j]))
		m.AddFacet(geometry.NewFacet(bottom[i], top[j], top[i]))
	}
	return m
}
