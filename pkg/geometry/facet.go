package geometry

// Facet is a triangular facet in 3D space as stored in STL files
type Facet struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewFacet creates a facet and computes its normal from the winding order
func NewFacet(v1, v2, v3 Vector3) Facet {
	f := Facet{V1: v1, V2: v2, V3: v3}
	f.Normal = f.CalculateNormal()
	return f
}

// CalculateNormal computes the unit normal vector for the facet
func (f Facet) CalculateNormal() Vector3 {
	edge1 := f.V2.Sub(f.V1)
	edge2 := f.V3.Sub(f.V1)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the facet
func (f Facet) Area() float64 {
	edge1 := f.V2.Sub(f.V1)
	edge2 := f.V3.Sub(f.V1)
	return edge1.Cross(edge2).Length() / 2.0
}

// Sides maps the facet to triangle sides: V1, V2, V3 play the roles of
// A, B, C, so a = |V2V3|, b = |V3V1| and c = |V1V2|
func (f Facet) Sides() Sides {
	return Sides{
		A: f.V2.Distance(f.V3),
		B: f.V3.Distance(f.V1),
		C: f.V1.Distance(f.V2),
	}
}
