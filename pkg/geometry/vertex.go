package geometry

// Vertex identifies one corner of a triangle
type Vertex int

const (
	VertexNone Vertex = iota
	VertexA
	VertexB
	VertexC
)

// Vertices lists the triangle corners in scan order
var Vertices = [3]Vertex{VertexA, VertexB, VertexC}

// String returns the vertex name ("A", "B", "C") or "" for VertexNone
func (v Vertex) String() string {
	switch v {
	case VertexA:
		return "A"
	case VertexB:
		return "B"
	case VertexC:
		return "C"
	}
	return ""
}

// Index returns the 0-based index of the vertex, or -1 for VertexNone
func (v Vertex) Index() int {
	if v < VertexA || v > VertexC {
		return -1
	}
	return int(v - VertexA)
}

// ParseVertex converts "A", "B" or "C" (any case) to a Vertex
func ParseVertex(s string) Vertex {
	switch s {
	case "A", "a":
		return VertexA
	case "B", "b":
		return VertexB
	case "C", "c":
		return VertexC
	}
	return VertexNone
}

// Angles holds the interior angle at each vertex in degrees
type Angles struct {
	A, B, C float64
}

// At returns the angle at the given vertex. VertexNone yields 0.
func (a Angles) At(v Vertex) float64 {
	switch v {
	case VertexA:
		return a.A
	case VertexB:
		return a.B
	case VertexC:
		return a.C
	}
	return 0
}

// Sum returns A + B + C
func (a Angles) Sum() float64 {
	return a.A + a.B + a.C
}
