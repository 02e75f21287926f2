package geometry

import (
	"math"
	"testing"
)

func TestCircumcircleOfRightTriangle(t *testing.T) {
	tri := mustBuild(t, 3, 4, 5, 1)

	circle, err := tri.Circumcircle()
	if err != nil {
		t.Fatalf("Circumcircle failed: %v", err)
	}

	// Thales: the center is the midpoint of the hypotenuse AB
	expected := tri.Vertex(VertexA).Midpoint(tri.Vertex(VertexB))
	if math.Abs(circle.Center.X-expected.X) > 1e-9 || math.Abs(circle.Center.Y-expected.Y) > 1e-9 {
		t.Errorf("Circumcircle center failed: expected %v, got %v", expected, circle.Center)
	}
	if math.Abs(circle.Radius-90) > 1e-9 {
		t.Errorf("Circumcircle radius failed: expected 90, got %v", circle.Radius)
	}
	if math.Abs(tri.Circumradius()-2.5) > 1e-10 {
		t.Errorf("Circumradius failed: expected 2.5, got %v", tri.Circumradius())
	}
}

func TestCircumcircleCollinear(t *testing.T) {
	_, err := Circumcircle(NewVector2(0, 0), NewVector2(1, 1), NewVector2(2, 2))
	if err == nil {
		t.Errorf("Circumcircle failed: expected error for collinear points")
	}
}

func TestIncircle(t *testing.T) {
	tri := mustBuild(t, 3, 4, 5, 1)

	if math.Abs(tri.Inradius()-1) > 1e-10 {
		t.Errorf("Inradius failed: expected 1, got %v", tri.Inradius())
	}

	circle := tri.Incircle()
	if math.Abs(circle.Radius-36) > 1e-9 {
		t.Errorf("Incircle radius failed: expected 36, got %v", circle.Radius)
	}
	// the base AB is tangent to the incircle
	if math.Abs(tri.Vertex(VertexA).Y-circle.Center.Y-circle.Radius) > 1e-9 {
		t.Errorf("Incircle center failed: expected distance %v to the base, got %v",
			circle.Radius, tri.Vertex(VertexA).Y-circle.Center.Y)
	}
}
