package geometry

import (
	"math"
	"testing"
)

func TestClassifyByAngles(t *testing.T) {
	cases := []struct {
		a, b, c  float64
		expected AngleType
	}{
		{3, 4, 5, Right},
		{5, 3, 4, Right},
		{2, 2, 2, Acute},
		{2, 3, 4, Obtuse},
		{5, 5, 8, Obtuse},
	}
	for _, c := range cases {
		if got := ClassifyByAngles(c.a, c.b, c.c); got != c.expected {
			t.Errorf("ClassifyByAngles(%v, %v, %v) failed: expected %v, got %v", c.a, c.b, c.c, c.expected, got)
		}
	}
}

func TestClassifySides(t *testing.T) {
	if got := ClassifySides(2, 2, 2); got != Equilateral {
		t.Errorf("ClassifySides failed: expected Equilateral, got %v", got)
	}
	if got := ClassifySides(2, 3, 2); got != Isosceles {
		t.Errorf("ClassifySides failed: expected Isosceles, got %v", got)
	}
	if got := ClassifySides(3, 4, 5); got != Scalene {
		t.Errorf("ClassifySides failed: expected Scalene, got %v", got)
	}
}

func TestClassifySidesUsesExactEquality(t *testing.T) {
	x, y := 0.1, 0.2
	sum := x + y // 0.30000000000000004

	if got := ClassifySides(sum, 0.3, 0.5); got != Scalene {
		t.Errorf("ClassifySides failed: expected Scalene for near-equal sides, got %v", got)
	}
}

func TestRightAngleTestsDivergeNearBoundary(t *testing.T) {
	// 5.0000001² - 25 ≈ 1e-6: inside the loose tolerance, outside the strict one
	a, b, c := 3.0, 4.0, 5.0000001

	if got := ClassifyByAngles(a, b, c); got != Obtuse {
		t.Errorf("ClassifyByAngles failed: expected Obtuse, got %v", got)
	}
	if !IsRightAngled(a, b, c) {
		t.Errorf("IsRightAngled failed: expected true near the boundary")
	}

	tri, err := Build(NewSides(a, b, c), 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if tri.AngleType == Right || !tri.RightAngled {
		t.Errorf("Build failed: expected AngleType != Right and RightAngled, got %v and %v", tri.AngleType, tri.RightAngled)
	}
}

func TestAreaAndPerimeter(t *testing.T) {
	if area := Area(3, 4, 5); math.Abs(area-6) > 1e-10 {
		t.Errorf("Area failed: expected 6, got %v", area)
	}
	if perimeter := Perimeter(3, 4, 5); perimeter != 12 {
		t.Errorf("Perimeter failed: expected 12, got %v", perimeter)
	}
}

func TestInteriorAnglesSumTo180(t *testing.T) {
	cases := [][3]float64{
		{3, 4, 5},
		{2, 2, 2},
		{7, 10, 5},
		{1, 1, 1.999},
		{0.001, 0.001, 0.0015},
		{1000, 999, 2},
		{1e-8, 1, 1},
		{1, 1e8, 1e8},
		{1e150, 1e150, 1e150},
		{1e-150, 1e-150, 1e-150},
		{1e200, 1e200, 1e200},
		{1e-200, 1e-200, 1e-200},
		{3e160, 4e160, 5e160},
		{1e308, 1e308, 1e308},
	}
	for _, c := range cases {
		angles := InteriorAngles(c[0], c[1], c[2])
		for _, v := range Vertices {
			if angle := angles.At(v); angle <= 0 || angle >= 180 {
				t.Errorf("InteriorAngles(%v) failed: angle at %v out of range: %v", c, v, angle)
			}
		}
		if math.Abs(angles.Sum()-180) > 1e-9 {
			t.Errorf("InteriorAngles(%v) failed: expected sum 180, got %v", c, angles.Sum())
		}
	}
}

func TestClassificationAtExtremeMagnitudes(t *testing.T) {
	for _, side := range []float64{1e150, 1e200, 1e308} {
		if got := ClassifyByAngles(side, side, side); got != Acute {
			t.Errorf("ClassifyByAngles(%g x3) failed: expected Acute, got %v", side, got)
		}
		if IsRightAngled(side, side, side) {
			t.Errorf("IsRightAngled(%g x3) failed: expected false", side)
		}
	}
	if got := ClassifyByAngles(1e200, 1e200, 1.9e200); got != Obtuse {
		t.Errorf("ClassifyByAngles failed: expected Obtuse, got %v", got)
	}

	// Angles are scale-free
	angles := InteriorAngles(3e160, 4e160, 5e160)
	if math.Abs(angles.C-90) > 1e-9 {
		t.Errorf("InteriorAngles failed: expected C = 90, got %v", angles.C)
	}
}

func TestAreaAtExtremeMagnitudes(t *testing.T) {
	cases := []struct {
		a, b, c  float64
		expected float64
	}{
		{1e150, 1e150, 1e150, math.Sqrt(3) / 4 * 1e300},
		{3e100, 4e100, 5e100, 6e200},
		{3e-100, 4e-100, 5e-100, 6e-200},
		{1e-8, 1, 1, 5e-9},
	}
	for _, c := range cases {
		got := Area(c.a, c.b, c.c)
		if math.Abs(got-c.expected) > 1e-9*c.expected {
			t.Errorf("Area(%g, %g, %g) failed: expected %g, got %g", c.a, c.b, c.c, c.expected, got)
		}
	}
	if got := Area(1e200, 1e200, 1e200); !math.IsInf(got, 1) {
		t.Errorf("Area failed: expected +Inf beyond the float64 range, got %g", got)
	}
}

func TestTypeStrings(t *testing.T) {
	if Right.String() != "Right" || Obtuse.String() != "Obtuse" || Acute.String() != "Acute" {
		t.Errorf("AngleType.String failed")
	}
	if Equilateral.String() != "Equilateral" || Isosceles.String() != "Isosceles" || Scalene.String() != "Scalene" {
		t.Errorf("SideType.String failed")
	}
}
