package geometry

import (
	"math"
	"sort"
)

const (
	// RightAngleTolerance is the absolute tolerance of ClassifyByAngles
	RightAngleTolerance = 1e-10
	// LooseRightAngleTolerance is the absolute tolerance of IsRightAngled
	LooseRightAngleTolerance = 1e-5
)

// AngleType classifies a triangle by its largest angle
type AngleType int

const (
	Acute AngleType = iota
	Right
	Obtuse
)

func (t AngleType) String() string {
	switch t {
	case Right:
		return "Right"
	case Obtuse:
		return "Obtuse"
	}
	return "Acute"
}

// SideType classifies a triangle by equal sides
type SideType int

const (
	Scalene SideType = iota
	Isosceles
	Equilateral
)

func (t SideType) String() string {
	switch t {
	case Equilateral:
		return "Equilateral"
	case Isosceles:
		return "Isosceles"
	}
	return "Scalene"
}

// ClassifyByAngles compares the square of the largest side with the sum of
// the squares of the other two. The tolerance is absolute in squared side
// units.
func ClassifyByAngles(a, b, c float64) AngleType {
	sides := []float64{a, b, c}
	sort.Sort(sort.Reverse(sort.Float64Slice(sides)))
	largest, middle, smallest := sides[0], sides[1], sides[2]

	diff := pythagoreanDifference(smallest, middle, largest)
	if withinSquaredTolerance(diff, largest, RightAngleTolerance) {
		return Right
	}
	if diff < 0 {
		return Obtuse
	}
	return Acute
}

// ClassifySides uses exact float equality. Near-equal values such as
// 0.1+0.2 and 0.3 are therefore reported as different sides.
func ClassifySides(a, b, c float64) SideType {
	if a == b && b == c {
		return Equilateral
	}
	if a == b || b == c || a == c {
		return Isosceles
	}
	return Scalene
}

// IsRightAngled applies the Pythagorean relation to the sorted sides with
// LooseRightAngleTolerance. It is independent of ClassifyByAngles and the two
// can disagree for nearly right triangles.
func IsRightAngled(a, b, c float64) bool {
	sides := []float64{a, b, c}
	sort.Float64s(sides)
	s1, s2, s3 := sides[0], sides[1], sides[2]
	return withinSquaredTolerance(pythagoreanDifference(s1, s2, s3), s3, LooseRightAngleTolerance)
}

// Area returns the area using Heron's formula in the ordering that stays
// accurate for needle-like triangles. The sides are scaled to the longest one
// first, so the result overflows to +Inf or underflows to 0 only when the true
// area is outside the float64 range.
func Area(a, b, c float64) float64 {
	sides := []float64{a, b, c}
	sort.Sort(sort.Reverse(sort.Float64Slice(sides)))
	m := sides[0]
	a, b, c = 1, sides[1]/m, sides[2]/m
	product := (a + (b + c)) * (c - (a - b)) * (c + (a - b)) * (a + (b - c))
	return math.Sqrt(math.Max(0, product)) / 4 * m * m
}

// Perimeter returns a + b + c
func Perimeter(a, b, c float64) float64 {
	return a + b + c
}

// InteriorAngles computes each angle independently with the law of cosines.
// The results are not corrected to sum to exactly 180.
func InteriorAngles(a, b, c float64) Angles {
	return Angles{
		A: lawOfCosines(a, b, c) * 180 / math.Pi,
		B: lawOfCosines(b, a, c) * 180 / math.Pi,
		C: lawOfCosines(c, a, b) * 180 / math.Pi,
	}
}

// lawOfCosines returns the angle in radians opposite side `opposite`. It
// uses the half-angle form of the law of cosines, which keeps full precision
// for very small and very flat angles where acos of the cosine ratio rounds
// to 0 or 180 degrees.
func lawOfCosines(opposite, adj1, adj2 float64) float64 {
	m := math.Max(opposite, math.Max(adj1, adj2))
	a, b, c := math.Max(adj1, adj2)/m, math.Min(adj1, adj2)/m, opposite/m

	var mu float64
	if b >= c {
		mu = c - (a - b)
	} else {
		mu = b - (a - c)
	}
	num := ((a - b) + c) * mu
	den := (a + (b + c)) * ((a - c) + b)
	return 2 * math.Atan(math.Sqrt(math.Max(0, num/den)))
}

// pythagoreanDifference returns (s1² + s2² - s3²) / s3² for s3 the longest
// side, which stays finite for any positive finite input
func pythagoreanDifference(s1, s2, s3 float64) float64 {
	s1, s2 = s1/s3, s2/s3
	return s1*s1 + s2*s2 - 1
}

// withinSquaredTolerance reports whether |diff|·longest² < tolerance without
// forming longest². tolerance/longest² may underflow to 0, so an exact zero
// is accepted on its own.
func withinSquaredTolerance(diff, longest, tolerance float64) bool {
	return diff == 0 || math.Abs(diff) < tolerance/longest/longest
}
