package geometry

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInput is returned for non-numeric, non-finite or non-positive sides
	ErrInvalidInput = errors.New("sides must be positive numbers")
	// ErrDegenerate is returned when one side equals the sum of the other two
	ErrDegenerate = errors.New("sides form a degenerate triangle with zero area")
	// ErrNoTriangle is returned when the triangle inequality is violated
	ErrNoTriangle = errors.New("sides violate the triangle inequality")
)

// Sides holds the side lengths a, b, c opposite the vertices A, B, C
type Sides struct {
	A, B, C float64
}

// NewSides creates a new set of side lengths
func NewSides(a, b, c float64) Sides {
	return Sides{A: a, B: b, C: c}
}

// Max returns the longest side length
func (s Sides) Max() float64 {
	return math.Max(s.A, math.Max(s.B, s.C))
}

// Min returns the shortest side length
func (s Sides) Min() float64 {
	return math.Min(s.A, math.Min(s.B, s.C))
}

// Opposite returns the length of the side opposite the given vertex
func (s Sides) Opposite(v Vertex) float64 {
	switch v {
	case VertexA:
		return s.A
	case VertexB:
		return s.B
	case VertexC:
		return s.C
	}
	return 0
}

// Validity is the outcome of the triangle inequality check
type Validity struct {
	Valid      bool // strict inequality holds for all three sides
	Degenerate bool // one side exactly equals the sum of the other two
}

// CheckSides rejects non-finite and non-positive side lengths
func CheckSides(a, b, c float64) error {
	for _, v := range []float64{a, b, c} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("side %v: %w", v, ErrInvalidInput)
		}
	}
	return nil
}

// ParseSides parses three raw side strings
func ParseSides(a, b, c string) (Sides, error) {
	var values [3]float64
	for i, raw := range []string{a, b, c} {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Sides{}, fmt.Errorf("side %q: %w", raw, ErrInvalidInput)
		}
		values[i] = v
	}
	if err := CheckSides(values[0], values[1], values[2]); err != nil {
		return Sides{}, err
	}
	return NewSides(values[0], values[1], values[2]), nil
}

// Validate checks the strict triangle inequality and the degenerate equality case
func Validate(a, b, c float64) Validity {
	return Validity{
		Valid:      a+b > c && a+c > b && b+c > a,
		Degenerate: a+b == c || a+c == b || b+c == a,
	}
}

// Check runs CheckSides and Validate and maps the outcome to an error
func (s Sides) Check() error {
	if err := CheckSides(s.A, s.B, s.C); err != nil {
		return err
	}
	validity := Validate(s.A, s.B, s.C)
	switch {
	case validity.Valid:
		return nil
	case validity.Degenerate:
		return fmt.Errorf("%g, %g, %g: %w", s.A, s.B, s.C, ErrDegenerate)
	default:
		return fmt.Errorf("%g, %g, %g: %w", s.A, s.B, s.C, ErrNoTriangle)
	}
}
