package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/rclancey/earcut"
)

// plot blends col over the pixel at (x, y), ignoring points off the image
func plot(img *image.RGBA, x, y int, col color.RGBA, opacity float64) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}
	if opacity >= 1 {
		img.SetRGBA(x, y, col)
		return
	}
	img.SetRGBA(x, y, Blend(img.RGBAAt(x, y), col, opacity))
}

// finite reports whether every coordinate is a finite number
func finite(points ...geometry.Vector2) bool {
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}

// clipSegment clips p1-p2 to the rectangle grown by margin on every side
// (Liang-Barsky). ok is false when no part of the segment is inside.
func clipSegment(p1, p2 geometry.Vector2, r image.Rectangle, margin float64) (geometry.Vector2, geometry.Vector2, bool) {
	minX, minY := float64(r.Min.X)-margin, float64(r.Min.Y)-margin
	maxX, maxY := float64(r.Max.X)+margin, float64(r.Max.Y)+margin

	d := p2.Sub(p1)
	t0, t1 := 0.0, 1.0
	for _, edge := range [4][2]float64{
		{-d.X, p1.X - minX},
		{d.X, maxX - p1.X},
		{-d.Y, p1.Y - minY},
		{d.Y, maxY - p1.Y},
	} {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return p1, p2, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
		if t0 > t1 {
			return p1, p2, false
		}
	}
	return p1.Add(d.Mul(t0)), p1.Add(d.Mul(t1)), true
}

// fillTriangle fills a triangle using a scanline algorithm
func fillTriangle(img *image.RGBA, p1, p2, p3 geometry.Vector2, col color.RGBA, opacity float64) {
	if !finite(p1, p2, p3) {
		return
	}
	vertices := [3]geometry.Vector2{p1, p2, p3}

	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0].Y > vertices[1].Y {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1].Y > vertices[2].Y {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0].Y > vertices[1].Y {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	top, mid, bottom := vertices[0], vertices[1], vertices[2]

	bounds := img.Bounds()
	yFrom := int(math.Max(float64(bounds.Min.Y), math.Ceil(top.Y)))
	yTo := int(math.Min(float64(bounds.Max.Y-1), math.Floor(bottom.Y)))

	edges := [3][2]geometry.Vector2{{top, mid}, {mid, bottom}, {top, bottom}}
	for y := yFrom; y <= yTo; y++ {
		fy := float64(y)

		xs := make([]float64, 0, 3)
		for _, e := range edges {
			a, b := e[0], e[1]
			if a.Y == b.Y || fy < a.Y || fy > b.Y {
				continue
			}
			t := (fy - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
		if len(xs) < 2 {
			continue
		}

		xStart, xEnd := xs[0], xs[0]
		for _, x := range xs[1:] {
			xStart = math.Min(xStart, x)
			xEnd = math.Max(xEnd, x)
		}
		xStart = math.Max(float64(bounds.Min.X), math.Ceil(xStart))
		xEnd = math.Min(float64(bounds.Max.X-1), math.Floor(xEnd))

		for x := int(xStart); x <= int(xEnd); x++ {
			plot(img, x, y, col, opacity)
		}
	}
}

// triangulate splits a simple polygon into triangles
func triangulate(polygon []geometry.Vector2) ([][3]geometry.Vector2, error) {
	coords := make([]float64, len(polygon)*2)
	for i, p := range polygon {
		coords[i*2] = p.X
		coords[i*2+1] = p.Y
	}

	indices, err := earcut.Earcut(coords, nil, 2)
	if err != nil {
		return nil, err
	}

	triangles := make([][3]geometry.Vector2, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		triangles = append(triangles, [3]geometry.Vector2{
			polygon[indices[i]],
			polygon[indices[i+1]],
			polygon[indices[i+2]],
		})
	}
	return triangles, nil
}

// fillPolygon fills a simple polygon. Each pixel is covered by at most one
// triangle of the triangulation, so translucent fills stay uniform.
func fillPolygon(img *image.RGBA, polygon []geometry.Vector2, col color.RGBA, opacity float64) {
	if len(polygon) < 3 || !finite(polygon...) {
		return
	}
	triangles, err := triangulate(polygon)
	if err != nil || len(triangles) == 0 {
		return
	}
	if opacity >= 1 {
		for _, t := range triangles {
			fillTriangle(img, t[0], t[1], t[2], col, 1)
		}
		return
	}

	// Shared edges would be blended twice, so paint into a mask first
	mask := image.NewRGBA(img.Bounds())
	for _, t := range triangles {
		fillTriangle(mask, t[0], t[1], t[2], color.RGBA{A: 255}, 1)
	}
	for y := mask.Rect.Min.Y; y < mask.Rect.Max.Y; y++ {
		for x := mask.Rect.Min.X; x < mask.Rect.Max.X; x++ {
			if mask.RGBAAt(x, y).A != 0 {
				plot(img, x, y, col, opacity)
			}
		}
	}
}

// circlePolygon approximates a circle with the given number of segments
func circlePolygon(center geometry.Vector2, radius float64, segments int) []geometry.Vector2 {
	points := make([]geometry.Vector2, segments)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		points[i] = geometry.Vector2{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return points
}

// fillCircle fills a disc
func fillCircle(img *image.RGBA, center geometry.Vector2, radius float64, col color.RGBA, opacity float64) {
	fillPolygon(img, circlePolygon(center, radius, circleSegments(radius)), col, opacity)
}

// strokeCircle outlines a circle
func strokeCircle(img *image.RGBA, center geometry.Vector2, radius float64, col color.RGBA, width int) {
	points := circlePolygon(center, radius, circleSegments(radius))
	for i := range points {
		drawThickLine(img, points[i], points[(i+1)%len(points)], col, width)
	}
}

func circleSegments(radius float64) int {
	return max(16, min(256, int(radius)))
}

// drawThickLine draws a line with a square pen of the given width. Segments
// are clipped to the image first; non-finite endpoints draw nothing.
func drawThickLine(img *image.RGBA, p1, p2 geometry.Vector2, col color.RGBA, width int) {
	if !finite(p1, p2) {
		return
	}
	p1, p2, ok := clipSegment(p1, p2, img.Bounds(), float64(width))
	if !ok {
		return
	}
	if width <= 1 {
		drawLine(img, int(math.Round(p1.X)), int(math.Round(p1.Y)), int(math.Round(p2.X)), int(math.Round(p2.Y)), col)
		return
	}
	half := width / 2
	for dy := -half; dy < width-half; dy++ {
		for dx := -half; dx < width-half; dx++ {
			drawLine(img,
				int(math.Round(p1.X))+dx, int(math.Round(p1.Y))+dy,
				int(math.Round(p2.X))+dx, int(math.Round(p2.Y))+dy,
				col)
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}

	err := dx - dy
	for {
		plot(img, x1, y1, col, 1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
