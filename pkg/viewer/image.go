package viewer

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/philipparndt/gotri/pkg/geometry"
	"golang.org/x/image/font"
)

// Marker sizes in presentation units
const (
	VertexMarkerRadius = 6
	ToolMarkerRadius   = 20
	edgeWidth          = 3
)

// vertexLabelOffsets positions the vertex names relative to their markers
var vertexLabelOffsets = [3]geometry.Vector2{
	{X: -15, Y: 5},
	{X: 10, Y: 5},
	{X: -5, Y: -10},
}

// RenderImage paints a scene descriptor into a new image
func RenderImage(d Descriptor) (*image.RGBA, error) {
	width, height := d.Width, d.Height
	if width <= 0 || height <= 0 {
		width, height = SurfaceWidth, SurfaceHeight
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, ColorBackground)
		}
	}

	labelFace, err := faces.Face(true, 14)
	if err != nil {
		return nil, err
	}
	vertexFace, err := faces.Face(true, 12)
	if err != nil {
		return nil, err
	}
	statusFace, err := faces.Face(false, 12)
	if err != nil {
		return nil, err
	}

	if d.HasTriangle {
		polygon := d.Polygon()
		fillPolygon(img, polygon, ColorBody, bodyFillAlpha)
		for i := range polygon {
			drawThickLine(img, polygon[i], polygon[(i+1)%3], ColorBody, edgeWidth)
		}

		if d.Circumcircle != nil {
			strokeCircle(img, d.Circumcircle.Center, d.Circumcircle.Radius, ColorText, 1)
		}
		if d.Incircle != nil {
			strokeCircle(img, d.Incircle.Center, d.Incircle.Radius, ColorShortest, 1)
		}

		for _, side := range d.Sides {
			drawText(img, labelFace, side.Text, side.Pos, RoleColor(side.Role), AlignCenter)
		}

		for i, marker := range d.Vertices {
			col := ColorBody
			if marker.RightAngle {
				col = ColorRightAngle
			}
			fillCircle(img, marker.Pos, VertexMarkerRadius, col, 1)
			drawText(img, vertexFace, marker.Label, marker.Pos.Add(vertexLabelOffsets[i]), ColorText, AlignCenter)
		}
	}

	for _, tool := range d.Tools {
		drawTool(img, tool, labelFace, vertexFace)
	}

	if d.Status != "" {
		drawText(img, statusFace, d.Status, geometry.Vector2{X: 10, Y: float64(height) - 12}, ColorText, AlignLeft)
	}

	return img, nil
}

func drawTool(img *image.RGBA, tool ToolMarker, idFace, readoutFace font.Face) {
	fillCircle(img, tool.Pos, ToolMarkerRadius, ColorTool, toolFillAlpha)
	strokeCircle(img, tool.Pos, ToolMarkerRadius, ColorTool, 2)
	drawText(img, idFace, fmt.Sprintf("%d", tool.ID), tool.Pos.Add(geometry.Vector2{Y: 5}), ColorText, AlignCenter)

	if !tool.HasAngle {
		return
	}
	col := ColorTool
	if tool.RightAngle {
		col = ColorRightAngle
	}
	drawText(img, readoutFace, tool.AngleText, tool.Pos.Add(geometry.Vector2{Y: -30}), col, AlignCenter)
	if tool.RightAngle {
		drawText(img, readoutFace, "RIGHT ANGLE", tool.Pos.Add(geometry.Vector2{Y: -45}), ColorRightAngle, AlignCenter)
	}
}

// WritePNG renders the descriptor and encodes it as PNG
func WritePNG(w io.Writer, d Descriptor) error {
	img, err := RenderImage(d)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
