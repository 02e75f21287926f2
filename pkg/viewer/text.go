package viewer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/philipparndt/gotri/pkg/geometry"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Align controls horizontal text placement relative to the anchor
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
)

type faceKey struct {
	bold bool
	size float64
}

// faceCache holds parsed fonts and sized faces
type faceCache struct {
	mu      sync.Mutex
	regular *truetype.Font
	bold    *truetype.Font
	faces   map[faceKey]font.Face
}

var faces = &faceCache{faces: make(map[faceKey]font.Face)}

// Face returns a Go font face of the given size
func (c *faceCache) Face(bold bool, size float64) (font.Face, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := faceKey{bold: bold, size: size}
	if face, ok := c.faces[key]; ok {
		return face, nil
	}

	if c.regular == nil {
		regular, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("failed to parse regular font: %w", err)
		}
		boldFont, err := truetype.Parse(gobold.TTF)
		if err != nil {
			return nil, fmt.Errorf("failed to parse bold font: %w", err)
		}
		c.regular, c.bold = regular, boldFont
	}

	f := c.regular
	if bold {
		f = c.bold
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	c.faces[key] = face
	return face, nil
}

// drawText draws text with its baseline at anchor.Y
func drawText(img *image.RGBA, face font.Face, text string, anchor geometry.Vector2, col color.Color, align Align) {
	// 26.6 fixed point holds about ±3.3e7 pixels
	if text == "" || !finite(anchor) || math.Abs(anchor.X) > 1<<20 || math.Abs(anchor.Y) > 1<<20 {
		return
	}

	advance := font.MeasureString(face, text)

	x := fixed.Int26_6(anchor.X * 64)
	if align == AlignCenter {
		x -= advance / 2
	}
	y := fixed.Int26_6(anchor.Y * 64)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: y},
	}
	d.DrawString(text)
}
