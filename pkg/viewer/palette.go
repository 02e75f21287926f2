package viewer

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Scene colors
var (
	ColorBackground = mustHex("#F8F9FA")
	ColorBody       = mustHex("#4A90E2")
	ColorText       = mustHex("#2C3E50")
	ColorLongest    = mustHex("#E74C3C")
	ColorShortest   = mustHex("#27AE60")
	ColorRightAngle = mustHex("#E74C3C")
	ColorTool       = mustHex("#FFC107")
)

// Fill opacities
const (
	bodyFillAlpha = 0.2
	toolFillAlpha = 0.8
)

func mustHex(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("invalid palette color %q: %v", hex, err))
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// RoleColor returns the side label color for a role
func RoleColor(role LabelRole) color.RGBA {
	switch role {
	case RoleLongest:
		return ColorLongest
	case RoleShortest:
		return ColorShortest
	}
	return ColorText
}

// Blend mixes src over dst with the given opacity in [0, 1]
func Blend(dst, src color.RGBA, opacity float64) color.RGBA {
	if opacity >= 1 {
		return src
	}
	if opacity <= 0 {
		return dst
	}
	d, _ := colorful.MakeColor(dst)
	s, _ := colorful.MakeColor(src)
	r, g, b := d.BlendRgb(s, opacity).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
