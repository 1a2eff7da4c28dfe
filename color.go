package dotgrid

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1], non-premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// Over composites c over dst with source-over blending, with the source
// alpha additionally scaled by coverage. Coverage outside [0,1] is clamped.
func (c RGBA) Over(dst RGBA, coverage float64) RGBA {
	if coverage <= 0 {
		return dst
	}
	if coverage > 1 {
		coverage = 1
	}
	srcA := c.A * coverage
	if srcA <= 0 {
		return dst
	}
	outA := srcA + dst.A*(1-srcA)
	if outA <= 0 {
		return RGBA{}
	}
	return RGBA{
		R: (c.R*srcA + dst.R*dst.A*(1-srcA)) / outA,
		G: (c.G*srcA + dst.G*dst.A*(1-srcA)) / outA,
		B: (c.B*srcA + dst.B*dst.A*(1-srcA)) / outA,
		A: outA,
	}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
