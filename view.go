package dotgrid

import "fmt"

// View maps output pixels to world space. The world point Center lands on
// the image center; PixelsPerUnit sets the zoom. Y grows downward in both
// spaces, so the mapping is a uniform scale plus translation.
type View struct {
	// Width and Height are the output dimensions in pixels.
	Width, Height int

	// PixelsPerUnit is the zoom factor (pixels per world unit).
	PixelsPerUnit float64

	// Center is the world point mapped to the image center.
	Center Point
}

// FitView builds a view that shows the whole grid in a Width x Height
// image, with margin extra world units kept visible on every side.
func FitView(g *Grid, width, height int, margin float64) View {
	lo, hi := g.Bounds()
	lo = lo.Sub(Point{X: margin, Y: margin})
	hi = hi.Add(Point{X: margin, Y: margin})

	worldW := hi.X - lo.X
	worldH := hi.Y - lo.Y
	ppu := float64(width) / worldW
	if p := float64(height) / worldH; p < ppu {
		ppu = p
	}
	return View{
		Width:         width,
		Height:        height,
		PixelsPerUnit: ppu,
		Center:        lo.Midpoint(hi),
	}
}

// validate fails fast on degenerate views.
func (v View) validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: view %dx%d pixels", ErrInvalidConfig, v.Width, v.Height)
	}
	if v.PixelsPerUnit <= 0 {
		return fmt.Errorf("%w: view scale %v pixels/unit", ErrInvalidConfig, v.PixelsPerUnit)
	}
	return nil
}

// WorldAt returns the world-space position of the center of pixel (px, py).
func (v View) WorldAt(px, py int) Point {
	return Point{
		X: v.Center.X + (float64(px)+0.5-float64(v.Width)/2)/v.PixelsPerUnit,
		Y: v.Center.Y + (float64(py)+0.5-float64(v.Height)/2)/v.PixelsPerUnit,
	}
}

// AAWorldWidth converts a smoothstep half-width in pixels to world units.
func (v View) AAWorldWidth(aaPixels float64) float64 {
	return aaPixels / v.PixelsPerUnit
}

// scaled returns the view rendered at k-times resolution, used for
// supersampling. World framing is unchanged.
func (v View) scaled(k int) View {
	return View{
		Width:         v.Width * k,
		Height:        v.Height * k,
		PixelsPerUnit: v.PixelsPerUnit * float64(k),
		Center:        v.Center,
	}
}
